package providers

import (
	"moodtracker/internal/services"
	"moodtracker/internal/structures"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveStorageDuration(operation string, duration time.Duration)
	IncStorageErrors(operation string)
	IncMoodsRecorded(mood int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	storageDuration *prometheus.HistogramVec
	storageErrors   *prometheus.CounterVec
	moodsRecorded   *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveStorageDuration(operation string, duration time.Duration) {
	m.storageDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncStorageErrors(operation string) {
	m.storageErrors.WithLabelValues(operation).Inc()
}

func (m *MetricsProvider) IncMoodsRecorded(mood int) {
	m.moodsRecorded.WithLabelValues(strconv.Itoa(mood)).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mood_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mood_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mood_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mood_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		storageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mood_storage_duration_seconds",
			Help:    "Duration of storage operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		storageErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mood_storage_errors_total",
			Help: "Total number of failed storage operations",
		}, []string{"operation"}),

		moodsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mood_recorded_total",
			Help: "Total number of recorded moods per value",
		}, []string{"mood"}),
	}

	return m
}

// RegisterServiceGauges exposes the store state as gauges. The service is
// built on top of the metrics provider, so this runs after both exist.
func RegisterServiceGauges(conf *structures.Config, service services.MoodServiceInterface) {
	if !conf.Metrics.Enabled {
		return
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "mood_current",
		Help: "Most recently recorded mood, 0 when none is set",
	}, func() float64 {
		if mood, ok := service.CurrentMood(); ok {
			return float64(mood)
		}
		return 0
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "mood_history_average",
		Help: "Arithmetic mean of the mood history",
	}, func() float64 {
		return service.GetAverage()
	})
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveStorageDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncStorageErrors(_ string)                        {}
func (n *noopMetrics) IncMoodsRecorded(_ int)                           {}
