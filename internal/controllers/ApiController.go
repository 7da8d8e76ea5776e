package controllers

import (
	"errors"
	"moodtracker/internal/models"
	"moodtracker/internal/providers"
	"moodtracker/internal/services"
	"net/http"
	"sync"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 10 // 1 KB

const (
	cacheKeySummary         = "summary"
	cacheKeyHistory         = "history"
	cacheKeyRecommendations = "recommendations"
)

type recordMoodRequest struct {
	Mood *int `json:"mood"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type ApiController struct {
	// cacheMu orders cache fills against record+invalidate: readers share it
	// from snapshot to Set, RecordMood holds it exclusively.
	cacheMu sync.RWMutex
	logger  providers.Logger
	service services.MoodServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.MoodServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(errorResponse{Error: msg})
	writeJSON(w, status, body)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	ac.cacheMu.RLock()
	defer ac.cacheMu.RUnlock()

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) invalidate() {
	ac.cache.Invalidate(cacheKeySummary, cacheKeyHistory, cacheKeyRecommendations)
}

func (ac *ApiController) RecordMood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload recordMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Mood == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"mood\": <1-5>}")
		return
	}

	ac.cacheMu.Lock()
	snap, err := ac.service.RecordMood(r.Context(), *payload.Mood)
	if err == nil {
		ac.invalidate()
	}
	ac.cacheMu.Unlock()
	if err != nil {
		if errors.Is(err, services.ErrInvalidMoodValue) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ac.logger.Errorf(providers.TypePost, "Record mood %d: %s", *payload.Mood, err)
		writeError(w, http.StatusInternalServerError, "unable to record mood")
		return
	}
	ac.metrics.IncMoodsRecorded(*payload.Mood)
	ac.logger.Infof(providers.TypePost, "Mood recorded: %s", models.LabelOf(*payload.Mood))

	gson, err := json.Marshal(services.Summarize(snap))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, gson)
}

func (ac *ApiController) GetSummary(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeySummary, func() (any, error) {
		return services.Summarize(ac.service.Snapshot()), nil
	})
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyHistory, func() (any, error) {
		history := ac.service.History()
		if history == nil {
			history = []models.MoodRecord{}
		}
		return history, nil
	})
}

func (ac *ApiController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyRecommendations, func() (any, error) {
		return services.Recommendations(ac.service.Snapshot().CurrentMood), nil
	})
}

func (ac *ApiController) GetMoods(w http.ResponseWriter, r *http.Request) {
	gson, err := json.Marshal(models.MoodTable())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, gson)
}
