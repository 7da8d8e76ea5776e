package testutil

import (
	"context"
	"moodtracker/internal/models"
	"moodtracker/internal/providers"
	"slices"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMoodService implements services.MoodServiceInterface.
type MockMoodService struct {
	mu          sync.Mutex
	Current     *int
	Records     []models.MoodRecord
	RecordCalls []int
	RecordErr   error
	InitErr     error
	InitCalls   int
	ReseedCalls int
}

func (m *MockMoodService) Initialize(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitCalls++
	return m.InitErr
}

func (m *MockMoodService) RecordMood(_ context.Context, mood int) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordCalls = append(m.RecordCalls, mood)
	if m.RecordErr != nil {
		return nil, m.RecordErr
	}
	m.Current = &mood
	return m.snapshotLocked(), nil
}

func (m *MockMoodService) Reseed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReseedCalls++
	m.Current = nil
	m.Records = models.SeedHistory()
}

func (m *MockMoodService) GetAverage() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range m.Records {
		sum += r.Mood
	}
	return float64(sum) / float64(len(m.Records))
}

func (m *MockMoodService) CurrentMood() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Current == nil {
		return 0, false
	}
	return *m.Current, true
}

func (m *MockMoodService) History() []models.MoodRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.Records)
}

func (m *MockMoodService) Snapshot() *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *MockMoodService) snapshotLocked() *models.Snapshot {
	snap := &models.Snapshot{History: slices.Clone(m.Records)}
	if m.Current != nil {
		v := *m.Current
		snap.CurrentMood = &v
	}
	return snap
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Invalidate(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.Data, key)
	}
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu            sync.Mutex
	StorageOps    map[string]int
	StorageErrors map[string]int
	MoodsRecorded []int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{StorageOps: map[string]int{}, StorageErrors: map[string]int{}}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveStorageDuration(op string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StorageOps[op]++
}
func (m *MockMetrics) IncStorageErrors(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StorageErrors[op]++
}
func (m *MockMetrics) IncMoodsRecorded(mood int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MoodsRecorded = append(m.MoodsRecorded, mood)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
