package services

import (
	"bytes"
	"context"
	"fmt"
	"moodtracker/internal/models"
	"moodtracker/internal/storage/interfaces"
	"moodtracker/internal/structures"
	"slices"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const (
	CurrentMoodKey = "currentMood"
	HistoryKey     = "moodHistory"

	DefaultWindow = 7
)

type MergePolicy string

const (
	// MergeReplaceLast overwrites the newest entry on every record.
	MergeReplaceLast MergePolicy = "replaceLast"
	// MergeSameDay overwrites the newest entry only when it carries today's
	// date; otherwise it appends and trims the history to the window.
	MergeSameDay MergePolicy = "sameDay"
)

type MoodServiceInterface interface {
	Initialize(ctx context.Context) error
	RecordMood(ctx context.Context, mood int) (*models.Snapshot, error)
	Reseed()
	GetAverage() float64
	CurrentMood() (int, bool)
	History() []models.MoodRecord
	Snapshot() *models.Snapshot
}

type MoodService struct {
	mu      sync.RWMutex
	store   interfaces.KeyValueStore
	policy  MergePolicy
	window  int
	now     func() time.Time
	current *int
	history []models.MoodRecord
}

func NewMoodService(store interfaces.KeyValueStore, conf *structures.Config) MoodServiceInterface {
	policy := MergePolicy(conf.History.MergePolicy)
	if policy != MergeSameDay {
		policy = MergeReplaceLast
	}
	window := conf.History.Window
	if window <= 0 {
		window = DefaultWindow
	}
	return &MoodService{
		store:   store,
		policy:  policy,
		window:  window,
		now:     time.Now,
		history: models.SeedHistory(),
	}
}

// Initialize loads the current mood and the history from storage. A missing
// history falls back to the seed week, which is not written back until the
// next RecordMood. On error the in-memory state is left as it was.
func (s *MoodService) Initialize(ctx context.Context) error {
	rawMood, moodFound, err := s.store.Get(ctx, CurrentMoodKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", CurrentMoodKey, err)
	}
	rawHistory, historyFound, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", HistoryKey, err)
	}

	var current *int
	if moodFound && strings.TrimSpace(rawMood) != "" {
		mood, err := parseCurrentMood(rawMood)
		if err != nil {
			return err
		}
		current = &mood
	}

	history := models.SeedHistory()
	if historyFound {
		history, err = parseHistory(rawHistory)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = current
	s.history = history
	return nil
}

func parseCurrentMood(raw string) (int, error) {
	mood, err := cast.ToIntE(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCurrentMood, raw, err)
	}
	if !models.Mood(mood).Valid() {
		return 0, fmt.Errorf("%w: %d is outside [%d,%d]", ErrMalformedCurrentMood, mood, models.MinMood, models.MaxMood)
	}
	return mood, nil
}

func parseHistory(raw string) ([]models.MoodRecord, error) {
	data := bytes.TrimSpace([]byte(raw))
	if bytes.Equal(data, []byte("null")) {
		return nil, fmt.Errorf("%w: null is not a sequence", ErrMalformedHistory)
	}

	history := make([]models.MoodRecord, 0, DefaultWindow)
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHistory, err)
	}
	for i, rec := range history {
		if !models.Mood(rec.Mood).Valid() {
			return nil, fmt.Errorf("%w: entry %d has mood %d", ErrMalformedHistory, i, rec.Mood)
		}
	}
	return history, nil
}

// RecordMood sets today's mood and merges it into the history. Both keys are
// written before the in-memory state changes; an invalid value touches nothing.
func (s *MoodService) RecordMood(ctx context.Context, mood int) (*models.Snapshot, error) {
	if !models.Mood(mood).Valid() {
		return nil, fmt.Errorf("%w: %d is outside [%d,%d]", ErrInvalidMoodValue, mood, models.MinMood, models.MaxMood)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.merge(models.NewMoodRecord(s.now(), mood))
	encoded, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", HistoryKey, err)
	}

	if err = s.persist(ctx, mood, string(encoded)); err != nil {
		return nil, err
	}

	s.current = &mood
	s.history = history
	return s.snapshotLocked(), nil
}

// persist writes both keys, in one step when the store supports batches.
func (s *MoodService) persist(ctx context.Context, mood int, history string) error {
	if batch, ok := s.store.(interfaces.BatchStore); ok {
		err := batch.SetMany(ctx, []interfaces.Entry{
			{Key: CurrentMoodKey, Value: cast.ToString(mood)},
			{Key: HistoryKey, Value: history},
		})
		if err != nil {
			return fmt.Errorf("save %s and %s: %w", CurrentMoodKey, HistoryKey, err)
		}
		return nil
	}

	if err := s.store.Set(ctx, CurrentMoodKey, cast.ToString(mood)); err != nil {
		return fmt.Errorf("save %s: %w", CurrentMoodKey, err)
	}
	if err := s.store.Set(ctx, HistoryKey, history); err != nil {
		if s.current != nil {
			// best effort: keep the stored pair consistent with memory
			_ = s.store.Set(ctx, CurrentMoodKey, cast.ToString(*s.current))
		}
		return fmt.Errorf("save %s: %w", HistoryKey, err)
	}
	return nil
}

func (s *MoodService) merge(record models.MoodRecord) []models.MoodRecord {
	history := slices.Clone(s.history)
	if len(history) == 0 {
		return append(history, record)
	}

	last := len(history) - 1
	if s.policy == MergeSameDay && history[last].Date != record.Date {
		history = append(history, record)
		if len(history) > s.window {
			history = slices.Clone(history[len(history)-s.window:])
		}
		return history
	}

	history[last] = record
	return history
}

// Reseed drops the loaded state in favour of the seed week without touching storage.
func (s *MoodService) Reseed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.history = models.SeedHistory()
}

func (s *MoodService) GetAverage() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AverageOf(s.history)
}

func (s *MoodService) CurrentMood() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return 0, false
	}
	return *s.current, true
}

func (s *MoodService) History() []models.MoodRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

func (s *MoodService) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *MoodService) snapshotLocked() *models.Snapshot {
	snap := &models.Snapshot{History: slices.Clone(s.history)}
	if s.current != nil {
		mood := *s.current
		snap.CurrentMood = &mood
	}
	return snap
}
