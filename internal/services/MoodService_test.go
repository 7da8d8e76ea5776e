package services

import (
	"context"
	"errors"
	"moodtracker/internal/models"
	"moodtracker/internal/storage/interfaces"
	"moodtracker/internal/structures"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- local fake storage (testutil would import this package back) ---

type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	sets    []string
	getErr  error
	failSet map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, failSet: map[string]error{}}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failSet[key]; err != nil {
		return err
	}
	f.sets = append(f.sets, key)
	f.data[key] = value
	return nil
}

var fixedNow = time.Date(2024, time.December, 18, 9, 0, 0, 0, time.UTC) // Wed Dec 18

func serviceConfig(policy string, window int) *structures.Config {
	return &structures.Config{
		History: structures.HistoryConfig{MergePolicy: policy, Window: window},
	}
}

func newTestService(t *testing.T, store *fakeStore, policy string) *MoodService {
	t.Helper()
	svc := NewMoodService(store, serviceConfig(policy, 7)).(*MoodService)
	svc.now = func() time.Time { return fixedNow }
	require.NoError(t, svc.Initialize(context.Background()))
	return svc
}

func moodsOf(history []models.MoodRecord) []int {
	out := make([]int, len(history))
	for i, r := range history {
		out[i] = r.Mood
	}
	return out
}

// --- Initialize ---

func TestInitialize_FreshStoreUsesSeed(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, "replaceLast")

	assert.Equal(t, models.SeedHistory(), svc.History())
	_, ok := svc.CurrentMood()
	assert.False(t, ok)
	assert.Empty(t, store.sets, "seed must not be persisted before the first record")
}

func TestInitialize_LoadsPersistedState(t *testing.T) {
	store := newFakeStore()
	store.data[CurrentMoodKey] = "2"
	store.data[HistoryKey] = `[{"day":"Mon","mood":1,"date":"Jan 6"},{"day":"Tue","mood":2,"date":"Jan 7"}]`

	svc := newTestService(t, store, "replaceLast")

	mood, ok := svc.CurrentMood()
	assert.True(t, ok)
	assert.Equal(t, 2, mood)
	assert.Equal(t, []models.MoodRecord{
		{Day: "Mon", Mood: 1, Date: "Jan 6"},
		{Day: "Tue", Mood: 2, Date: "Jan 7"},
	}, svc.History())
}

func TestInitialize_EmptyCurrentMoodStaysUnset(t *testing.T) {
	store := newFakeStore()
	store.data[CurrentMoodKey] = ""

	svc := newTestService(t, store, "replaceLast")
	_, ok := svc.CurrentMood()
	assert.False(t, ok)
}

func TestInitialize_MalformedHistory(t *testing.T) {
	cases := map[string]string{
		"not json":      "{{{",
		"object":        `{"day":"Mon","mood":4}`,
		"null":          "null",
		"wrong type":    `[{"day":"Mon","mood":"four","date":"Dec 9"}]`,
		"out of range":  `[{"day":"Mon","mood":9,"date":"Dec 9"}]`,
		"zero mood":     `[{"day":"Mon","date":"Dec 9"}]`,
		"array of ints": `[4,3,5]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := newFakeStore()
			store.data[HistoryKey] = raw
			svc := NewMoodService(store, serviceConfig("replaceLast", 7))

			err := svc.Initialize(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedHistory))
			assert.Equal(t, models.SeedHistory(), svc.History(), "state must be left untouched")
		})
	}
}

func TestInitialize_MalformedCurrentMood(t *testing.T) {
	for _, raw := range []string{"abc", "7", "0"} {
		store := newFakeStore()
		store.data[CurrentMoodKey] = raw
		svc := NewMoodService(store, serviceConfig("replaceLast", 7))

		err := svc.Initialize(context.Background())
		assert.True(t, errors.Is(err, ErrMalformedCurrentMood), "raw %q", raw)
	}
}

func TestInitialize_StorageError(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("disk gone")
	svc := NewMoodService(store, serviceConfig("replaceLast", 7))

	err := svc.Initialize(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.getErr)
}

func TestInitialize_EmptyHistoryArray(t *testing.T) {
	store := newFakeStore()
	store.data[HistoryKey] = "[]"

	svc := newTestService(t, store, "replaceLast")
	assert.Empty(t, svc.History())
	assert.Equal(t, float64(0), svc.GetAverage())
}

// --- RecordMood ---

func TestRecordMood_EveryValidValue(t *testing.T) {
	for v := 1; v <= 5; v++ {
		svc := newTestService(t, newFakeStore(), "replaceLast")

		snap, err := svc.RecordMood(context.Background(), v)
		require.NoError(t, err)

		history := svc.History()
		assert.Equal(t, v, history[len(history)-1].Mood)
		mood, ok := svc.CurrentMood()
		assert.True(t, ok)
		assert.Equal(t, v, mood)
		require.NotNil(t, snap.CurrentMood)
		assert.Equal(t, v, *snap.CurrentMood)
		assert.Equal(t, AverageOf(history), svc.GetAverage())
	}
}

func TestRecordMood_ReplacesLastEntryOfSeed(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, "replaceLast")
	seed := models.SeedHistory()

	_, err := svc.RecordMood(context.Background(), 5)
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 7)
	assert.Equal(t, seed[:6], history[:6])
	assert.Equal(t, models.MoodRecord{Day: "Wed", Mood: 5, Date: "Dec 18"}, history[6])

	mood, _ := svc.CurrentMood()
	assert.Equal(t, 5, mood)
	assert.Equal(t, SentimentPositive, SentimentOf(mood))
	assert.Equal(t, 100, WellnessScorePercent(mood))
}

func TestRecordMood_PersistsBothKeys(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, "replaceLast")

	_, err := svc.RecordMood(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{CurrentMoodKey, HistoryKey}, store.sets)
	assert.Equal(t, "2", store.data[CurrentMoodKey])

	var stored []models.MoodRecord
	require.NoError(t, json.Unmarshal([]byte(store.data[HistoryKey]), &stored))
	assert.Equal(t, svc.History(), stored)
	assert.Equal(t, SentimentNeedsAttention, SentimentOf(2))
	assert.Equal(t, 40, WellnessScorePercent(2))
}

func TestRecordMood_InvalidValueChangesNothing(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, "replaceLast")
	_, err := svc.RecordMood(context.Background(), 3)
	require.NoError(t, err)
	before := svc.Snapshot()
	writes := len(store.sets)

	for _, v := range []int{6, 0, -1, 100} {
		snap, err := svc.RecordMood(context.Background(), v)
		assert.Nil(t, snap)
		assert.True(t, errors.Is(err, ErrInvalidMoodValue), "value %d", v)
	}

	assert.Equal(t, before, svc.Snapshot())
	assert.Len(t, store.sets, writes)
}

func TestRecordMood_RoundTripThroughInitialize(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, "replaceLast")
	_, err := svc.RecordMood(context.Background(), 1)
	require.NoError(t, err)

	reloaded := newTestService(t, store, "replaceLast")
	assert.Equal(t, svc.History(), reloaded.History())
	mood, ok := reloaded.CurrentMood()
	assert.True(t, ok)
	assert.Equal(t, 1, mood)
}

func TestRecordMood_HistoryWriteFailureKeepsState(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store, "replaceLast")
	_, err := svc.RecordMood(context.Background(), 4)
	require.NoError(t, err)
	before := svc.Snapshot()

	store.failSet[HistoryKey] = errors.New("quota exceeded")
	_, err = svc.RecordMood(context.Background(), 1)
	require.Error(t, err)

	assert.Equal(t, before, svc.Snapshot())
	assert.Equal(t, "4", store.data[CurrentMoodKey])
}

func TestRecordMood_EmptyHistoryAppends(t *testing.T) {
	store := newFakeStore()
	store.data[HistoryKey] = "[]"
	svc := newTestService(t, store, "replaceLast")

	_, err := svc.RecordMood(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, moodsOf(svc.History()))
}

func TestRecordMood_ReplaceLastOverwritesAcrossDays(t *testing.T) {
	svc := newTestService(t, newFakeStore(), "replaceLast")

	_, err := svc.RecordMood(context.Background(), 1)
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 1) }
	_, err = svc.RecordMood(context.Background(), 2)
	require.NoError(t, err)

	history := svc.History()
	assert.Len(t, history, 7)
	assert.Equal(t, models.MoodRecord{Day: "Thu", Mood: 2, Date: "Dec 19"}, history[6])
}

func TestRecordMood_SameDayPolicy(t *testing.T) {
	svc := newTestService(t, newFakeStore(), "sameDay")

	// new day: appended, oldest entry trimmed off
	_, err := svc.RecordMood(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 2, 4, 5, 4, 1}, moodsOf(svc.History()))

	// same day again: replaced in place
	_, err = svc.RecordMood(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 2, 4, 5, 4, 5}, moodsOf(svc.History()))

	// next day: appended again
	svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 1) }
	_, err = svc.RecordMood(context.Background(), 2)
	require.NoError(t, err)
	history := svc.History()
	assert.Equal(t, []int{5, 2, 4, 5, 4, 5, 2}, moodsOf(history))
	assert.Equal(t, "Dec 19", history[6].Date)
}

func TestRecordMood_SameDayPolicyGrowsUpToWindow(t *testing.T) {
	store := newFakeStore()
	store.data[HistoryKey] = `[{"day":"Mon","mood":3,"date":"Dec 16"}]`
	svc := NewMoodService(store, serviceConfig("sameDay", 3)).(*MoodService)
	require.NoError(t, svc.Initialize(context.Background()))

	for i := 0; i < 4; i++ {
		day := fixedNow.AddDate(0, 0, i)
		svc.now = func() time.Time { return day }
		_, err := svc.RecordMood(context.Background(), 4)
		require.NoError(t, err)
	}
	assert.Len(t, svc.History(), 3)
}

// --- reads ---

func TestGetAverage_Seed(t *testing.T) {
	svc := newTestService(t, newFakeStore(), "replaceLast")
	assert.InDelta(t, 27.0/7.0, svc.GetAverage(), 1e-12)
}

func TestReseed(t *testing.T) {
	store := newFakeStore()
	store.data[CurrentMoodKey] = "2"
	store.data[HistoryKey] = `[{"day":"Mon","mood":1,"date":"Jan 6"}]`
	svc := newTestService(t, store, "replaceLast")

	svc.Reseed()

	_, ok := svc.CurrentMood()
	assert.False(t, ok)
	assert.Equal(t, models.SeedHistory(), svc.History())
	assert.Empty(t, store.sets)
}

func TestHistory_ReturnsCopy(t *testing.T) {
	svc := newTestService(t, newFakeStore(), "replaceLast")
	h := svc.History()
	h[0].Mood = 1

	assert.Equal(t, 4, svc.History()[0].Mood)
}

func TestNewMoodService_DefaultsUnknownPolicy(t *testing.T) {
	svc := NewMoodService(newFakeStore(), serviceConfig("", 0)).(*MoodService)
	assert.Equal(t, MergeReplaceLast, svc.policy)
	assert.Equal(t, DefaultWindow, svc.window)
}

// batchFakeStore also accepts both keys as a single write.
type batchFakeStore struct {
	*fakeStore
	batches  [][]interfaces.Entry
	batchErr error
}

func (b *batchFakeStore) SetMany(_ context.Context, entries []interfaces.Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.batchErr != nil {
		return b.batchErr
	}
	b.batches = append(b.batches, entries)
	for _, e := range entries {
		b.data[e.Key] = e.Value
	}
	return nil
}

func TestRecordMood_BatchStoreWritesBothKeysAtOnce(t *testing.T) {
	store := &batchFakeStore{fakeStore: newFakeStore()}
	svc := NewMoodService(store, serviceConfig("replaceLast", 7)).(*MoodService)
	svc.now = func() time.Time { return fixedNow }
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.RecordMood(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, store.batches, 1)
	assert.Empty(t, store.sets)
	assert.Equal(t, CurrentMoodKey, store.batches[0][0].Key)
	assert.Equal(t, "3", store.batches[0][0].Value)
	assert.Equal(t, HistoryKey, store.batches[0][1].Key)

	var history []models.MoodRecord
	require.NoError(t, json.Unmarshal([]byte(store.data[HistoryKey]), &history))
	assert.Equal(t, 3, history[len(history)-1].Mood)
}

func TestRecordMood_BatchFailureKeepsState(t *testing.T) {
	store := &batchFakeStore{fakeStore: newFakeStore()}
	svc := NewMoodService(store, serviceConfig("replaceLast", 7)).(*MoodService)
	require.NoError(t, svc.Initialize(context.Background()))
	before := svc.Snapshot()

	store.batchErr = errors.New("connection reset")
	_, err := svc.RecordMood(context.Background(), 5)

	assert.ErrorIs(t, err, store.batchErr)
	assert.Equal(t, before, svc.Snapshot())
	assert.Empty(t, store.data)
}
