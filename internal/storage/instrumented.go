package storage

import (
	"context"
	"moodtracker/internal/providers"
	"moodtracker/internal/storage/interfaces"
	"time"
)

// InstrumentedStore times every storage call and logs failures.
type InstrumentedStore struct {
	inner   interfaces.Backend
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

// InstrumentedBatchStore adds SetMany for backends that support it.
type InstrumentedBatchStore struct {
	*InstrumentedStore
	batch interfaces.BatchStore
}

// NewInstrumentedStore keeps the backend's batch capability visible to callers.
func NewInstrumentedStore(backend interfaces.Backend, metrics providers.MetricsProviderInterface, logger providers.Logger) interfaces.KeyValueStore {
	s := &InstrumentedStore{
		inner:   backend,
		metrics: metrics,
		logger:  logger,
	}
	if batch, ok := backend.(interfaces.BatchStore); ok {
		return &InstrumentedBatchStore{InstrumentedStore: s, batch: batch}
	}
	return s
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	val, found, err := s.inner.Get(ctx, key)
	s.metrics.ObserveStorageDuration("get", time.Since(start))
	if err != nil {
		s.metrics.IncStorageErrors("get")
		s.logger.Errorf(providers.TypeStorage, "%s get %q failed: %s", s.inner.Name(), key, err)
	}
	return val, found, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value)
	s.metrics.ObserveStorageDuration("set", time.Since(start))
	if err != nil {
		s.metrics.IncStorageErrors("set")
		s.logger.Errorf(providers.TypeStorage, "%s set %q failed: %s", s.inner.Name(), key, err)
	}
	return err
}

func (s *InstrumentedBatchStore) SetMany(ctx context.Context, entries []interfaces.Entry) error {
	start := time.Now()
	err := s.batch.SetMany(ctx, entries)
	s.metrics.ObserveStorageDuration("set_many", time.Since(start))
	if err != nil {
		s.metrics.IncStorageErrors("set_many")
		s.logger.Errorf(providers.TypeStorage, "%s set of %d keys failed: %s", s.inner.Name(), len(entries), err)
	}
	return err
}
