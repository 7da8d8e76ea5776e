package storage

import (
	"fmt"
	"moodtracker/internal/providers"
	"moodtracker/internal/storage/interfaces"
	"moodtracker/internal/structures"
)

// NewBackendProvider opens the backend selected by storage.driver. The
// returned cleanup closes it.
func NewBackendProvider(conf *structures.Config, logger providers.Logger) (interfaces.Backend, func(), error) {
	var (
		backend interfaces.Backend
		err     error
	)

	switch conf.Storage.Driver {
	case DriverRedis:
		backend, err = NewRedisStore(conf.Storage.Redis)
	case DriverSQLite:
		backend, err = NewSQLiteStore(conf.Storage.SQLite.Path)
	case DriverMemory, "":
		backend = NewMemoryStore()
	default:
		err = fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	logger.Infof(providers.TypeStorage, "Storage driver: %s", backend.Name())
	cleanup := func() {
		if err := backend.Close(); err != nil {
			logger.Errorf(providers.TypeStorage, "Error while closing %s storage: %s", backend.Name(), err)
		}
	}
	return backend, cleanup, nil
}
