package providers

import (
	"errors"
	"moodtracker/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks struct tags first, then the rules that depend on the chosen driver.
func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return v.Errors
	}

	storage := c.conf.Storage
	switch storage.Driver {
	case "redis":
		if storage.Redis.Addr == "" {
			return errors.New("storage.redis.addr is required for the redis driver")
		}
	case "sqlite":
		if storage.SQLite.Path == "" {
			return errors.New("storage.sqlite.path is required for the sqlite driver")
		}
	case "memory":
		if storage.Snapshot.FilePath != "" && storage.Snapshot.SaveInterval <= 0 {
			return errors.New("storage.snapshot.saveInterval must be positive when a snapshot file is set")
		}
	}

	if c.conf.Cache.Enabled && c.conf.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	return nil
}
