package internal

import (
	"context"
	"errors"
	"fmt"
	"moodtracker/internal/providers"
	"moodtracker/internal/services"
	"moodtracker/internal/storage"
	"moodtracker/internal/storage/interfaces"
	"moodtracker/internal/structures"
)

// Core is the mood store with its storage restored and loaded. The CLI
// commands use it directly; App serves it over HTTP.
type Core struct {
	Conf      *structures.Config
	Logger    providers.Logger
	Service   services.MoodServiceInterface
	Scheduler interfaces.SchedulerInterface
}

func NewCore(conf *structures.Config, logger providers.Logger, service services.MoodServiceInterface, scheduler interfaces.SchedulerInterface) (*Core, error) {
	// an unreadable snapshot stops startup unless a reset was asked for
	if err := scheduler.Restore(); err != nil {
		if !conf.History.ResetOnMalformed || !isMalformed(err) {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
		logger.Warnf(providers.TypeApp, "Snapshot is unreadable, starting from the seed week: %s", err)
	}

	if err := service.Initialize(context.Background()); err != nil {
		if !conf.History.ResetOnMalformed || !isMalformed(err) {
			return nil, fmt.Errorf("initialize mood history: %w", err)
		}
		logger.Warnf(providers.TypeApp, "Stored state is unreadable, starting from the seed week: %s", err)
		service.Reseed()
	}

	return &Core{
		Conf:      conf,
		Logger:    logger,
		Service:   service,
		Scheduler: scheduler,
	}, nil
}

func isMalformed(err error) bool {
	return errors.Is(err, services.ErrMalformedHistory) ||
		errors.Is(err, services.ErrMalformedCurrentMood) ||
		errors.Is(err, storage.ErrCorruptSnapshot)
}

// Persist flushes the memory backend snapshot, if one is configured.
func (c *Core) Persist() error {
	return c.Scheduler.Persist()
}
