package storage

import (
	"moodtracker/internal/providers"
	"moodtracker/internal/storage/interfaces"
	"moodtracker/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler periodically snapshots the memory backend to disk.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Storage.Snapshot.SaveInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.fileManager.SaveToFile(s.config.Storage.Snapshot.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeStorage, "Error while persisting snapshot: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeStorage, "Persisted snapshot to file %s", s.config.Storage.Snapshot.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.fileManager.LoadFromFile(s.config.Storage.Snapshot.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeStorage, "Persisting snapshot to file...")
	err := s.fileManager.SaveToFile(s.config.Storage.Snapshot.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error while persisting snapshot: %s", err)
		return err
	}
	return nil
}

// NewScheduler returns a no-op scheduler unless the backend is the memory
// driver and a snapshot file is configured.
func NewScheduler(config *structures.Config, logger providers.Logger, backend interfaces.Backend, compressor interfaces.CompressorInterface) interfaces.SchedulerInterface {
	mem, ok := backend.(*MemoryStore)
	if !ok || config.Storage.Snapshot.FilePath == "" {
		return &noopScheduler{}
	}
	return &Scheduler{
		config:      config,
		logger:      logger,
		fileManager: NewFileManager(compressor, mem, logger),
	}
}

type noopScheduler struct{}

func (n *noopScheduler) Init()          {}
func (n *noopScheduler) Stop()          {}
func (n *noopScheduler) Restore() error { return nil }
func (n *noopScheduler) Persist() error { return nil }
