package storage

import (
	"errors"
	"fmt"
	"moodtracker/internal/providers"
	"moodtracker/internal/storage/interfaces"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

const snapshotVersion = 1

// ErrCorruptSnapshot reports a snapshot file that exists but cannot be read back.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

type snapshotFile struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"saved_at"`
	Entries map[string]string `json:"entries"`
}

// FileManager dumps a MemoryStore to a zstd-compressed JSON file and reads it back.
type FileManager struct {
	store      *MemoryStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store *MemoryStore, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

// SaveToFile writes through a temp file and renames it, so a crash never
// leaves a half-written snapshot behind.
func (f *FileManager) SaveToFile(fileName string) error {
	jsonData, err := json.Marshal(snapshotFile{
		Version: snapshotVersion,
		SavedAt: time.Now().UTC(),
		Entries: f.store.Dump(),
	})
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores the store from fileName. A missing file is not an error.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("%w: decompress %s: %v", ErrCorruptSnapshot, fileName, err)
	}

	var snapshot snapshotFile
	if err = json.Unmarshal(decompressedData, &snapshot); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCorruptSnapshot, fileName, err)
	}
	if snapshot.Version != snapshotVersion {
		return fmt.Errorf("%w: %s has unsupported version %d", ErrCorruptSnapshot, fileName, snapshot.Version)
	}

	f.store.Load(snapshot.Entries)
	f.logger.Infof(providers.TypeStorage, "Restored %d keys from %s saved at %s", len(snapshot.Entries), fileName, snapshot.SavedAt.Format(time.RFC3339))
	return nil
}
