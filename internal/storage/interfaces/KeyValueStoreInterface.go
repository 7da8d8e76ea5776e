package interfaces

import "context"

// KeyValueStore is the storage port the mood store persists through.
// Get reports found=false, with a nil error, for a key that was never set.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Backend is a KeyValueStore that owns a connection or file handle.
type Backend interface {
	KeyValueStore
	Name() string
	Close() error
}

type Entry struct {
	Key   string
	Value string
}

// BatchStore writes several keys as one step: readers and snapshots see
// either all of them or none.
type BatchStore interface {
	SetMany(ctx context.Context, entries []Entry) error
}
