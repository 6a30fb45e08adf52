package store

import "context"

// ModerationStore exposes the banned-device list. The database is written
// by an external moderation tool; the server only ever reads it.
type ModerationStore interface {
	// ListBannedDevices returns every banned device identifier.
	ListBannedDevices(ctx context.Context) ([]string, error)

	// Close releases the underlying database handle.
	Close() error
}
