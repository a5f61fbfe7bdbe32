package core

import "context"

// Repository defines the contract for persisting the assistant's data.
// The whole snapshot is read and written as a unit; adhering to this
// interface keeps the service independent of the storage format
// (JSON file, YAML file, or anything else).
type Repository interface {
	// Load reads the persisted snapshot. A missing backing file yields an
	// empty snapshot, not an error.
	Load(ctx context.Context) (Snapshot, error)

	// Save persists the full snapshot, replacing the previous one.
	Save(ctx context.Context, snap Snapshot) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// data directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report external
// changes to the backing store.
type Watchable interface {
	// Watch emits record-level events for changes made outside this
	// process. The pattern filters qualified record IDs
	// (e.g. "contacts/*"); an empty pattern matches everything.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
