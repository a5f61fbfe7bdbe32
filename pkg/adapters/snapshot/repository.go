// Package snapshot implements core.Repository on top of a single local
// file. The whole snapshot is rewritten atomically on every save; the file
// extension selects the serialization format (.json default, .yaml/.yml
// supported).
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/satchel/pkg/core"
)

// Config holds the configuration for the snapshot repository.
type Config struct {
	// Path is the backing file, e.g. "~/.satchel/satchel.json".
	Path string
	// AutoInit creates the parent directory when missing.
	AutoInit bool
	// MustExist requires the backing file to already exist.
	MustExist bool
	Logger    *slog.Logger
	// ErrorHandler receives errors occurring inside the watch loop.
	ErrorHandler func(error)
}

// Repository is a file-backed implementation of core.Repository.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer
	ext        string

	mu            sync.RWMutex
	last          core.Snapshot // last observed snapshot, for watch diffing
	loaded        bool
	watcherActive bool
}

// NewRepository creates a repository for the given file. The extension
// must have a registered serializer.
func NewRepository(config Config) (*Repository, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	ext := strings.ToLower(filepath.Ext(config.Path))
	serializer, ok := DefaultSerializers()[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported snapshot format %q (expected .json, .yaml or .yml)", ext)
	}

	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: serializer,
		ext:        ext,
	}, nil
}

// Initialize ensures the data directory exists (or, with MustExist, that
// the backing file is already there).
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		if _, err := os.Stat(r.Path); os.IsNotExist(err) {
			return fmt.Errorf("snapshot file does not exist: %s", r.Path)
		}
		return nil
	}
	if r.config.AutoInit {
		if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return nil
}

// Load reads and validates the snapshot. A missing file yields an empty
// snapshot; a malformed one fails with core.ErrMalformedSnapshot.
func (r *Repository) Load(ctx context.Context) (core.Snapshot, error) {
	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		r.remember(core.Snapshot{})
		return core.Snapshot{}, nil
	}
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	doc, err := r.serializer.Decode(data)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to decode %s: %w", r.Path, err)
	}
	snap, err := doc.toSnapshot()
	if err != nil {
		return core.Snapshot{}, err
	}

	r.remember(snap)
	return snap, nil
}

// Save serializes the snapshot and writes it atomically.
func (r *Repository) Save(ctx context.Context, snap core.Snapshot) error {
	data, err := r.serializer.Encode(encodeSnapshot(snap))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := writeFileAtomic(r.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	r.remember(snap)
	r.config.Logger.Debug("snapshot saved", "path", r.Path, "contacts", len(snap.Contacts), "notes", len(snap.Notes))
	return nil
}

// remember keeps a copy of the last observed snapshot so the watcher can
// diff against it.
func (r *Repository) remember(snap core.Snapshot) {
	r.mu.Lock()
	r.last = snap.Clone()
	r.loaded = true
	r.mu.Unlock()
}

// lastSnapshot returns a copy of the last observed snapshot.
func (r *Repository) lastSnapshot() core.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last.Clone()
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
