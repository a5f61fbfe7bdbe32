// Package assistant holds the business logic for the contact book and the
// note book. The service owns the in-memory collections and persists the
// whole snapshot through a core.Repository after every mutation.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/timeutil"
)

// Config carries the service collaborators. Zero values fall back to
// sensible defaults.
type Config struct {
	Clock       timeutil.Clock
	Logger      *slog.Logger
	CountryCode string
}

// Service handles contacts, notes, birthday reminders and global search.
// Access is serialized with a read-write mutex so a watcher-driven reload
// cannot race a command in flight.
type Service struct {
	mu          sync.RWMutex
	repo        core.Repository
	clock       timeutil.Clock
	logger      *slog.Logger
	countryCode string
	contacts    []core.Contact
	notes       []core.Note
}

// NewService creates a Service on top of the given repository. Call Load
// before use to populate the collections from storage.
func NewService(repo core.Repository, cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = timeutil.Default
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = core.DefaultCountryCode
	}
	return &Service{
		repo:        repo,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		countryCode: cfg.CountryCode,
	}
}

// Load populates the in-memory collections from storage. A missing backing
// file yields empty collections.
func (s *Service) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	s.mu.Lock()
	s.contacts = snap.Contacts
	s.notes = snap.Notes
	s.mu.Unlock()

	s.logger.Debug("snapshot loaded", "contacts", len(snap.Contacts), "notes", len(snap.Notes))
	return nil
}

// Reload re-reads the snapshot, discarding the in-memory state. Used when
// the watcher reports an external change to the data file.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() core.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.Snapshot{Contacts: s.contacts, Notes: s.notes}.Clone()
}

// Watch exposes record-level change events when the repository supports
// watching.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	w, ok := s.repo.(core.Watchable)
	if !ok {
		return nil, fmt.Errorf("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// persist writes the current collections to storage.
// Callers must hold the write lock.
func (s *Service) persist(ctx context.Context) error {
	snap := core.Snapshot{Contacts: s.contacts, Notes: s.notes}.Clone()
	if err := s.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}
