package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/satchel/pkg/core"
)

// debounceWindow coalesces bursts of filesystem events (editors often
// write, chmod and rename in quick succession).
const debounceWindow = 50 * time.Millisecond

// Watch observes the backing file for external changes and emits
// record-level events. The file is re-read on change and diffed against
// the previously observed snapshot; the pattern filters qualified record
// IDs ("contacts/<id>", "notes/<id>") using doublestar globs.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic rename replaces the inode.
	if err := watcher.Add(filepath.Dir(r.Path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch data directory: %w", err)
	}

	events := make(chan core.Event, 16)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer r.setWatcherActive(false)
		return r.watchLoop(ctx, watcher, pattern, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportWatchError(fmt.Errorf("watch loop failed: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, out chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !r.relevant(event) {
				continue
			}
			r.debounce(ctx, watcher)
			r.emitChanges(ctx, pattern, out)

		case werr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.reportWatchError(werr)
		}
	}
}

// relevant filters events down to writes touching the backing file.
// Temp files from our own atomic writes are ignored by name.
func (r *Repository) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(r.Path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// debounce drains follow-up events for one window so a burst results in a
// single reload.
func (r *Repository) debounce(ctx context.Context, watcher *fsnotify.Watcher) {
	timer := time.NewTimer(debounceWindow)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return
		case <-ctx.Done():
			return
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
			// keep draining until the window expires
		}
	}
}

// emitChanges reloads the snapshot, diffs it against the previous one and
// sends matching events. A transient decode failure (e.g. a half-written
// external edit) is reported and skipped; the loop keeps running.
func (r *Repository) emitChanges(ctx context.Context, pattern string, out chan<- core.Event) {
	prev := r.lastSnapshot()
	cur, err := r.Load(ctx)
	if err != nil {
		r.reportWatchError(fmt.Errorf("failed to reload snapshot: %w", err))
		return
	}

	for _, e := range diffSnapshots(prev, cur) {
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, e.ID); !ok {
				continue
			}
		}
		select {
		case out <- e:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Repository) reportWatchError(err error) {
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
		return
	}
	r.config.Logger.Error("snapshot watcher error", "error", err)
}

// diffSnapshots computes record-level events between two snapshots:
// creations and modifications in current order, then deletions in
// previous order.
func diffSnapshots(prev, cur core.Snapshot) []core.Event {
	now := time.Now().Unix()

	prevContacts := make(map[string]core.Contact, len(prev.Contacts))
	for _, c := range prev.Contacts {
		prevContacts[c.ID] = c
	}
	prevNotes := make(map[string]core.Note, len(prev.Notes))
	for _, n := range prev.Notes {
		prevNotes[n.ID] = n
	}

	var events []core.Event
	curIDs := make(map[string]bool, len(cur.Contacts)+len(cur.Notes))

	for _, c := range cur.Contacts {
		id := "contacts/" + c.ID
		curIDs[c.ID] = true
		old, ok := prevContacts[c.ID]
		switch {
		case !ok:
			events = append(events, core.Event{Type: core.EventCreate, ID: id, Timestamp: now})
		case !contactEqual(old, c):
			events = append(events, core.Event{Type: core.EventModify, ID: id, Timestamp: now})
		}
	}
	for _, n := range cur.Notes {
		id := "notes/" + n.ID
		curIDs[n.ID] = true
		old, ok := prevNotes[n.ID]
		switch {
		case !ok:
			events = append(events, core.Event{Type: core.EventCreate, ID: id, Timestamp: now})
		case !noteEqual(old, n):
			events = append(events, core.Event{Type: core.EventModify, ID: id, Timestamp: now})
		}
	}

	for _, c := range prev.Contacts {
		if !curIDs[c.ID] {
			events = append(events, core.Event{Type: core.EventDelete, ID: "contacts/" + c.ID, Timestamp: now})
		}
	}
	for _, n := range prev.Notes {
		if !curIDs[n.ID] {
			events = append(events, core.Event{Type: core.EventDelete, ID: "notes/" + n.ID, Timestamp: now})
		}
	}

	return events
}

func contactEqual(a, b core.Contact) bool {
	return a.Name == b.Name && a.Phone == b.Phone && a.Email == b.Email &&
		a.Address == b.Address && a.Birthday.Equal(b.Birthday)
}

func noteEqual(a, b core.Note) bool {
	if a.Text != b.Text || len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	return true
}
