package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/satchel/pkg/core"
)

// AddNote extracts tags from the raw input and appends the new note.
// The remaining text must be non-empty.
func (s *Service) AddNote(ctx context.Context, raw string) (core.Note, error) {
	text, tags := core.ExtractTags(raw)
	if text == "" {
		return core.Note{}, &core.FieldError{Base: core.ErrInvalidText, Field: "text", Value: raw, Reason: "note text must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := core.Note{
		ID:   uuid.NewString(),
		Text: text,
		Tags: tags,
	}

	s.notes = append(s.notes, note)
	if err := s.persist(ctx); err != nil {
		s.notes = s.notes[:len(s.notes)-1]
		return core.Note{}, err
	}

	s.logger.Debug("note added", "id", note.ID, "tags", len(note.Tags))
	return note, nil
}

// ListNotes returns all notes in insertion order.
func (s *Service) ListNotes(ctx context.Context) []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Note(nil), s.notes...)
}

// SearchNotes matches the query as a case-insensitive substring of the
// note text. Results keep insertion order.
func (s *Service) SearchNotes(ctx context.Context, query string) []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var results []core.Note
	for _, n := range s.notes {
		if q == "" || strings.Contains(strings.ToLower(n.Text), q) {
			results = append(results, n)
		}
	}
	return results
}

// SearchNotesByTag returns notes carrying the exact tag (case-normalized).
func (s *Service) SearchNotesByTag(ctx context.Context, tag string) []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []core.Note
	for _, n := range s.notes {
		if n.HasTag(tag) {
			results = append(results, n)
		}
	}
	return results
}

// RemoveNote deletes a note by ID and returns the removed record.
func (s *Service) RemoveNote(ctx context.Context, id string) (core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := -1
	for j := range s.notes {
		if s.notes[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return core.Note{}, &core.FieldError{Base: core.ErrNotFound, Field: "id", Value: id, Reason: "no such note"}
	}

	removed := s.notes[i]
	rest := append(append([]core.Note(nil), s.notes[:i]...), s.notes[i+1:]...)
	previous := s.notes
	s.notes = rest
	if err := s.persist(ctx); err != nil {
		s.notes = previous
		return core.Note{}, err
	}

	s.logger.Debug("note removed", "id", id)
	return removed, nil
}
