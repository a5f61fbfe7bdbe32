// Contact and Note are the central entities of the domain.
package core

import (
	"sort"
	"strings"
	"time"
)

// Contact is a single address-book entry.
// Field values are validated and normalized before a Contact is built,
// so a stored Contact is always in canonical form.
type Contact struct {
	ID       string
	Name     string
	Phone    string    // canonical form, e.g. "+380501234567"; empty when unset
	Email    string    // lowercased; empty when unset
	Address  string    // free text
	Birthday time.Time // UTC midnight; zero value means unset
}

// HasBirthday reports whether a birthday was recorded for the contact.
func (c Contact) HasBirthday() bool {
	return !c.Birthday.IsZero()
}

// Note is a free-text record with tags extracted from its body.
type Note struct {
	ID   string
	Text string
	Tags []string // lowercased, deduplicated, sorted
}

// HasTag reports whether the note carries the given tag (case-insensitive).
func (n Note) HasTag(tag string) bool {
	want := strings.ToLower(strings.TrimSpace(tag))
	for _, t := range n.Tags {
		if t == want {
			return true
		}
	}
	return false
}

// ExtractTags splits raw note input into body text and tags.
// Tokens prefixed with '#' become tags; they are lowercased, deduplicated,
// sorted and removed from the stored text.
func ExtractTags(raw string) (text string, tags []string) {
	var words []string
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(raw) {
		if strings.HasPrefix(tok, "#") && len(tok) > 1 {
			tag := strings.ToLower(strings.TrimPrefix(tok, "#"))
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
			continue
		}
		words = append(words, tok)
	}
	sort.Strings(tags)
	return strings.Join(words, " "), tags
}

// Snapshot is the unit of persistence: both collections in insertion order.
type Snapshot struct {
	Contacts []Contact
	Notes    []Note
}

// Clone returns a deep copy so callers can hold a snapshot without
// aliasing the live collections.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Contacts: append([]Contact(nil), s.Contacts...),
		Notes:    make([]Note, len(s.Notes)),
	}
	for i, n := range s.Notes {
		n.Tags = append([]string(nil), n.Tags...)
		out.Notes[i] = n
	}
	return out
}

// EventType represents the type of change observed in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a single record. ID is qualified by
// collection, e.g. "contacts/<uuid>" or "notes/<uuid>".
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
