package snapshot

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/satchel/pkg/core"
)

// Serializer defines how the snapshot document is encoded on disk.
// The file extension selects the implementation.
type Serializer interface {
	Encode(doc document) ([]byte, error)
	Decode(data []byte) (document, error)
}

// DefaultSerializers returns the standard set of serializers keyed by
// extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": &JSONSerializer{},
		".yaml": &YAMLSerializer{},
		".yml":  &YAMLSerializer{},
	}
}

// document is the on-disk shape: two top-level arrays of flat records.
type document struct {
	Contacts []contactRecord `json:"contacts" yaml:"contacts"`
	Notes    []noteRecord    `json:"notes" yaml:"notes"`
}

type contactRecord struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Address  string `json:"address,omitempty" yaml:"address,omitempty"`
	Birthday string `json:"birthday,omitempty" yaml:"birthday,omitempty"` // DD.MM.YYYY
}

type noteRecord struct {
	ID   string   `json:"id" yaml:"id"`
	Text string   `json:"text" yaml:"text"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// encodeSnapshot converts domain entities to their flat record form.
func encodeSnapshot(snap core.Snapshot) document {
	doc := document{
		Contacts: make([]contactRecord, 0, len(snap.Contacts)),
		Notes:    make([]noteRecord, 0, len(snap.Notes)),
	}
	for _, c := range snap.Contacts {
		doc.Contacts = append(doc.Contacts, contactRecord{
			ID:       c.ID,
			Name:     c.Name,
			Phone:    c.Phone,
			Email:    c.Email,
			Address:  c.Address,
			Birthday: core.FormatDate(c.Birthday),
		})
	}
	for _, n := range snap.Notes {
		doc.Notes = append(doc.Notes, noteRecord{
			ID:   n.ID,
			Text: n.Text,
			Tags: append([]string(nil), n.Tags...),
		})
	}
	return doc
}

// toSnapshot validates every record at the deserialization boundary so a
// hand-edited or corrupted file fails with a typed error instead of
// loading half-formed entities.
func (d document) toSnapshot() (core.Snapshot, error) {
	snap := core.Snapshot{
		Contacts: make([]core.Contact, 0, len(d.Contacts)),
		Notes:    make([]core.Note, 0, len(d.Notes)),
	}

	for i, r := range d.Contacts {
		if r.ID == "" {
			return core.Snapshot{}, fmt.Errorf("contact %d has no id: %w", i, core.ErrMalformedSnapshot)
		}
		if r.Name == "" {
			return core.Snapshot{}, fmt.Errorf("contact %q has no name: %w", r.ID, core.ErrMalformedSnapshot)
		}
		c := core.Contact{
			ID:      r.ID,
			Name:    r.Name,
			Phone:   r.Phone,
			Email:   r.Email,
			Address: r.Address,
		}
		if r.Birthday != "" {
			t, err := core.ParseDate(r.Birthday)
			if err != nil {
				return core.Snapshot{}, fmt.Errorf("contact %q has malformed birthday %q: %w", r.ID, r.Birthday, core.ErrMalformedSnapshot)
			}
			c.Birthday = t
		}
		snap.Contacts = append(snap.Contacts, c)
	}

	for i, r := range d.Notes {
		if r.ID == "" {
			return core.Snapshot{}, fmt.Errorf("note %d has no id: %w", i, core.ErrMalformedSnapshot)
		}
		if r.Text == "" {
			return core.Snapshot{}, fmt.Errorf("note %q has no text: %w", r.ID, core.ErrMalformedSnapshot)
		}
		snap.Notes = append(snap.Notes, core.Note{
			ID:   r.ID,
			Text: r.Text,
			Tags: append([]string(nil), r.Tags...),
		})
	}

	return snap, nil
}

// --- JSON Serializer ---

// JSONSerializer is the default on-disk format.
type JSONSerializer struct{}

func (s *JSONSerializer) Encode(doc document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func (s *JSONSerializer) Decode(data []byte) (document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("invalid json: %w", err)
	}
	return doc, nil
}

// --- YAML Serializer ---

// YAMLSerializer handles .yaml/.yml snapshot files.
type YAMLSerializer struct{}

func (s *YAMLSerializer) Encode(doc document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (s *YAMLSerializer) Decode(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("invalid yaml: %w", err)
	}
	return doc, nil
}
