package assistant

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/satchel/pkg/core"
)

// ContactParams carries raw user input for a contact record. Optional
// fields stay empty when not provided.
type ContactParams struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	Birthday string
}

// AddContact validates the input, rejects duplicates and appends the new
// contact. Two contacts are duplicates when their names match
// case-insensitively.
func (s *Service) AddContact(ctx context.Context, p ContactParams) (core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact, err := s.buildContact(uuid.NewString(), p)
	if err != nil {
		return core.Contact{}, err
	}

	if existing := s.findByName(contact.Name); existing != nil {
		return core.Contact{}, &core.FieldError{Base: core.ErrDuplicate, Field: "name", Value: contact.Name, Reason: "a contact with this name already exists"}
	}

	s.contacts = append(s.contacts, contact)
	if err := s.persist(ctx); err != nil {
		s.contacts = s.contacts[:len(s.contacts)-1]
		return core.Contact{}, err
	}

	s.logger.Debug("contact added", "id", contact.ID, "name", contact.Name)
	return contact, nil
}

// ListContacts returns all contacts in insertion order.
func (s *Service) ListContacts(ctx context.Context) []core.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Contact(nil), s.contacts...)
}

// SearchContacts matches the query as a case-insensitive substring of
// name, phone, email or address. Results keep insertion order.
func (s *Service) SearchContacts(ctx context.Context, query string) []core.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var results []core.Contact
	for _, c := range s.contacts {
		if q == "" || contactMatches(c, q) {
			results = append(results, c)
		}
	}
	return results
}

// GetContact returns the contact with the given ID.
func (s *Service) GetContact(ctx context.Context, id string) (core.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.contactIndex(id); i >= 0 {
		return s.contacts[i], nil
	}
	return core.Contact{}, &core.FieldError{Base: core.ErrNotFound, Field: "id", Value: id, Reason: "no such contact"}
}

// UpdateContact replaces all fields of an existing contact, keeping its ID.
// The duplicate-name check excludes the contact being edited.
func (s *Service) UpdateContact(ctx context.Context, id string, p ContactParams) (core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contactIndex(id)
	if i < 0 {
		return core.Contact{}, &core.FieldError{Base: core.ErrNotFound, Field: "id", Value: id, Reason: "no such contact"}
	}

	updated, err := s.buildContact(id, p)
	if err != nil {
		return core.Contact{}, err
	}

	if existing := s.findByName(updated.Name); existing != nil && existing.ID != id {
		return core.Contact{}, &core.FieldError{Base: core.ErrDuplicate, Field: "name", Value: updated.Name, Reason: "a contact with this name already exists"}
	}

	previous := s.contacts[i]
	s.contacts[i] = updated
	if err := s.persist(ctx); err != nil {
		s.contacts[i] = previous
		return core.Contact{}, err
	}

	s.logger.Debug("contact updated", "id", id)
	return updated, nil
}

// RemoveContact deletes a contact by ID and returns the removed record.
func (s *Service) RemoveContact(ctx context.Context, id string) (core.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contactIndex(id)
	if i < 0 {
		return core.Contact{}, &core.FieldError{Base: core.ErrNotFound, Field: "id", Value: id, Reason: "no such contact"}
	}

	removed := s.contacts[i]
	rest := append(append([]core.Contact(nil), s.contacts[:i]...), s.contacts[i+1:]...)
	previous := s.contacts
	s.contacts = rest
	if err := s.persist(ctx); err != nil {
		s.contacts = previous
		return core.Contact{}, err
	}

	s.logger.Debug("contact removed", "id", id)
	return removed, nil
}

// buildContact validates raw params and assembles a canonical Contact.
func (s *Service) buildContact(id string, p ContactParams) (core.Contact, error) {
	name, err := core.ValidateName(p.Name)
	if err != nil {
		return core.Contact{}, err
	}

	contact := core.Contact{
		ID:      id,
		Name:    name,
		Address: strings.TrimSpace(p.Address),
	}

	if p.Phone != "" {
		if contact.Phone, err = core.NormalizePhone(p.Phone, s.countryCode); err != nil {
			return core.Contact{}, err
		}
	}
	if p.Email != "" {
		if contact.Email, err = core.ValidateEmail(p.Email); err != nil {
			return core.Contact{}, err
		}
	}
	if p.Birthday != "" {
		if contact.Birthday, err = core.ParseBirthday(p.Birthday, s.clock.Now()); err != nil {
			return core.Contact{}, err
		}
	}

	return contact, nil
}

// findByName returns the contact whose name matches case-insensitively.
// Callers must hold at least the read lock.
func (s *Service) findByName(name string) *core.Contact {
	lower := strings.ToLower(name)
	for i := range s.contacts {
		if strings.ToLower(s.contacts[i].Name) == lower {
			return &s.contacts[i]
		}
	}
	return nil
}

// contactIndex returns the position of the contact with the given ID, or -1.
// Callers must hold at least the read lock.
func (s *Service) contactIndex(id string) int {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

func contactMatches(c core.Contact, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), q) ||
		(c.Phone != "" && strings.Contains(strings.ToLower(c.Phone), q)) ||
		(c.Email != "" && strings.Contains(c.Email, q)) ||
		(c.Address != "" && strings.Contains(strings.ToLower(c.Address), q))
}
