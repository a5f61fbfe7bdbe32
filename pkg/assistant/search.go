package assistant

import (
	"context"

	"github.com/aretw0/satchel/pkg/core"
)

// Result bundles contact and note matches for a single global query.
// There is no ranking beyond the substring match itself.
type Result struct {
	Query    string
	Contacts []core.Contact
	Notes    []core.Note
}

// Total returns the combined number of matches.
func (r Result) Total() int {
	return len(r.Contacts) + len(r.Notes)
}

// Search runs the contact search and the note search independently with
// the same query and bundles both result lists.
func (s *Service) Search(ctx context.Context, query string) Result {
	return Result{
		Query:    query,
		Contacts: s.SearchContacts(ctx, query),
		Notes:    s.SearchNotes(ctx, query),
	}
}
