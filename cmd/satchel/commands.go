package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/satchel/pkg/assistant"
	"github.com/aretw0/satchel/pkg/core"
)

// Notes truncation lengths (characters).
const (
	notesListTruncate         = 60
	notesSearchTruncate       = 80
	notesGlobalSearchTruncate = 100
)

// command describes one assistant operation. The same table backs the
// cobra subcommands and the interactive shell dispatcher.
type command struct {
	name    string
	usage   string
	short   string
	minArgs int
	maxArgs int // -1 means unbounded
	run     func(ctx context.Context, svc *assistant.Service, args []string) (string, error)
}

func commandTable() []command {
	return []command{
		{
			name:    "add-contact",
			usage:   "add-contact <name> [phone] [email] [address] [birthday]",
			short:   "Add a new contact",
			minArgs: 1,
			maxArgs: 5,
			run:     runAddContact,
		},
		{
			name:    "list-contacts",
			usage:   "list-contacts",
			short:   "List all contacts",
			maxArgs: 0,
			run:     runListContacts,
		},
		{
			name:    "search-contacts",
			usage:   "search-contacts <query>",
			short:   "Search contacts by name, phone, email or address",
			minArgs: 1,
			maxArgs: -1,
			run:     runSearchContacts,
		},
		{
			name:    "edit-contact",
			usage:   "edit-contact <id> <name> [phone] [email] [address] [birthday]",
			short:   "Replace all fields of a contact",
			minArgs: 2,
			maxArgs: 6,
			run:     runEditContact,
		},
		{
			name:    "delete-contact",
			usage:   "delete-contact <id>",
			short:   "Delete a contact",
			minArgs: 1,
			maxArgs: 1,
			run:     runDeleteContact,
		},
		{
			name:    "add-note",
			usage:   "add-note <text> [#tag1 #tag2 ...]",
			short:   "Add a note; #word tokens become tags",
			minArgs: 1,
			maxArgs: -1,
			run:     runAddNote,
		},
		{
			name:    "list-notes",
			usage:   "list-notes",
			short:   "List all notes",
			maxArgs: 0,
			run:     runListNotes,
		},
		{
			name:    "search-notes",
			usage:   "search-notes <query>",
			short:   "Search notes by text",
			minArgs: 1,
			maxArgs: -1,
			run:     runSearchNotes,
		},
		{
			name:    "search-notes-tag",
			usage:   "search-notes-tag <tag>",
			short:   "Search notes by exact tag",
			minArgs: 1,
			maxArgs: 1,
			run:     runSearchNotesTag,
		},
		{
			name:    "delete-note",
			usage:   "delete-note <id>",
			short:   "Delete a note",
			minArgs: 1,
			maxArgs: 1,
			run:     runDeleteNote,
		},
		{
			name:    "birthdays",
			usage:   "birthdays <days>",
			short:   "Show birthdays within the next N days",
			minArgs: 1,
			maxArgs: 1,
			run:     runBirthdays,
		},
		{
			name:    "search",
			usage:   "search <query>",
			short:   "Global search across contacts and notes",
			minArgs: 1,
			maxArgs: -1,
			run:     runSearch,
		},
	}
}

// --- Contacts ---

func runAddContact(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	params := assistant.ContactParams{Name: args[0]}
	if len(args) > 1 {
		params.Phone = args[1]
	}
	if len(args) > 2 {
		params.Email = args[2]
	}
	if len(args) > 3 {
		params.Address = args[3]
	}
	if len(args) > 4 {
		params.Birthday = args[4]
	}

	contact, err := svc.AddContact(ctx, params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact '%s' successfully added! (ID: %s)", contact.Name, contact.ID), nil
}

func runListContacts(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	contacts := svc.ListContacts(ctx)
	if len(contacts) == 0 {
		return "Contact list is empty", nil
	}

	lines := []string{"All contacts:"}
	for i, c := range contacts {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, contactLine(c)))
	}
	return strings.Join(lines, "\n"), nil
}

func runSearchContacts(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	query := strings.Join(args, " ")
	results := svc.SearchContacts(ctx, query)
	if len(results) == 0 {
		return fmt.Sprintf("No contacts found for query '%s'", query), nil
	}

	lines := []string{"Contact search results:"}
	for _, c := range results {
		lines = append(lines, contactLine(c))
	}
	return strings.Join(lines, "\n"), nil
}

func runEditContact(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	params := assistant.ContactParams{Name: args[1]}
	if len(args) > 2 {
		params.Phone = args[2]
	}
	if len(args) > 3 {
		params.Email = args[3]
	}
	if len(args) > 4 {
		params.Address = args[4]
	}
	if len(args) > 5 {
		params.Birthday = args[5]
	}

	contact, err := svc.UpdateContact(ctx, args[0], params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact '%s' successfully updated!", contact.Name), nil
}

func runDeleteContact(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	removed, err := svc.RemoveContact(ctx, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact '%s' successfully deleted!", removed.Name), nil
}

// --- Notes ---

func runAddNote(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	note, err := svc.AddNote(ctx, strings.Join(args, " "))
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Note successfully added! (ID: %s)", note.ID)
	if len(note.Tags) > 0 {
		msg += " with tags: " + strings.Join(note.Tags, ", ")
	}
	return msg, nil
}

func runListNotes(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	notes := svc.ListNotes(ctx)
	if len(notes) == 0 {
		return "Note list is empty", nil
	}

	lines := []string{"All notes:"}
	for _, n := range notes {
		lines = append(lines, noteLine(n, notesListTruncate))
	}
	return strings.Join(lines, "\n"), nil
}

func runSearchNotes(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	query := strings.Join(args, " ")
	results := svc.SearchNotes(ctx, query)
	if len(results) == 0 {
		return fmt.Sprintf("No notes found for query '%s'", query), nil
	}

	lines := []string{"Note search results:"}
	for _, n := range results {
		lines = append(lines, noteLine(n, notesSearchTruncate))
	}
	return strings.Join(lines, "\n"), nil
}

func runSearchNotesTag(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	tag := args[0]
	results := svc.SearchNotesByTag(ctx, tag)
	if len(results) == 0 {
		return fmt.Sprintf("No notes found with tag '%s'", tag), nil
	}

	lines := []string{fmt.Sprintf("Notes with tag '%s':", tag)}
	for _, n := range results {
		lines = append(lines, noteLine(n, notesSearchTruncate))
	}
	return strings.Join(lines, "\n"), nil
}

func runDeleteNote(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	removed, err := svc.RemoveNote(ctx, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note (ID: %s) successfully deleted!", removed.ID), nil
}

// --- Birthdays & global search ---

func runBirthdays(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	days, err := strconv.Atoi(args[0])
	if err != nil {
		return "", &core.FieldError{Base: core.ErrInvalidHorizon, Field: "days", Value: args[0], Reason: "must be a number of days"}
	}

	upcoming, err := svc.UpcomingBirthdays(ctx, days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d day(s)", days), nil
	}

	lines := []string{"Upcoming birthdays:"}
	for _, u := range upcoming {
		when := fmt.Sprintf("in %d day(s)", u.InDays)
		if u.InDays == 0 {
			when = "today"
		}
		lines = append(lines, fmt.Sprintf("%s | Birthday: %s | %s", u.Contact.Name, core.FormatDate(u.Contact.Birthday), when))
	}
	return strings.Join(lines, "\n"), nil
}

func runSearch(ctx context.Context, svc *assistant.Service, args []string) (string, error) {
	query := strings.Join(args, " ")
	result := svc.Search(ctx, query)
	if result.Total() == 0 {
		return fmt.Sprintf("Nothing found for query '%s'", query), nil
	}

	var lines []string
	if len(result.Contacts) > 0 {
		lines = append(lines, fmt.Sprintf("=== CONTACTS (%d) ===", len(result.Contacts)))
		for _, c := range result.Contacts {
			lines = append(lines, contactLine(c))
		}
	}
	if len(result.Notes) > 0 {
		lines = append(lines, fmt.Sprintf("=== NOTES (%d) ===", len(result.Notes)))
		for _, n := range result.Notes {
			lines = append(lines, noteLine(n, notesGlobalSearchTruncate))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// --- Formatting helpers ---

func contactLine(c core.Contact) string {
	parts := []string{c.Name}
	if c.Phone != "" {
		parts = append(parts, "Phone: "+c.Phone)
	}
	if c.Email != "" {
		parts = append(parts, "Email: "+c.Email)
	}
	if c.Address != "" {
		parts = append(parts, "Address: "+c.Address)
	}
	if c.HasBirthday() {
		parts = append(parts, "Birthday: "+core.FormatDate(c.Birthday))
	}
	parts = append(parts, "ID: "+c.ID)
	return strings.Join(parts, " | ")
}

func noteLine(n core.Note, maxLen int) string {
	parts := []string{truncate(n.Text, maxLen)}
	if len(n.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(n.Tags, ", "))
	}
	parts = append(parts, "ID: "+n.ID)
	return strings.Join(parts, " | ")
}

func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
