package satchel_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/satchel"
)

// Example_basic demonstrates how to open an assistant, add a contact,
// and find it again.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "satchel-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Open the assistant against a JSON data file. The file and its
	// parent directory are created on first save.
	assistant, err := satchel.New(filepath.Join(tmpDir, "book.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Add a contact. The phone number is normalized on the way in.
	contact, err := assistant.AddContact(ctx, satchel.ContactParams{
		Name:     "Alice",
		Phone:    "050 123 45 67",
		Email:    "Alice@Example.com",
		Birthday: "20.12.1995",
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Find it again
	found := assistant.SearchContacts(ctx, "alice")

	fmt.Printf("Found %d contact(s): %s %s %s\n", len(found), contact.Name, contact.Phone, contact.Email)
	// Output:
	// Found 1 contact(s): Alice +380501234567 alice@example.com
}

// Example_notes demonstrates tagged notes and tag search.
func Example_notes() {
	tmpDir, err := os.MkdirTemp("", "satchel-notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	assistant, err := satchel.New(filepath.Join(tmpDir, "book.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Tags are extracted from #word tokens in the note text.
	note, err := assistant.AddNote(ctx, "Buy milk and bread #shopping #Groceries")
	if err != nil {
		log.Fatal(err)
	}

	matches := assistant.SearchNotesByTag(ctx, "shopping")

	fmt.Printf("Text: %s\n", note.Text)
	fmt.Printf("Tags: %v\n", note.Tags)
	fmt.Printf("Matches: %d\n", len(matches))
	// Output:
	// Text: Buy milk and bread
	// Tags: [groceries shopping]
	// Matches: 1
}
