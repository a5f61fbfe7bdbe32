// Package satchel is the Composition Root for the satchel application.
//
// It connects the core business logic (Domain Layer) with the persistence
// adapter using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Satchel is a single-user personal assistant: a contact book and a note
// book behind one small CLI. The whole state lives in memory and is
// re-persisted as one snapshot file after every mutation, so the data file
// stays a plain, hand-inspectable document.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Validated Fields**: Phone, email and birthday inputs are normalized before storage.
//   - **Tagged Notes**: `#word` tokens in note text become searchable tags.
//   - **Birthday Reminders**: Days-until computation with a bounded horizon.
//   - **Atomic Snapshots**: Write-then-rename persistence; the extension picks JSON or YAML.
//   - **Watchable**: External edits to the data file surface as record-level events.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := satchel.New("~/.satchel/satchel.json",
//		satchel.WithAutoInit(true),
//		satchel.WithLogger(logger),
//	)
//
//	// Add a contact
//	contact, err := svc.AddContact(ctx, satchel.ContactParams{
//		Name:  "Alice",
//		Phone: "0501234567",
//	})
package satchel
