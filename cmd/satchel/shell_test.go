package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/satchel"
)

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"Plain Words", "add-note Buy milk", []string{"add-note", "Buy", "milk"}},
		{"Double Quotes", `add-contact "John Smith" 0501234567`, []string{"add-contact", "John Smith", "0501234567"}},
		{"Single Quotes", "search-contacts 'Main St'", []string{"search-contacts", "Main St"}},
		{"Adjacent Quoted Parts", `add-note "Buy "'milk'`, []string{"add-note", "Buy milk"}},
		{"Empty Quoted Field", `add-contact "" x`, []string{"add-contact", "", "x"}},
		{"Extra Whitespace", "  list-contacts   ", []string{"list-contacts"}},
		{"Empty Line", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := splitArgs(tc.line)
			if err != nil {
				t.Fatalf("splitArgs(%q) returned error: %v", tc.line, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("splitArgs(%q) = %v, want %v", tc.line, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSplitArgsUnclosedQuote(t *testing.T) {
	if _, err := splitArgs(`add-contact "John`); err == nil {
		t.Fatal("expected error for unclosed quote")
	}
}

func TestRunShellScenario(t *testing.T) {
	svc, err := satchel.New(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	script := strings.Join([]string{
		`add-contact "John Smith" 0501234567 john@example.com "Main St 5" 20.12.1990`,
		`add-contact "John Smith"`,
		`add-note Buy milk #shopping`,
		`list-contacts`,
		`search-notes-tag shopping`,
		`birthdays nope`,
		`frobnicate`,
		`exit`,
	}, "\n")

	var out strings.Builder
	if err := runShell(context.Background(), svc, strings.NewReader(script), &out); err != nil {
		t.Fatalf("runShell returned error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Contact 'John Smith' successfully added!",
		"Error:", // duplicate contact and bad horizon both surface here
		"Note successfully added!",
		"with tags: shopping",
		"John Smith | Phone: +380501234567",
		"Notes with tag 'shopping':",
		"Unknown command 'frobnicate'",
		"Goodbye!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("shell output missing %q\noutput:\n%s", want, text)
		}
	}
}

func TestRunShellEOF(t *testing.T) {
	svc, err := satchel.New(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	var out strings.Builder
	if err := runShell(context.Background(), svc, strings.NewReader("list-notes\n"), &out); err != nil {
		t.Fatalf("runShell returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Note list is empty") {
		t.Errorf("expected empty note list message, got:\n%s", out.String())
	}
}
