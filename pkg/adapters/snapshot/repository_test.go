package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/core"
)

func testSnapshot() core.Snapshot {
	return core.Snapshot{
		Contacts: []core.Contact{
			{
				ID:       "c1",
				Name:     "Alice",
				Phone:    "+380501234567",
				Email:    "alice@example.com",
				Address:  "12 Main Street",
				Birthday: time.Date(1995, time.December, 20, 0, 0, 0, 0, time.UTC),
			},
			{ID: "c2", Name: "Bob"},
		},
		Notes: []core.Note{
			{ID: "n1", Text: "Buy milk", Tags: []string{"shopping"}},
			{ID: "n2", Text: "Call dentist"},
		},
	}
}

func newTestRepository(t *testing.T, filename string) *Repository {
	t.Helper()
	repo, err := NewRepository(Config{
		Path:     filepath.Join(t.TempDir(), filename),
		AutoInit: true,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Initialize(context.Background()))
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	for _, filename := range []string{"data.json", "data.yaml"} {
		t.Run(filename, func(t *testing.T) {
			repo := newTestRepository(t, filename)
			ctx := context.Background()

			want := testSnapshot()
			require.NoError(t, repo.Save(ctx, want))

			// A fresh repository reads the collections element-wise equal.
			fresh, err := NewRepository(Config{Path: repo.Path})
			require.NoError(t, err)
			got, err := fresh.Load(ctx)
			require.NoError(t, err)

			require.Equal(t, len(want.Contacts), len(got.Contacts))
			for i := range want.Contacts {
				require.Equal(t, want.Contacts[i].ID, got.Contacts[i].ID)
				require.Equal(t, want.Contacts[i].Name, got.Contacts[i].Name)
				require.Equal(t, want.Contacts[i].Phone, got.Contacts[i].Phone)
				require.Equal(t, want.Contacts[i].Email, got.Contacts[i].Email)
				require.Equal(t, want.Contacts[i].Address, got.Contacts[i].Address)
				require.True(t, want.Contacts[i].Birthday.Equal(got.Contacts[i].Birthday))
			}
			require.Equal(t, want.Notes, got.Notes)
		})
	}
}

func TestRepositoryLoadMissingFile(t *testing.T) {
	repo := newTestRepository(t, "data.json")

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.Contacts)
	require.Empty(t, snap.Notes)
}

func TestRepositoryUnsupportedExtension(t *testing.T) {
	_, err := NewRepository(Config{Path: "/tmp/data.txt"})
	require.Error(t, err)

	_, err = NewRepository(Config{})
	require.Error(t, err)
}

func TestRepositoryMustExist(t *testing.T) {
	repo, err := NewRepository(Config{
		Path:      filepath.Join(t.TempDir(), "data.json"),
		MustExist: true,
	})
	require.NoError(t, err)
	require.Error(t, repo.Initialize(context.Background()))
}

func TestRepositoryMalformedSnapshot(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"Invalid JSON", `{"contacts": [`},
		{"Contact Without ID", `{"contacts": [{"name": "Alice"}]}`},
		{"Contact Without Name", `{"contacts": [{"id": "c1"}]}`},
		{"Bad Birthday", `{"contacts": [{"id": "c1", "name": "Alice", "birthday": "31.02.2021"}]}`},
		{"Note Without Text", `{"notes": [{"id": "n1"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			repo, err := NewRepository(Config{Path: path})
			require.NoError(t, err)

			_, err = repo.Load(context.Background())
			require.Error(t, err)
		})
	}
}

func TestRepositoryState(t *testing.T) {
	repo := newTestRepository(t, "data.json")
	require.NoError(t, repo.Save(context.Background(), testSnapshot()))

	state, ok := repo.State().(RepositoryState)
	require.True(t, ok)
	require.Equal(t, ".json", state.Format)
	require.Equal(t, 2, state.Contacts)
	require.Equal(t, 2, state.Notes)
	require.False(t, state.WatcherActive)
	require.Equal(t, "snapshot-repository", repo.ComponentType())
}

func TestDiffSnapshots(t *testing.T) {
	prev := testSnapshot()

	t.Run("No Changes", func(t *testing.T) {
		require.Empty(t, diffSnapshots(prev, prev.Clone()))
	})

	t.Run("Create Modify Delete", func(t *testing.T) {
		cur := prev.Clone()
		cur.Contacts[0].Phone = "+380507654321" // modify c1
		cur.Contacts = []core.Contact{cur.Contacts[0], {ID: "c3", Name: "Carol"}} // drop c2, add c3
		cur.Notes = append(cur.Notes, core.Note{ID: "n3", Text: "Call plumber"})

		events := diffSnapshots(prev, cur)

		types := make(map[string]core.EventType, len(events))
		for _, e := range events {
			types[e.ID] = e.Type
		}
		require.Equal(t, core.EventModify, types["contacts/c1"])
		require.Equal(t, core.EventCreate, types["contacts/c3"])
		require.Equal(t, core.EventDelete, types["contacts/c2"])
		require.Equal(t, core.EventCreate, types["notes/n3"])
		require.Len(t, events, 4)
	})
}
