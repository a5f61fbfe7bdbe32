package assistant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/core"
)

func TestAddNote(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	note, err := svc.AddNote(ctx, "Buy milk #shopping")
	require.NoError(t, err)

	require.NotEmpty(t, note.ID)
	require.Equal(t, "Buy milk", note.Text)
	require.Equal(t, []string{"shopping"}, note.Tags)
	require.Equal(t, 1, repo.saves)
}

func TestAddNoteRejectsEmptyText(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, input := range []string{"", "   ", "#only #tags"} {
		_, err := svc.AddNote(ctx, input)
		require.ErrorIs(t, err, core.ErrInvalidText, "input %q", input)
	}
	require.Empty(t, svc.ListNotes(ctx))
}

func TestSearchNotes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	milk, err := svc.AddNote(ctx, "Buy milk #shopping")
	require.NoError(t, err)
	_, err = svc.AddNote(ctx, "Call dentist #health")
	require.NoError(t, err)

	t.Run("Substring Case-Insensitive", func(t *testing.T) {
		results := svc.SearchNotes(ctx, "MILK")
		require.Len(t, results, 1)
		require.Equal(t, milk.ID, results[0].ID)
	})

	t.Run("No Match", func(t *testing.T) {
		require.Empty(t, svc.SearchNotes(ctx, "groceries"))
	})
}

func TestSearchNotesByTag(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	milk, err := svc.AddNote(ctx, "Buy milk #shopping")
	require.NoError(t, err)
	_, err = svc.AddNote(ctx, "Call dentist #health")
	require.NoError(t, err)

	t.Run("Exact Tag", func(t *testing.T) {
		results := svc.SearchNotesByTag(ctx, "shopping")
		require.Len(t, results, 1)
		require.Equal(t, milk.ID, results[0].ID)
	})

	t.Run("Case Normalized", func(t *testing.T) {
		require.Len(t, svc.SearchNotesByTag(ctx, "SHOPPING"), 1)
	})

	t.Run("Substring Does Not Match", func(t *testing.T) {
		require.Empty(t, svc.SearchNotesByTag(ctx, "shop"))
	})
}

func TestRemoveNote(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	note, err := svc.AddNote(ctx, "Buy milk #shopping")
	require.NoError(t, err)

	removed, err := svc.RemoveNote(ctx, note.ID)
	require.NoError(t, err)
	require.Equal(t, note.ID, removed.ID)
	require.Empty(t, svc.ListNotes(ctx))

	_, err = svc.RemoveNote(ctx, note.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}
