package assistant_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/satchel/pkg/assistant"
	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/timeutil"
)

// memRepository implements core.Repository in memory. It deliberately does
// NOT implement core.Watchable, to exercise the fallback error.
type memRepository struct {
	snap    core.Snapshot
	saves   int
	failing bool
}

func (m *memRepository) Load(ctx context.Context) (core.Snapshot, error) {
	return m.snap.Clone(), nil
}

func (m *memRepository) Save(ctx context.Context, snap core.Snapshot) error {
	if m.failing {
		return errors.New("disk full")
	}
	m.snap = snap.Clone()
	m.saves++
	return nil
}

func (m *memRepository) Initialize(ctx context.Context) error { return nil }

// testDate is the frozen "today" used across the service tests.
var testDate = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*assistant.Service, *memRepository) {
	t.Helper()
	repo := &memRepository{}
	svc := assistant.NewService(repo, assistant.Config{
		Clock: timeutil.NewFrozenClock(testDate),
	})
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo
}

func TestServiceLoadAndSnapshot(t *testing.T) {
	repo := &memRepository{snap: core.Snapshot{
		Contacts: []core.Contact{{ID: "c1", Name: "Alice"}},
		Notes:    []core.Note{{ID: "n1", Text: "Buy milk", Tags: []string{"shopping"}}},
	}}

	svc := assistant.NewService(repo, assistant.Config{})
	require.NoError(t, svc.Load(context.Background()))

	snap := svc.Snapshot()
	require.Len(t, snap.Contacts, 1)
	require.Len(t, snap.Notes, 1)
	require.Equal(t, "Alice", snap.Contacts[0].Name)
}

func TestServiceReloadDiscardsState(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddContact(ctx, assistant.ContactParams{Name: "Alice"})
	require.NoError(t, err)

	// Simulate an external overwrite of the backing store.
	repo.snap = core.Snapshot{}
	require.NoError(t, svc.Reload(ctx))
	require.Empty(t, svc.ListContacts(ctx))
}

func TestServiceWatchUnsupported(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Watch(context.Background(), "")
	require.Error(t, err)
}

func TestServiceState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddContact(ctx, assistant.ContactParams{Name: "Alice"})
	require.NoError(t, err)

	state, ok := svc.State().(assistant.ServiceState)
	require.True(t, ok)
	require.Equal(t, 1, state.Contacts)
	require.Equal(t, 0, state.Notes)
	require.Equal(t, "assistant", svc.ComponentType())
}
