package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recall/internal/domain"
)

func newTestHub(t *testing.T) *DrillHub {
	t.Helper()
	hub := NewDrillHub(testLogger(), HubOptions{IdleTimeout: time.Minute, CleanupInterval: time.Hour})
	t.Cleanup(hub.Close)
	return hub
}

func TestDrillHubCreateAndGet(t *testing.T) {
	t.Parallel()

	hub := newTestHub(t)
	session := hub.CreateDrill()
	require.NotEmpty(t, session.GetID())

	got, err := hub.GetSession(session.GetID())
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 1, hub.GetSessionCount())

	_, err = hub.GetSession("missing")
	assert.ErrorIs(t, err, domain.ErrDrillNotFound)
}

func TestDrillHubCreatesUniqueIDs(t *testing.T) {
	t.Parallel()

	hub := newTestHub(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := hub.CreateDrill().GetID()
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, 50, hub.GetSessionCount())
}

func TestDrillHubGetOrCreate(t *testing.T) {
	t.Parallel()

	hub := newTestHub(t)
	existing := hub.CreateDrill()

	got, created := hub.GetOrCreate(existing.GetID())
	assert.False(t, created)
	assert.Same(t, existing, got)

	got, created = hub.GetOrCreate("")
	assert.True(t, created)
	assert.NotEqual(t, existing.GetID(), got.GetID())

	got, created = hub.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", got.GetID())
}

func TestDrillHubDelete(t *testing.T) {
	t.Parallel()

	hub := newTestHub(t)
	session := hub.CreateDrill()
	client := newFakeClient("c1")
	session.RegisterClient("c1", client)

	require.NoError(t, hub.DeleteSession(session.GetID()))
	assert.True(t, client.isClosed())
	assert.Equal(t, 0, hub.GetSessionCount())
	assert.ErrorIs(t, hub.DeleteSession(session.GetID()), domain.ErrDrillNotFound)
}

func TestDrillHubCleanupIdle(t *testing.T) {
	t.Parallel()

	hub := newTestHub(t)
	idle := hub.CreateDrill()
	connected := hub.CreateDrill()
	connected.RegisterClient("c1", newFakeClient("c1"))

	assert.Equal(t, 0, hub.CleanupIdle(time.Now()))

	removed := hub.CleanupIdle(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 1, removed)

	_, err := hub.GetSession(idle.GetID())
	assert.ErrorIs(t, err, domain.ErrDrillNotFound)
	_, err = hub.GetSession(connected.GetID())
	assert.NoError(t, err)
	assert.Equal(t, 1, hub.GetClientCount())
}

func TestDrillHubUsesRandFactory(t *testing.T) {
	t.Parallel()

	calls := 0
	hub := NewDrillHub(testLogger(), HubOptions{NewRand: func() domain.Intner {
		calls++
		return fixedRand(0)
	}})
	t.Cleanup(hub.Close)

	session := hub.CreateDrill()
	_, err := session.SetText("a b c")
	require.NoError(t, err)
	_, err = session.Start()
	require.NoError(t, err)

	_, snap, err := session.HideWords()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, snap.Words[0].Hidden)
}

func TestDrillHubAppliesTextLimit(t *testing.T) {
	t.Parallel()

	hub := NewDrillHub(testLogger(), HubOptions{IdleTimeout: time.Minute, CleanupInterval: time.Hour, MaxTextBytes: 7})
	t.Cleanup(hub.Close)
	session := hub.CreateDrill()

	_, err := session.SetText("one two")
	require.NoError(t, err)

	snapshot, err := session.SetText("one two three")
	assert.ErrorIs(t, err, domain.ErrTextTooLong)
	assert.Equal(t, "one two", snapshot.Text)
}

func TestDrillHubCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	hub := NewDrillHub(testLogger(), HubOptions{})
	hub.CreateDrill()
	hub.Close()
	hub.Close()
	assert.Equal(t, 0, hub.GetSessionCount())
}

type fixedRand int

func (f fixedRand) Intn(int) int { return int(f) }
