package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_CreateGetRemove(t *testing.T) {
	sm := NewSessionManager(0)

	s, err := sm.CreateSession()
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	got, ok := sm.GetSession(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, sm.Count())

	require.NoError(t, sm.RemoveSession(s.ID))
	_, ok = sm.GetSession(s.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, sm.RemoveSession(s.ID), ErrSessionNotFound)
}

func TestSessionManager_SessionsAreIndependent(t *testing.T) {
	sm := NewSessionManager(0)
	a, err := sm.CreateSession()
	require.NoError(t, err)
	b, err := sm.CreateSession()
	require.NoError(t, err)

	_, err = a.HandleColumnClick(0)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Game.MoveCount)
	assert.Zero(t, b.Game.MoveCount)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionManager_Cap(t *testing.T) {
	sm := NewSessionManager(2)
	first, err := sm.CreateSession()
	require.NoError(t, err)
	_, err = sm.CreateSession()
	require.NoError(t, err)

	_, err = sm.CreateSession()
	assert.ErrorIs(t, err, ErrTooManySessions)
	assert.Equal(t, 2, sm.Count())

	require.NoError(t, sm.RemoveSession(first.ID))
	_, err = sm.CreateSession()
	assert.NoError(t, err)
}

func TestSessionManager_CleanupOldSessions(t *testing.T) {
	sm := NewSessionManager(0)
	stale, err := sm.CreateSession()
	require.NoError(t, err)
	fresh, err := sm.CreateSession()
	require.NoError(t, err)

	stale.touch(time.Now().Add(-2 * time.Hour))

	removed := sm.CleanupOldSessions(time.Hour, time.Hour)
	assert.Equal(t, 1, removed)

	_, ok := sm.GetSession(stale.ID)
	assert.False(t, ok)
	_, ok = sm.GetSession(fresh.ID)
	assert.True(t, ok)
}

func TestSessionManager_CleanupNeverAttached(t *testing.T) {
	sm := NewSessionManager(0)
	abandoned, err := sm.CreateSession()
	require.NoError(t, err)
	playing, err := sm.CreateSession()
	require.NoError(t, err)
	playing.Attach(&recorder{}, nil)

	abandoned.touch(time.Now().Add(-10 * time.Minute))
	playing.touch(time.Now().Add(-10 * time.Minute))

	removed := sm.CleanupOldSessions(time.Hour, 5*time.Minute)
	assert.Equal(t, 1, removed)

	_, ok := sm.GetSession(abandoned.ID)
	assert.False(t, ok)
	_, ok = sm.GetSession(playing.ID)
	assert.True(t, ok)
}

func TestSessionManager_CleanupDoesNotWaitForBusySession(t *testing.T) {
	sm := NewSessionManager(0)
	busy, err := sm.CreateSession()
	require.NoError(t, err)

	busy.mu.Lock()
	defer busy.mu.Unlock()

	done := make(chan int, 1)
	go func() { done <- sm.CleanupOldSessions(time.Hour, time.Hour) }()

	select {
	case removed := <-done:
		assert.Zero(t, removed)
	case <-time.After(time.Second):
		t.Fatal("cleanup blocked on a session lock")
	}

	// lookups stay available meanwhile
	_, ok := sm.GetSession(busy.ID)
	assert.True(t, ok)
}
