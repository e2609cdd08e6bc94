package voice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_AppendCreatesSession(t *testing.T) {
	store := NewSessionStore(0)

	history := store.Append("s1", RoleUser, "hello")

	require.Len(t, history, 1)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_HistoryMissingSession(t *testing.T) {
	store := NewSessionStore(0)
	_, ok := store.History("nope")
	assert.False(t, ok)
}

func TestSessionStore_HistoryReturnsCopy(t *testing.T) {
	store := NewSessionStore(0)
	store.Append("s1", RoleUser, "hello")

	history, ok := store.History("s1")
	require.True(t, ok)
	history[0].Content = "mutated"

	fresh, _ := store.History("s1")
	assert.Equal(t, "hello", fresh[0].Content)
}

func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore(0)
	store.Append("s1", RoleUser, "hello")

	store.Clear("s1")

	_, ok := store.History("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_IdleEviction(t *testing.T) {
	store := NewSessionStore(10 * time.Minute)
	current := time.Unix(1000, 0)
	store.now = func() time.Time { return current }

	store.Append("s1", RoleUser, "hello")
	store.Append("s2", RoleUser, "hi")

	current = current.Add(5 * time.Minute)
	store.Append("s2", RoleUser, "still here")

	current = current.Add(6 * time.Minute)

	_, ok := store.History("s1")
	assert.False(t, ok)
	_, ok = store.History("s2")
	assert.True(t, ok)
}

func TestSessionStore_SessionsIndependent(t *testing.T) {
	store := NewSessionStore(0)
	store.Append("s1", RoleUser, "one")
	store.Append("s2", RoleUser, "two")

	h1, _ := store.History("s1")
	h2, _ := store.History("s2")

	require.Len(t, h1, 1)
	require.Len(t, h2, 1)
	assert.Equal(t, "one", h1[0].Content)
	assert.Equal(t, "two", h2[0].Content)
}
