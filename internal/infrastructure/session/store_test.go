package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NewAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.New()
	require.NotEmpty(t, sess.ID)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestStore_SaveUpdatesState(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.New()
	sess.CurrentCallID = "call-1"
	sess.CallEnded = true
	store.Save(sess)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "call-1", got.CurrentCallID)
	assert.True(t, got.CallEnded)
}

func TestStore_Expiration(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	sess := store.New()
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.New()
	store.Delete(sess.ID)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
}

func TestStore_UnknownID(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Get("nope")
	assert.False(t, ok)
}
