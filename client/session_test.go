package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentReturnsNilWhenAbsent(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.Nil(t, store.Current())
}

func TestCurrentReturnsNilOnMalformedRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionFileName), []byte("{not json"), 0o600))

	store := NewStore(dir)
	assert.Nil(t, store.Current())
}

func TestCurrentReturnsNilWithoutToken(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(&Session{UserID: "u1", Role: "customer"}))

	assert.Nil(t, store.Current(), "a session without a token is anonymous")
}

func TestSaveAndCurrentRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	sess := &Session{
		UserID: "u1",
		Name:   "Asha",
		Email:  "asha@example.com",
		Mobile: "9876543210",
		Role:   "owner",
		Token:  "tok-123",
	}
	require.NoError(t, store.Save(sess))

	got := store.Current()
	require.NotNil(t, got)
	assert.Equal(t, sess, got)
}

func TestClearDestroysSession(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(&Session{UserID: "u1", Role: "customer", Token: "tok"}))
	require.NotNil(t, store.Current())

	require.NoError(t, store.Clear())
	assert.Nil(t, store.Current())

	// Clearing again is not an error.
	assert.NoError(t, store.Clear())
}
