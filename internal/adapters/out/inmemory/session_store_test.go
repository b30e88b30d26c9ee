package inmemory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/pkg/errs"
)

func Test_SessionStore(t *testing.T) {
	t.Run("should resolve a stored session to its username", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()
		require.NoError(t, store.Add(t.Context(), "session-1", "alice"))

		// Act
		username, err := store.GetUsername(t.Context(), "session-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("should return error when session is unknown", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		_, err := store.GetUsername(t.Context(), "missing")

		// Assert
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})

	t.Run("should return error when session id is empty", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		err := store.Add(t.Context(), "", "alice")

		// Assert
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should return error when username is empty", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		err := store.Add(t.Context(), "session-1", "")

		// Assert
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should remove a session", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()
		require.NoError(t, store.Add(t.Context(), "session-1", "alice"))

		// Act
		err := store.Remove(t.Context(), "session-1")

		// Assert
		require.NoError(t, err)
		_, err = store.GetUsername(t.Context(), "session-1")
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})

	t.Run("should not fail when removing an absent session", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		err := store.Remove(t.Context(), "never-existed")

		// Assert
		assert.NoError(t, err)
	})
}
