package inmemory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

func newTestUser(t *testing.T, username string) *account.User {
	t.Helper()
	user, err := account.NewUser(username, username+"@example.com", "s3cret-pass")
	require.NoError(t, err)
	return user
}

func Test_UserRepository(t *testing.T) {
	t.Run("should get a stored user by username", func(t *testing.T) {
		// Arrange
		repo := NewUserRepository()
		user := newTestUser(t, "alice")
		require.NoError(t, repo.Add(t.Context(), user))

		// Act
		found, err := repo.GetByUsername(t.Context(), "alice")

		// Assert
		require.NoError(t, err)
		assert.Same(t, user, found)
	})

	t.Run("should return error when username is already taken", func(t *testing.T) {
		// Arrange
		repo := NewUserRepository()
		require.NoError(t, repo.Add(t.Context(), newTestUser(t, "alice")))

		// Act
		err := repo.Add(t.Context(), newTestUser(t, "alice"))

		// Assert
		assert.True(t, errors.Is(err, ports.ErrUsernameAlreadyTaken))
	})

	t.Run("should return error when user is not found", func(t *testing.T) {
		// Arrange
		repo := NewUserRepository()

		// Act
		_, err := repo.GetByUsername(t.Context(), "nobody")

		// Assert
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})

	t.Run("should return error when user is not constructed", func(t *testing.T) {
		// Arrange
		repo := NewUserRepository()

		// Act
		err := repo.Add(t.Context(), &account.User{})

		// Assert
		assert.Error(t, err)
	})

	t.Run("should list users in registration order", func(t *testing.T) {
		// Arrange
		repo := NewUserRepository()
		first := newTestUser(t, "alice")
		second := newTestUser(t, "bob")
		require.NoError(t, repo.Add(t.Context(), first))
		require.NoError(t, repo.Add(t.Context(), second))

		// Act
		users, err := repo.All(t.Context())

		// Assert
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Same(t, first, users[0])
		assert.Same(t, second, users[1])
	})
}
