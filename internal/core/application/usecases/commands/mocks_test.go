package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/events"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*account.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) All(ctx context.Context) ([]*account.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*account.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Add(ctx context.Context, sessionID, username string) error {
	args := m.Called(ctx, sessionID, username)
	return args.Error(0)
}

func (m *MockSessionStore) GetUsername(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Remove(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

func newTestAccount(t *testing.T) *account.User {
	t.Helper()
	user, err := account.NewUser("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	return user
}
