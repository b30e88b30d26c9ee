package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
)

func TestRemoveTagCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	user, s := accountWithShipment(t)
	require.NoError(t, s.AddTag("fragile"))

	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	cmd, _ := commands.NewRemoveTagCommand("session-1", s.TrackingNumber(), "FRAGILE")
	h := commands.NewRemoveTagCommandHandler(users, sessions)

	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, s.Tags())
}

func TestRemoveTagCommandHandler_Handle_AbsentTag(t *testing.T) {
	ctx := t.Context()
	user, s := accountWithShipment(t)

	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	cmd, _ := commands.NewRemoveTagCommand("session-1", s.TrackingNumber(), "never-added")
	h := commands.NewRemoveTagCommandHandler(users, sessions)

	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}
