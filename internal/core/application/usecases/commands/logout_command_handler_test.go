package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
)

func TestLogoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLogoutCommand("session-1")

	sessions := new(MockSessionStore)
	sessions.On("Remove", ctx, "session-1").Return(nil).Once()

	h := commands.NewLogoutCommandHandler(sessions)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestLogoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LogoutCommand{} // not constructed properly

	h := commands.NewLogoutCommandHandler(new(MockSessionStore))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewLogoutCommand_EmptySessionID(t *testing.T) {
	_, err := commands.NewLogoutCommand("")
	require.ErrorIs(t, err, commands.ErrSessionIDIsRequired)
}
