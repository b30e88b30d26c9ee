package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

func TestAddTagCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	user, s := accountWithShipment(t)

	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	cmd, _ := commands.NewAddTagCommand("session-1", s.TrackingNumber(), "Gift")
	h := commands.NewAddTagCommandHandler(users, sessions)

	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"gift"}, s.Tags())
}

func TestAddTagCommandHandler_Handle_UnknownSession(t *testing.T) {
	ctx := t.Context()
	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "expired").
		Return("", errs.NewObjectNotFoundError("sessionID", "expired")).Once()

	cmd, _ := commands.NewAddTagCommand("expired", "1Z999AA10123456784", "gift")
	h := commands.NewAddTagCommandHandler(new(MockUserRepository), sessions)

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, ports.ErrAuthenticationRequired)
}

func TestNewAddTagCommand_EmptyTag(t *testing.T) {
	_, err := commands.NewAddTagCommand("session-1", "1Z999AA10123456784", "")
	require.ErrorIs(t, err, commands.ErrTagIsRequired)
}
