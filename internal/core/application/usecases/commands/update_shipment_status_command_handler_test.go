package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/events"
	"parceltrack/internal/pkg/errs"
)

func accountWithShipment(t *testing.T) (*account.User, *shipment.Shipment) {
	t.Helper()
	user := newTestAccount(t)
	extractor := newTestExtractor(t)
	draft, err := extractor.Extract(fullNotification)
	require.NoError(t, err)
	s, err := shipment.NewShipment(
		draft.TrackingNumber,
		draft.Carrier,
		draft.Sender,
		draft.Description,
		draft.EstimatedDelivery,
		draft.OriginCountry,
		draft.DestinationCountry,
	)
	require.NoError(t, err)
	require.NoError(t, user.AddShipment(s))
	return user, s
}

func TestUpdateShipmentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	user, s := accountWithShipment(t)

	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", events.NewStatusUpdated(s.TrackingNumber(), shipment.OutForDelivery)).
		Return().Once()

	cmd, _ := commands.NewUpdateShipmentStatusCommand("session-1", s.TrackingNumber(), shipment.OutForDelivery)
	h := commands.NewUpdateShipmentStatusCommandHandler(users, sessions, publisher)

	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.OutForDelivery, s.Status())
	assert.Len(t, s.History(), 1)
	publisher.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_UnknownTrackingNumber(t *testing.T) {
	ctx := t.Context()
	user := newTestAccount(t)

	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	cmd, _ := commands.NewUpdateShipmentStatusCommand("session-1", "1Z999AA10123456784", shipment.Delivered)
	h := commands.NewUpdateShipmentStatusCommandHandler(users, sessions, new(MockEventPublisher))

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateShipmentStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand("session-1", "1Z999AA10123456784", shipment.Status(42))
	require.Error(t, err)
}
