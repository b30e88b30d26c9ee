package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/events"
)

func accountWithDelivery(t *testing.T, trackingNumber string, estimatedDelivery time.Time) (*account.User, *shipment.Shipment) {
	t.Helper()
	user, err := account.NewUser("user-"+trackingNumber, trackingNumber+"@example.com", "s3cret-pass")
	require.NoError(t, err)

	registry, err := carrier.NewDefaultRegistry()
	require.NoError(t, err)
	ups, ok := registry.Lookup("UPS")
	require.True(t, ok)
	s, err := shipment.NewShipment(
		trackingNumber, ups, "Acme Corp", "Package", estimatedDelivery, "US", "US")
	require.NoError(t, err)
	require.NoError(t, user.AddShipment(s))
	return user, s
}

func TestNotifyUpcomingDeliveriesCommandHandler_Handle_DueTomorrow(t *testing.T) {
	ctx := t.Context()
	tomorrow := time.Now().AddDate(0, 0, 1)
	user, s := accountWithDelivery(t, "1Z999AA10123456784", tomorrow)

	users := new(MockUserRepository)
	users.On("All", ctx).Return([]*account.User{user}, nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", events.NewDeliveryTomorrow(s)).Return().Once()

	h := commands.NewNotifyUpcomingDeliveriesCommandHandler(users, publisher)
	err := h.Handle(ctx, commands.NewNotifyUpcomingDeliveriesCommand())
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestNotifyUpcomingDeliveriesCommandHandler_Handle_SkipsDelivered(t *testing.T) {
	ctx := t.Context()
	tomorrow := time.Now().AddDate(0, 0, 1)
	user, s := accountWithDelivery(t, "1Z999AA10123456784", tomorrow)
	require.NoError(t, s.UpdateStatus(shipment.Delivered))

	users := new(MockUserRepository)
	users.On("All", ctx).Return([]*account.User{user}, nil).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewNotifyUpcomingDeliveriesCommandHandler(users, publisher)
	err := h.Handle(ctx, commands.NewNotifyUpcomingDeliveriesCommand())
	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestNotifyUpcomingDeliveriesCommandHandler_Handle_SkipsLaterDeliveries(t *testing.T) {
	ctx := t.Context()
	nextWeek := time.Now().AddDate(0, 0, 7)
	user, _ := accountWithDelivery(t, "1Z999AA10123456784", nextWeek)

	users := new(MockUserRepository)
	users.On("All", ctx).Return([]*account.User{user}, nil).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewNotifyUpcomingDeliveriesCommandHandler(users, publisher)
	err := h.Handle(ctx, commands.NewNotifyUpcomingDeliveriesCommand())
	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}
