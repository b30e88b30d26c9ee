package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
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

// newFixtureUser builds a user tracking three shipments:
//
//	1Z999AA10123456784  UPS    due in 3 days  InTransit       tag "gift"
//	1Z999AA10123456785  UPS    due in 1 day   OutForDelivery
//	123456789012        FedEx  due in 5 days  InTransit
func newFixtureUser(t *testing.T) *account.User {
	t.Helper()
	registry, err := carrier.NewDefaultRegistry()
	require.NoError(t, err)
	ups, ok := registry.Lookup("UPS")
	require.True(t, ok)
	fedex, ok := registry.Lookup("FEDEX")
	require.True(t, ok)

	user, err := account.NewUser("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	first, err := shipment.NewShipment(
		"1Z999AA10123456784", ups, "Acme Corp", "Wireless Mouse",
		time.Now().AddDate(0, 0, 3), "US", "US")
	require.NoError(t, err)
	require.NoError(t, first.AddTag("gift"))

	second, err := shipment.NewShipment(
		"1Z999AA10123456785", ups, "Book Depot", "Paperback",
		time.Now().AddDate(0, 0, 1), "US", "US")
	require.NoError(t, err)
	require.NoError(t, second.UpdateStatus(shipment.OutForDelivery))

	third, err := shipment.NewShipment(
		"123456789012", fedex, "Gadget World", "Headphones",
		time.Now().AddDate(0, 0, 5), "US", "US")
	require.NoError(t, err)

	require.NoError(t, user.AddShipment(first))
	require.NoError(t, user.AddShipment(second))
	require.NoError(t, user.AddShipment(third))
	return user
}

func authenticatedMocks(t *testing.T) (*MockUserRepository, *MockSessionStore) {
	t.Helper()
	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(newFixtureUser(t), nil).Once()
	return users, sessions
}

func TestGetShipmentsQueryHandler_Handle_SortedByEstimatedDelivery(t *testing.T) {
	ctx := t.Context()
	users, sessions := authenticatedMocks(t)

	query, _ := queries.NewGetShipmentsQuery("session-1")
	h := queries.NewGetShipmentsQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, shipments, 3)
	assert.Equal(t, "1Z999AA10123456785", shipments[0].TrackingNumber)
	assert.Equal(t, "1Z999AA10123456784", shipments[1].TrackingNumber)
	assert.Equal(t, "123456789012", shipments[2].TrackingNumber)
}

func TestGetShipmentsQueryHandler_Handle_StableOnEqualDates(t *testing.T) {
	ctx := t.Context()
	registry, err := carrier.NewDefaultRegistry()
	require.NoError(t, err)
	ups, ok := registry.Lookup("UPS")
	require.True(t, ok)

	user, err := account.NewUser("alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	sameDay := time.Now().AddDate(0, 0, 2)
	first, err := shipment.NewShipment(
		"1Z999AA10123456784", ups, "Acme Corp", "Wireless Mouse", sameDay, "US", "US")
	require.NoError(t, err)
	second, err := shipment.NewShipment(
		"1Z999AA10123456785", ups, "Book Depot", "Paperback", sameDay, "US", "US")
	require.NoError(t, err)
	third, err := shipment.NewShipment(
		"1Z999AA10123456786", ups, "Gadget World", "Headphones",
		time.Now().AddDate(0, 0, 1), "US", "US")
	require.NoError(t, err)

	require.NoError(t, user.AddShipment(first))
	require.NoError(t, user.AddShipment(second))
	require.NoError(t, user.AddShipment(third))

	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "session-1").Return("alice", nil).Once()
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

	query, _ := queries.NewGetShipmentsQuery("session-1")
	h := queries.NewGetShipmentsQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, shipments, 3)
	// earliest date first, then the tied pair in insertion order
	assert.Equal(t, "1Z999AA10123456786", shipments[0].TrackingNumber)
	assert.Equal(t, "1Z999AA10123456784", shipments[1].TrackingNumber)
	assert.Equal(t, "1Z999AA10123456785", shipments[2].TrackingNumber)
}

func TestGetShipmentsQueryHandler_Handle_UnknownSession(t *testing.T) {
	ctx := t.Context()
	sessions := new(MockSessionStore)
	sessions.On("GetUsername", mock.Anything, "expired").
		Return("", errs.NewObjectNotFoundError("sessionID", "expired")).Once()

	query, _ := queries.NewGetShipmentsQuery("expired")
	h := queries.NewGetShipmentsQueryHandler(new(MockUserRepository), sessions)

	_, err := h.Handle(ctx, query)
	require.Error(t, err)
}

func TestFilterShipmentsByStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	users, sessions := authenticatedMocks(t)

	query, _ := queries.NewFilterShipmentsByStatusQuery("session-1", shipment.OutForDelivery)
	h := queries.NewFilterShipmentsByStatusQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "1Z999AA10123456785", shipments[0].TrackingNumber)
	assert.Equal(t, "Out for Delivery", shipments[0].Status)
}

func TestFilterShipmentsByStatusQueryHandler_Handle_NoMatches(t *testing.T) {
	ctx := t.Context()
	users, sessions := authenticatedMocks(t)

	query, _ := queries.NewFilterShipmentsByStatusQuery("session-1", shipment.Delayed)
	h := queries.NewFilterShipmentsByStatusQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, shipments)
}

func TestSearchShipmentsQueryHandler_Handle_MatchesSender(t *testing.T) {
	ctx := t.Context()
	users, sessions := authenticatedMocks(t)

	query, _ := queries.NewSearchShipmentsQuery("session-1", "acme")
	h := queries.NewSearchShipmentsQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "1Z999AA10123456784", shipments[0].TrackingNumber)
}

func TestSearchShipmentsQueryHandler_Handle_MatchesTag(t *testing.T) {
	ctx := t.Context()
	users, sessions := authenticatedMocks(t)

	query, _ := queries.NewSearchShipmentsQuery("session-1", "GIFT")
	h := queries.NewSearchShipmentsQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, []string{"gift"}, shipments[0].Tags)
}

func TestSearchShipmentsQueryHandler_Handle_MatchesCarrierName(t *testing.T) {
	ctx := t.Context()
	users, sessions := authenticatedMocks(t)

	query, _ := queries.NewSearchShipmentsQuery("session-1", "fedex")
	h := queries.NewSearchShipmentsQueryHandler(users, sessions)

	shipments, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "123456789012", shipments[0].TrackingNumber)
}

func TestNewSearchShipmentsQuery_EmptyTerm(t *testing.T) {
	_, err := queries.NewSearchShipmentsQuery("session-1", "")
	require.ErrorIs(t, err, queries.ErrSearchTermIsRequired)
}
