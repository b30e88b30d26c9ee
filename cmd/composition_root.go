package cmd

import (
	"log/slog"

	"parceltrack/internal/adapters/out/eventbus"
	"parceltrack/internal/adapters/out/inmemory"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/services"
)

type CompositionRoot struct {
	registry  *carrier.Registry
	extractor services.MessageExtractor
	users     *inmemory.UserRepository
	sessions  *inmemory.SessionStore
	bus       *eventbus.Bus
}

func NewCompositionRoot(_ Config, logger *slog.Logger) (CompositionRoot, error) {
	registry, err := carrier.NewDefaultRegistry()
	if err != nil {
		return CompositionRoot{}, err
	}

	extractor, err := services.NewMessageExtractor(registry)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		registry:  registry,
		extractor: extractor,
		users:     inmemory.NewUserRepository(),
		sessions:  inmemory.NewSessionStore(),
		bus:       eventbus.NewBus(logger),
	}, nil
}

// EventBus exposes the bus so main can attach event subscribers.
func (c *CompositionRoot) EventBus() *eventbus.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.users)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.users, c.sessions)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateExtractShipmentCommandHandler() commands.ExtractShipmentCommandHandler {
	return commands.NewExtractShipmentCommandHandler(c.users, c.sessions, c.extractor, c.bus)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.users, c.sessions, c.bus)
}

func (c *CompositionRoot) CreateAddTagCommandHandler() commands.AddTagCommandHandler {
	return commands.NewAddTagCommandHandler(c.users, c.sessions)
}

func (c *CompositionRoot) CreateRemoveTagCommandHandler() commands.RemoveTagCommandHandler {
	return commands.NewRemoveTagCommandHandler(c.users, c.sessions)
}

func (c *CompositionRoot) CreateNotifyUpcomingDeliveriesCommandHandler() commands.NotifyUpcomingDeliveriesCommandHandler {
	return commands.NewNotifyUpcomingDeliveriesCommandHandler(c.users, c.bus)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.users, c.sessions)
}

func (c *CompositionRoot) CreateFilterShipmentsByStatusQueryHandler() queries.FilterShipmentsByStatusQueryHandler {
	return queries.NewFilterShipmentsByStatusQueryHandler(c.users, c.sessions)
}

func (c *CompositionRoot) CreateSearchShipmentsQueryHandler() queries.SearchShipmentsQueryHandler {
	return queries.NewSearchShipmentsQueryHandler(c.users, c.sessions)
}
