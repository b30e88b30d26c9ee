package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// Creates the user aggregate (which hashes the password) and stores it.
// Returns ports.ErrUsernameAlreadyTaken when the login name is in use.
type RegisterUserCommandHandler struct {
	users ports.UserRepository
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(users ports.UserRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		users: users,
	}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := account.NewUser(cmd.Username(), cmd.Email(), cmd.Password())
	if err != nil {
		return err
	}

	return h.users.Add(ctx, user)
}
