package command

import (
	"context"
	"fmt"

	"github.com/sportshop/storefront/internal/identity"
	"github.com/sportshop/storefront/internal/identity/domain"
)

// SignupCommand represents the command to register a new user
type SignupCommand struct {
	Name     string
	Email    string
	Password string
}

// SignupHandler handles signup command
type SignupHandler struct {
	store *identity.Store
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(store *identity.Store) *SignupHandler {
	return &SignupHandler{store: store}
}

// Handle executes the signup command. On success the new user is logged in
// immediately.
func (h *SignupHandler) Handle(ctx context.Context, cmd SignupCommand) (*domain.Session, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return h.store.Signup(ctx, cmd.Name, cmd.Email, cmd.Password)
}
