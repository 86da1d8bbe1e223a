package command

import (
	"context"

	"github.com/sportshop/storefront/internal/identity"
)

// LogoutCommand represents the command to clear the session
type LogoutCommand struct{}

// LogoutHandler handles logout command
type LogoutHandler struct {
	store *identity.Store
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(store *identity.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

// Handle executes the logout command; it always succeeds
func (h *LogoutHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	h.store.Logout(ctx)
	return nil
}
