package command

import (
	"context"

	"github.com/sportshop/storefront/internal/identity"
	"github.com/sportshop/storefront/internal/identity/domain"
)

// UpdateProfileCommand represents the command to merge profile fields
type UpdateProfileCommand struct {
	Name  string
	Email string
}

// UpdateProfileHandler handles update profile command
type UpdateProfileHandler struct {
	store *identity.Store
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(store *identity.Store) *UpdateProfileHandler {
	return &UpdateProfileHandler{store: store}
}

// Handle executes the update profile command
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*domain.Session, error) {
	return h.store.UpdateProfile(ctx, domain.ProfileUpdate{
		Name:  cmd.Name,
		Email: cmd.Email,
	})
}
