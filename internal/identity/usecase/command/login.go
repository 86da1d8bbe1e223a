package command

import (
	"context"

	"github.com/sportshop/storefront/internal/identity"
	"github.com/sportshop/storefront/internal/identity/domain"
	"github.com/sportshop/storefront/pkg/auth"
)

// LoginCommand represents the command to authenticate a user
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

// LoginHandler handles login command
type LoginHandler struct {
	store *identity.Store
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(store *identity.Store) *LoginHandler {
	return &LoginHandler{store: store}
}

// Handle executes the login command and issues a bearer token for the
// session
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResponse, error) {
	session, err := h.store.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(session.ID, session.Name, session.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Session: session}, nil
}
