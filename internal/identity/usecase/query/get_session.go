package query

import (
	"github.com/sportshop/storefront/internal/identity"
	"github.com/sportshop/storefront/internal/identity/domain"
)

// GetSessionQuery represents the query for the current session
type GetSessionQuery struct{}

// GetSessionHandler handles get session query
type GetSessionHandler struct {
	store *identity.Store
}

// NewGetSessionHandler creates a new get session handler
func NewGetSessionHandler(store *identity.Store) *GetSessionHandler {
	return &GetSessionHandler{store: store}
}

// Handle executes the get session query
func (h *GetSessionHandler) Handle(query GetSessionQuery) (*domain.Session, error) {
	session := h.store.Session()
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return session, nil
}
