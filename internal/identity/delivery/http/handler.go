package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sportshop/storefront/internal/identity"
	"github.com/sportshop/storefront/internal/identity/domain"
	"github.com/sportshop/storefront/internal/identity/usecase/command"
	"github.com/sportshop/storefront/internal/identity/usecase/query"
	"github.com/sportshop/storefront/internal/notification"
	"github.com/sportshop/storefront/pkg/auth"
	"github.com/sportshop/storefront/pkg/logger"
)

// UserHandler handles HTTP requests for identity
type UserHandler struct {
	signupHandler  *command.SignupHandler
	loginHandler   *command.LoginHandler
	logoutHandler  *command.LogoutHandler
	profileHandler *command.UpdateProfileHandler

	sessionHandler *query.GetSessionHandler

	store    *identity.Store
	notifier *notification.Queue
}

// NewUserHandler creates a new identity handler
func NewUserHandler(store *identity.Store, notifier *notification.Queue) *UserHandler {
	return &UserHandler{
		signupHandler:  command.NewSignupHandler(store),
		loginHandler:   command.NewLoginHandler(store),
		logoutHandler:  command.NewLogoutHandler(store),
		profileHandler: command.NewUpdateProfileHandler(store),
		sessionHandler: query.NewGetSessionHandler(store),
		store:          store,
		notifier:       notifier,
	}
}

// RegisterRoutes registers the identity routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/signup", h.Signup).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/auth/logout", h.Logout).Methods("POST")

	router.HandleFunc("/users/me", AuthMiddleware(h.GetMe)).Methods("GET")
	router.HandleFunc("/users/me", AuthMiddleware(h.UpdateMe)).Methods("PUT")
}

// Signup handles POST /auth/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.SignupCommand{Name: req.Name, Email: req.Email, Password: req.Password}
	session, err := h.signupHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Warn().Err(err).Str("email", req.Email).Msg("Signup rejected")
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	token, err := auth.GenerateToken(session.ID, session.Name, session.Email)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to generate token")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Push("Account created successfully", notification.KindSuccess)
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Account created successfully",
		Data: map[string]interface{}{
			"token":   token,
			"session": session,
		},
	})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	resp, err := h.loginHandler.Handle(r.Context(), command.LoginCommand{Email: req.Email, Password: req.Password})
	if err != nil {
		logger.Logger.Warn().Err(err).Str("email", req.Email).Msg("Login rejected")
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Push("Login successful", notification.KindSuccess)
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}

// Logout handles POST /auth/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.logoutHandler.Handle(r.Context(), command.LogoutCommand{}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to logout",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Logged out",
	})
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionHandler.Handle(query.GetSessionQuery{})
	if err != nil {
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    session,
	})
}

// UpdateMe handles PUT /users/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	session, err := h.profileHandler.Handle(r.Context(), command.UpdateProfileCommand{Name: req.Name, Email: req.Email})
	if err != nil {
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if h.notifier != nil {
		h.notifier.Push("Profile updated successfully", notification.KindSuccess)
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    session,
	})
}

// statusFor maps the validation taxonomy onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrWrongPassword), errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
