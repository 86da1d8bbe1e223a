package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sportshop/storefront/internal/identity"
	"github.com/sportshop/storefront/pkg/auth"
	"github.com/sportshop/storefront/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, *identity.Store) {
	t.Helper()
	store := identity.NewStore(context.Background(), kvstore.NewMemoryStore(), auth.PlainVerifier{})
	h := NewUserHandler(store, nil)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, store
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestSignupAndLoginFlow(t *testing.T) {
	router, store := newTestRouter(t)

	rec, resp := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.True(t, store.IsAuthenticated())

	rec, _ = doJSON(t, router, http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, store.IsAuthenticated())

	rec, resp = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "Abcdef1!",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.True(t, store.IsAuthenticated())
}

func TestSignupValidationStatuses(t *testing.T) {
	router, _ := newTestRouter(t)

	signup := func(name, email, password string) int {
		rec, _ := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
			"name": name, "email": email, "password": password,
		})
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, signup("Alice", "bad-email", "Abcdef1!"))
	assert.Equal(t, http.StatusBadRequest, signup("Alice", "alice@example.com", "weak"))

	require.Equal(t, http.StatusCreated, signup("Alice", "alice@example.com", "Abcdef1!"))
	assert.Equal(t, http.StatusConflict, signup("Other", "alice@example.com", "Abcdef1!"))
}

func TestLoginFailureStatuses(t *testing.T) {
	router, store := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	doJSON(t, router, http.MethodPost, "/auth/logout", "", nil)

	login := func(email, password string) int {
		rec, _ := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
			"email": email, "password": password,
		})
		return rec.Code
	}

	assert.Equal(t, http.StatusNotFound, login("nobody@example.com", "Abcdef1!"))
	assert.Equal(t, http.StatusUnauthorized, login("alice@example.com", "wrong-pass"))
	assert.False(t, store.IsAuthenticated())
}

func TestUsersMeRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersMeFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	_, resp := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "Abcdef1!",
	})
	token := resp.Data.(map[string]interface{})["token"].(string)

	rec, resp := doJSON(t, router, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	session := resp.Data.(map[string]interface{})
	assert.Equal(t, "alice@example.com", session["email"])

	rec, resp = doJSON(t, router, http.MethodPut, "/users/me", token, map[string]string{
		"name": "Alicia",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := resp.Data.(map[string]interface{})
	assert.Equal(t, "Alicia", updated["name"])
	assert.Equal(t, "alice@example.com", updated["email"])
}
