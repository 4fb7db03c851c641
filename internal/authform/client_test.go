package authform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientRegister(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"success": true,
			"user": {"user_id": 42, "username": "alice", "email": "a@b.com", "created_at": "2026-08-26T12:00:00Z"},
			"message": "User registered successfully"
		}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	user, err := client.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "a@b.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"username": "alice", "email": "a@b.com", "password": "secret1"}, gotBody)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, 2026, user.CreatedAt.Year())
}

func TestHTTPClientRegisterError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Username or email already exists"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.Register(context.Background(), RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret1"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Username or email already exists", apiErr.Message)
	assert.Equal(t, "Username or email already exists", err.Error())
}

func TestHTTPClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"token": "tok123",
			"user": {"user_id": 7, "username": "alice", "email": "a@b.com"},
			"message": "Login successful"
		}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	session, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "tok123", session.Token)
	assert.Equal(t, int64(7), session.User.ID)
}

func TestHTTPClientLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid username or password"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "nope"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
}

func TestHTTPClientErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestHTTPClientFormFlowAgainstServer(t *testing.T) {
	// The form wired to the HTTP client end to end.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/users/login":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "Invalid username or password"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := New(NewHTTPClient(srv.URL))
	f.SetUsername("alice")
	f.SetPassword("wrongpass")
	f.SubmitLogin(context.Background())

	assert.Equal(t, "Invalid username or password", f.State().Error)
}
