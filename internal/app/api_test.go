package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeoutMs = 5000

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func registerTestUser(t *testing.T, app *fiber.App, username, email, password string) {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/users/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}), testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func loginTestUser(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/users/login", map[string]string{
		"username": username,
		"password": password,
	}), testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestApiRegister(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/users/register", map[string]string{
		"username": "alice",
		"email":    "a@b.com",
		"password": "secret1",
	}), testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, user, "password_hash")
}

func TestApiRegisterValidation(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name    string
		payload map[string]string
		want    string
	}{
		{"missing fields", map[string]string{"username": "alice"}, "Username, email, and password required"},
		{"short username", map[string]string{"username": "ab", "email": "a@b.com", "password": "secret1"}, "Username must be 3-50 characters"},
		{"short password", map[string]string{"username": "alice", "email": "a@b.com", "password": "abc12"}, "Password must be at least 6 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest("POST", "/api/users/register", tc.payload), testTimeoutMs)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.want, decodeBody(t, resp)["error"])
		})
	}
}

func TestApiRegisterDuplicate(t *testing.T) {
	app := newTestApp()
	registerTestUser(t, app, "alice", "a@b.com", "secret1")

	resp, err := app.Test(jsonRequest("POST", "/api/users/register", map[string]string{
		"username": "alice",
		"email":    "other@b.com",
		"password": "secret1",
	}), testTimeoutMs)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username or email already exists", decodeBody(t, resp)["error"])
}

func TestApiLoginInvalidCredentials(t *testing.T) {
	app := newTestApp()
	registerTestUser(t, app, "alice", "a@b.com", "secret1")

	for _, payload := range []map[string]string{
		{"username": "alice", "password": "wrongpass"},
		{"username": "nobody", "password": "secret1"},
	} {
		resp, err := app.Test(jsonRequest("POST", "/api/users/login", payload), testTimeoutMs)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid username or password", decodeBody(t, resp)["error"])
	}
}

func TestApiUserListsRequireToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/user/lists", nil)
	resp, err := app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authenticated", decodeBody(t, resp)["error"])

	req = httptest.NewRequest("GET", "/api/user/lists", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestApiUserListsFlow(t *testing.T) {
	app := newTestApp()
	registerTestUser(t, app, "alice", "a@b.com", "secret1")
	token := loginTestUser(t, app, "alice", "secret1")

	// create
	req := jsonRequest("POST", "/api/user/lists", map[string]string{"name": "Breweries to visit"})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeBody(t, resp)
	list, ok := created["list"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Breweries to visit", list["name"])
	listID := int64(list["id"].(float64))

	// index
	req = httptest.NewRequest("GET", "/api/user/lists", nil)
	req.Header.Set("X-Auth-Token", token)
	resp, err = app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	index := decodeBody(t, resp)
	assert.Equal(t, float64(1), index["count"])

	// delete
	req = httptest.NewRequest("DELETE", fmt.Sprintf("/api/user/lists/%d", listID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// deleting again is a 404
	req = httptest.NewRequest("DELETE", fmt.Sprintf("/api/user/lists/%d", listID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApiListsAreScopedPerUser(t *testing.T) {
	app := newTestApp()
	registerTestUser(t, app, "alice", "a@b.com", "secret1")
	registerTestUser(t, app, "bob", "b@b.com", "secret1")
	aliceToken := loginTestUser(t, app, "alice", "secret1")
	bobToken := loginTestUser(t, app, "bob", "secret1")

	req := jsonRequest("POST", "/api/user/lists", map[string]string{"name": "Alice only"})
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	resp, err := app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/user/lists", nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	resp, err = app.Test(req, testTimeoutMs)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decodeBody(t, resp)["count"])
}
