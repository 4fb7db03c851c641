package authform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a failure reported by the remote register or login operation,
// carrying the backend's human-readable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPClient implements Service against the JSON API:
// POST /api/users/register and POST /api/users/login.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

type registerResponse struct {
	Success bool        `json:"success"`
	User    userPayload `json:"user"`
	Message string      `json:"message"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
	Message string      `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var resp registerResponse
	err := c.post(ctx, "/api/users/register", registerPayload(req), &resp)
	if err != nil {
		return User{}, err
	}
	return resp.User.toUser(), nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (Session, error) {
	var resp loginResponse
	err := c.post(ctx, "/api/users/login", loginPayload(req), &resp)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: resp.Token, User: resp.User.toUser()}, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}

func (p userPayload) toUser() User {
	u := User{
		ID:       p.UserID,
		Username: p.Username,
		Email:    p.Email,
	}
	if p.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			u.CreatedAt = t
		}
	}
	return u
}
