package app

import (
	"database/sql"
	"errors"
	"placelists/gen/placelists_dev/public/model"
	"placelists/internal/auth"
	"placelists/internal/constants"
	"placelists/internal/repo"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// ApiHandlers implements the JSON API consumed by the auth form's HTTP
// client and by token-authenticated list operations.
type ApiHandlers struct {
	svc  *auth.Service
	repo repo.Repository
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

func newUserResponse(u model.Users) UserResponse {
	resp := UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
	if u.CreatedAt != nil {
		resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func (a *ApiHandlers) RegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}

	user, err := a.svc.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
		case errors.Is(err, auth.ErrUserExists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			fiberlog.Error("registration error: ", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Registration failed"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    newUserResponse(user),
		"message": "User registered successfully",
	})
}

func (a *ApiHandlers) LoginUser(c *fiber.Ctx) error {
	var req LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}

	session, err := a.svc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		default:
			fiberlog.Error("login error: ", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   session.Token,
		"user":    newUserResponse(session.User),
		"message": "Login successful",
	})
}

// RequireToken guards the /api/user group. The token is taken from the
// Authorization header (Bearer) or X-Auth-Token.
func (a *ApiHandlers) RequireToken(c *fiber.Ctx) error {
	token := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
	if token == "" {
		token = strings.TrimSpace(c.Get("X-Auth-Token"))
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "Not authenticated",
			"message": "Please login first",
		})
	}

	claims, err := a.svc.VerifyToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals(constants.UserIDSessionKey, claims.UserID)
	return c.Next()
}

type ListResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

func newListResponse(l model.Lists) ListResponse {
	resp := ListResponse{
		ID:   l.ID,
		Name: l.Name,
	}
	if l.CreatedAt != nil {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func (a *ApiHandlers) ListsIndex(c *fiber.Ctx) error {
	results, err := a.repo.FilterLists(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}

	lists := make([]ListResponse, len(results))
	for i, l := range results {
		lists[i] = newListResponse(l)
	}

	return c.JSON(fiber.Map{
		"lists": lists,
		"count": len(lists),
	})
}

func (a *ApiHandlers) CreateList(c *fiber.Ctx) error {
	var req CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	list, err := a.repo.CreateList(c.Context(), currentUserID(c), req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"list":    newListResponse(list),
	})
}

func (a *ApiHandlers) DeleteList(c *fiber.Ctx) error {
	var params struct {
		ID int64 `params:"id"`
	}
	if err := c.ParamsParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid list id"})
	}

	if err := a.repo.DeleteListById(c.Context(), currentUserID(c), params.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "List not found"})
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
