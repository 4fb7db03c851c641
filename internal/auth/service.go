package auth

import (
	"context"
	"database/sql"
	"errors"
	"placelists/gen/placelists_dev/public/model"
	"placelists/internal/repo"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is returned by Register when the username or email is taken.
	ErrUserExists = errors.New("Username or email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("Invalid username or password")
)

// ValidationError is a register-input violation with a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service implements registration and login over the users table. Passwords
// are stored as bcrypt hashes; successful logins are issued signed tokens.
type Service struct {
	repo   repo.Repository
	tokens *TokenIssuer
}

func NewService(r repo.Repository, signingKey string) *Service {
	return &Service{
		repo:   r,
		tokens: NewTokenIssuer(signingKey),
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (model.Users, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return model.Users{}, &ValidationError{Message: "Username, email, and password required"}
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return model.Users{}, &ValidationError{Message: "Username must be 3-50 characters"}
	}
	if utf8.RuneCountInString(password) < 6 {
		return model.Users{}, &ValidationError{Message: "Password must be at least 6 characters"}
	}

	exists, err := s.repo.UserExists(ctx, username, email)
	if err != nil {
		return model.Users{}, err
	}
	if exists {
		return model.Users{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Users{}, err
	}

	user, err := s.repo.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		// Lost the race against a concurrent registration for the same name.
		if strings.Contains(err.Error(), "unique constraint") {
			return model.Users{}, ErrUserExists
		}
		return model.Users{}, err
	}

	return user, nil
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  model.Users
}

func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return Session{}, &ValidationError{Message: "Username and password required"}
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, User: user}, nil
}

func (s *Service) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}
