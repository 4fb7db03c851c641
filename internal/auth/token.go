package auth

import (
	"errors"
	"placelists/gen/placelists_dev/public/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL bounds how long an API token stays valid.
const TokenTTL = 30 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the bearer tokens used by the JSON API.
type TokenIssuer struct {
	signingKey []byte
	now        func() time.Time
}

func NewTokenIssuer(signingKey string) *TokenIssuer {
	return &TokenIssuer{
		signingKey: []byte(signingKey),
		now:        time.Now,
	}
}

func (t *TokenIssuer) Issue(user model.Users) (string, error) {
	now := t.now()

	claims := Claims{
		UserID:   user.UserID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.signingKey)
}

func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(func() time.Time {
		return t.now()
	}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
