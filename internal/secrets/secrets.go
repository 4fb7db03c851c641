package secrets

import (
	"os"
)

type Secrets interface {
	DatabaseUrl() string
	TokenSigningKey() string
}

func New() Secrets {
	return &secrets{
		databaseUrl:     os.Getenv("DATABASE_URL"),
		tokenSigningKey: os.Getenv("TOKEN_SIGNING_KEY"),
	}
}

type secrets struct {
	databaseUrl     string
	tokenSigningKey string
}

func (s secrets) DatabaseUrl() string {
	return s.databaseUrl
}

func (s secrets) TokenSigningKey() string {
	return s.tokenSigningKey
}
