package config

import (
	"embed"
	"os"
	"placelists/internal/constants"
	"placelists/internal/repo"
	"placelists/internal/secrets"
)

// Config is the global config for the app router. Host and Port are needed for absolute URL generation.
type Config struct {
	Env              string
	Host             string
	Port             string
	Repo             repo.Repository
	TokenSigningKey  string
	CookieSecure     bool
	DatabaseUrl      string
	DisableLogColors bool
	EnableStackTrace bool
	StaticFS         embed.FS
}

func NewFromEnvironment(r repo.Repository, s secrets.Secrets, staticFS embed.FS) Config {
	env := os.Getenv("ENV")

	return Config{
		Env:              env,
		Host:             os.Getenv("HOST"),
		Port:             os.Getenv("PORT"),
		Repo:             r,
		TokenSigningKey:  s.TokenSigningKey(),
		CookieSecure:     env == constants.EnvProduction,
		DatabaseUrl:      s.DatabaseUrl(),
		DisableLogColors: env == constants.EnvProduction,
		EnableStackTrace: env == constants.EnvDevelopment,
		StaticFS:         staticFS,
	}
}

// NewTestConfig builds a config without a database: sessions live in memory
// and the given repository backs everything else.
func NewTestConfig(r repo.Repository) Config {
	return Config{
		Env:             constants.EnvTest,
		Repo:            r,
		TokenSigningKey: "test-signing-key",
	}
}
