package main

import (
	"database/sql"
	"embed"
	"log"
	"placelists/internal/app"
	"placelists/internal/config"
	"placelists/internal/repo"
	"placelists/internal/secrets"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

//go:embed all:static
var staticFS embed.FS

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	s := secrets.New()

	db, err := sql.Open("postgres", s.DatabaseUrl())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			log.Fatalf("failed to close db: %+v", err)
		}
	}(db)

	r := repo.New(db)

	cfg := config.NewFromEnvironment(r, s, staticFS)

	a := app.New(&cfg)

	log.Fatal(a.Listen(cfg.Host + ":" + cfg.Port))
}
