// Command migrate creates the inquiry tables and exits. The API server does
// the same at startup; this is for provisioning a database ahead of a
// deploy.
package main

import (
	stdlog "log"

	"formintake/internal/config"
	"formintake/internal/database"
	"formintake/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	log, err := logging.New(cfg.App.Debug)
	if err != nil {
		stdlog.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		log.Fatalw("Failed to initialize database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	database.Migrate(db, log)
	log.Infow("Schema initialization finished")
}
