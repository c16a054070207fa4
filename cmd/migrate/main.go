package main

import (
	"context"
	"log"
	"os"

	"zapstore/internal/config"
	"zapstore/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	if err := migrate.Apply(ctx, cfg.DBConnString); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	version, dirty, err := migrate.Version(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("read version: %v", err)
	}
	logger.Printf("migrations applied (version %d, dirty %t)", version, dirty)
}
