package main

import (
	"context"
	"flag"
	"log"
	"os"

	"zapstore/internal/backend"
	"zapstore/internal/config"
	"zapstore/internal/seed"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a YAML catalog; the built-in demo catalog is used when empty")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cat := seed.Default()
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			logger.Fatalf("open file: %v", err)
		}
		cat, err = seed.Parse(f)
		f.Close()
		if err != nil {
			logger.Fatalf("parse %s: %v", filePath, err)
		}
	}

	ctx := context.Background()
	slots, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open %s backend: %v", cfg.Backend, err)
	}
	defer slots.Close()

	if err := seed.Apply(ctx, slots.Slots, cat); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seed applied: %d categories, %d products", len(cat.Categories), len(cat.Products))
}
