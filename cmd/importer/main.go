package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"zapstore/internal/backend"
	"zapstore/internal/config"
	"zapstore/internal/importer"
	"zapstore/internal/infrastructure/kafka"
	"zapstore/internal/persist"
	"zapstore/internal/store"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a product or category CSV file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	kind, err := importer.DetectKind(f)
	if err != nil {
		logger.Fatalf("detect %s: %v", filePath, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		logger.Fatalf("rewind file: %v", err)
	}

	slots, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open %s backend: %v", cfg.Backend, err)
	}
	defer slots.Close()

	persister := persist.New(slots.Slots, logger)
	st := store.New(persister.Load(ctx), persister, kafka.Noop{}, logger)

	start := time.Now()
	count, err := importer.NewCSVImporter(f, st, st).Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d rows: %v", count, err)
	}

	fmt.Printf("Imported %d %s into %s backend in %s\n", count, kind, cfg.Backend, time.Since(start).Truncate(time.Millisecond))
}
