package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"zapstore/internal/backend"
	"zapstore/internal/config"
	"zapstore/internal/httpserver"
	"zapstore/internal/persist"
	"zapstore/internal/service/auth"
	"zapstore/internal/service/catalog"
	"zapstore/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	slots, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open %s backend: %v", cfg.Backend, err)
	}
	defer slots.Close()

	events := backend.NewPublisher(cfg, logger)
	defer func() {
		if err := events.Close(); err != nil {
			logger.Printf("close publisher: %v", err)
		}
	}()

	persister := persist.New(slots.Slots, logger)
	st := store.New(persister.Load(ctx), persister, events, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, slots.Ready, httpserver.Deps{
		Store:   st,
		Catalog: catalog.New(st),
		Auth:    auth.New(st, cfg.LoginDelay),
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
