// Package backend opens the slot repository selected by configuration.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"zapstore/internal/config"
	"zapstore/internal/db"
	"zapstore/internal/infrastructure/kafka"
	"zapstore/internal/migrate"
	"zapstore/internal/repository/slot"
	"zapstore/internal/store"

	"github.com/redis/go-redis/v9"
)

// Backend is an opened slot store plus its health probe.
type Backend struct {
	Slots slot.Repository
	Ready func(ctx context.Context) error
	close func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects to cfg.Backend. Postgres is migrated on open so a fresh
// database works without running cmd/migrate first.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (*Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Printf("using in-memory slots; state is lost on exit")
		return &Backend{Slots: slot.NewMemory(), Ready: func(context.Context) error { return nil }}, nil

	case config.BackendSQLite:
		sqlDB, err := slot.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		repo, err := slot.NewSQLite(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		return &Backend{Slots: repo, Ready: sqlDB.PingContext, close: closer(logger, sqlDB)}, nil

	case config.BackendPostgres:
		if err := migrate.Apply(ctx, cfg.DBConnString); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		return &Backend{
			Slots: slot.NewPostgres(pool),
			Ready: func(ctx context.Context) error { return db.Ping(ctx, pool) },
			close: pool.Close,
		}, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return &Backend{
			Slots: slot.NewRedis(client, cfg.SlotPrefix),
			Ready: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: func() { _ = client.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

func closer(logger *log.Logger, sqlDB *sql.DB) func() {
	return func() {
		if err := sqlDB.Close(); err != nil {
			logger.Printf("close sqlite: %v", err)
		}
	}
}

// Publisher is an order event sink that must be closed on shutdown.
type Publisher interface {
	store.Publisher
	Close() error
}

// NewPublisher returns a Kafka producer when brokers are configured and a
// no-op sink otherwise.
func NewPublisher(cfg config.Config, logger *log.Logger) Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return kafka.Noop{}
	}
	logger.Printf("publishing order events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	return kafka.NewProducer(logger, cfg.KafkaBrokers, cfg.KafkaTopic)
}
