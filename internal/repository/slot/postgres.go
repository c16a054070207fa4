package slot

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"zapstore/internal/domain"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUpsert = `
INSERT INTO slots (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = EXCLUDED.updated_at
`

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres expects the slots table created by internal/migrate.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM slots WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *postgresRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, pgUpsert, key, string(value))
	return err
}

func (r *postgresRepo) SetMany(ctx context.Context, values map[string][]byte) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, r.pool)
	if err != nil {
		return fmt.Errorf("begin slots tx: %w", err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	pgTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return errors.New("unexpected transaction type")
	}
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if _, err = pgTx.Exec(ctx, pgUpsert, key, string(values[key])); err != nil {
			return fmt.Errorf("write slot %s: %w", key, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit slots tx: %w", err)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM slots WHERE key = $1`, key)
	return err
}
