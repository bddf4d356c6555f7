// Package postgres keeps the checkpoint in a PostgreSQL table.
package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rssNotifier/internal/domain/entity"
)

// CheckpointRepository wraps a PostgreSQL connection pool. The value column
// is JSONB so a value written by hand as a string or object is read back as
// InvalidType instead of being coerced.
type CheckpointRepository struct {
	pool  *pgxpool.Pool
	table string
}

// Connect establishes a connection pool and creates the table when missing.
func Connect(ctx context.Context, databaseURL, table string) (*CheckpointRepository, error) {
	if table == "" {
		return nil, fmt.Errorf("checkpoint table name is empty")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &CheckpointRepository{pool: pool, table: pgx.Identifier{table}.Sanitize()}
	if err := repo.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

func (r *CheckpointRepository) initSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		setting_name TEXT PRIMARY KEY,
		value JSONB,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, r.table))
	return err
}

// Close closes the connection pool
func (r *CheckpointRepository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

func (r *CheckpointRepository) Get(ctx context.Context, key string) (entity.StoredValue, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT value FROM %s WHERE setting_name = $1`, r.table),
		key,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Absent(), nil
	}
	if err != nil {
		return entity.StoredValue{}, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return storedValueFromJSON(raw), nil
}

func (r *CheckpointRepository) Put(ctx context.Context, key string, value int64) error {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (setting_name, value)
		 VALUES ($1, $2)
		 ON CONFLICT (setting_name) DO UPDATE SET value = $2, updated_at = NOW()`, r.table),
		key, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// storedValueFromJSON decodes a JSONB column. SQL NULL arrives as nil.
func storedValueFromJSON(raw []byte) entity.StoredValue {
	if raw == nil {
		return entity.Absent()
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return entity.InvalidType(fmt.Sprintf("undecodable JSON: %v", err))
	}

	switch v.(type) {
	case string:
		return entity.InvalidType("string")
	case bool:
		return entity.InvalidType("bool")
	case map[string]any:
		return entity.InvalidType("object")
	case []any:
		return entity.InvalidType("array")
	}
	return entity.StoredValueFrom(v)
}
