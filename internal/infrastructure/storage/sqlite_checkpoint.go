package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"

	_ "modernc.org/sqlite"
)

type sqliteCheckpoint struct {
	db    *sql.DB
	table string
}

// NewSQLiteCheckpointRepository opens dbPath and keeps checkpoints in table.
// The value column is declared without a type so whatever was written is read
// back as-is, which lets a corrupt checkpoint surface as InvalidType.
func NewSQLiteCheckpointRepository(dbPath, table string) (repository.CheckpointRepository, error) {
	if table == "" {
		return nil, fmt.Errorf("checkpoint table name is empty")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	store := &sqliteCheckpoint{db: db, table: quoteIdentifier(table)}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (c *sqliteCheckpoint) initSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		setting_name TEXT PRIMARY KEY,
		value,
		updated_at INTEGER NOT NULL
	)`, c.table)

	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to execute schema query: %w", err)
	}
	return nil
}

func (c *sqliteCheckpoint) Get(ctx context.Context, key string) (entity.StoredValue, error) {
	var raw any
	err := c.db.QueryRowContext(
		ctx,
		fmt.Sprintf("SELECT value FROM %s WHERE setting_name = ?", c.table),
		key,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Absent(), nil
	}
	if err != nil {
		return entity.StoredValue{}, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return entity.StoredValueFrom(raw), nil
}

func (c *sqliteCheckpoint) Put(ctx context.Context, key string, value int64) error {
	_, err := c.db.ExecContext(
		ctx,
		fmt.Sprintf(`INSERT INTO %s (setting_name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(setting_name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, c.table),
		key,
		value,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	return nil
}

func (c *sqliteCheckpoint) Close() error {
	return c.db.Close()
}
