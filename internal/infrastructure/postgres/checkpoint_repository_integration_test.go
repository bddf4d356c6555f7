//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"rssNotifier/internal/domain/entity"
)

func setupTestRepo(t *testing.T) (*CheckpointRepository, context.Context) {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	table := fmt.Sprintf("checkpoint_test_%d", time.Now().UnixNano())

	repo, err := Connect(ctx, databaseURL, table)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() {
		_, _ = repo.pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+repo.table)
		repo.Close()
	})

	return repo, ctx
}

func TestCheckpointRepository_RoundTrip(t *testing.T) {
	repo, ctx := setupTestRepo(t)

	got, err := repo.Get(ctx, entity.LastSeenArticleIDKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Kind != entity.StoredAbsent {
		t.Fatalf("expected absent checkpoint, got %v", got.Kind)
	}

	for _, v := range []int64{7913, 7915} {
		if err := repo.Put(ctx, entity.LastSeenArticleIDKey, v); err != nil {
			t.Fatalf("Put(%d) error = %v", v, err)
		}
		got, err := repo.Get(ctx, entity.LastSeenArticleIDKey)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Kind != entity.StoredFound || got.Number != v {
			t.Errorf("Get() = %+v, want Found(%d)", got, v)
		}
	}
}

func TestCheckpointRepository_CorruptValue(t *testing.T) {
	repo, ctx := setupTestRepo(t)

	_, err := repo.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (setting_name, value) VALUES ($1, '"abc"'::jsonb)`, repo.table),
		entity.LastSeenTimestampKey,
	)
	if err != nil {
		t.Fatalf("insert error = %v", err)
	}

	got, err := repo.Get(ctx, entity.LastSeenTimestampKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Kind != entity.StoredInvalidType {
		t.Errorf("expected invalid type, got %v", got.Kind)
	}
}
