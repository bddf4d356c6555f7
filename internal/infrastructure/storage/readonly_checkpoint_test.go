package storage

import (
	"context"
	"testing"

	"rssNotifier/internal/domain/entity"
)

func TestReadOnlyCheckpoint(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryCheckpointRepository()
	if err := inner.Put(ctx, entity.LastSeenTimestampKey, 100); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	ro := NewReadOnlyCheckpointRepository(inner)

	got, err := ro.Get(ctx, entity.LastSeenTimestampKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Kind != entity.StoredFound || got.Number != 100 {
		t.Errorf("expected Found(100), got %+v", got)
	}

	if err := ro.Put(ctx, entity.LastSeenTimestampKey, 200); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, _ = inner.Get(ctx, entity.LastSeenTimestampKey)
	if got.Number != 100 {
		t.Errorf("expected inner store untouched at 100, got %d", got.Number)
	}
}
