package storage

import (
	"context"
	"testing"

	"rssNotifier/internal/domain/entity"
)

func TestMemoryCheckpoint_GetPut(t *testing.T) {
	repo := NewMemoryCheckpointRepository()
	ctx := context.Background()

	got, err := repo.Get(ctx, entity.LastSeenTimestampKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != entity.StoredAbsent {
		t.Errorf("expected absent, got %v", got.Kind)
	}

	if err := repo.Put(ctx, entity.LastSeenTimestampKey, 1771416000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = repo.Get(ctx, entity.LastSeenTimestampKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != entity.StoredFound || got.Number != 1771416000 {
		t.Errorf("expected found 1771416000, got %v %d", got.Kind, got.Number)
	}
}

func TestMemoryCheckpoint_Overwrite(t *testing.T) {
	repo := NewMemoryCheckpointRepository()
	ctx := context.Background()

	_ = repo.Put(ctx, entity.LastSeenArticleIDKey, 7915)
	_ = repo.Put(ctx, entity.LastSeenArticleIDKey, 7913)

	got, _ := repo.Get(ctx, entity.LastSeenArticleIDKey)
	if got.Number != 7913 {
		t.Errorf("expected unconditional overwrite to 7913, got %d", got.Number)
	}
}

func TestMemoryCheckpoint_KeysAreIndependent(t *testing.T) {
	repo := NewMemoryCheckpointRepository()
	ctx := context.Background()

	_ = repo.Put(ctx, entity.LastSeenArticleIDKey, 7915)

	got, _ := repo.Get(ctx, entity.LastSeenTimestampKey)
	if got.Kind != entity.StoredAbsent {
		t.Errorf("expected other key to stay absent, got %v", got.Kind)
	}
}

func TestMemoryCheckpoint_RawValues(t *testing.T) {
	repo := NewMemoryCheckpointRepository().(*memoryCheckpoint)
	ctx := context.Background()

	repo.SetRaw("nil", nil)
	repo.SetRaw("string", "invalid")
	repo.SetRaw("float", 12.7)

	tests := []struct {
		key  string
		kind entity.StoredValueKind
	}{
		{"nil", entity.StoredAbsent},
		{"string", entity.StoredInvalidType},
		{"float", entity.StoredFound},
	}
	for _, tt := range tests {
		got, err := repo.Get(ctx, tt.key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Kind != tt.kind {
			t.Errorf("%s: expected %v, got %v", tt.key, tt.kind, got.Kind)
		}
	}
}
