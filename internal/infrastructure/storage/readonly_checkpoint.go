package storage

import (
	"context"
	"log"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

type readOnlyCheckpoint struct {
	inner repository.CheckpointRepository
}

// NewReadOnlyCheckpointRepository reads through to inner and drops writes.
// Used for dry runs so the stored checkpoint is left as it was.
func NewReadOnlyCheckpointRepository(inner repository.CheckpointRepository) repository.CheckpointRepository {
	return &readOnlyCheckpoint{inner: inner}
}

func (c *readOnlyCheckpoint) Get(ctx context.Context, key string) (entity.StoredValue, error) {
	return c.inner.Get(ctx, key)
}

func (c *readOnlyCheckpoint) Put(ctx context.Context, key string, value int64) error {
	log.Printf("Dry run: not saving %s = %d", key, value)
	return nil
}
