package repository

import (
	"context"

	"rssNotifier/internal/domain/entity"
)

// CheckpointRepository stores a single scalar per key.
// Get reports a missing key as entity.Absent, not as an error; the error
// return is reserved for the store itself failing.
type CheckpointRepository interface {
	Get(ctx context.Context, key string) (entity.StoredValue, error)
	Put(ctx context.Context, key string, value int64) error
}
