package application

import (
	"context"
	"fmt"

	"rssNotifier/internal/domain/apperror"
	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

// CheckpointManager reads and writes the last-seen key of one identity strategy.
type CheckpointManager struct {
	repo repository.CheckpointRepository
	key  string
}

func NewCheckpointManager(repo repository.CheckpointRepository, key string) *CheckpointManager {
	return &CheckpointManager{repo: repo, key: key}
}

func (m *CheckpointManager) Key() string {
	return m.key
}

// Get returns 0 when nothing has been stored yet, so the first run treats
// every entry as new. A stored value that is not a number is an error.
func (m *CheckpointManager) Get(ctx context.Context) (int64, error) {
	value, err := m.repo.Get(ctx, m.key)
	if err != nil {
		return 0, fmt.Errorf("failed to get checkpoint %s: %w", m.key, err)
	}

	switch value.Kind {
	case entity.StoredAbsent:
		return 0, nil
	case entity.StoredFound:
		return value.Number, nil
	default:
		return 0, fmt.Errorf("%w: unexpected type for %s: %s", apperror.ErrInvalidCheckpointType, m.key, value.Description)
	}
}

// Set overwrites the stored value. There is no compare-and-swap.
func (m *CheckpointManager) Set(ctx context.Context, value int64) error {
	if err := m.repo.Put(ctx, m.key, value); err != nil {
		return fmt.Errorf("failed to save checkpoint %s: %w", m.key, err)
	}
	return nil
}
