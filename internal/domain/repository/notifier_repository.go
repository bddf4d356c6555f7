package repository

import (
	"context"

	"rssNotifier/internal/domain/entity"
)

type NotifierRepository interface {
	Publish(ctx context.Context, destination string, notification *entity.Notification) error
}
