package repository

import (
	"context"

	"rssNotifier/internal/domain/entity"
)

// FeedRepository returns feed entries newest-first, as the feed lists them.
type FeedRepository interface {
	Fetch(ctx context.Context, url string) ([]*entity.FeedEntry, error)
}
