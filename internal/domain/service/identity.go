package service

import (
	"fmt"
	"strconv"
	"strings"

	"rssNotifier/internal/domain/apperror"
	"rssNotifier/internal/domain/entity"
)

// IdentityExtractor derives the comparison key of an entry. Keys must grow
// with recency for the new-item scan to work.
type IdentityExtractor interface {
	Key(entry *entity.FeedEntry) (int64, error)
	Strategy() entity.IdentityStrategy
}

func NewIdentityExtractor(strategy entity.IdentityStrategy) (IdentityExtractor, error) {
	switch strategy {
	case entity.StrategyTimestamp:
		return TimestampExtractor{}, nil
	case entity.StrategyNumericID:
		return NumericIDExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown identity strategy %q", apperror.ErrConfiguration, string(strategy))
	}
}

// TimestampExtractor keys entries by publication time in UTC epoch seconds.
type TimestampExtractor struct{}

func (TimestampExtractor) Strategy() entity.IdentityStrategy {
	return entity.StrategyTimestamp
}

func (TimestampExtractor) Key(entry *entity.FeedEntry) (int64, error) {
	if !entry.HasPublished() {
		return 0, fmt.Errorf("%w: %q has no publication time (raw %q)", apperror.ErrMalformedEntry, entry.Link, entry.PublishedRaw)
	}
	return entry.Published.UTC().Unix(), nil
}

// NumericIDExtractor keys entries by the trailing path segment of their link,
// e.g. https://spitz-web.com/news/7913/ -> 7913.
type NumericIDExtractor struct{}

func (NumericIDExtractor) Strategy() entity.IdentityStrategy {
	return entity.StrategyNumericID
}

func (NumericIDExtractor) Key(entry *entity.FeedEntry) (int64, error) {
	return ArticleIDFromLink(entry.Link)
}

func ArticleIDFromLink(link string) (int64, error) {
	trimmed := strings.TrimSuffix(link, "/")
	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", apperror.ErrMalformedLink, link, err)
	}
	return id, nil
}
