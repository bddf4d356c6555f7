package rss

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const defaultUserAgent = "rssNotifier/1.0"

type feedRepository struct {
	parser *gofeed.Parser
}

func NewFeedRepository(timeout time.Duration) repository.FeedRepository {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = defaultUserAgent

	return &feedRepository{
		parser: parser,
	}
}

// Fetch keeps the feed's own item order. Items without a parseable date are
// kept with a zero Published time so the identity strategy can reject them.
func (r *feedRepository) Fetch(ctx context.Context, url string) ([]*entity.FeedEntry, error) {
	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	entries := make([]*entity.FeedEntry, 0, len(feed.Items))

	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		entry := entity.NewFeedEntry(
			plainText(item.Title),
			strings.TrimSpace(item.Link),
			published,
			item.Published,
		)

		entries = append(entries, entry)
	}

	return entries, nil
}

// plainText flattens titles that carry inline markup.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
