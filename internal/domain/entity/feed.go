package entity

import "time"

// FeedEntry はフィードから取得した1件の記事
type FeedEntry struct {
	Title string
	Link  string
	// Published は UTC の公開日時。フィードに日付がない場合はゼロ値
	Published time.Time
	// PublishedRaw はフィードに書かれた日付文字列そのもの
	PublishedRaw string
}

func NewFeedEntry(title, link string, published time.Time, publishedRaw string) *FeedEntry {
	if !published.IsZero() {
		published = published.UTC()
	}
	return &FeedEntry{
		Title:        title,
		Link:         link,
		Published:    published,
		PublishedRaw: publishedRaw,
	}
}

func (f *FeedEntry) HasPublished() bool {
	return !f.Published.IsZero()
}
