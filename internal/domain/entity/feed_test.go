package entity

import (
	"testing"
	"time"
)

func TestNewFeedEntry(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	published := time.Date(2026, 2, 18, 21, 0, 0, 0, jst)
	entry := NewFeedEntry("Test Title", "https://example.tld/news/1/", published, "Wed, 18 Feb 2026 12:00:00 +0000")

	if entry.Title != "Test Title" {
		t.Errorf("expected title 'Test Title', got '%s'", entry.Title)
	}
	if entry.Link != "https://example.tld/news/1/" {
		t.Errorf("expected link 'https://example.tld/news/1/', got '%s'", entry.Link)
	}
	if entry.Published.Location() != time.UTC {
		t.Errorf("expected published time normalized to UTC, got %v", entry.Published.Location())
	}
	if !entry.Published.Equal(published) {
		t.Errorf("expected %v, got %v", published, entry.Published)
	}
	if entry.PublishedRaw != "Wed, 18 Feb 2026 12:00:00 +0000" {
		t.Errorf("unexpected raw date: %s", entry.PublishedRaw)
	}
}

func TestFeedEntry_HasPublished(t *testing.T) {
	withDate := NewFeedEntry("A", "https://example.tld/a", time.Now(), "")
	if !withDate.HasPublished() {
		t.Error("expected entry with date to report HasPublished")
	}

	withoutDate := NewFeedEntry("B", "https://example.tld/b", time.Time{}, "")
	if withoutDate.HasPublished() {
		t.Error("expected entry without date to report !HasPublished")
	}
}
