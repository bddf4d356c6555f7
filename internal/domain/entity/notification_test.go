package entity

import (
	"strings"
	"testing"
	"time"
)

func TestNewDigestNotification(t *testing.T) {
	entries := []*FeedEntry{
		NewFeedEntry("News Title", "https://example.tld/news/7915/", time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC), "Wed, 18 Feb 2026 12:00:00 +0000"),
		NewFeedEntry("Older Title", "https://example.tld/news/7914/", time.Date(2026, 2, 17, 15, 30, 0, 0, time.UTC), "Tue, 17 Feb 2026 15:30:00 +0000"),
	}

	n := NewDigestNotification("スピッツ", entries, NewFixedZoneFormatter(9))

	expectedSubject := "【スピッツニュース】新着ニュース (2件) があります！"
	if n.Subject != expectedSubject {
		t.Errorf("expected subject '%s', got '%s'", expectedSubject, n.Subject)
	}

	expectedBody := "新しいスピッツのニュースがあります！\n\n" +
		"タイトル: News Title\nURL: https://example.tld/news/7915/\n公開日: 2026/02/18 21:00\n\n" +
		"タイトル: Older Title\nURL: https://example.tld/news/7914/\n公開日: 2026/02/18 00:30\n\n"
	if n.Body != expectedBody {
		t.Errorf("unexpected body:\n%s\nexpected:\n%s", n.Body, expectedBody)
	}
}

func TestNewDigestNotification_RawDates(t *testing.T) {
	entries := []*FeedEntry{
		NewFeedEntry("News Title", "https://example.tld/news/1", time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC), "2026-02-18"),
	}

	n := NewDigestNotification("Example", entries, RawFormatter{})

	if !strings.Contains(n.Body, "公開日: 2026-02-18\n") {
		t.Errorf("expected raw date in body, got '%s'", n.Body)
	}
	if !strings.Contains(n.Subject, "(1件)") {
		t.Errorf("expected count in subject, got '%s'", n.Subject)
	}
}

func TestFixedZoneFormatter(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		entry    *FeedEntry
		expected string
	}{
		{
			name:     "jst crosses midnight",
			offset:   9,
			entry:    NewFeedEntry("t", "l", time.Date(2026, 12, 31, 15, 0, 0, 0, time.UTC), "raw"),
			expected: "2027/01/01 00:00",
		},
		{
			name:     "utc",
			offset:   0,
			entry:    NewFeedEntry("t", "l", time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), "raw"),
			expected: "2026/01/02 03:04",
		},
		{
			name:     "negative offset",
			offset:   -5,
			entry:    NewFeedEntry("t", "l", time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), "raw"),
			expected: "2026/01/01 22:04",
		},
		{
			name:     "missing date falls back to raw",
			offset:   9,
			entry:    NewFeedEntry("t", "l", time.Time{}, "someday"),
			expected: "someday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFixedZoneFormatter(tt.offset).Format(tt.entry)
			if got != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestNotification_Text(t *testing.T) {
	n := &Notification{Subject: "subject", Body: "body"}
	if n.Text() != "subject\n\nbody" {
		t.Errorf("unexpected text: %q", n.Text())
	}
}
