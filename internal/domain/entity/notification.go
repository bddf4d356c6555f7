package entity

import (
	"fmt"
	"strings"
	"time"
)

const DisplayLayout = "2006/01/02 15:04"

type Notification struct {
	Subject string
	Body    string
}

// Text は件名と本文をひとつのテキストにまとめます
func (n *Notification) Text() string {
	return n.Subject + "\n\n" + n.Body
}

// TimeFormatter は通知に載せる公開日の表示形式
type TimeFormatter interface {
	Format(entry *FeedEntry) string
}

// FixedZoneFormatter converts the stored UTC time into a fixed-offset zone.
type FixedZoneFormatter struct {
	Location *time.Location
	Layout   string
}

func NewFixedZoneFormatter(offsetHours int) *FixedZoneFormatter {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	if offsetHours == 9 {
		name = "JST"
	}
	return &FixedZoneFormatter{
		Location: time.FixedZone(name, offsetHours*60*60),
		Layout:   DisplayLayout,
	}
}

func (f *FixedZoneFormatter) Format(entry *FeedEntry) string {
	if !entry.HasPublished() {
		return entry.PublishedRaw
	}
	layout := f.Layout
	if layout == "" {
		layout = DisplayLayout
	}
	return entry.Published.In(f.Location).Format(layout)
}

// RawFormatter passes the feed's own date string through untouched.
type RawFormatter struct{}

func (RawFormatter) Format(entry *FeedEntry) string {
	return entry.PublishedRaw
}

func NewDigestNotification(siteName string, entries []*FeedEntry, tf TimeFormatter) *Notification {
	var b strings.Builder
	fmt.Fprintf(&b, "新しい%sのニュースがあります！\n\n", siteName)
	for _, entry := range entries {
		fmt.Fprintf(&b, "タイトル: %s\n", entry.Title)
		fmt.Fprintf(&b, "URL: %s\n", entry.Link)
		fmt.Fprintf(&b, "公開日: %s\n\n", tf.Format(entry))
	}

	return &Notification{
		Subject: fmt.Sprintf("【%sニュース】新着ニュース (%d件) があります！", siteName, len(entries)),
		Body:    b.String(),
	}
}
