package service

import (
	"fmt"
	"slices"

	"rssNotifier/internal/domain/entity"
)

// OutputOrder decides how the new entries of a run are listed.
type OutputOrder string

const (
	// OrderNewestFirst keeps the feed's scan order.
	OrderNewestFirst OutputOrder = "newest_first"
	// OrderOldestFirst reverses it into a chronological list.
	OrderOldestFirst OutputOrder = "oldest_first"
)

func ParseOutputOrder(s string) (OutputOrder, error) {
	switch o := OutputOrder(s); o {
	case OrderNewestFirst, OrderOldestFirst:
		return o, nil
	default:
		return "", fmt.Errorf("unknown output order: %q", s)
	}
}

type NewItemFilter struct {
	Extractor IdentityExtractor
	Order     OutputOrder
}

func NewNewItemFilter(extractor IdentityExtractor, order OutputOrder) *NewItemFilter {
	return &NewItemFilter{Extractor: extractor, Order: order}
}

func (f *NewItemFilter) Filter(entries []*entity.FeedEntry, lastSeen int64) ([]*entity.FeedEntry, error) {
	return FilterNew(entries, lastSeen, f.Extractor, f.Order)
}

// FilterNew scans entries newest-first and stops at the first one whose key is
// <= lastSeen. Everything visited before the stop is new.
//
// The early stop assumes the feed is ordered newest-first with non-increasing
// keys. If it is not, entries after a false stop are missed; this is a known
// limitation of the scan, not something it tries to repair.
func FilterNew(entries []*entity.FeedEntry, lastSeen int64, extractor IdentityExtractor, order OutputOrder) ([]*entity.FeedEntry, error) {
	var newEntries []*entity.FeedEntry
	for _, entry := range entries {
		key, err := extractor.Key(entry)
		if err != nil {
			return nil, err
		}
		if key <= lastSeen {
			break
		}
		newEntries = append(newEntries, entry)
	}

	if order == OrderOldestFirst {
		slices.Reverse(newEntries)
	}
	return newEntries, nil
}
