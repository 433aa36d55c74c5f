// Package rank merges per-domain ranked projections into one global ranking
package rank

import (
	"sort"
	"time"
)

// Item is a view-count projection of a content record
type Item struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Views int64  `json:"views"`
}

// Entry is a timestamp projection used for cross-domain recency
type Entry struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// MergeTop combines already-ranked per-domain lists into a single list
// sorted by views descending and truncated to k
//
// The inputs are concatenated and stable-sorted in one pass, O(n log n)
// over the combined set; each input is small (top-k per domain) so a
// k-way merge buys nothing here. Ties keep their combined input order.
// When fewer than k items exist in total, all of them are returned
func MergeTop(k int, lists ...[]Item) []Item {
	if k <= 0 {
		return []Item{}
	}
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]Item, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Views > merged[j].Views
	})
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged
}

// MergeRecent combines per-domain recency lists into a single list sorted
// by creation time descending and truncated to k, with the same stability
// contract as MergeTop
func MergeRecent(k int, lists ...[]Entry) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]Entry, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged
}
