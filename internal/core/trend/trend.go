// Package trend buckets timestamped records into calendar months
package trend

import (
	"sort"
	"time"
)

// Bucket is one calendar month of activity
// Label pairs the abbreviated month with a 2-digit year, e.g. "Jan 24"
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// monthOrder fixes the chronological position of each abbreviation
// buckets sort by (year, this index), never by string collation
var monthOrder = map[time.Month]int{
	time.January:   1,
	time.February:  2,
	time.March:     3,
	time.April:     4,
	time.May:       5,
	time.June:      6,
	time.July:      7,
	time.August:    8,
	time.September: 9,
	time.October:   10,
	time.November:  11,
	time.December:  12,
}

type bucketKey struct {
	year  int
	month time.Month
}

// Monthly collapses timestamps into per-month buckets ordered from the
// earliest month to the latest
//
// Zero timestamps are skipped entirely rather than collected under a
// sentinel label; the sum of bucket counts therefore equals the number
// of usable inputs. Two records in the same month of different years
// never share a bucket
func Monthly(stamps []time.Time) []Bucket {
	counts := make(map[bucketKey]int)
	for _, ts := range stamps {
		if ts.IsZero() {
			continue
		}
		counts[bucketKey{year: ts.Year(), month: ts.Month()}]++
	}

	keys := make([]bucketKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return monthOrder[keys[i].month] < monthOrder[keys[j].month]
	})

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
		out = append(out, Bucket{Label: label, Count: counts[k]})
	}
	return out
}
