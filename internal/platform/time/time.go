// Package time contains time related helpers
package time

import "time"

// DateLayout is the wire format for calendar dates in report payloads
const DateLayout = "2006-01-02"

// Date formats t as a calendar date, or "" when t is zero
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
