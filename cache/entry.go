package cache

import "time"

type Entry struct {
	Value      string
	RecordedAt time.Time
}

// Age reports how long ago the entry was recorded relative to now.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.RecordedAt)
}
