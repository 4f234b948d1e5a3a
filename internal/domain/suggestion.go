package domain

import "time"

type CourseRecord struct {
	ID       int64
	FullName string
}

type IndexSnapshot struct {
	SyncedAt   time.Time
	Generation int64
	Table      string
	Courses    []string
}

func (s IndexSnapshot) Empty() bool {
	return s.Table == ""
}

// IsStale reports whether the index was synced longer than maxAge before
// now. A snapshot that never synced is always stale.
func (s IndexSnapshot) IsStale(now time.Time, maxAge time.Duration) bool {
	if s.SyncedAt.IsZero() {
		return true
	}

	if maxAge <= 0 {
		return false
	}

	return now.Sub(s.SyncedAt) > maxAge
}
