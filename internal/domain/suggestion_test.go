package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIndexSnapshotStaleDetection(t *testing.T) {
	syncedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	s := IndexSnapshot{SyncedAt: syncedAt, Table: "courses_g1"}

	assert.False(t, s.IsStale(syncedAt.Add(5*time.Minute), 10*time.Minute))
	assert.True(t, s.IsStale(syncedAt.Add(11*time.Minute), 10*time.Minute))
}

func TestIndexSnapshotStaleDetectionNonPositiveMaxAge(t *testing.T) {
	syncedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	s := IndexSnapshot{SyncedAt: syncedAt}

	assert.False(t, s.IsStale(syncedAt.Add(24*time.Hour), 0))
	assert.False(t, s.IsStale(syncedAt.Add(24*time.Hour), -1*time.Minute))
}

func TestIndexSnapshotNeverSyncedIsStale(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, IndexSnapshot{}.IsStale(now, 10*time.Minute))
	assert.True(t, IndexSnapshot{}.Empty())
}
