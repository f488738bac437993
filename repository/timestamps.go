package repository

import (
	"time"

	"lmsmodules/models"
)

// Clock returns the current time for audit stamping.
type Clock func() time.Time

// Timestamps are stored as DATETIME(3).
const timestampPrecision = time.Millisecond

func systemClock() time.Time {
	return time.Now()
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(timestampPrecision)
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

// stampCreated sets both timestamps of a new record.
func stampCreated(a *models.Audit, now time.Time) {
	now = normalize(now)
	a.CreatedAt = now
	a.UpdatedAt = now
}

// stampUpdated moves updated_at forward; it never stays equal or goes back,
// even if the clock does.
func stampUpdated(a *models.Audit, now time.Time) {
	now = normalize(now)
	if !now.After(a.UpdatedAt) {
		now = normalize(a.UpdatedAt).Add(timestampPrecision)
	}
	a.UpdatedAt = now
}

func stampFunctions(fns []models.ModuleFunction, now time.Time) {
	now = normalize(now)
	for i := range fns {
		fns[i].CreatedAt = now
		fns[i].UpdatedAt = now
	}
}
