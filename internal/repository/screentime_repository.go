package repository

import (
	"context"
	"time"
)

type ScreenTimeRepository interface {
	// GetMinutesForUsers returns today's minutes keyed by user id. Users
	// without an entry for the date are absent from the map.
	GetMinutesForUsers(ctx context.Context, userIDs []string, date time.Time) (map[string]int, error)
	Upsert(ctx context.Context, userID string, date time.Time, durationMinutes int) error
}
