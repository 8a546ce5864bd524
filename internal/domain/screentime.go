package domain

import "time"

// ScreenTimeEntry holds one user's usage for one calendar date.
type ScreenTimeEntry struct {
	UserID          string
	Date            time.Time
	DurationMinutes int
}
