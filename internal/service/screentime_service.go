package service

import "context"

type ScreenTimeService interface {
	// ReportToday upserts the caller's screen time for the current date.
	ReportToday(ctx context.Context, userID string, durationMinutes int) error
}
