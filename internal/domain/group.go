package domain

import (
	"fmt"
	"time"
)

type Group struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

type Membership struct {
	GroupID  string
	UserID   string
	JoinedAt time.Time
}

// RankedMember is a group member enriched with today's screen time.
// Rank 1 is the member with the lowest minutes.
type RankedMember struct {
	UserID        string
	Username      string
	JoinedAt      time.Time
	TodayMinutes  int
	IsCurrentUser bool
}

func (m *RankedMember) ScreenTimeFormatted() string {
	hours := m.TodayMinutes / 60
	minutes := m.TodayMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
