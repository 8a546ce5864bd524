package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

type Invite struct {
	ID        string
	GroupID   string
	InviterID string
	InviteeID string
	Status    InviteStatus
	CreatedAt time.Time
}

// PendingInvite is an invite enriched with display fields for the invitee.
type PendingInvite struct {
	Invite
	GroupName       string
	InviterUsername string
}
