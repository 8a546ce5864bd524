package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AccountResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

type GroupResponse struct {
	GroupID   string `json:"group_id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type CreateGroupResponse struct {
	Group GroupResponse `json:"group"`
}

type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

type RankedMemberResponse struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	TodayMinutes  int    `json:"today_minutes"`
	ScreenTime    string `json:"screen_time"`
	IsCurrentUser bool   `json:"is_current_user"`
}

type GroupMembersResponse struct {
	GroupID string                 `json:"group_id"`
	Members []RankedMemberResponse `json:"members"`
}

type AddMemberRequest struct {
	GroupID  string `json:"group_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type SendInviteRequest struct {
	GroupID  string `json:"group_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type InviteResponse struct {
	InviteID  string `json:"invite_id"`
	GroupID   string `json:"group_id"`
	InviterID string `json:"inviter_id"`
	InviteeID string `json:"invitee_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type SendInviteResponse struct {
	Invite InviteResponse `json:"invite"`
}

type PendingInviteResponse struct {
	InviteID        string `json:"invite_id"`
	GroupID         string `json:"group_id"`
	GroupName       string `json:"group_name"`
	InviterUsername string `json:"inviter_username"`
	CreatedAt       string `json:"created_at"`
}

type PendingInvitesResponse struct {
	Invites []PendingInviteResponse `json:"invites"`
}

type InviteActionRequest struct {
	InviteID string `json:"invite_id" validate:"required"`
}

type ReportScreenTimeRequest struct {
	DurationMinutes int `json:"duration_minutes" validate:"min=0,max=1440"`
}
