package handler

import (
	"time"

	"github.com/sharansub/screensaway/internal/domain"
)

func domainAccountToHTTP(account *domain.Account) AccountResponse {
	return AccountResponse{
		UserID:   account.ID,
		Username: account.Username,
	}
}

func domainGroupToHTTP(group *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:   group.ID,
		Name:      group.Name,
		CreatedBy: group.CreatedBy,
		CreatedAt: group.CreatedAt.Format(time.RFC3339),
	}
}

func domainGroupsToHTTP(groups []*domain.Group) []GroupResponse {
	result := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		result = append(result, domainGroupToHTTP(group))
	}
	return result
}

func domainMembersToHTTP(members []*domain.RankedMember) []RankedMemberResponse {
	result := make([]RankedMemberResponse, 0, len(members))
	for i, member := range members {
		result = append(result, RankedMemberResponse{
			Rank:          i + 1,
			UserID:        member.UserID,
			Username:      member.Username,
			TodayMinutes:  member.TodayMinutes,
			ScreenTime:    member.ScreenTimeFormatted(),
			IsCurrentUser: member.IsCurrentUser,
		})
	}
	return result
}

func domainInviteToHTTP(invite *domain.Invite) InviteResponse {
	return InviteResponse{
		InviteID:  invite.ID,
		GroupID:   invite.GroupID,
		InviterID: invite.InviterID,
		InviteeID: invite.InviteeID,
		Status:    string(invite.Status),
		CreatedAt: invite.CreatedAt.Format(time.RFC3339),
	}
}

func domainPendingInvitesToHTTP(invites []*domain.PendingInvite) []PendingInviteResponse {
	result := make([]PendingInviteResponse, 0, len(invites))
	for _, invite := range invites {
		result = append(result, PendingInviteResponse{
			InviteID:        invite.ID,
			GroupID:         invite.GroupID,
			GroupName:       invite.GroupName,
			InviterUsername: invite.InviterUsername,
			CreatedAt:       invite.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
