package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/sharansub/screensaway/internal/service"
)

type Handler struct {
	authService       service.AuthService
	groupService      service.GroupService
	inviteService     service.InviteService
	screenTimeService service.ScreenTimeService
	validate          *validator.Validate
}

func NewHandler(
	authService service.AuthService,
	groupService service.GroupService,
	inviteService service.InviteService,
	screenTimeService service.ScreenTimeService,
) *Handler {
	return &Handler{
		authService:       authService,
		groupService:      groupService,
		inviteService:     inviteService,
		screenTimeService: screenTimeService,
		validate:          validator.New(),
	}
}
