package server

import (
	"net/http"

	"github.com/sharansub/screensaway/internal/handler"
	"github.com/sharansub/screensaway/internal/session"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler, sessions session.Store) {
	authed := handler.AuthMiddleware(sessions)

	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.Handle("POST /auth/logout", authed(http.HandlerFunc(h.Logout)))

	mux.Handle("GET /groups/list", authed(http.HandlerFunc(h.ListGroups)))
	mux.Handle("POST /groups/create", authed(http.HandlerFunc(h.CreateGroup)))
	mux.Handle("GET /groups/members", authed(http.HandlerFunc(h.GetGroupMembers)))
	mux.Handle("POST /groups/addMember", authed(http.HandlerFunc(h.AddMember)))

	mux.Handle("GET /invites/pending", authed(http.HandlerFunc(h.ListPendingInvites)))
	mux.Handle("POST /invites/send", authed(http.HandlerFunc(h.SendInvite)))
	mux.Handle("POST /invites/accept", authed(http.HandlerFunc(h.AcceptInvite)))
	mux.Handle("POST /invites/decline", authed(http.HandlerFunc(h.DeclineInvite)))

	mux.Handle("POST /screentime/report", authed(http.HandlerFunc(h.ReportScreenTime)))
}
