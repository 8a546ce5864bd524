package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

func (h *Handler) ListPendingInvites(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	invites, err := h.inviteService.ListPendingInvites(r.Context(), sess.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(PendingInvitesResponse{
		Invites: domainPendingInvitesToHTTP(invites),
	})
}

func (h *Handler) SendInvite(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req SendInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	invite, err := h.inviteService.SendInvite(r.Context(), req.GroupID, req.Username, sess.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SendInviteResponse{
		Invite: domainInviteToHTTP(invite),
	})
}

func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	h.inviteAction(w, r, h.inviteService.AcceptInvite)
}

func (h *Handler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	h.inviteAction(w, r, h.inviteService.DeclineInvite)
}

func (h *Handler) inviteAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, inviteID, userID string) error) {
	sess := sessionFromContext(r.Context())

	var req InviteActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err := action(r.Context(), req.InviteID, sess.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
