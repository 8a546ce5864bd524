package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	groups, err := h.groupService.ListGroupsForUser(r.Context(), sess.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListGroupsResponse{
		Groups: domainGroupsToHTTP(groups),
	})
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), req.Name, sess.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateGroupResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) GetGroupMembers(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	groupID := r.URL.Query().Get("group_id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "group_id parameter is required")
		return
	}

	members, err := h.groupService.GetMembersWithRanking(r.Context(), groupID, sess.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GroupMembersResponse{
		GroupID: groupID,
		Members: domainMembersToHTTP(members),
	})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err := h.groupService.AddMember(r.Context(), req.GroupID, req.Username, sess.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
