package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) ReportScreenTime(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req ReportScreenTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err := h.screenTimeService.ReportToday(r.Context(), sess.UserID, req.DurationMinutes); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
