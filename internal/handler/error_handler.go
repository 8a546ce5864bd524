package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sharansub/screensaway/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, getStatusCode(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST":
		return http.StatusBadRequest
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "NOT_AUTHORIZED":
		return http.StatusForbidden
	case "USER_NOT_FOUND", "NOT_FOUND":
		return http.StatusNotFound
	case "USERNAME_TAKEN", "INVITE_EXISTS", "ALREADY_MEMBER":
		return http.StatusConflict
	case "GATEWAY_ERROR":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
