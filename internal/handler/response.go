package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-salon-api/internal/model"
	"go-salon-api/pkg/apierror"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorPayload{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "INVALID_CREDENTIALS"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrTokenMissing):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Authentication required"
	case errors.Is(err, model.ErrTokenExpired), errors.Is(err, model.ErrTokenUnknown):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid or expired session"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "User not found"
	case errors.Is(err, model.ErrEmailTaken):
		status = http.StatusBadRequest
		body.Code = "ALREADY_REGISTERED"
		body.Message = "Email is already registered"
	case errors.Is(err, model.ErrRoleNotPermitted):
		status = http.StatusBadRequest
		body.Code = "ROLE_NOT_PERMITTED"
		body.Message = "Registering as administrator is not allowed"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		body.Code = "FORBIDDEN"
		body.Message = "Access denied"
	case errors.Is(err, model.ErrNonceInvalid):
		status = http.StatusBadRequest
		body.Code = "HANDSHAKE_INVALID"
		body.Message = "Unknown or expired handshake nonce"
	case errors.Is(err, model.ErrAppointmentNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Appointment not found"
	case errors.Is(err, model.ErrStorageIO):
		// A failed document write means the acknowledged state no longer
		// matches disk; it is always surfaced, never swallowed.
		status = http.StatusInternalServerError
		body.Code = "STORAGE_IO"
		body.Message = "Persistent storage failure"
		slog.Error("storage failure", "error", err.Error())
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, map[string]errorPayload{"error": body})
}
