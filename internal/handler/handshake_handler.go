package handler

import (
	"encoding/json"
	"net/http"

	"go-salon-api/internal/model"
	"go-salon-api/internal/service"
	"go-salon-api/pkg/apierror"
)

type HandshakeHandler struct {
	service *service.HandshakeService
}

func NewHandshakeHandler(service *service.HandshakeService) *HandshakeHandler {
	return &HandshakeHandler{service: service}
}

func (h *HandshakeHandler) Issue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Issue())
}

func (h *HandshakeHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.HandshakeConfirm
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	if payload.EchoNonce == "" {
		writeError(w, apierror.BadRequest("echoNonce is required"))
		return
	}

	if err := h.service.Confirm(payload.EchoNonce, payload); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
