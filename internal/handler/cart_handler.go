package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-salon-api/internal/model"
	"go-salon-api/internal/service"
	"go-salon-api/pkg/apierror"
)

type CartHandler struct {
	service *service.CartService
}

func NewCartHandler(service *service.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Get()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	cart, err := h.service.Add(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Remove(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Clear()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}
