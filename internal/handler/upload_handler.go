package handler

import (
	"net/http"

	"go-salon-api/internal/service"
	"go-salon-api/pkg/apierror"
)

type UploadHandler struct {
	service       *service.PictureService
	maxUploadSize int64
}

func NewUploadHandler(service *service.PictureService, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{service: service, maxUploadSize: maxUploadSize}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeError(w, apierror.BadRequest("could not parse multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, apierror.BadRequest("no file"))
		return
	}
	defer file.Close()

	result, err := h.service.SaveUpload(file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *UploadHandler) ListPictures(w http.ResponseWriter, r *http.Request) {
	paths, err := h.service.ListPictures()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paths)
}
