package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"go-salon-api/internal/model"
	"go-salon-api/internal/util"
	"go-salon-api/pkg/apierror"
)

// PictureService stores uploaded product images and lists the pictures that
// live in the pictures directory.
type PictureService struct {
	uploadsDir  string
	picturesDir string
}

func NewPictureService(uploadsDir string, picturesDir string) (*PictureService, error) {
	for _, dir := range []string{uploadsDir, picturesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("picture service: %w", err)
		}
	}

	return &PictureService{uploadsDir: uploadsDir, picturesDir: picturesDir}, nil
}

// SaveUpload writes a JPEG or PNG upload under a generated filename and
// returns the public path it will be served from.
func (s *PictureService) SaveUpload(file multipart.File, originalName string) (model.UploadResult, error) {
	mimeType, err := util.DetectMIME(file)
	if err != nil {
		return model.UploadResult{}, err
	}
	if !util.IsUploadableImageMIME(mimeType) {
		return model.UploadResult{}, apierror.New("UNSUPPORTED_MEDIA", "only JPEG or PNG images are accepted", 400)
	}

	ext := filepath.Ext(originalName)
	if !util.IsPictureExtension(ext) {
		if mimeType == "image/png" {
			ext = ".png"
		} else {
			ext = ".jpg"
		}
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.uploadsDir, filename))
	if err != nil {
		return model.UploadResult{}, fmt.Errorf("%w: %v", model.ErrStorageIO, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return model.UploadResult{}, fmt.Errorf("%w: %v", model.ErrStorageIO, err)
	}

	return model.UploadResult{Path: "/uploads/" + filename, Filename: filename}, nil
}

// ListPictures returns the public paths of the JPEG/PNG files dropped into
// the pictures directory. A missing directory yields an empty list.
func (s *PictureService) ListPictures() ([]string, error) {
	entries, err := os.ReadDir(s.picturesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", model.ErrStorageIO, err)
	}

	paths := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if util.IsPictureExtension(filepath.Ext(entry.Name())) {
			paths = append(paths, "/pictures/"+entry.Name())
		}
	}

	return paths, nil
}
