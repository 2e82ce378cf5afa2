package util

import (
	"io"
	"net/http"
	"strings"
)

// DetectMIME sniffs the content type from the first bytes of the reader and
// rewinds it afterwards.
func DetectMIME(r io.ReadSeeker) (string, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	buffer := make([]byte, 512)
	n, err := r.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buffer[:n]), nil
}

// IsUploadableImageMIME reports whether the type is one the upload endpoint
// accepts for product pictures.
func IsUploadableImageMIME(mimeType string) bool {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/png":
		return true
	default:
		return false
	}
}

// IsPictureExtension reports whether a stored file should show up in the
// pictures listing.
func IsPictureExtension(extension string) bool {
	switch strings.ToLower(strings.TrimSpace(extension)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}
