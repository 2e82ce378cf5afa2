//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-salon-api/internal/config"
	"go-salon-api/internal/handler"
	"go-salon-api/internal/middleware"
	"go-salon-api/internal/router"
	"go-salon-api/internal/service"
	"go-salon-api/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dataDir := t.TempDir()
	docs, err := store.New(dataDir)
	require.NoError(t, err)
	require.NoError(t, service.SeedDocuments(docs))

	cfg := &config.Config{
		ServerPort:       "3000",
		RequestTimeout:   30 * time.Second,
		DataDir:          dataDir,
		UploadsDir:       filepath.Join(dataDir, "uploads"),
		PicturesDir:      filepath.Join(dataDir, "pictures"),
		SessionTTL:       24 * time.Hour,
		HandshakeTTL:     2 * time.Minute,
		ServerName:       "Salon API",
		ServerVersion:    "1.2.0",
		RateLimitRPM:     10000,
		AuthRateLimitRPM: 10000,
		MaxUploadSize:    5 * 1024 * 1024,
	}

	authService := service.NewAuthService(docs, cfg.SessionTTL, nil)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	handshakeService := service.NewHandshakeService(cfg.ServerVersion, cfg.ServerName, []string{"inventory"}, cfg.HandshakeTTL)
	t.Cleanup(handshakeService.Close)

	pictureService, err := service.NewPictureService(cfg.UploadsDir, cfg.PicturesDir)
	require.NoError(t, err)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Handshake:   handler.NewHandshakeHandler(handshakeService),
		Inventory:   handler.NewInventoryHandler(service.NewInventoryService(docs)),
		Cart:        handler.NewCartHandler(service.NewCartService(docs)),
		Appointment: handler.NewAppointmentHandler(service.NewAppointmentService(docs)),
		User:        handler.NewUserHandler(authService),
		Upload:      handler.NewUploadHandler(pictureService, cfg.MaxUploadSize),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url string, payload any, token string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func getWithToken(t *testing.T, url string, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// register creates a user and returns its id.
func register(t *testing.T, serverURL string, name string, email string, password string) string {
	t.Helper()

	resp := postJSON(t, serverURL+"/api/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)

	return created.ID
}

// login returns a session token.
func login(t *testing.T, serverURL string, email string, password string) string {
	t.Helper()

	resp := postJSON(t, serverURL+"/api/login", map[string]string{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expiresIn"`
	}
	decodeBody(t, resp, &result)
	require.NotEmpty(t, result.Token)

	return result.Token
}
