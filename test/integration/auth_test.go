//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginMeLogoutFlow(t *testing.T) {
	server := newTestServer(t)

	register(t, server.URL, "Anna", "a@b.com", "secret1")
	token := login(t, server.URL, "a@b.com", "secret1")

	meResp := getWithToken(t, server.URL+"/api/me", token)
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeBody(t, meResp, &me)
	require.Equal(t, "a@b.com", me.Email)
	require.Equal(t, "client", me.Role)

	logoutResp := postJSON(t, server.URL+"/api/logout", struct{}{}, token)
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	var loggedOut struct {
		OK bool `json:"ok"`
	}
	decodeBody(t, logoutResp, &loggedOut)
	require.True(t, loggedOut.OK)

	afterResp := getWithToken(t, server.URL+"/api/me", token)
	require.Equal(t, http.StatusUnauthorized, afterResp.StatusCode)
}

func TestRegisterAsAdminIsRejected(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/register", map[string]string{
		"name": "Eve", "email": "eve@example.com", "password": "secret1", "role": "admin",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "ROLE_NOT_PERMITTED", body.Error.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	server := newTestServer(t)

	register(t, server.URL, "Anna", "a@b.com", "secret1")

	resp := postJSON(t, server.URL+"/api/register", map[string]string{
		"name": "Other", "email": "A@B.COM", "password": "secret2",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterMissingFields(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/register", map[string]string{"name": "Anna"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := newTestServer(t)

	register(t, server.URL, "Anna", "a@b.com", "secret1")

	resp := postJSON(t, server.URL+"/api/login", map[string]string{
		"email": "a@b.com", "password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeAcceptsTokenQueryParameter(t *testing.T) {
	server := newTestServer(t)

	register(t, server.URL, "Anna", "a@b.com", "secret1")
	token := login(t, server.URL, "a@b.com", "secret1")

	resp := getWithToken(t, server.URL+"/api/me?token="+token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutWithoutTokenIsOK(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/logout", struct{}{}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSeededAdminCanListUsers(t *testing.T) {
	server := newTestServer(t)

	register(t, server.URL, "Anna", "a@b.com", "secret1")
	adminToken := login(t, server.URL, "admin@example.com", "admin123")

	resp := getWithToken(t, server.URL+"/api/users", adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []struct {
		Email        string `json:"email"`
		PasswordHash string `json:"passwordHash"`
	}
	decodeBody(t, resp, &users)
	require.Len(t, users, 2)
	for _, user := range users {
		require.Empty(t, user.PasswordHash)
	}

	clientToken := login(t, server.URL, "a@b.com", "secret1")
	forbidden := getWithToken(t, server.URL+"/api/users", clientToken)
	require.Equal(t, http.StatusForbidden, forbidden.StatusCode)
}
