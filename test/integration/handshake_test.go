//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandshakeConfirmFlow(t *testing.T) {
	server := newTestServer(t)

	resp := getWithToken(t, server.URL+"/api/handshake", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var packet struct {
		Nonce         string `json:"nonce"`
		ServerVersion string `json:"serverVersion"`
		ServerType    string `json:"serverType"`
		Timestamp     int64  `json:"timestamp"`
	}
	decodeBody(t, resp, &packet)
	require.NotEmpty(t, packet.Nonce)
	require.Equal(t, "salon-api", packet.ServerType)
	require.NotZero(t, packet.Timestamp)

	confirmResp := postJSON(t, server.URL+"/api/handshake/confirm", map[string]any{
		"echoNonce":     packet.Nonce,
		"serverVersion": packet.ServerVersion,
		"browser":       "test-agent",
	}, "")
	require.Equal(t, http.StatusOK, confirmResp.StatusCode)

	var confirmed struct {
		OK bool `json:"ok"`
	}
	decodeBody(t, confirmResp, &confirmed)
	require.True(t, confirmed.OK)

	// The nonce is single-use: a second confirmation fails.
	repeatResp := postJSON(t, server.URL+"/api/handshake/confirm", map[string]any{
		"echoNonce": packet.Nonce,
	}, "")
	require.Equal(t, http.StatusBadRequest, repeatResp.StatusCode)
}

func TestHandshakeConfirmMissingNonce(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/handshake/confirm", map[string]any{}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandshakeConfirmUnknownNonce(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/handshake/confirm", map[string]any{
		"echoNonce": "never-issued",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
