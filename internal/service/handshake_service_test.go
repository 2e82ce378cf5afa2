package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-salon-api/internal/model"
)

func newTestHandshakeService(ttl time.Duration) *HandshakeService {
	return NewHandshakeService("1.2.0", "Salon API", []string{"inventory"}, ttl)
}

func TestHandshakeIssueAndConfirm(t *testing.T) {
	t.Parallel()

	svc := newTestHandshakeService(time.Minute)
	defer svc.Close()

	packet := svc.Issue()
	require.NotEmpty(t, packet.Nonce)
	require.Equal(t, "1.2.0", packet.ServerVersion)
	require.Equal(t, "salon-api", packet.ServerType)
	require.NotZero(t, packet.Timestamp)
	require.Equal(t, 1, svc.PendingCount())

	err := svc.Confirm(packet.Nonce, model.HandshakeConfirm{EchoNonce: packet.Nonce})
	require.NoError(t, err)
	require.Equal(t, 0, svc.PendingCount())
}

func TestHandshakeConfirmIsSingleUse(t *testing.T) {
	t.Parallel()

	svc := newTestHandshakeService(time.Minute)
	defer svc.Close()

	packet := svc.Issue()
	require.NoError(t, svc.Confirm(packet.Nonce, model.HandshakeConfirm{EchoNonce: packet.Nonce}))

	err := svc.Confirm(packet.Nonce, model.HandshakeConfirm{EchoNonce: packet.Nonce})
	require.ErrorIs(t, err, model.ErrNonceInvalid)
}

func TestHandshakeUnknownNonce(t *testing.T) {
	t.Parallel()

	svc := newTestHandshakeService(time.Minute)
	defer svc.Close()

	err := svc.Confirm("never-issued", model.HandshakeConfirm{EchoNonce: "never-issued"})
	require.ErrorIs(t, err, model.ErrNonceInvalid)
}

func TestHandshakeNonceEvictedAfterTTL(t *testing.T) {
	t.Parallel()

	svc := newTestHandshakeService(20 * time.Millisecond)
	defer svc.Close()

	packet := svc.Issue()

	require.Eventually(t, func() bool {
		return svc.PendingCount() == 0
	}, time.Second, 5*time.Millisecond)

	err := svc.Confirm(packet.Nonce, model.HandshakeConfirm{EchoNonce: packet.Nonce})
	require.ErrorIs(t, err, model.ErrNonceInvalid)
}

func TestHandshakeRegistryStaysBounded(t *testing.T) {
	t.Parallel()

	svc := newTestHandshakeService(20 * time.Millisecond)
	defer svc.Close()

	for i := 0; i < 25; i++ {
		svc.Issue()
	}

	require.Eventually(t, func() bool {
		return svc.PendingCount() == 0
	}, time.Second, 5*time.Millisecond)
}
