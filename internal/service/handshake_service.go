package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-salon-api/internal/model"
)

// HandshakeService hands out short-lived nonces that clients must echo back
// to prove a completed round trip before the UI shows itself. The registry is
// purely in-memory: every issued nonce is either confirmed once or evicted by
// its TTL timer, so entries never pile up.
type HandshakeService struct {
	serverVersion string
	serverType    string
	serverName    string
	features      []string
	ttl           time.Duration

	mu      sync.Mutex
	pending map[string]*handshakeEntry

	now func() time.Time
}

type handshakeEntry struct {
	packet    model.HandshakePacket
	createdAt time.Time
	evict     *time.Timer
}

func NewHandshakeService(serverVersion string, serverName string, features []string, ttl time.Duration) *HandshakeService {
	return &HandshakeService{
		serverVersion: serverVersion,
		serverType:    "salon-api",
		serverName:    serverName,
		features:      features,
		ttl:           ttl,
		pending:       map[string]*handshakeEntry{},
		now:           time.Now,
	}
}

// Issue creates a fresh nonce and schedules its eviction after the TTL even
// if the client never comes back.
func (s *HandshakeService) Issue() model.HandshakePacket {
	nonce := uuid.NewString()
	now := s.now()
	packet := model.HandshakePacket{
		Nonce:         nonce,
		ServerVersion: s.serverVersion,
		ServerType:    s.serverType,
		ServerName:    s.serverName,
		Timestamp:     now.UnixMilli(),
		Features:      s.features,
	}

	entry := &handshakeEntry{packet: packet, createdAt: now}
	entry.evict = time.AfterFunc(s.ttl, func() { s.expire(nonce) })

	s.mu.Lock()
	s.pending[nonce] = entry
	s.mu.Unlock()

	return packet
}

// Confirm consumes the nonce. A nonce that was never issued, already
// confirmed, or evicted fails the same way; at most one confirmation can win.
func (s *HandshakeService) Confirm(nonce string, client model.HandshakeConfirm) error {
	s.mu.Lock()
	entry, exists := s.pending[nonce]
	if exists {
		delete(s.pending, nonce)
	}
	s.mu.Unlock()

	if !exists {
		return model.ErrNonceInvalid
	}

	entry.evict.Stop()
	slog.Info("handshake confirmed",
		"age_ms", s.now().Sub(entry.createdAt).Milliseconds(),
		"browser", client.Browser,
		"platform", client.Platform,
	)
	return nil
}

func (s *HandshakeService) expire(nonce string) {
	s.mu.Lock()
	_, existed := s.pending[nonce]
	delete(s.pending, nonce)
	s.mu.Unlock()

	if existed {
		slog.Debug("handshake nonce evicted")
	}
}

// PendingCount reports how many unconfirmed nonces are currently held.
func (s *HandshakeService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Close stops the eviction timers of all outstanding nonces.
func (s *HandshakeService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for nonce, entry := range s.pending {
		entry.evict.Stop()
		delete(s.pending, nonce)
	}
}
