package logger

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NewEmailObfuscator returns a function that maps an email address to a
// short keyed digest. The digest is stable for a given key, so log lines
// about the same account can still be correlated without ever exposing the
// address itself. An empty key is replaced by a random one, which keeps the
// digests correlatable within a single process run only.
func NewEmailObfuscator(key string) func(string) string {
	keyBytes := []byte(key)
	if len(keyBytes) == 0 {
		keyBytes = make([]byte, 32)
		_, _ = rand.Read(keyBytes)
	}

	return func(email string) string {
		mac := hmac.New(sha256.New, keyBytes)
		mac.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
		return hex.EncodeToString(mac.Sum(nil))[:16]
	}
}
