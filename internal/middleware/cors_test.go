package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOriginPolicyAllowList(t *testing.T) {
	t.Parallel()

	policy := NewOriginPolicy([]string{"https://salon.example.com"})

	require.True(t, policy.IsAllowed("https://salon.example.com"))
	require.True(t, policy.IsAllowed("https://salon.example.com/"))
	require.False(t, policy.IsAllowed("https://evil.example.com"))
}

func TestOriginPolicyNoOriginHeader(t *testing.T) {
	t.Parallel()

	policy := NewOriginPolicy(nil)
	require.True(t, policy.IsAllowed(""))
}

func TestOriginPolicyLoopbackAnyPort(t *testing.T) {
	t.Parallel()

	policy := NewOriginPolicy(nil)

	require.True(t, policy.IsAllowed("http://localhost:5500"))
	require.True(t, policy.IsAllowed("http://127.0.0.1:3001"))
	require.True(t, policy.IsAllowed("http://[::1]:8080"))
	require.False(t, policy.IsAllowed("http://192.168.1.10:5500"))
}

func TestOriginPolicyWildcard(t *testing.T) {
	t.Parallel()

	policy := NewOriginPolicy([]string{"*"})
	require.True(t, policy.IsAllowed("https://anything.example.com"))
}
