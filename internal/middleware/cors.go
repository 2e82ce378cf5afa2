package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/cors"
)

// OriginPolicy decides which cross-origin callers are acceptable: anything on
// the configured allow-list, plus loopback hosts on any port so local
// development keeps working. Non-browser callers send no Origin header and
// are always allowed.
type OriginPolicy struct {
	allowAll bool
	allowed  map[string]struct{}
}

func NewOriginPolicy(origins []string) *OriginPolicy {
	policy := &OriginPolicy{allowed: map[string]struct{}{}}
	for _, origin := range origins {
		trimmed := strings.TrimRight(strings.TrimSpace(origin), "/")
		if trimmed == "*" {
			policy.allowAll = true
			continue
		}
		if trimmed != "" {
			policy.allowed[trimmed] = struct{}{}
		}
	}

	return policy
}

func (p *OriginPolicy) IsAllowed(origin string) bool {
	if origin == "" || p.allowAll {
		return true
	}

	if _, ok := p.allowed[strings.TrimRight(origin, "/")]; ok {
		return true
	}

	if parsed, err := url.Parse(origin); err == nil && isLoopbackHost(parsed.Hostname()) {
		return true
	}

	slog.Warn("cross-origin request rejected", "origin", origin)
	return false
}

func isLoopbackHost(host string) bool {
	switch strings.ToLower(host) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

func CORS(policy *OriginPolicy) func(http.Handler) http.Handler {
	handler := cors.New(cors.Options{
		AllowOriginFunc:  policy.IsAllowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:           3600,
		AllowCredentials: false,
	})

	return handler.Handler
}
