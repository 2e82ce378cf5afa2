package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-salon-api/internal/model"
)

type sessionResolver interface {
	CurrentUser(token string) (model.User, error)
}

type contextKey string

const userContextKey contextKey = "auth_user"

// AuthMiddleware resolves bearer tokens to users via the session manager.
type AuthMiddleware struct {
	sessions sessionResolver
}

func NewAuthMiddleware(sessions sessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// ExtractToken pulls the bearer token from the Authorization header, falling
// back to the token query parameter for clients that cannot set headers.
func ExtractToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header != "" && strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// RequireUser rejects the request unless its token resolves to a live user.
// Expired sessions are cleaned up transitively by the session manager.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}

		user, err := m.sessions.CurrentUser(token)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrUserNotFound):
				writeAuthError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
			case errors.Is(err, model.ErrStorageIO):
				writeAuthError(w, http.StatusInternalServerError, "STORAGE_IO", "could not read session state")
			default:
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired session")
			}
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route on the authenticated user's role. It is a pure
// check over the context user and does no I/O.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := map[string]struct{}{}
	for _, role := range allowedRoles {
		roleSet[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			if _, allowed := roleSet[strings.ToLower(user.Role)]; !allowed {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey).(model.User)
	return user, ok
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
