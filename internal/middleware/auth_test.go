package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-salon-api/internal/model"
)

type stubResolver struct {
	users map[string]model.User
	err   error
}

func (s *stubResolver) CurrentUser(token string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}

	user, ok := s.users[token]
	if !ok {
		return model.User{}, model.ErrTokenUnknown
	}

	return user, nil
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	require.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	require.Equal(t, "abc123", ExtractToken(req))
}

func TestExtractTokenQueryFallback(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/me?token=qry456", nil)
	require.Equal(t, "qry456", ExtractToken(req))

	// The header wins over the query parameter.
	req.Header.Set("Authorization", "Bearer abc123")
	require.Equal(t, "abc123", ExtractToken(req))
}

func TestRequireUserWithoutToken(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&stubResolver{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	m.RequireUser(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserResolvesContextUser(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&stubResolver{users: map[string]model.User{
		"tok": {ID: "u1", Role: model.RoleClient},
	}})

	var resolved model.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		resolved = user
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	m.RequireUser(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "u1", resolved.ID)
}

func TestRequireUserMapsSessionErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"expired", model.ErrTokenExpired, http.StatusUnauthorized},
		{"unknown", model.ErrTokenUnknown, http.StatusUnauthorized},
		{"user gone", model.ErrUserNotFound, http.StatusNotFound},
		{"storage", model.ErrStorageIO, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := NewAuthMiddleware(&stubResolver{err: tc.err})
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			req.Header.Set("Authorization", "Bearer tok")
			rec := httptest.NewRecorder()
			m.RequireUser(next).ServeHTTP(rec, req)
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&stubResolver{users: map[string]model.User{
		"client-tok": {ID: "u1", Role: model.RoleClient},
		"admin-tok":  {ID: "u2", Role: model.RoleAdmin},
	}})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	protected := m.RequireUser(m.RequireRoles("worker", "admin")(next))

	req := httptest.NewRequest(http.MethodPost, "/api/inventory", nil)
	req.Header.Set("Authorization", "Bearer client-tok")
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/inventory", nil)
	req.Header.Set("Authorization", "Bearer admin-tok")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
