package service

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-salon-api/internal/model"
	"go-salon-api/internal/store"
	"go-salon-api/pkg/apierror"
)

// AuthService owns credential verification and the session lifecycle. Users
// and sessions live in their own documents; every mutation goes through the
// store's per-document critical section.
type AuthService struct {
	docs       *store.DocumentStore
	sessionTTL time.Duration
	obfuscate  func(string) string

	// now is swappable so expiry behavior can be tested deterministically.
	now func() time.Time
}

func NewAuthService(docs *store.DocumentStore, sessionTTL time.Duration, obfuscate func(string) string) *AuthService {
	if obfuscate == nil {
		obfuscate = func(string) string { return "?" }
	}

	return &AuthService{
		docs:       docs,
		sessionTTL: sessionTTL,
		obfuscate:  obfuscate,
		now:        time.Now,
	}
}

func (s *AuthService) Register(name string, email string, password string, role string) (model.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	role = strings.ToLower(strings.TrimSpace(role))

	if role == "" {
		role = model.RoleClient
	}
	if role == model.RoleAdmin {
		return model.PublicUser{}, model.ErrRoleNotPermitted
	}
	if role != model.RoleClient && role != model.RoleWorker {
		return model.PublicUser{}, apierror.BadRequest("invalid role")
	}
	if email == "" || password == "" {
		return model.PublicUser{}, apierror.BadRequest("email and password are required")
	}
	if name == "" {
		name = "Gebruiker"
	}

	hash, err := HashPassword(password)
	if err != nil {
		return model.PublicUser{}, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	var users []model.User
	err = s.docs.Update(usersDocument, &users, func() error {
		for _, existing := range users {
			if strings.EqualFold(existing.Email, email) {
				return model.ErrEmailTaken
			}
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return model.PublicUser{}, err
	}

	slog.Info("user registered", "user_id", user.ID, "email", s.obfuscate(email), "role", role)
	return user.Public(), nil
}

func (s *AuthService) Login(email string, password string) (model.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var users []model.User
	if err := s.docs.Read(usersDocument, &users); err != nil {
		return model.LoginResult{}, err
	}

	var user model.User
	found := false
	for _, candidate := range users {
		if strings.EqualFold(candidate.Email, email) {
			user = candidate
			found = true
			break
		}
	}

	if !found || !CheckPassword(password, user.PasswordHash) {
		slog.Warn("login rejected", "email", s.obfuscate(email))
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	token, err := s.IssueSession(user.ID)
	if err != nil {
		return model.LoginResult{}, err
	}

	slog.Info("session issued", "user_id", user.ID, "role", user.Role)
	return model.LoginResult{
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
		User:      user.Public(),
	}, nil
}

// IssueSession creates an unpredictable bearer token valid for the configured
// session lifetime and persists it into the sessions document.
func (s *AuthService) IssueSession(userID string) (string, error) {
	token := uuid.NewString()
	now := s.now()
	session := model.Session{
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	var sessions map[string]model.Session
	err := s.docs.Update(sessionsDocument, &sessions, func() error {
		if sessions == nil {
			sessions = map[string]model.Session{}
		}
		sessions[token] = session
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// CurrentUser resolves a bearer token to its user. Expired sessions are
// deleted on first access past their deadline (touch-to-expire); a session
// whose user no longer exists stays on disk but fails resolution.
func (s *AuthService) CurrentUser(token string) (model.User, error) {
	if token == "" {
		return model.User{}, model.ErrTokenMissing
	}

	var sessions map[string]model.Session
	if err := s.docs.Read(sessionsDocument, &sessions); err != nil {
		return model.User{}, err
	}

	session, exists := sessions[token]
	if !exists {
		return model.User{}, model.ErrTokenUnknown
	}

	if !s.now().Before(session.ExpiresAt) {
		if err := s.RevokeSession(token); err != nil {
			return model.User{}, err
		}
		return model.User{}, model.ErrTokenExpired
	}

	var users []model.User
	if err := s.docs.Read(usersDocument, &users); err != nil {
		return model.User{}, err
	}

	for _, user := range users {
		if user.ID == session.UserID {
			return user, nil
		}
	}

	return model.User{}, model.ErrUserNotFound
}

// RevokeSession deletes the session for token. Revoking a token that does
// not exist is not an error.
func (s *AuthService) RevokeSession(token string) error {
	var sessions map[string]model.Session
	return s.docs.Update(sessionsDocument, &sessions, func() error {
		if sessions == nil {
			sessions = map[string]model.Session{}
		}
		delete(sessions, token)
		return nil
	})
}

func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}

	return s.RevokeSession(token)
}

func (s *AuthService) ListUsers() ([]model.PublicUser, error) {
	var users []model.User
	if err := s.docs.Read(usersDocument, &users); err != nil {
		return nil, err
	}

	public := make([]model.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	return public, nil
}
