package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crust-connect/internal/client"
	"crust-connect/internal/model"
)

// CredentialStorage is the persisted side of the session: the bearer token
// and the reduced identity record, written and cleared together.
type CredentialStorage interface {
	SaveAuth(token string, user model.User) error
	Token() string
	User() (model.User, bool)
	Clear() error
}

// SessionService is the authenticated-identity store. Two states: Anonymous
// and Authenticated. Login/Register report success as a bool so the view
// layer can branch without handling errors; the failure message reaches the
// user as a notice.
type SessionService interface {
	// User returns the current identity, or ok=false while Anonymous.
	User() (model.User, bool)
	IsAdmin() bool
	Login(ctx context.Context, email, password string) bool
	Register(ctx context.Context, name, email, password string) bool
	// Logout is a pure local transition: no network call.
	Logout()
	// Forget drops only the in-memory identity. Wired to the client's 401
	// path, which has already cleared the persisted side.
	Forget()
	// TokenExpiry decodes the stored token's exp claim for display.
	// Expiry is still only enforced reactively, via 401 responses.
	TokenExpiry() (time.Time, bool)
}

type sessionServiceImpl struct {
	api     *client.Client
	storage CredentialStorage
	notify  Notifier
	log     *slog.Logger

	user *model.User
}

// NewSessionService hydrates from persisted storage: a previously saved
// identity makes the session start Authenticated without asking the
// backend. A stale credential is caught lazily by the first 401.
func NewSessionService(api *client.Client, storage CredentialStorage, notify Notifier, log *slog.Logger) SessionService {
	s := &sessionServiceImpl{
		api:     api,
		storage: storage,
		notify:  notify,
		log:     log,
	}
	if u, ok := storage.User(); ok {
		s.user = &u
	}
	return s
}

func (s *sessionServiceImpl) User() (model.User, bool) {
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *sessionServiceImpl) IsAdmin() bool {
	return s.user != nil && s.user.IsAdmin()
}

func (s *sessionServiceImpl) Login(ctx context.Context, email, password string) bool {
	resp, err := s.api.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.notify.Notify("Login failed", client.Message(err))
		return false
	}
	s.establish(resp)
	s.notify.Notify("Welcome back!", "Logged in as "+resp.Name)
	return true
}

func (s *sessionServiceImpl) Register(ctx context.Context, name, email, password string) bool {
	resp, err := s.api.Register(ctx, client.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.notify.Notify("Registration failed", client.Message(err))
		return false
	}
	s.establish(resp)
	s.notify.Notify("Welcome!", "Account created successfully.")
	return true
}

func (s *sessionServiceImpl) establish(resp *client.AuthResponse) {
	u := resp.User()
	if err := s.storage.SaveAuth(resp.Token, u); err != nil {
		// still authenticated for this run; only reload-survival is lost
		s.log.Warn("persist session", "error", err)
	}
	s.user = &u
	s.log.Debug("session established", "user_id", u.ID, "role", u.Role)
}

func (s *sessionServiceImpl) Logout() {
	if err := s.storage.Clear(); err != nil {
		s.log.Warn("clear persisted session", "error", err)
	}
	s.user = nil
}

func (s *sessionServiceImpl) Forget() {
	s.user = nil
}

func (s *sessionServiceImpl) TokenExpiry() (time.Time, bool) {
	token := s.storage.Token()
	if token == "" {
		return time.Time{}, false
	}

	// unverified on purpose: the signing key is the backend's, this is
	// display-only
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
