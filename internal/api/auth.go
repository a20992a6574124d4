package api

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketfy/storefront/internal/domain/user"
	"github.com/marketfy/storefront/internal/storage"
)

// AuthService handles authentication calls and the persisted session.
type AuthService struct {
	client *Client
	store  storage.Store
	now    func() time.Time
}

// NewAuthService creates an AuthService over the shared client.
func NewAuthService(client *Client, store storage.Store) *AuthService {
	return &AuthService{client: client, store: store, now: time.Now}
}

// Login authenticates with email and password.
func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error) {
	var resp user.AuthResponse
	if err := s.client.PostJSON(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, data user.Registration) (*user.AuthResponse, error) {
	var resp user.AuthResponse
	if err := s.client.PostJSON(ctx, "/auth/register", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the authenticated user's profile.
func (s *AuthService) CurrentUser(ctx context.Context) (*user.User, error) {
	var u user.User
	if err := s.client.GetJSON(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// StoreSession persists the bearer token and user id.
func (s *AuthService) StoreSession(token string, userID int64) {
	s.store.SetString(storage.KeyToken, token)
	s.store.SetString(storage.KeyUserID, strconv.FormatInt(userID, 10))
}

// ClearSession removes the persisted bearer token and user id.
func (s *AuthService) ClearSession() {
	s.store.Remove(storage.KeyToken)
	s.store.Remove(storage.KeyUserID)
}

// Token returns the persisted bearer token, or "" when signed out.
func (s *AuthService) Token() string {
	return s.store.GetString(storage.KeyToken)
}

// UserID returns the persisted user id, or nil when signed out.
func (s *AuthService) UserID() *int64 {
	raw := s.store.GetString(storage.KeyUserID)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// IsAuthenticated reports whether a token is persisted and not expired.
func (s *AuthService) IsAuthenticated() bool {
	token := s.Token()
	return token != "" && !s.IsTokenExpired(token)
}

// IsTokenExpired decodes the token's exp claim without verifying the
// signature. This is a UX freshness check only; authorization is enforced
// server-side regardless of what the claim says. Undecodable tokens count
// as expired.
func (s *AuthService) IsTokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !s.now().Before(exp.Time)
}
