package store

import (
	"context"

	"github.com/marketfy/storefront/internal/domain/user"
)

// AuthAPI is the remote surface the auth slice depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error)
	Register(ctx context.Context, data user.Registration) (*user.AuthResponse, error)
	CurrentUser(ctx context.Context) (*user.User, error)
	StoreSession(token string, userID int64)
	ClearSession()
	Token() string
	UserID() *int64
	IsAuthenticated() bool
}

// AuthState is the auth slice snapshot.
type AuthState struct {
	User            *user.User
	Token           string
	UserID          *int64
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// AuthSlice caches the server-owned session. Initial state comes from the
// persisted session, so a restart keeps the user signed in while the token
// is fresh.
type AuthSlice struct {
	s   *sliceState[AuthState]
	svc AuthAPI
}

func newAuthSlice(n *notifier, svc AuthAPI) *AuthSlice {
	initial := AuthState{}
	if svc != nil {
		initial.Token = svc.Token()
		initial.UserID = svc.UserID()
		initial.IsAuthenticated = svc.IsAuthenticated()
	}
	return &AuthSlice{s: newSliceState(n, initial), svc: svc}
}

// State returns the current snapshot.
func (a *AuthSlice) State() *AuthState {
	return a.s.get()
}

// Login authenticates and persists the session. It reports success; the
// failure message lands in State().Error, never in a returned error.
func (a *AuthSlice) Login(ctx context.Context, creds user.Credentials) bool {
	a.s.reduce(func(st AuthState) AuthState {
		st.IsLoading = true
		st.Error = ""
		return st
	})

	resp, err := a.svc.Login(ctx, creds)
	if err != nil {
		a.reject(messageOf(err, "Login failed"))
		return false
	}
	a.fulfillSession(resp)
	return true
}

// Register creates an account and persists the session like Login.
func (a *AuthSlice) Register(ctx context.Context, data user.Registration) bool {
	a.s.reduce(func(st AuthState) AuthState {
		st.IsLoading = true
		st.Error = ""
		return st
	})

	resp, err := a.svc.Register(ctx, data)
	if err != nil {
		a.reject(messageOf(err, "Registration failed"))
		return false
	}
	a.fulfillSession(resp)
	return true
}

// FetchCurrentUser loads the profile of the signed-in user into state.
func (a *AuthSlice) FetchCurrentUser(ctx context.Context) bool {
	a.s.reduce(func(st AuthState) AuthState {
		st.IsLoading = true
		return st
	})

	u, err := a.svc.CurrentUser(ctx)
	if err != nil {
		a.s.reduce(func(st AuthState) AuthState {
			st.IsLoading = false
			st.Error = messageOf(err, "Failed to fetch user")
			return st
		})
		return false
	}
	a.s.reduce(func(st AuthState) AuthState {
		st.IsLoading = false
		st.User = u
		return st
	})
	return true
}

// Logout clears the persisted session and resets to the anonymous state.
// Clearing the wishlist and orders slices is the feature layer's job.
func (a *AuthSlice) Logout() {
	a.svc.ClearSession()
	a.s.reduce(func(AuthState) AuthState {
		return AuthState{}
	})
}

// ClearError drops the slice error.
func (a *AuthSlice) ClearError() {
	a.s.reduce(func(st AuthState) AuthState {
		st.Error = ""
		return st
	})
}

// SetUser replaces the cached user profile.
func (a *AuthSlice) SetUser(u *user.User) {
	a.s.reduce(func(st AuthState) AuthState {
		st.User = u
		return st
	})
}

func (a *AuthSlice) fulfillSession(resp *user.AuthResponse) {
	a.svc.StoreSession(resp.AccessToken, resp.UserID)
	userID := resp.UserID
	a.s.reduce(func(st AuthState) AuthState {
		st.IsLoading = false
		st.Token = resp.AccessToken
		st.UserID = &userID
		st.IsAuthenticated = true
		st.User = resp.User
		st.Error = ""
		return st
	})
}

func (a *AuthSlice) reject(msg string) {
	a.s.reduce(func(st AuthState) AuthState {
		st.IsLoading = false
		st.Error = msg
		st.IsAuthenticated = false
		return st
	})
}
