package feature

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/marketfy/storefront/internal/domain/user"
	"github.com/marketfy/storefront/internal/store"
)

// Auth orchestrates the authentication flows: login and registration
// chain into a profile fetch plus navigation, logout fans out to the
// wishlist and orders slices.
type Auth struct {
	store *store.Store
	nav   Navigator
	lg    *zap.Logger

	// profileTried flips when EnsureUser has attempted a fetch for the
	// current authentication transition. Without it, a failing fetch that
	// leaves the user nil would retrigger on every call.
	profileTried atomic.Bool
	sf           singleflight.Group
}

// NewAuth creates the auth feature.
func NewAuth(st *store.Store, nav Navigator, lg *zap.Logger) *Auth {
	if nav == nil {
		nav = NopNavigator
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Auth{store: st, nav: nav, lg: lg}
}

// Login authenticates, fetches the profile, switches the cart to the new
// identity, and navigates to the catalog. Returns false when the login
// itself failed; the message is in the auth slice's Error.
func (a *Auth) Login(ctx context.Context, creds user.Credentials) bool {
	if !a.store.Auth.Login(ctx, creds) {
		return false
	}
	a.afterSignIn(ctx)
	return true
}

// Register creates an account and continues like Login.
func (a *Auth) Register(ctx context.Context, data user.Registration) bool {
	if !a.store.Auth.Register(ctx, data) {
		return false
	}
	a.afterSignIn(ctx)
	return true
}

// Logout clears the session and the server-owned caches, switches the cart
// back to the anonymous bucket, and navigates to the login entry.
func (a *Auth) Logout() {
	a.store.Auth.Logout()
	a.store.Wishlist.Clear()
	a.store.Orders.Clear()
	a.store.Cart.LoadCart()
	a.profileTried.Store(false)
	a.nav.Navigate(PathAuth)
}

// ForceLogout is the 401 handler: the remote layer has already cleared the
// persisted session, so only local state and navigation remain.
func (a *Auth) ForceLogout() {
	a.lg.Info("session expired, forcing logout")
	a.Logout()
}

// EnsureUser fetches the profile when a persisted session is authenticated
// but no user object is cached yet. Concurrent callers collapse into a
// single in-flight fetch and all return once it settles; after a failed
// fetch no new attempt is made until the next authentication transition.
func (a *Auth) EnsureUser(ctx context.Context) {
	st := a.store.Auth.State()
	if !st.IsAuthenticated || st.User != nil {
		return
	}
	_, _, _ = a.sf.Do("current-user", func() (any, error) {
		// Re-check inside the flight: a joiner that raced the winning
		// caller must not refetch a profile that just arrived.
		st := a.store.Auth.State()
		if !st.IsAuthenticated || st.User != nil {
			return nil, nil
		}
		if !a.profileTried.CompareAndSwap(false, true) {
			return nil, nil
		}
		a.store.Auth.FetchCurrentUser(ctx)
		return nil, nil
	})
}

func (a *Auth) afterSignIn(ctx context.Context) {
	a.profileTried.Store(true)
	a.store.Auth.FetchCurrentUser(ctx)
	a.store.Cart.LoadCart()
	a.nav.Navigate(PathProducts)
}
