package feature

import (
	"context"
	"testing"

	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/domain/order"
	"github.com/marketfy/storefront/internal/domain/user"
	"github.com/marketfy/storefront/internal/domain/wishlist"
	"github.com/marketfy/storefront/internal/storage"
	"github.com/marketfy/storefront/internal/store"
)

// Function-field fakes for the store's remote interfaces. Unset fields
// panic, so a test immediately surfaces a call it did not expect.

type fakeAuthAPI struct {
	login        func(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error)
	register     func(ctx context.Context, data user.Registration) (*user.AuthResponse, error)
	currentUser  func(ctx context.Context) (*user.User, error)
	storeSession func(token string, userID int64)
	clearSession func()
	token        func() string
	userID       func() *int64
	isAuth       func() bool
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error) {
	return f.login(ctx, creds)
}

func (f *fakeAuthAPI) Register(ctx context.Context, data user.Registration) (*user.AuthResponse, error) {
	return f.register(ctx, data)
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (*user.User, error) {
	return f.currentUser(ctx)
}

func (f *fakeAuthAPI) StoreSession(token string, userID int64) {
	if f.storeSession != nil {
		f.storeSession(token, userID)
	}
}

func (f *fakeAuthAPI) ClearSession() {
	if f.clearSession != nil {
		f.clearSession()
	}
}

func (f *fakeAuthAPI) Token() string {
	if f.token == nil {
		return ""
	}
	return f.token()
}

func (f *fakeAuthAPI) UserID() *int64 {
	if f.userID == nil {
		return nil
	}
	return f.userID()
}

func (f *fakeAuthAPI) IsAuthenticated() bool {
	if f.isAuth == nil {
		return false
	}
	return f.isAuth()
}

type fakeProductsAPI struct {
	list func(ctx context.Context, params catalog.SearchParams) (*catalog.Page, error)
	byID func(ctx context.Context, id int64) (*catalog.Product, error)
}

func (f *fakeProductsAPI) List(ctx context.Context, params catalog.SearchParams) (*catalog.Page, error) {
	return f.list(ctx, params)
}

func (f *fakeProductsAPI) ByID(ctx context.Context, id int64) (*catalog.Product, error) {
	return f.byID(ctx, id)
}

type fakeWishlistAPI struct {
	list            func(ctx context.Context) ([]wishlist.Item, error)
	add             func(ctx context.Context, productID int64) (*wishlist.Item, error)
	remove          func(ctx context.Context, itemID int64) error
	removeByProduct func(ctx context.Context, productID int64) error
}

func (f *fakeWishlistAPI) List(ctx context.Context) ([]wishlist.Item, error) {
	return f.list(ctx)
}

func (f *fakeWishlistAPI) Add(ctx context.Context, productID int64) (*wishlist.Item, error) {
	return f.add(ctx, productID)
}

func (f *fakeWishlistAPI) Remove(ctx context.Context, itemID int64) error {
	return f.remove(ctx, itemID)
}

func (f *fakeWishlistAPI) RemoveByProduct(ctx context.Context, productID int64) error {
	return f.removeByProduct(ctx, productID)
}

type fakeOrdersAPI struct {
	create func(ctx context.Context, req order.CreateRequest) (*order.Order, error)
	list   func(ctx context.Context, page, limit int) ([]order.Order, error)
	byID   func(ctx context.Context, orderID string) (*order.Order, error)
	search func(ctx context.Context, query string) ([]order.Order, error)
}

func (f *fakeOrdersAPI) Create(ctx context.Context, req order.CreateRequest) (*order.Order, error) {
	return f.create(ctx, req)
}

func (f *fakeOrdersAPI) List(ctx context.Context, page, limit int) ([]order.Order, error) {
	return f.list(ctx, page, limit)
}

func (f *fakeOrdersAPI) ByID(ctx context.Context, orderID string) (*order.Order, error) {
	return f.byID(ctx, orderID)
}

func (f *fakeOrdersAPI) Search(ctx context.Context, query string) ([]order.Order, error) {
	return f.search(ctx, query)
}

// fixture wires a store over fakes plus the selector and toast plumbing
// most feature tests need.
type fixture struct {
	store *store.Store
	sel   *store.Selectors
	toast *Toast
}

func newFixture(t *testing.T, svc store.Services) *fixture {
	t.Helper()
	st := store.New(store.Options{
		Services: svc,
		Cart: store.CartPersistence{
			Store:    storage.NewMemStore(),
			Identity: func() *int64 { return nil },
		},
	})
	sel := store.NewSelectors(st)
	return &fixture{store: st, sel: sel, toast: NewToast(st.UI)}
}

// toastMessages flattens the ui toast queue for assertions.
func (f *fixture) toastMessages() []string {
	toasts := f.store.UI.State().Toasts
	msgs := make([]string, len(toasts))
	for i, toast := range toasts {
		msgs[i] = toast.Message
	}
	return msgs
}

// lastToast returns the newest toast, or a zero value when none exist.
func (f *fixture) lastToast() store.Toast {
	toasts := f.store.UI.State().Toasts
	if len(toasts) == 0 {
		return store.Toast{}
	}
	return toasts[len(toasts)-1]
}
