package store

import (
	"context"

	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/domain/order"
	"github.com/marketfy/storefront/internal/domain/user"
	"github.com/marketfy/storefront/internal/domain/wishlist"
)

// Function-field fakes for the remote interfaces. Unset fields panic, which
// makes an unexpected call an immediate test failure.

type mockAuthAPI struct {
	login        func(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error)
	register     func(ctx context.Context, data user.Registration) (*user.AuthResponse, error)
	currentUser  func(ctx context.Context) (*user.User, error)
	storeSession func(token string, userID int64)
	clearSession func()
	token        func() string
	userID       func() *int64
	isAuth       func() bool
}

func (m *mockAuthAPI) Login(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error) {
	return m.login(ctx, creds)
}

func (m *mockAuthAPI) Register(ctx context.Context, data user.Registration) (*user.AuthResponse, error) {
	return m.register(ctx, data)
}

func (m *mockAuthAPI) CurrentUser(ctx context.Context) (*user.User, error) {
	return m.currentUser(ctx)
}

func (m *mockAuthAPI) StoreSession(token string, userID int64) {
	m.storeSession(token, userID)
}

func (m *mockAuthAPI) ClearSession() { m.clearSession() }

func (m *mockAuthAPI) Token() string {
	if m.token == nil {
		return ""
	}
	return m.token()
}

func (m *mockAuthAPI) UserID() *int64 {
	if m.userID == nil {
		return nil
	}
	return m.userID()
}

func (m *mockAuthAPI) IsAuthenticated() bool {
	if m.isAuth == nil {
		return false
	}
	return m.isAuth()
}

type mockProductsAPI struct {
	list func(ctx context.Context, params catalog.SearchParams) (*catalog.Page, error)
	byID func(ctx context.Context, id int64) (*catalog.Product, error)
}

func (m *mockProductsAPI) List(ctx context.Context, params catalog.SearchParams) (*catalog.Page, error) {
	return m.list(ctx, params)
}

func (m *mockProductsAPI) ByID(ctx context.Context, id int64) (*catalog.Product, error) {
	return m.byID(ctx, id)
}

type mockWishlistAPI struct {
	list            func(ctx context.Context) ([]wishlist.Item, error)
	add             func(ctx context.Context, productID int64) (*wishlist.Item, error)
	remove          func(ctx context.Context, itemID int64) error
	removeByProduct func(ctx context.Context, productID int64) error
}

func (m *mockWishlistAPI) List(ctx context.Context) ([]wishlist.Item, error) {
	return m.list(ctx)
}

func (m *mockWishlistAPI) Add(ctx context.Context, productID int64) (*wishlist.Item, error) {
	return m.add(ctx, productID)
}

func (m *mockWishlistAPI) Remove(ctx context.Context, itemID int64) error {
	return m.remove(ctx, itemID)
}

func (m *mockWishlistAPI) RemoveByProduct(ctx context.Context, productID int64) error {
	return m.removeByProduct(ctx, productID)
}

type mockOrdersAPI struct {
	create func(ctx context.Context, req order.CreateRequest) (*order.Order, error)
	list   func(ctx context.Context, page, limit int) ([]order.Order, error)
	byID   func(ctx context.Context, orderID string) (*order.Order, error)
	search func(ctx context.Context, query string) ([]order.Order, error)
}

func (m *mockOrdersAPI) Create(ctx context.Context, req order.CreateRequest) (*order.Order, error) {
	return m.create(ctx, req)
}

func (m *mockOrdersAPI) List(ctx context.Context, page, limit int) ([]order.Order, error) {
	return m.list(ctx, page, limit)
}

func (m *mockOrdersAPI) ByID(ctx context.Context, orderID string) (*order.Order, error) {
	return m.byID(ctx, orderID)
}

func (m *mockOrdersAPI) Search(ctx context.Context, query string) ([]order.Order, error) {
	return m.search(ctx, query)
}
