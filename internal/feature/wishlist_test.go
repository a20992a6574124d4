package feature

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfy/storefront/internal/api"
	"github.com/marketfy/storefront/internal/domain/wishlist"
	"github.com/marketfy/storefront/internal/store"
)

func authedServices(extra store.Services) store.Services {
	extra.Auth = &fakeAuthAPI{
		token:  func() string { return "tok" },
		isAuth: func() bool { return true },
	}
	return extra
}

func TestWishlist_AddRequiresLogin(t *testing.T) {
	wlSvc := &fakeWishlistAPI{
		add: func(context.Context, int64) (*wishlist.Item, error) {
			t.Fatal("unexpected network call")
			return nil, nil
		},
	}
	f := newFixture(t, store.Services{Wishlist: wlSvc})
	wl := NewWishlist(f.store, f.sel, f.toast)

	require.False(t, wl.Add(context.Background(), 10, "Mug"))
	assert.Equal(t, "Please login to add items to wishlist", f.lastToast().Message)
	assert.Equal(t, store.SeverityError, f.lastToast().Severity)
	assert.Empty(t, f.store.Wishlist.State().Items)
}

func TestWishlist_Add(t *testing.T) {
	wlSvc := &fakeWishlistAPI{
		add: func(_ context.Context, productID int64) (*wishlist.Item, error) {
			return &wishlist.Item{ID: 99, ProductID: productID}, nil
		},
	}
	f := newFixture(t, authedServices(store.Services{Wishlist: wlSvc}))
	wl := NewWishlist(f.store, f.sel, f.toast)

	require.True(t, wl.Add(context.Background(), 10, "Mug"))
	assert.Equal(t, "Mug added to wishlist", f.lastToast().Message)
	assert.Equal(t, store.SeveritySuccess, f.lastToast().Severity)
	assert.True(t, wl.IsInWishlist(10))
	assert.Equal(t, 1, wl.Count())
}

func TestWishlist_AddFailure(t *testing.T) {
	wlSvc := &fakeWishlistAPI{
		add: func(context.Context, int64) (*wishlist.Item, error) {
			return nil, &api.Error{Status: 500, Message: "boom"}
		},
	}
	f := newFixture(t, authedServices(store.Services{Wishlist: wlSvc}))
	wl := NewWishlist(f.store, f.sel, f.toast)

	require.False(t, wl.Add(context.Background(), 10, "Mug"))
	assert.Equal(t, "Failed to add to wishlist", f.lastToast().Message)
}

func TestWishlist_AddWithoutName(t *testing.T) {
	wlSvc := &fakeWishlistAPI{
		add: func(_ context.Context, productID int64) (*wishlist.Item, error) {
			return &wishlist.Item{ID: 1, ProductID: productID}, nil
		},
	}
	f := newFixture(t, authedServices(store.Services{Wishlist: wlSvc}))
	wl := NewWishlist(f.store, f.sel, f.toast)

	require.True(t, wl.Add(context.Background(), 10, ""))
	assert.Equal(t, "Item added to wishlist", f.lastToast().Message)
}

func TestWishlist_Toggle(t *testing.T) {
	adds, removes := 0, 0
	wlSvc := &fakeWishlistAPI{
		add: func(_ context.Context, productID int64) (*wishlist.Item, error) {
			adds++
			return &wishlist.Item{ID: 50, ProductID: productID}, nil
		},
		remove: func(_ context.Context, itemID int64) error {
			removes++
			assert.Equal(t, int64(50), itemID)
			return nil
		},
	}
	f := newFixture(t, authedServices(store.Services{Wishlist: wlSvc}))
	wl := NewWishlist(f.store, f.sel, f.toast)

	// Absent: toggle adds, exactly one service call.
	require.True(t, wl.Toggle(context.Background(), 10, "Mug"))
	assert.Equal(t, 1, adds)
	assert.Zero(t, removes)
	assert.True(t, wl.IsInWishlist(10))

	// Present: toggle removes by the server-assigned item id.
	require.True(t, wl.Toggle(context.Background(), 10, "Mug"))
	assert.Equal(t, 1, adds)
	assert.Equal(t, 1, removes)
	assert.False(t, wl.IsInWishlist(10))
}

func TestWishlist_RemoveByProduct(t *testing.T) {
	wlSvc := &fakeWishlistAPI{
		list: func(context.Context) ([]wishlist.Item, error) {
			return []wishlist.Item{{ID: 1, ProductID: 10}}, nil
		},
		removeByProduct: func(_ context.Context, productID int64) error {
			assert.Equal(t, int64(10), productID)
			return nil
		},
	}
	f := newFixture(t, authedServices(store.Services{Wishlist: wlSvc}))
	wl := NewWishlist(f.store, f.sel, f.toast)
	wl.Load(context.Background())
	require.Len(t, f.store.Wishlist.State().Items, 1)

	require.True(t, wl.RemoveByProduct(context.Background(), 10, "Mug"))
	assert.Equal(t, "Mug removed from wishlist", f.lastToast().Message)
	assert.Empty(t, f.store.Wishlist.State().Items)
}

func TestWishlist_LoadSignedOutIsSilent(t *testing.T) {
	wlSvc := &fakeWishlistAPI{
		list: func(context.Context) ([]wishlist.Item, error) {
			t.Fatal("unexpected network call")
			return nil, nil
		},
	}
	f := newFixture(t, store.Services{Wishlist: wlSvc})
	wl := NewWishlist(f.store, f.sel, f.toast)

	wl.Load(context.Background())
	assert.Empty(t, f.toastMessages())
}
