package store

import (
	"context"

	"github.com/marketfy/storefront/internal/domain/wishlist"
)

// WishlistAPI is the remote surface the wishlist slice depends on.
type WishlistAPI interface {
	List(ctx context.Context) ([]wishlist.Item, error)
	Add(ctx context.Context, productID int64) (*wishlist.Item, error)
	Remove(ctx context.Context, itemID int64) error
	RemoveByProduct(ctx context.Context, productID int64) error
}

// WishlistState is the wishlist slice snapshot.
type WishlistState struct {
	Items     []wishlist.Item
	IsLoading bool
	Error     string
}

// WishlistSlice caches the server-owned wishlist. Mutations are requests:
// items only change after the server confirms, never optimistically.
type WishlistSlice struct {
	s   *sliceState[WishlistState]
	svc WishlistAPI
}

func newWishlistSlice(n *notifier, svc WishlistAPI) *WishlistSlice {
	return &WishlistSlice{s: newSliceState(n, WishlistState{}), svc: svc}
}

// State returns the current snapshot.
func (w *WishlistSlice) State() *WishlistState {
	return w.s.get()
}

// Fetch replaces the cached wishlist with the server's.
func (w *WishlistSlice) Fetch(ctx context.Context) bool {
	w.pending()
	items, err := w.svc.List(ctx)
	if err != nil {
		w.reject(messageOf(err, "Failed to fetch wishlist"))
		return false
	}
	w.s.reduce(func(st WishlistState) WishlistState {
		st.IsLoading = false
		st.Items = items
		return st
	})
	return true
}

// Add requests a wishlist entry for the product and appends the confirmed
// item on success.
func (w *WishlistSlice) Add(ctx context.Context, productID int64) bool {
	w.pending()
	item, err := w.svc.Add(ctx, productID)
	if err != nil {
		w.reject(messageOf(err, "Failed to add to wishlist"))
		return false
	}
	w.s.reduce(func(st WishlistState) WishlistState {
		st.IsLoading = false
		items := make([]wishlist.Item, len(st.Items), len(st.Items)+1)
		copy(items, st.Items)
		st.Items = append(items, *item)
		return st
	})
	return true
}

// Remove requests deletion by wishlist item id and filters the confirmed
// item out on success.
func (w *WishlistSlice) Remove(ctx context.Context, itemID int64) bool {
	w.pending()
	if err := w.svc.Remove(ctx, itemID); err != nil {
		w.reject(messageOf(err, "Failed to remove from wishlist"))
		return false
	}
	w.s.reduce(func(st WishlistState) WishlistState {
		st.IsLoading = false
		st.Items = filterItems(st.Items, func(it wishlist.Item) bool {
			return it.ID != itemID
		})
		return st
	})
	return true
}

// RemoveByProduct requests deletion by product id and filters the confirmed
// item out on success.
func (w *WishlistSlice) RemoveByProduct(ctx context.Context, productID int64) bool {
	w.pending()
	if err := w.svc.RemoveByProduct(ctx, productID); err != nil {
		w.reject(messageOf(err, "Failed to remove from wishlist"))
		return false
	}
	w.s.reduce(func(st WishlistState) WishlistState {
		st.IsLoading = false
		st.Items = filterItems(st.Items, func(it wishlist.Item) bool {
			return it.ProductID != productID
		})
		return st
	})
	return true
}

// Clear empties the cached wishlist. Used by the feature layer on logout.
func (w *WishlistSlice) Clear() {
	w.s.reduce(func(WishlistState) WishlistState {
		return WishlistState{}
	})
}

// ClearError drops the slice error.
func (w *WishlistSlice) ClearError() {
	w.s.reduce(func(st WishlistState) WishlistState {
		st.Error = ""
		return st
	})
}

func (w *WishlistSlice) pending() {
	w.s.reduce(func(st WishlistState) WishlistState {
		st.IsLoading = true
		st.Error = ""
		return st
	})
}

func (w *WishlistSlice) reject(msg string) {
	w.s.reduce(func(st WishlistState) WishlistState {
		st.IsLoading = false
		st.Error = msg
		return st
	})
}

func filterItems(items []wishlist.Item, keep func(wishlist.Item) bool) []wishlist.Item {
	kept := make([]wishlist.Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
