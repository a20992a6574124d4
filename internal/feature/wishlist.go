package feature

import (
	"context"

	"github.com/marketfy/storefront/internal/store"
)

const loginRequiredMessage = "Please login to add items to wishlist"

// Wishlist orchestrates wishlist mutations: authentication gating, toggle
// semantics, and feedback toasts. State changes only after server
// confirmation; there is no optimistic path.
type Wishlist struct {
	store *store.Store
	sel   *store.Selectors
	toast *Toast
}

// NewWishlist creates the wishlist feature.
func NewWishlist(st *store.Store, sel *store.Selectors, toast *Toast) *Wishlist {
	return &Wishlist{store: st, sel: sel, toast: toast}
}

// Load fetches the wishlist. Signed-out sessions are a silent no-op: there
// is nothing to load and nothing worth a toast.
func (w *Wishlist) Load(ctx context.Context) {
	if !w.authenticated() {
		return
	}
	w.store.Wishlist.Fetch(ctx)
}

// Add requests a wishlist entry and toasts the outcome. Unauthenticated
// calls short-circuit with an error toast and never reach the network.
func (w *Wishlist) Add(ctx context.Context, productID int64, productName string) bool {
	if !w.authenticated() {
		w.toast.Error(loginRequiredMessage)
		return false
	}
	if !w.store.Wishlist.Add(ctx, productID) {
		w.toast.Error("Failed to add to wishlist")
		return false
	}
	w.toast.Success(withName(productName, "added to wishlist"))
	return true
}

// Remove deletes an entry by wishlist item id and toasts the outcome.
func (w *Wishlist) Remove(ctx context.Context, itemID int64, productName string) bool {
	if !w.store.Wishlist.Remove(ctx, itemID) {
		w.toast.Error("Failed to remove from wishlist")
		return false
	}
	w.toast.Success(withName(productName, "removed from wishlist"))
	return true
}

// RemoveByProduct deletes the entry referencing the product and toasts the
// outcome.
func (w *Wishlist) RemoveByProduct(ctx context.Context, productID int64, productName string) bool {
	if !w.store.Wishlist.RemoveByProduct(ctx, productID) {
		w.toast.Error("Failed to remove from wishlist")
		return false
	}
	w.toast.Success(withName(productName, "removed from wishlist"))
	return true
}

// Toggle adds the product when absent and removes it (by its wishlist item
// id) when present.
func (w *Wishlist) Toggle(ctx context.Context, productID int64, productName string) bool {
	if item := w.sel.WishlistItem(productID); item != nil {
		return w.Remove(ctx, item.ID, productName)
	}
	return w.Add(ctx, productID, productName)
}

// IsInWishlist reports whether the product is wishlisted.
func (w *Wishlist) IsInWishlist(productID int64) bool {
	return w.sel.IsInWishlist(productID)
}

// Count returns the number of wishlisted products.
func (w *Wishlist) Count() int {
	return w.sel.WishlistCount()
}

func (w *Wishlist) authenticated() bool {
	return w.store.Auth.State().IsAuthenticated
}

func withName(name, suffix string) string {
	if name == "" {
		return "Item " + suffix
	}
	return name + " " + suffix
}
