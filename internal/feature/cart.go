package feature

import (
	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/store"
)

// Cart wraps the cart slice's mutations with user feedback.
type Cart struct {
	store *store.Store
	sel   *store.Selectors
	toast *Toast
}

// NewCart creates the cart feature.
func NewCart(st *store.Store, sel *store.Selectors, toast *Toast) *Cart {
	return &Cart{store: st, sel: sel, toast: toast}
}

// AddToCart adds the product and confirms with a toast.
func (c *Cart) AddToCart(p catalog.Product) {
	c.store.Cart.AddToCart(p)
	c.toast.Success(p.Name + " added to cart")
}

// RemoveFromCart removes the product's line and confirms with a toast
// naming the product, when it was present.
func (c *Cart) RemoveFromCart(productID int64) {
	item := c.sel.CartItem(productID)
	c.store.Cart.RemoveFromCart(productID)
	if item != nil {
		c.toast.Success(item.Product.Name + " removed from cart")
	}
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (c *Cart) UpdateQuantity(productID int64, qty int) {
	c.store.Cart.UpdateQuantity(productID, qty)
}

// IncreaseQuantity bumps a line's quantity by one.
func (c *Cart) IncreaseQuantity(productID int64) {
	c.store.Cart.IncreaseQuantity(productID)
}

// DecreaseQuantity lowers a line's quantity by one.
func (c *Cart) DecreaseQuantity(productID int64) {
	c.store.Cart.DecreaseQuantity(productID)
}

// ClearCart empties the cart and confirms with a toast.
func (c *Cart) ClearCart() {
	c.store.Cart.ClearCart()
	c.toast.Success("Cart cleared")
}

// IsInCart reports whether the product has a cart line.
func (c *Cart) IsInCart(productID int64) bool {
	return c.sel.IsInCart(productID)
}

// Quantity returns the product's cart quantity, zero when absent.
func (c *Cart) Quantity(productID int64) int {
	return c.sel.CartQuantity(productID)
}
