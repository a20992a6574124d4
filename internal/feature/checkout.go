package feature

import (
	"context"

	"github.com/marketfy/storefront/internal/checkout"
	"github.com/marketfy/storefront/internal/domain/order"
	"github.com/marketfy/storefront/internal/store"
)

// CheckoutForm is the checkout submission: destination, delivery choice and
// an optional promo code. Field-level validation happens before this
// reaches PlaceOrder.
type CheckoutForm struct {
	Address        order.Address
	ShippingMethod checkout.ShippingMethod
	PromoCode      string
}

// Checkout turns the cart into an order: pricing (shipping + promo), domain
// rejections, order creation, and the post-success cart clear.
type Checkout struct {
	store *store.Store
	toast *Toast
}

// NewCheckout creates the checkout feature.
func NewCheckout(st *store.Store, toast *Toast) *Checkout {
	return &Checkout{store: st, toast: toast}
}

// Quote prices the current cart under the form's shipping method and promo
// code without placing anything.
func (c *Checkout) Quote(form CheckoutForm) checkout.Quote {
	return checkout.PriceCart(c.store.Cart.State().Items, form.ShippingMethod, form.PromoCode)
}

// PlaceOrder submits the current cart. Domain rejections (empty cart,
// signed-out session) surface as toasts and never reach the network. On
// success the cart is cleared and the created order returned.
func (c *Checkout) PlaceOrder(ctx context.Context, form CheckoutForm) (*order.Order, bool) {
	items := c.store.Cart.State().Items
	if len(items) == 0 {
		c.toast.Error("Your cart is empty")
		return nil, false
	}
	if !c.store.Auth.State().IsAuthenticated {
		c.toast.Error("Please login to place an order")
		return nil, false
	}

	quote := checkout.PriceCart(items, form.ShippingMethod, form.PromoCode)
	created, ok := c.store.Orders.Create(ctx, checkout.BuildOrderPayload(items, quote.Total))
	if !ok {
		c.toast.Error(c.store.Orders.State().Error)
		return nil, false
	}

	c.store.Cart.ClearCart()
	c.toast.Success("Order placed successfully")
	return created, true
}
