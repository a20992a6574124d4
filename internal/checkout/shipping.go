package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/marketfy/storefront/internal/domain/cart"
	"github.com/marketfy/storefront/internal/domain/order"
)

// ShippingMethod enumerates the offered delivery options.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

// ShippingRate returns the flat rate for a delivery method. Unrecognized
// methods fall back to the standard rate.
func ShippingRate(method ShippingMethod) decimal.Decimal {
	switch method {
	case ShippingExpress:
		return decimal.NewFromFloat(12.99)
	case ShippingOvernight:
		return decimal.NewFromFloat(24.99)
	default:
		return decimal.NewFromFloat(5.99)
	}
}

// Quote is the fully priced breakdown of a cart about to become an order.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// PriceCart computes the quote for the given cart items, shipping method
// and promo code. Total is floored at zero and rounded to 2 decimal places.
func PriceCart(items []cart.Item, method ShippingMethod, promoCode string) Quote {
	subtotal := cart.Total(items)
	shipping := ShippingRate(method)
	discount := ApplyPromo(promoCode, subtotal)

	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Quote{
		Subtotal: subtotal.Round(2),
		Shipping: shipping,
		Discount: discount,
		Total:    total.Round(2),
	}
}

// BuildOrderPayload converts cart items and a final total into the creation
// request the backend accepts. Only the product snapshot and quantity go on
// the wire; derived pricing fields stay client-side.
func BuildOrderPayload(items []cart.Item, total decimal.Decimal) order.CreateRequest {
	orderItems := make([]order.Item, len(items))
	for i, item := range items {
		orderItems[i] = order.Item{Product: item.Product, Qty: item.Qty}
	}
	return order.CreateRequest{Items: orderItems, Total: total}
}
