package order

import (
	"github.com/shopspring/decimal"

	"github.com/marketfy/storefront/internal/domain/catalog"
)

// Item represents a single line item in an order.
type Item struct {
	Product catalog.Product `json:"product"`
	Qty     int             `json:"qty"`
}

// Address is the shipping destination attached to an order.
type Address struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// Order represents a placed customer order. Subtotal, Shipping, Discount and
// ShippingAddress are derived fields some deployments do not persist; callers
// must tolerate their absence and recompute where needed.
type Order struct {
	OrderID   string          `json:"orderId"`
	UserID    int64           `json:"userId"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`

	Subtotal        *decimal.Decimal `json:"subtotal,omitempty"`
	Shipping        *decimal.Decimal `json:"shipping,omitempty"`
	Discount        *decimal.Decimal `json:"discount,omitempty"`
	ShippingAddress *Address         `json:"shippingAddress,omitempty"`
}

// CreateRequest is the order creation payload. The backend accepts only
// items and total; derived fields are never sent.
type CreateRequest struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}
