// Package cart holds the client-owned shopping cart model. The cart lives
// entirely on this side of the wire: mutations never touch the network, and
// every mutation is persisted locally so a reload cannot lose data.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/marketfy/storefront/internal/domain/catalog"
)

// Item is a single cart line: a product and its quantity.
// A cart holds at most one Item per distinct product id; quantities are
// always >= 1 (a quantity dropping to zero removes the line).
type Item struct {
	Product catalog.Product `json:"product"`
	Qty     int             `json:"qty"`
}

// Total returns the sum of price * quantity across all items.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		sum = sum.Add(line)
	}
	return sum
}

// ItemCount returns the sum of quantities across all items.
func ItemCount(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Qty
	}
	return total
}
