package wishlist

import (
	"github.com/marketfy/storefront/internal/domain/catalog"
)

// Item is a server-owned wishlist entry. The embedded product is a snapshot
// taken when the entry was created. Client mutations are requests, not
// direct writes: local state only changes after server confirmation.
type Item struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	ProductID int64           `json:"productId"`
	CreatedAt string          `json:"createdAt"`
	Product   catalog.Product `json:"product"`
}

// ContainsProduct reports whether any item references the given product.
func ContainsProduct(items []Item, productID int64) bool {
	for _, item := range items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// FindByProduct returns the item referencing the given product, or nil.
func FindByProduct(items []Item, productID int64) *Item {
	for i := range items {
		if items[i].ProductID == productID {
			return &items[i]
		}
	}
	return nil
}
