package store

import (
	"github.com/shopspring/decimal"

	"github.com/marketfy/storefront/internal/domain/cart"
	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/storage"
)

// CartPersistence scopes cart storage to the current user identity so
// switching accounts cannot leak carts.
type CartPersistence struct {
	Store storage.Store
	// Identity returns the signed-in user id, or nil for the anonymous
	// bucket. Read on every persistence access, not captured.
	Identity func() *int64
}

func (p CartPersistence) key() string {
	var id *int64
	if p.Identity != nil {
		id = p.Identity()
	}
	return storage.CartKey(id)
}

func (p CartPersistence) load() []cart.Item {
	if p.Store == nil {
		return nil
	}
	var items []cart.Item
	if !p.Store.GetJSON(p.key(), &items) {
		return nil
	}
	return items
}

func (p CartPersistence) save(items []cart.Item) {
	if p.Store == nil {
		return
	}
	if items == nil {
		items = []cart.Item{}
	}
	p.Store.SetJSON(p.key(), items)
}

// CartState is the cart slice snapshot. Total and ItemCount are recomputed
// on every mutation, never incrementally patched.
type CartState struct {
	Items     []cart.Item
	Total     decimal.Decimal
	ItemCount int
}

// CartSlice is fully synchronous and wholly client-owned: no reducer
// touches the network, and every mutation is durably persisted before the
// call returns.
type CartSlice struct {
	s *sliceState[CartState]
	p CartPersistence
}

func newCartSlice(n *notifier, p CartPersistence) *CartSlice {
	return &CartSlice{
		s: newSliceState(n, CartState{Total: decimal.Zero}),
		p: p,
	}
}

// State returns the current snapshot.
func (c *CartSlice) State() *CartState {
	return c.s.get()
}

// AddToCart increments the quantity when the product is already present,
// otherwise appends a new line with quantity 1.
func (c *CartSlice) AddToCart(p catalog.Product) {
	c.mutate(func(items []cart.Item) []cart.Item {
		for i := range items {
			if items[i].Product.ID == p.ID {
				items[i].Qty++
				return items
			}
		}
		return append(items, cart.Item{Product: p, Qty: 1})
	})
}

// RemoveFromCart drops the line for the given product entirely.
func (c *CartSlice) RemoveFromCart(productID int64) {
	c.mutate(func(items []cart.Item) []cart.Item {
		return removeLine(items, productID)
	})
}

// UpdateQuantity sets the quantity for a product; qty <= 0 removes the line.
// Products not in the cart are left untouched.
func (c *CartSlice) UpdateQuantity(productID int64, qty int) {
	c.mutate(func(items []cart.Item) []cart.Item {
		if qty <= 0 {
			return removeLine(items, productID)
		}
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Qty = qty
			}
		}
		return items
	})
}

// IncreaseQuantity bumps a line's quantity by one.
func (c *CartSlice) IncreaseQuantity(productID int64) {
	c.mutate(func(items []cart.Item) []cart.Item {
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Qty++
			}
		}
		return items
	})
}

// DecreaseQuantity lowers a line's quantity by one; reaching zero removes
// the line.
func (c *CartSlice) DecreaseQuantity(productID int64) {
	c.mutate(func(items []cart.Item) []cart.Item {
		for i := range items {
			if items[i].Product.ID == productID {
				if items[i].Qty > 1 {
					items[i].Qty--
					return items
				}
				return removeLine(items, productID)
			}
		}
		return items
	})
}

// ClearCart empties the cart.
func (c *CartSlice) ClearCart() {
	c.mutate(func([]cart.Item) []cart.Item {
		return nil
	})
}

// LoadCart rehydrates the cart from persisted storage for the current
// identity. Used at session start and after login/logout switches identity.
func (c *CartSlice) LoadCart() {
	items := c.p.load()
	c.s.reduce(func(CartState) CartState {
		return CartState{
			Items:     items,
			Total:     cart.Total(items),
			ItemCount: cart.ItemCount(items),
		}
	})
}

// mutate runs fn over a copied item list, recomputes the derived fields and
// persists synchronously before publishing the new snapshot.
func (c *CartSlice) mutate(fn func([]cart.Item) []cart.Item) {
	c.s.reduce(func(st CartState) CartState {
		items := make([]cart.Item, len(st.Items))
		copy(items, st.Items)
		items = fn(items)
		c.p.save(items)
		return CartState{
			Items:     items,
			Total:     cart.Total(items),
			ItemCount: cart.ItemCount(items),
		}
	})
}

func removeLine(items []cart.Item, productID int64) []cart.Item {
	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
