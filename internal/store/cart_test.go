package store

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfy/storefront/internal/domain/cart"
	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/storage"
)

func testProduct(id int64, price float64) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  "Product " + strconv.FormatInt(id, 10),
		Price: decimal.NewFromFloat(price),
	}
}

func newTestCart(t *testing.T) (*CartSlice, storage.Store) {
	t.Helper()
	mem := storage.NewMemStore()
	s := New(Options{
		Cart: CartPersistence{Store: mem, Identity: func() *int64 { return nil }},
	})
	return s.Cart, mem
}

func requireTotals(t *testing.T, c *CartSlice, total float64, count int) {
	t.Helper()
	st := c.State()
	want := decimal.NewFromFloat(total)
	require.True(t, want.Equal(st.Total), "expected total %s, got %s", want, st.Total)
	require.Equal(t, count, st.ItemCount)

	// Derived fields always match a recomputation over the item list.
	require.True(t, cart.Total(st.Items).Equal(st.Total))
	require.Equal(t, cart.ItemCount(st.Items), st.ItemCount)
}

func TestCartSlice_AddToCart(t *testing.T) {
	c, _ := newTestCart(t)
	p1 := testProduct(1, 10)
	p2 := testProduct(2, 5)

	c.AddToCart(p1)
	requireTotals(t, c, 10, 1)

	c.AddToCart(p2)
	requireTotals(t, c, 15, 2)

	// Adding an existing product bumps the quantity instead of duplicating
	// the line.
	c.AddToCart(p1)
	st := c.State()
	require.Len(t, st.Items, 2)
	assert.Equal(t, 2, st.Items[0].Qty)
	requireTotals(t, c, 25, 3)
}

func TestCartSlice_RemoveFromCart(t *testing.T) {
	c, _ := newTestCart(t)
	c.AddToCart(testProduct(1, 10))
	c.AddToCart(testProduct(1, 10))
	c.AddToCart(testProduct(2, 5))
	requireTotals(t, c, 25, 3)

	c.RemoveFromCart(1)
	requireTotals(t, c, 5, 1)
	require.Len(t, c.State().Items, 1)
	assert.Equal(t, int64(2), c.State().Items[0].Product.ID)

	// Removing an absent product is a no-op.
	c.RemoveFromCart(99)
	requireTotals(t, c, 5, 1)
}

func TestCartSlice_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		wantItems int
		wantTotal float64
		wantCount int
	}{
		{name: "positive quantity updates line", qty: 4, wantItems: 1, wantTotal: 40, wantCount: 4},
		{name: "zero removes line", qty: 0, wantItems: 0, wantTotal: 0, wantCount: 0},
		{name: "negative removes line", qty: -3, wantItems: 0, wantTotal: 0, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCart(t)
			c.AddToCart(testProduct(1, 10))

			c.UpdateQuantity(1, tt.qty)

			require.Len(t, c.State().Items, tt.wantItems)
			requireTotals(t, c, tt.wantTotal, tt.wantCount)
		})
	}
}

func TestCartSlice_DecreaseQuantity(t *testing.T) {
	c, _ := newTestCart(t)
	c.AddToCart(testProduct(1, 10))
	c.AddToCart(testProduct(1, 10))

	c.DecreaseQuantity(1)
	requireTotals(t, c, 10, 1)

	// Decreasing at qty=1 removes the line entirely; the cart never holds
	// a qty<=0 entry.
	c.DecreaseQuantity(1)
	require.Empty(t, c.State().Items)
	requireTotals(t, c, 0, 0)
}

func TestCartSlice_IncreaseQuantity(t *testing.T) {
	c, _ := newTestCart(t)
	c.AddToCart(testProduct(1, 10))

	c.IncreaseQuantity(1)
	requireTotals(t, c, 20, 2)

	// Unknown product is a no-op.
	c.IncreaseQuantity(42)
	requireTotals(t, c, 20, 2)
}

func TestCartSlice_ClearCart(t *testing.T) {
	c, mem := newTestCart(t)
	c.AddToCart(testProduct(1, 10))
	c.ClearCart()

	require.Empty(t, c.State().Items)
	requireTotals(t, c, 0, 0)

	// The cleared list is persisted, not just dropped in memory.
	var persisted []cart.Item
	require.True(t, mem.GetJSON(storage.CartKey(nil), &persisted))
	assert.Empty(t, persisted)
}

func TestCartSlice_TotalsScenario(t *testing.T) {
	c, _ := newTestCart(t)
	c.AddToCart(testProduct(1, 10))
	c.IncreaseQuantity(1)
	c.AddToCart(testProduct(2, 5))
	requireTotals(t, c, 25, 3)

	c.RemoveFromCart(1)
	requireTotals(t, c, 5, 1)
}

func TestCartSlice_PersistsAcrossReload(t *testing.T) {
	mem := storage.NewMemStore()
	identity := func() *int64 { return nil }

	first := New(Options{Cart: CartPersistence{Store: mem, Identity: identity}})
	first.Cart.AddToCart(testProduct(1, 10))
	first.Cart.AddToCart(testProduct(2, 5))
	first.Cart.AddToCart(testProduct(1, 10))

	// A fresh store over the same storage rehydrates the identical list.
	second := New(Options{Cart: CartPersistence{Store: mem, Identity: identity}})
	second.Cart.LoadCart()

	want := first.Cart.State().Items
	got := second.Cart.State().Items
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Product.ID, got[i].Product.ID)
		assert.Equal(t, want[i].Qty, got[i].Qty)
		assert.True(t, want[i].Product.Price.Equal(got[i].Product.Price))
	}
	requireTotals(t, second.Cart, 25, 3)
}

func TestCartSlice_KeyScopedPerIdentity(t *testing.T) {
	mem := storage.NewMemStore()
	var current *int64
	identity := func() *int64 { return current }

	s := New(Options{Cart: CartPersistence{Store: mem, Identity: identity}})

	// Anonymous cart.
	s.Cart.AddToCart(testProduct(1, 10))

	// Switch identity: rehydrating must not leak the guest cart.
	uid := int64(7)
	current = &uid
	s.Cart.LoadCart()
	require.Empty(t, s.Cart.State().Items)

	s.Cart.AddToCart(testProduct(2, 5))

	// Switching back restores the guest cart untouched.
	current = nil
	s.Cart.LoadCart()
	require.Len(t, s.Cart.State().Items, 1)
	assert.Equal(t, int64(1), s.Cart.State().Items[0].Product.ID)
}

func TestCartSlice_SnapshotIdentity(t *testing.T) {
	c, _ := newTestCart(t)
	before := c.State()
	assert.Same(t, before, c.State())

	c.AddToCart(testProduct(1, 10))
	after := c.State()
	assert.NotSame(t, before, after)
}
