package store

import (
	"github.com/marketfy/storefront/internal/domain/cart"
	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/domain/wishlist"
	"github.com/marketfy/storefront/pkg/memo"
)

// Pagination is the derived pagination summary for the catalog view.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// AnnotatedProduct is a product joined with its wishlist membership.
type AnnotatedProduct struct {
	catalog.Product
	InWishlist bool
}

// Selectors are pure, memoized projections over the store. Each selector is
// keyed on the snapshot pointers it reads, so it recomputes only when one of
// its input slices actually changed.
type Selectors struct {
	store *Store

	isInCart      *memo.Two[*CartState, int64, bool]
	cartItem      *memo.Two[*CartState, int64, *cart.Item]
	isInWishlist  *memo.Two[*WishlistState, int64, bool]
	wishlistItem  *memo.Two[*WishlistState, int64, *wishlist.Item]
	wishlistCount *memo.One[*WishlistState, int]
	ordersCount   *memo.One[*OrdersState, int]
	pagination    *memo.One[*ProductsState, Pagination]
	annotated     *memo.Two[*ProductsState, *WishlistState, []AnnotatedProduct]
}

// NewSelectors builds the selector set for a store.
func NewSelectors(s *Store) *Selectors {
	return &Selectors{
		store: s,
		isInCart: memo.NewTwo(func(st *CartState, productID int64) bool {
			for _, item := range st.Items {
				if item.Product.ID == productID {
					return true
				}
			}
			return false
		}),
		cartItem: memo.NewTwo(func(st *CartState, productID int64) *cart.Item {
			for i := range st.Items {
				if st.Items[i].Product.ID == productID {
					return &st.Items[i]
				}
			}
			return nil
		}),
		isInWishlist: memo.NewTwo(func(st *WishlistState, productID int64) bool {
			return wishlist.ContainsProduct(st.Items, productID)
		}),
		wishlistItem: memo.NewTwo(func(st *WishlistState, productID int64) *wishlist.Item {
			return wishlist.FindByProduct(st.Items, productID)
		}),
		wishlistCount: memo.NewOne(func(st *WishlistState) int {
			return len(st.Items)
		}),
		ordersCount: memo.NewOne(func(st *OrdersState) int {
			return len(st.Orders)
		}),
		pagination: memo.NewOne(func(st *ProductsState) Pagination {
			return Pagination{
				Page:       st.Page,
				Limit:      st.Limit,
				Total:      st.Total,
				TotalPages: st.TotalPages,
			}
		}),
		annotated: memo.NewTwo(func(ps *ProductsState, ws *WishlistState) []AnnotatedProduct {
			out := make([]AnnotatedProduct, len(ps.Products))
			for i, p := range ps.Products {
				out[i] = AnnotatedProduct{
					Product:    p,
					InWishlist: wishlist.ContainsProduct(ws.Items, p.ID),
				}
			}
			return out
		}),
	}
}

// IsInCart reports whether the product has a cart line.
func (s *Selectors) IsInCart(productID int64) bool {
	return s.isInCart.Get(s.store.Cart.State(), productID)
}

// CartItem returns the cart line for the product, or nil.
func (s *Selectors) CartItem(productID int64) *cart.Item {
	return s.cartItem.Get(s.store.Cart.State(), productID)
}

// CartQuantity returns the quantity of the product in the cart, zero when
// absent.
func (s *Selectors) CartQuantity(productID int64) int {
	if item := s.CartItem(productID); item != nil {
		return item.Qty
	}
	return 0
}

// IsInWishlist reports whether the product is wishlisted.
func (s *Selectors) IsInWishlist(productID int64) bool {
	return s.isInWishlist.Get(s.store.Wishlist.State(), productID)
}

// WishlistItem returns the wishlist entry for the product, or nil.
func (s *Selectors) WishlistItem(productID int64) *wishlist.Item {
	return s.wishlistItem.Get(s.store.Wishlist.State(), productID)
}

// WishlistCount returns the number of wishlisted products.
func (s *Selectors) WishlistCount() int {
	return s.wishlistCount.Get(s.store.Wishlist.State())
}

// OrdersCount returns the number of cached orders.
func (s *Selectors) OrdersCount() int {
	return s.ordersCount.Get(s.store.Orders.State())
}

// Pagination returns the catalog pagination summary.
func (s *Selectors) Pagination() Pagination {
	return s.pagination.Get(s.store.Products.State())
}

// ProductsWithWishlist returns every cached product annotated with its
// wishlist membership. The result is recomputed only when the products or
// wishlist slice changed; repeated calls against unchanged state return the
// identical slice.
func (s *Selectors) ProductsWithWishlist() []AnnotatedProduct {
	return s.annotated.Get(s.store.Products.State(), s.store.Wishlist.State())
}
