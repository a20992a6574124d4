package feature

import (
	"context"
	"time"

	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/store"
	"github.com/marketfy/storefront/pkg/debounce"
)

// SearchDebounce is the quiet interval applied to free-text search input.
const SearchDebounce = 500 * time.Millisecond

// Products orchestrates catalog browsing: paging, tag filtering, and a
// debounced free-text search that bounds the request rate while the user
// types.
type Products struct {
	store *store.Store
	sel   *store.Selectors
	deb   *debounce.Debouncer

	// baseCtx scopes debounced fetches, which outlive the keystroke that
	// scheduled them.
	baseCtx context.Context
}

// NewProducts creates the products feature. baseCtx bounds background
// fetches; pass the application lifetime context.
func NewProducts(baseCtx context.Context, st *store.Store, sel *store.Selectors) *Products {
	return &Products{
		store:   st,
		sel:     sel,
		deb:     debounce.New(SearchDebounce),
		baseCtx: baseCtx,
	}
}

// Fetch loads a catalog page with the given parameters.
func (p *Products) Fetch(ctx context.Context, params catalog.SearchParams) bool {
	return p.store.Products.FetchProducts(ctx, params)
}

// GoToPage loads the given page, keeping the active query and tag filters.
func (p *Products) GoToPage(ctx context.Context, page int) bool {
	st := p.store.Products.State()
	p.store.Products.SetPage(page)
	return p.store.Products.FetchProducts(ctx, catalog.SearchParams{
		Query: st.SearchQuery,
		Tag:   st.SelectedTag,
		Page:  page,
		Limit: st.Limit,
	})
}

// SearchInput records a keystroke of the free-text filter and schedules the
// actual search for when the input goes quiet. Only the last value typed
// within the debounce window hits the network.
func (p *Products) SearchInput(query string) {
	p.store.Products.SetSearchQuery(query)
	p.deb.Do(func() {
		p.store.Products.SearchProducts(p.baseCtx, query, 1, p.store.Products.State().Limit)
	})
}

// FilterByTag applies a tag filter immediately.
func (p *Products) FilterByTag(ctx context.Context, tag string) bool {
	p.store.Products.SetSelectedTag(tag)
	st := p.store.Products.State()
	return p.store.Products.FetchProducts(ctx, catalog.SearchParams{
		Tag:   tag,
		Page:  1,
		Limit: st.Limit,
	})
}

// ResetFilters drops all filters and reloads the first page.
func (p *Products) ResetFilters(ctx context.Context) bool {
	p.store.Products.ResetFilters()
	return p.store.Products.FetchProducts(ctx, catalog.SearchParams{
		Page:  1,
		Limit: p.store.Products.State().Limit,
	})
}

// Detail loads a single product for the detail view.
func (p *Products) Detail(ctx context.Context, id int64) bool {
	return p.store.Products.FetchProductByID(ctx, id)
}

// Pagination returns the derived pagination summary.
func (p *Products) Pagination() store.Pagination {
	return p.sel.Pagination()
}

// WithWishlist returns the cached products annotated with wishlist
// membership.
func (p *Products) WithWishlist() []store.AnnotatedProduct {
	return p.sel.ProductsWithWishlist()
}

// Close cancels any pending debounced search.
func (p *Products) Close() {
	p.deb.Stop()
}
