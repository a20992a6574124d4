package store

import (
	"context"
	"sync/atomic"

	"github.com/marketfy/storefront/internal/domain/catalog"
)

// DefaultPageLimit is the catalog page size used when the caller does not
// choose one.
const DefaultPageLimit = 12

// ProductsAPI is the remote surface the products slice depends on.
type ProductsAPI interface {
	List(ctx context.Context, params catalog.SearchParams) (*catalog.Page, error)
	ByID(ctx context.Context, id int64) (*catalog.Product, error)
}

// ProductsState is the products slice snapshot.
type ProductsState struct {
	Products       []catalog.Product
	CurrentProduct *catalog.Product
	Total          int
	Page           int
	Limit          int
	TotalPages     int
	SearchQuery    string
	SelectedTag    string
	IsLoading      bool
	Error          string
}

// ProductsSlice caches the server-owned catalog. List fetches carry a
// monotonic sequence number; a settlement that is no longer the latest
// issued fetch is discarded, so rapid page flips cannot publish stale pages
// over fresh ones.
type ProductsSlice struct {
	s   *sliceState[ProductsState]
	svc ProductsAPI

	listSeq atomic.Uint64
	itemSeq atomic.Uint64
}

func newProductsSlice(n *notifier, svc ProductsAPI) *ProductsSlice {
	return &ProductsSlice{
		s: newSliceState(n, ProductsState{
			Page:  1,
			Limit: DefaultPageLimit,
		}),
		svc: svc,
	}
}

// State returns the current snapshot.
func (p *ProductsSlice) State() *ProductsState {
	return p.s.get()
}

// FetchProducts loads a catalog page. A zero-value params fetches the first
// page with defaults.
func (p *ProductsSlice) FetchProducts(ctx context.Context, params catalog.SearchParams) bool {
	seq := p.listSeq.Add(1)
	p.s.reduce(func(st ProductsState) ProductsState {
		st.IsLoading = true
		st.Error = ""
		return st
	})

	page, err := p.svc.List(ctx, params)
	if !p.latestList(seq) {
		return false
	}
	if err != nil {
		p.s.reduce(func(st ProductsState) ProductsState {
			st.IsLoading = false
			st.Error = messageOf(err, "Failed to fetch products")
			return st
		})
		return false
	}
	p.fulfillPage(page)
	return true
}

// SearchProducts loads a catalog page filtered by a free-text query.
func (p *ProductsSlice) SearchProducts(ctx context.Context, query string, page, limit int) bool {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if page <= 0 {
		page = 1
	}
	return p.FetchProducts(ctx, catalog.SearchParams{Query: query, Page: page, Limit: limit})
}

// FetchProductByID loads a single product into CurrentProduct.
func (p *ProductsSlice) FetchProductByID(ctx context.Context, id int64) bool {
	seq := p.itemSeq.Add(1)
	p.s.reduce(func(st ProductsState) ProductsState {
		st.IsLoading = true
		st.Error = ""
		return st
	})

	product, err := p.svc.ByID(ctx, id)
	if seq != p.itemSeq.Load() {
		return false
	}
	if err != nil {
		p.s.reduce(func(st ProductsState) ProductsState {
			st.IsLoading = false
			st.Error = messageOf(err, "Failed to fetch product")
			return st
		})
		return false
	}
	p.s.reduce(func(st ProductsState) ProductsState {
		st.IsLoading = false
		st.CurrentProduct = product
		return st
	})
	return true
}

// SetSearchQuery records the free-text filter.
func (p *ProductsSlice) SetSearchQuery(query string) {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.SearchQuery = query
		return st
	})
}

// SetSelectedTag records the tag filter.
func (p *ProductsSlice) SetSelectedTag(tag string) {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.SelectedTag = tag
		return st
	})
}

// SetPage records the current page.
func (p *ProductsSlice) SetPage(page int) {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.Page = page
		return st
	})
}

// ResetFilters drops the query and tag filters and returns to page one.
func (p *ProductsSlice) ResetFilters() {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.SearchQuery = ""
		st.SelectedTag = ""
		st.Page = 1
		return st
	})
}

// ClearCurrentProduct drops the detail view's product.
func (p *ProductsSlice) ClearCurrentProduct() {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.CurrentProduct = nil
		return st
	})
}

// ClearError drops the slice error.
func (p *ProductsSlice) ClearError() {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.Error = ""
		return st
	})
}

func (p *ProductsSlice) latestList(seq uint64) bool {
	return seq == p.listSeq.Load()
}

func (p *ProductsSlice) fulfillPage(page *catalog.Page) {
	p.s.reduce(func(st ProductsState) ProductsState {
		st.IsLoading = false
		st.Products = page.Items
		st.Total = page.Total
		st.Page = page.Page
		st.Limit = page.Limit
		st.TotalPages = totalPages(page.Total, page.Limit)
		return st
	})
}

// totalPages is ceil(total/limit); callers guarantee limit > 0 on the happy
// path, a non-positive limit yields zero pages rather than a panic.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
