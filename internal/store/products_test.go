package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfy/storefront/internal/api"
	"github.com/marketfy/storefront/internal/domain/catalog"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact multiple", total: 24, limit: 12, want: 2},
		{name: "rounds up", total: 50, limit: 12, want: 5},
		{name: "single partial page", total: 1, limit: 12, want: 1},
		{name: "empty catalog", total: 0, limit: 12, want: 0},
		{name: "zero limit", total: 50, limit: 0, want: 0},
		{name: "negative limit", total: 50, limit: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.limit))
		})
	}
}

func TestProductsSlice_FetchProducts(t *testing.T) {
	svc := &mockProductsAPI{
		list: func(_ context.Context, params catalog.SearchParams) (*catalog.Page, error) {
			assert.Equal(t, 2, params.Page)
			return &catalog.Page{
				Items: []catalog.Product{{ID: 1, Name: "Mug"}},
				Total: 50,
				Page:  2,
				Limit: 12,
			}, nil
		},
	}

	s := New(Options{Services: Services{Products: svc}})

	ok := s.Products.FetchProducts(context.Background(), catalog.SearchParams{Page: 2, Limit: 12})
	require.True(t, ok)

	st := s.Products.State()
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	require.Len(t, st.Products, 1)
	assert.Equal(t, 50, st.Total)
	assert.Equal(t, 2, st.Page)
	assert.Equal(t, 5, st.TotalPages)
}

func TestProductsSlice_FetchProductsFailure(t *testing.T) {
	svc := &mockProductsAPI{
		list: func(context.Context, catalog.SearchParams) (*catalog.Page, error) {
			return nil, &api.Error{Status: 500, Message: "Catalog unavailable"}
		},
	}

	s := New(Options{Services: Services{Products: svc}})

	require.False(t, s.Products.FetchProducts(context.Background(), catalog.SearchParams{}))

	st := s.Products.State()
	assert.False(t, st.IsLoading)
	assert.Equal(t, "Catalog unavailable", st.Error)
	// A failed fetch keeps what was already on screen.
	assert.Empty(t, st.Products)
}

func TestProductsSlice_StaleFetchDiscarded(t *testing.T) {
	// Two concurrent fetches settle out of order: the first (now stale)
	// request finishes last and must not clobber the newer page.
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	svc := &mockProductsAPI{
		list: func(_ context.Context, params catalog.SearchParams) (*catalog.Page, error) {
			if params.Page == 1 {
				close(firstStarted)
				<-releaseFirst
			}
			return &catalog.Page{
				Items: []catalog.Product{{ID: int64(params.Page)}},
				Total: 24,
				Page:  params.Page,
				Limit: 12,
			}, nil
		},
	}

	s := New(Options{Services: Services{Products: svc}})

	var wg sync.WaitGroup
	wg.Add(1)
	firstResult := true
	go func() {
		defer wg.Done()
		firstResult = s.Products.FetchProducts(context.Background(), catalog.SearchParams{Page: 1, Limit: 12})
	}()

	<-firstStarted
	// The second fetch supersedes the first and settles immediately.
	require.True(t, s.Products.FetchProducts(context.Background(), catalog.SearchParams{Page: 2, Limit: 12}))
	assert.Equal(t, 2, s.Products.State().Page)

	close(releaseFirst)
	wg.Wait()

	assert.False(t, firstResult)
	assert.Equal(t, 2, s.Products.State().Page)
	require.Len(t, s.Products.State().Products, 1)
	assert.Equal(t, int64(2), s.Products.State().Products[0].ID)
}

func TestProductsSlice_SearchProductsDefaults(t *testing.T) {
	var got catalog.SearchParams
	svc := &mockProductsAPI{
		list: func(_ context.Context, params catalog.SearchParams) (*catalog.Page, error) {
			got = params
			return &catalog.Page{Page: params.Page, Limit: params.Limit}, nil
		},
	}

	s := New(Options{Services: Services{Products: svc}})

	require.True(t, s.Products.SearchProducts(context.Background(), "mug", 0, 0))
	assert.Equal(t, "mug", got.Query)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, DefaultPageLimit, got.Limit)
}

func TestProductsSlice_FetchProductByID(t *testing.T) {
	svc := &mockProductsAPI{
		byID: func(_ context.Context, id int64) (*catalog.Product, error) {
			assert.Equal(t, int64(7), id)
			return &catalog.Product{ID: 7, Name: "Lamp"}, nil
		},
	}

	s := New(Options{Services: Services{Products: svc}})

	require.True(t, s.Products.FetchProductByID(context.Background(), 7))
	require.NotNil(t, s.Products.State().CurrentProduct)
	assert.Equal(t, "Lamp", s.Products.State().CurrentProduct.Name)

	s.Products.ClearCurrentProduct()
	assert.Nil(t, s.Products.State().CurrentProduct)
}

func TestProductsSlice_Filters(t *testing.T) {
	s := New(Options{})

	s.Products.SetSearchQuery("mug")
	s.Products.SetSelectedTag("kitchen")
	s.Products.SetPage(3)

	st := s.Products.State()
	assert.Equal(t, "mug", st.SearchQuery)
	assert.Equal(t, "kitchen", st.SelectedTag)
	assert.Equal(t, 3, st.Page)

	s.Products.ResetFilters()
	st = s.Products.State()
	assert.Empty(t, st.SearchQuery)
	assert.Empty(t, st.SelectedTag)
	assert.Equal(t, 1, st.Page)
}
