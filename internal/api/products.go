package api

import (
	"context"
	"strconv"

	"github.com/marketfy/storefront/internal/domain/catalog"
)

// ProductsService handles catalog reads.
type ProductsService struct {
	client *Client
}

// NewProductsService creates a ProductsService over the shared client.
func NewProductsService(client *Client) *ProductsService {
	return &ProductsService{client: client}
}

// List fetches a page of the catalog with optional filters.
func (s *ProductsService) List(ctx context.Context, params catalog.SearchParams) (*catalog.Page, error) {
	var page catalog.Page
	if err := s.client.GetJSON(ctx, "/products", params.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ByID fetches a single product.
func (s *ProductsService) ByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var p catalog.Product
	if err := s.client.GetJSON(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Search fetches a page filtered by a free-text query.
func (s *ProductsService) Search(ctx context.Context, query string, page, limit int) (*catalog.Page, error) {
	return s.List(ctx, catalog.SearchParams{Query: query, Page: page, Limit: limit})
}

// ByTag fetches a page filtered by tag.
func (s *ProductsService) ByTag(ctx context.Context, tag string, page, limit int) (*catalog.Page, error) {
	return s.List(ctx, catalog.SearchParams{Tag: tag, Page: page, Limit: limit})
}

// Sorted fetches a page ordered by the given field and direction.
func (s *ProductsService) Sorted(ctx context.Context, sortBy, sortOrder string, page, limit int) (*catalog.Page, error) {
	return s.List(ctx, catalog.SearchParams{SortBy: sortBy, SortOrder: sortOrder, Page: page, Limit: limit})
}
