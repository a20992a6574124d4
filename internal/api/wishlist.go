package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/marketfy/storefront/internal/domain/wishlist"
)

// WishlistService handles the server-owned wishlist.
type WishlistService struct {
	client *Client
}

// NewWishlistService creates a WishlistService over the shared client.
func NewWishlistService(client *Client) *WishlistService {
	return &WishlistService{client: client}
}

// List fetches the authenticated user's wishlist.
func (s *WishlistService) List(ctx context.Context) ([]wishlist.Item, error) {
	var items []wishlist.Item
	if err := s.client.GetJSON(ctx, "/wishlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add puts a product on the wishlist and returns the server-created item.
func (s *WishlistService) Add(ctx context.Context, productID int64) (*wishlist.Item, error) {
	var item wishlist.Item
	body := struct {
		ProductID int64 `json:"productId"`
	}{ProductID: productID}
	if err := s.client.PostJSON(ctx, "/wishlist", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes a wishlist entry by its item id.
func (s *WishlistService) Remove(ctx context.Context, itemID int64) error {
	_, err := s.client.Delete(ctx, "/wishlist/"+strconv.FormatInt(itemID, 10), nil)
	return err
}

// RemoveByProduct deletes the wishlist entry referencing the given product.
func (s *WishlistService) RemoveByProduct(ctx context.Context, productID int64) error {
	q := url.Values{}
	q.Set("productId", strconv.FormatInt(productID, 10))
	_, err := s.client.Delete(ctx, "/wishlist", q)
	return err
}
