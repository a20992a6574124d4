package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/marketfy/storefront/internal/domain/order"
)

// OrdersService handles order creation and history.
type OrdersService struct {
	client *Client
}

// NewOrdersService creates an OrdersService over the shared client.
func NewOrdersService(client *Client) *OrdersService {
	return &OrdersService{client: client}
}

// Create places a new order.
func (s *OrdersService) Create(ctx context.Context, req order.CreateRequest) (*order.Order, error) {
	var o order.Order
	if err := s.client.PostJSON(ctx, "/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// List fetches the order history. Page and limit values <= 0 are omitted.
//
// Deployments disagree on the response shape: some return a bare array,
// others an envelope {data|items, total, page, limit}. Both are unwrapped
// here so nothing above the service boundary ever sees the difference.
func (s *OrdersService) List(ctx context.Context, page, limit int) ([]order.Order, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	body, err := s.client.Get(ctx, "/orders", q)
	if err != nil {
		return nil, err
	}
	return unwrapOrderList(body)
}

// ByID fetches a single order.
func (s *OrdersService) ByID(ctx context.Context, orderID string) (*order.Order, error) {
	var o order.Order
	if err := s.client.GetJSON(ctx, "/orders/"+url.PathEscape(orderID), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Search filters the order history by a case-insensitive substring match on
// the order id. The backend exposes no search endpoint, so this fetches the
// full list and filters client-side.
func (s *OrdersService) Search(ctx context.Context, query string) ([]order.Order, error) {
	all, err := s.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]order.Order, 0, len(all))
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.OrderID), q) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// unwrapOrderList detects whether the payload is a bare order array or an
// envelope and returns the order list either way.
func unwrapOrderList(body []byte) ([]order.Order, error) {
	d := jx.DecodeBytes(body)
	switch tt := d.Next(); tt {
	case jx.Array:
		return decodeOrders(body)
	case jx.Object:
		var inner []byte
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			switch string(key) {
			case "data", "items":
				raw, err := d.Raw()
				if err != nil {
					return err
				}
				inner = []byte(raw)
				return nil
			default:
				return d.Skip()
			}
		}); err != nil {
			return nil, errors.Wrap(err, "unwrap order list")
		}
		if inner == nil {
			return nil, errors.New("order list envelope has no data field")
		}
		return decodeOrders(inner)
	default:
		return nil, errors.Errorf("unexpected order list payload: %v", tt)
	}
}

func decodeOrders(raw []byte) ([]order.Order, error) {
	var orders []order.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, errors.Wrap(err, "decode order list")
	}
	return orders, nil
}
