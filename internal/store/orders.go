package store

import (
	"context"
	"sync/atomic"

	"github.com/marketfy/storefront/internal/domain/order"
)

// OrdersAPI is the remote surface the orders slice depends on.
type OrdersAPI interface {
	Create(ctx context.Context, req order.CreateRequest) (*order.Order, error)
	List(ctx context.Context, page, limit int) ([]order.Order, error)
	ByID(ctx context.Context, orderID string) (*order.Order, error)
	Search(ctx context.Context, query string) ([]order.Order, error)
}

// OrdersState is the orders slice snapshot. Orders are most-recent-first.
type OrdersState struct {
	Orders             []order.Order
	CurrentOrder       *order.Order
	IsLoading          bool
	Error              string
	LastCreatedOrderID string
}

// OrdersSlice caches the server-owned order history. List fetches carry the
// same stale-settlement guard as the products slice.
type OrdersSlice struct {
	s   *sliceState[OrdersState]
	svc OrdersAPI

	listSeq atomic.Uint64
}

func newOrdersSlice(n *notifier, svc OrdersAPI) *OrdersSlice {
	return &OrdersSlice{s: newSliceState(n, OrdersState{}), svc: svc}
}

// State returns the current snapshot.
func (o *OrdersSlice) State() *OrdersState {
	return o.s.get()
}

// Create places an order; on success the new order is prepended to the
// history and its id recorded for the confirmation view.
func (o *OrdersSlice) Create(ctx context.Context, req order.CreateRequest) (*order.Order, bool) {
	o.pending()
	created, err := o.svc.Create(ctx, req)
	if err != nil {
		o.reject(messageOf(err, "Failed to create order"))
		return nil, false
	}
	o.s.reduce(func(st OrdersState) OrdersState {
		st.IsLoading = false
		orders := make([]order.Order, 0, len(st.Orders)+1)
		orders = append(orders, *created)
		orders = append(orders, st.Orders...)
		st.Orders = orders
		st.LastCreatedOrderID = created.OrderID
		return st
	})
	return created, true
}

// Fetch replaces the order history with a page from the server.
func (o *OrdersSlice) Fetch(ctx context.Context, page, limit int) bool {
	seq := o.listSeq.Add(1)
	o.pending()
	orders, err := o.svc.List(ctx, page, limit)
	if seq != o.listSeq.Load() {
		return false
	}
	if err != nil {
		o.reject(messageOf(err, "Failed to fetch orders"))
		return false
	}
	o.fulfillList(orders)
	return true
}

// FetchByID loads a single order into CurrentOrder.
func (o *OrdersSlice) FetchByID(ctx context.Context, orderID string) bool {
	o.pending()
	found, err := o.svc.ByID(ctx, orderID)
	if err != nil {
		o.reject(messageOf(err, "Failed to fetch order"))
		return false
	}
	o.s.reduce(func(st OrdersState) OrdersState {
		st.IsLoading = false
		st.CurrentOrder = found
		return st
	})
	return true
}

// Search replaces the history with orders whose id matches the query.
func (o *OrdersSlice) Search(ctx context.Context, query string) bool {
	seq := o.listSeq.Add(1)
	o.pending()
	orders, err := o.svc.Search(ctx, query)
	if seq != o.listSeq.Load() {
		return false
	}
	if err != nil {
		o.reject(messageOf(err, "Failed to search orders"))
		return false
	}
	o.fulfillList(orders)
	return true
}

// ClearCurrentOrder drops the detail view's order.
func (o *OrdersSlice) ClearCurrentOrder() {
	o.s.reduce(func(st OrdersState) OrdersState {
		st.CurrentOrder = nil
		return st
	})
}

// Clear empties the cached history. Used by the feature layer on logout.
func (o *OrdersSlice) Clear() {
	o.s.reduce(func(OrdersState) OrdersState {
		return OrdersState{}
	})
}

// ClearError drops the slice error.
func (o *OrdersSlice) ClearError() {
	o.s.reduce(func(st OrdersState) OrdersState {
		st.Error = ""
		return st
	})
}

func (o *OrdersSlice) pending() {
	o.s.reduce(func(st OrdersState) OrdersState {
		st.IsLoading = true
		st.Error = ""
		return st
	})
}

func (o *OrdersSlice) reject(msg string) {
	o.s.reduce(func(st OrdersState) OrdersState {
		st.IsLoading = false
		st.Error = msg
		return st
	})
}

func (o *OrdersSlice) fulfillList(orders []order.Order) {
	o.s.reduce(func(st OrdersState) OrdersState {
		st.IsLoading = false
		st.Orders = orders
		return st
	})
}
