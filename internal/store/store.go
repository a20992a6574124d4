// Package store is the domain state container: six independent slices
// (auth, cart, products, wishlist, orders, ui) with synchronous reducers and
// asynchronous operations that call the remote layer and reduce its outcome.
//
// Every slice exposes an immutable snapshot pointer replaced wholesale on
// each reduction, so consumers (and memoized selectors) can detect change by
// pointer identity. All mutation goes through reducers; a slice never
// reaches into another slice. Cross-slice effects compose in the feature
// layer.
package store

import (
	"sync"
	"sync/atomic"

	"github.com/go-faster/errors"

	"github.com/marketfy/storefront/internal/api"
	"github.com/marketfy/storefront/internal/storage"
)

// Store aggregates the slices and their shared change notifier.
type Store struct {
	Auth     *AuthSlice
	Cart     *CartSlice
	Products *ProductsSlice
	Wishlist *WishlistSlice
	Orders   *OrdersSlice
	UI       *UISlice

	n *notifier
}

// Services bundles the remote dependencies each slice needs. Interfaces are
// defined slice-side so tests can substitute doubles.
type Services struct {
	Auth     AuthAPI
	Products ProductsAPI
	Wishlist WishlistAPI
	Orders   OrdersAPI
}

// Options configures a Store.
type Options struct {
	Services Services
	// Cart persistence, injected into the cart slice.
	Cart CartPersistence
	// Preference persistence for the ui slice (theme). Optional.
	Prefs storage.Store
}

// New builds the store. Auth state is populated from the persisted session;
// the cart starts empty until LoadCart rehydrates it.
func New(opts Options) *Store {
	n := &notifier{}
	s := &Store{n: n}
	s.Auth = newAuthSlice(n, opts.Services.Auth)
	s.Cart = newCartSlice(n, opts.Cart)
	s.Products = newProductsSlice(n, opts.Services.Products)
	s.Wishlist = newWishlistSlice(n, opts.Services.Wishlist)
	s.Orders = newOrdersSlice(n, opts.Services.Orders)
	s.UI = newUISlice(n, opts.Prefs)
	return s
}

// Subscribe registers fn to run after every state reduction, in any slice.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.n.subscribe(fn)
}

// notifier fans a change signal out to subscribers. Subscribers run on the
// reducing goroutine, after the new snapshot is published.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// sliceState holds one slice's snapshot. Reductions serialize on the mutex,
// publish a fresh snapshot pointer, then notify.
type sliceState[T any] struct {
	mu  sync.Mutex
	ptr atomic.Pointer[T]
	n   *notifier
}

func newSliceState[T any](n *notifier, initial T) *sliceState[T] {
	s := &sliceState[T]{n: n}
	s.ptr.Store(&initial)
	return s
}

// get returns the current snapshot. The snapshot and everything reachable
// from it must be treated as read-only.
func (s *sliceState[T]) get() *T {
	return s.ptr.Load()
}

// reduce applies fn to a copy of the current state and publishes the result.
// fn must not mutate shared slices/maps in place; it builds new ones.
func (s *sliceState[T]) reduce(fn func(T) T) *T {
	s.mu.Lock()
	next := fn(*s.ptr.Load())
	s.ptr.Store(&next)
	s.mu.Unlock()
	s.n.notify()
	return &next
}

// messageOf extracts the user-facing message from a remote layer error,
// falling back to the raw error text and then to a fixed fallback.
func messageOf(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
