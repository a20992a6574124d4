// Package feature composes slice operations and selectors into the cohesive
// verbs the presentation layer calls: login, addToCart, toggleWishlist,
// placeOrder. Cross-slice side effects (logout clearing wishlist and
// orders, success toasts) live here, never inside a slice.
package feature

// Route entry points the features navigate to.
const (
	PathProducts = "/products"
	PathAuth     = "/auth"
)

// Navigator abstracts route changes so features stay independent of any
// particular presentation shell.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

// NopNavigator discards navigation. Useful in tests and headless runs.
var NopNavigator Navigator = NavigatorFunc(func(string) {})
