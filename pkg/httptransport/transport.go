// Package httptransport provides composable http.RoundTripper middlewares
// for outgoing requests: bearer token injection, request identifiers, and
// in-flight request tracking for a global busy indicator.
package httptransport

import (
	"net/http"
)

// Middleware wraps an http.RoundTripper with additional behaviour.
type Middleware func(next http.RoundTripper) http.RoundTripper

// RoundTripFunc adapts a function to http.RoundTripper.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Wrap composes middlewares around rt. The first middleware is outermost:
// Wrap(rt, A, B) sees requests in order A -> B -> rt.
func Wrap(rt http.RoundTripper, mw ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	for i := len(mw) - 1; i >= 0; i-- {
		rt = mw[i](rt)
	}
	return rt
}
