package httptransport

import (
	"net/http"
)

// BearerAuth returns a middleware that sets the Authorization header from
// the token source on every request. An empty token leaves the request
// untouched, so unauthenticated calls carry no header at all.
//
// The token is read per request, not captured at construction: a login or
// logout between two requests is reflected immediately.
func BearerAuth(token func() string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if t := token(); t != "" {
				req = cloneRequest(req)
				req.Header.Set("Authorization", "Bearer "+t)
			}
			return next.RoundTrip(req)
		})
	}
}

// cloneRequest returns a shallow copy of req with a deep-copied header map.
// RoundTrippers must not mutate the caller's request.
func cloneRequest(req *http.Request) *http.Request {
	cp := req.Clone(req.Context())
	return cp
}
