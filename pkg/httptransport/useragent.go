package httptransport

import (
	"net/http"
)

// UserAgent returns a middleware that sets the User-Agent header on every
// request that does not already carry one.
func UserAgent(ua string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("User-Agent") == "" {
				req = cloneRequest(req)
				req.Header.Set("User-Agent", ua)
			}
			return next.RoundTrip(req)
		})
	}
}
