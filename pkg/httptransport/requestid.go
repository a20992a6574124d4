package httptransport

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID returns a middleware that tags every outgoing request with a
// unique X-Request-ID header unless the caller already set one. The server
// echoes it back, which makes client and server logs joinable.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("X-Request-ID") == "" {
				req = cloneRequest(req)
				req.Header.Set("X-Request-ID", uuid.New().String())
			}
			return next.RoundTrip(req)
		})
	}
}
