package httptransport

import (
	"net/http"
	"sync"
)

// TrackInflight returns a middleware that maintains a shared in-flight
// request counter and notifies onChange on busy transitions: true when the
// counter rises 0 -> 1, false when it returns to 0. Overlapping requests
// produce exactly one true and one false, so a busy indicator driven by
// onChange stays lit continuously until the last request settles.
//
// The counter decrements when the response body would normally be consumed,
// i.e. when RoundTrip returns, covering both success and failure.
func TrackInflight(onChange func(busy bool)) Middleware {
	var (
		mu    sync.Mutex
		count int
	)
	inc := func() {
		mu.Lock()
		count++
		first := count == 1
		mu.Unlock()
		if first && onChange != nil {
			onChange(true)
		}
	}
	dec := func() {
		mu.Lock()
		count--
		last := count == 0
		mu.Unlock()
		if last && onChange != nil {
			onChange(false)
		}
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			inc()
			resp, err := next.RoundTrip(req)
			dec()
			return resp, err
		})
	}
}
