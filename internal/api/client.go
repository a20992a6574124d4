// Package api implements the remote access layer: one HTTP client with a
// normalized error shape and busy/error callbacks, plus per-resource
// services (auth, products, orders, wishlist, users) built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/marketfy/storefront/internal/storage"
	"github.com/marketfy/storefront/pkg/httptransport"
)

// Options configures a Client. BaseURL is required; everything else has a
// usable zero value.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Token supplies the bearer token for outgoing requests; an empty
	// return means the request goes out unauthenticated.
	Token func() string

	// OnLoading is invoked with true when the in-flight counter rises from
	// zero and false when it returns to zero.
	OnLoading func(busy bool)
	// OnError is invoked with a human-readable message for every failed
	// request, before the error is returned to the caller.
	OnError func(message string)
	// OnUnauthorized is invoked after a 401 response has cleared the
	// persisted session; the application navigates to the login entry.
	OnUnauthorized func()

	// Store holds the persisted session cleared on a 401 response.
	Store storage.Store

	// TracerProvider enables request tracing when set.
	TracerProvider trace.TracerProvider

	// Transport overrides the base round tripper (tests).
	Transport http.RoundTripper

	Logger *zap.Logger
}

// Client is the single HTTP client every resource service shares.
type Client struct {
	http    *http.Client
	baseURL string
	store   storage.Store

	onError        func(string)
	onUnauthorized func()
	lg             *zap.Logger
}

// NewClient builds the client and its transport middleware chain.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}

	mw := []httptransport.Middleware{
		httptransport.TrackInflight(opts.OnLoading),
		httptransport.RequestID(),
		httptransport.BearerAuth(token),
	}
	if opts.UserAgent != "" {
		mw = append(mw, httptransport.UserAgent(opts.UserAgent))
	}
	rt := httptransport.Wrap(opts.Transport, mw...)
	if opts.TracerProvider != nil {
		rt = otelhttp.NewTransport(rt, otelhttp.WithTracerProvider(opts.TracerProvider))
	}

	return &Client{
		http: &http.Client{
			Transport: rt,
			Timeout:   opts.Timeout,
		},
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		store:          opts.Store,
		onError:        opts.OnError,
		onUnauthorized: opts.OnUnauthorized,
		lg:             opts.Logger,
	}
}

// Get performs a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete performs a DELETE request. Query parameters may be nil.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil)
}

// GetJSON performs a GET request and decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, v any) error {
	body, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	return c.decode(body, v)
}

// PostJSON performs a POST request and decodes the response body into v.
func (c *Client) PostJSON(ctx context.Context, path string, body, v any) error {
	data, err := c.Post(ctx, path, body)
	if err != nil {
		return err
	}
	return c.decode(data, v)
}

// PatchJSON performs a PATCH request and decodes the response body into v.
func (c *Client) PatchJSON(ctx context.Context, path string, body, v any) error {
	data, err := c.Patch(ctx, path, body)
	if err != nil {
		return err
	}
	return c.decode(data, v)
}

func (c *Client) decode(data []byte, v any) error {
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return c.fail(requestError(errors.Wrap(err, "decode response")))
	}
	return nil
}

// do executes one request and funnels every failure through the normalized
// error shape. The three cases mirror the contract: server responded with an
// error status; request sent but no response arrived; request could not be
// constructed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(requestError(errors.Wrap(err, "encode request")))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, c.fail(requestError(err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.lg.Debug("request failed", zap.String("method", method), zap.String("url", u), zap.Error(err))
		return nil, c.fail(networkError())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, c.fail(networkError())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := serverError(resp.StatusCode, respBody)
		if resp.StatusCode == http.StatusUnauthorized {
			c.forceLogout()
		}
		c.lg.Debug("server error",
			zap.String("method", method),
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
		)
		return nil, c.fail(apiErr)
	}

	return respBody, nil
}

// fail reports the error message to the registered callback and returns err.
func (c *Client) fail(err *Error) error {
	if c.onError != nil {
		c.onError(err.Message)
	}
	return err
}

// forceLogout clears the persisted session after a 401 and hands control to
// the application to redirect to the login entry point.
func (c *Client) forceLogout() {
	if c.store != nil {
		c.store.Remove(storage.KeyToken)
		c.store.Remove(storage.KeyUserID)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
