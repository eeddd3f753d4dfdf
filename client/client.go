package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goShop "github.com/MrEthical07/goShop"
	"github.com/google/uuid"
)

// ForcedLogoutHandler is invoked after a 401 has cleared the session.
// redirect is the sign-in path with the originally requested path
// preserved in the from query parameter.
type ForcedLogoutHandler func(redirect string)

// Client defines a public type used by goShop APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	gate           *goShop.Gate
	baseURL        string
	httpClient     *http.Client
	userAgent      string
	onForcedLogout ForcedLogoutHandler
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use this to
// point at httptest servers with custom transports.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithUserAgent describes the withuseragent operation and its observable behavior.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithForcedLogoutHandler registers the hook fired after a 401 clears
// the session, typically to navigate the UI to the sign-in screen.
func WithForcedLogoutHandler(fn ForcedLogoutHandler) Option {
	return func(c *Client) {
		c.onForcedLogout = fn
	}
}

// New creates a storefront API client bound to gate. baseURL is the API
// origin without a trailing slash, e.g. "https://shop.example.com".
func New(gate *goShop.Gate, cfg goShop.APIConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "goShop/1"
	}

	c := &Client{
		gate:       gate,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Gate returns the session gate this client reports to.
func (c *Client) Gate() *goShop.Gate {
	return c.gate
}

/*
====================================
REQUEST WRAPPER
====================================
*/

// RequestOption mutates one outgoing request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets a header on the outgoing request. Caller headers win
// over the gate's defaults, which is how multipart uploads replace the
// default application/json content type.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// Do sends one authenticated request and applies the session policy to
// the response.
//
// Headers are layered in order: gate defaults (Content-Type and, while a
// current token is stored, Authorization), then User-Agent and a request
// correlation ID, then caller options. A 401 response clears the session,
// fires the forced-logout handler, and returns [goShop.ErrSessionRevoked];
// the response body is consumed and closed. Every other status, 403
// included, is returned to the caller untouched along with its open body.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, opts ...RequestOption) (*http.Response, error) {
	if c == nil || c.gate == nil {
		return nil, goShop.ErrGateNotReady
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	for key, values := range c.gate.AuthHeaders(ctx) {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	req.Header.Set("User-Agent", c.userAgent)

	requestID := goShop.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	ctx = goShop.WithRequestID(ctx, requestID)

	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	c.gate.Metrics().Observe(goShop.MetricRequestLatency, time.Since(start))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		c.gate.Metrics().Inc(goShop.MetricUnauthorized)
		if err := c.gate.ForceLogout(ctx, "server rejected session token"); err != nil {
			return nil, errors.Join(goShop.ErrSessionRevoked, err)
		}
		if c.onForcedLogout != nil {
			c.onForcedLogout(c.gate.SignInPath() + "?from=" + url.QueryEscape(path))
		}
		return nil, goShop.ErrSessionRevoked

	case http.StatusForbidden:
		// Valid session, insufficient permission. The session stays.
		c.gate.Metrics().Inc(goShop.MetricForbidden)
	}

	return resp, nil
}

// doJSON sends a request whose response is a standard envelope and
// decodes data into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out any, opts ...RequestOption) error {
	resp, err := c.Do(ctx, method, path, body, opts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode == http.StatusForbidden {
		if env.Message != "" {
			return fmt.Errorf("%w: %s", goShop.ErrForbidden, env.Message)
		}
		return goShop.ErrForbidden
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: env.Status, Message: env.Message}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
