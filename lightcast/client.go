package lightcast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lawwu/mcp-lightcast/auth"
)

const (
	// DefaultBaseURL is the public Lightcast API host.
	DefaultBaseURL = "https://api.lightcast.io"
	// DefaultVersion is substituted for {version} path placeholders unless
	// overridden per call or per client.
	DefaultVersion = "2023.4"

	defaultTimeout = 30 * time.Second

	// Connection-pool bounds, so bursty tool invocation cannot exhaust
	// outbound sockets.
	maxConnsPerHost     = 100
	maxIdleConnsPerHost = 20
	idleConnTimeout     = 90 * time.Second
)

// Client performs authenticated requests against the Lightcast API. Each
// client is bound to one OAuth scope at construction; clients for different
// API families can share a TokenManager without interfering with each other.
//
// A client holds no mutable cross-call state beyond its pooled transport
// connections; it is safe for concurrent use. Call Close when done to
// release the pool.
type Client struct {
	baseURL    string
	scope      string
	version    string
	tm         *auth.TokenManager
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zerolog.Logger
}

// NewClient creates a client bound to the token manager's default scope
// unless WithScope overrides it.
func NewClient(tm *auth.TokenManager, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		version: DefaultVersion,
		tm:      tm,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxConnsPerHost:     maxConnsPerHost,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		}
	}
	return c
}

// Close releases the client's pooled connections. Safe to call on every
// exit path, including after errors.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Get performs an authenticated GET request.
func (c *Client) Get(ctx context.Context, path string, params url.Values, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, path, nil, params, opts...)
}

// Post performs an authenticated POST request. A string body is sent as
// text/plain; any other non-nil body is sent as JSON.
func (c *Client) Post(ctx context.Context, path string, body any, params url.Values, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, path, body, params, opts...)
}

// Put performs an authenticated PUT request with the same body handling as
// Post.
func (c *Client) Put(ctx context.Context, path string, body any, params url.Values, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodPut, path, body, params, opts...)
}

// Delete performs an authenticated DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params url.Values, opts ...RequestOption) (map[string]any, error) {
	return c.request(ctx, http.MethodDelete, path, nil, params, opts...)
}

// request normalizes a successful payload: JSON responses decode as-is,
// anything else is wrapped so non-JSON successes are never silently dropped.
func (c *Client) request(ctx context.Context, method, path string, body any, params url.Values, opts ...RequestOption) (map[string]any, error) {
	raw, contentType, err := c.do(ctx, method, path, body, params, opts...)
	if err != nil {
		return nil, err
	}

	if isJSONContent(contentType) {
		out := map[string]any{}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &APIError{Message: fmt.Sprintf("decode response body: %v", err)}
		}
		return out, nil
	}

	return map[string]any{
		"data":         string(raw),
		"content_type": contentType,
	}, nil
}

// do performs one authenticated request/response cycle and classifies the
// outcome. It returns the raw response body and its content type on success.
// Nothing here retries; backoff is the caller's concern.
func (c *Client) do(ctx context.Context, method, path string, body any, params url.Values, opts ...RequestOption) ([]byte, string, error) {
	ro := requestOptions{version: c.version}
	for _, opt := range opts {
		opt(&ro)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, "", &APIError{Message: fmt.Sprintf("rate limiter wait: %v", err)}
		}
	}

	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	u = strings.ReplaceAll(u, "{version}", ro.version)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	// Auth failures propagate unwrapped so their kind stays detectable.
	token, err := c.tm.TokenForScope(ctx, c.scope)
	if err != nil {
		return nil, "", err
	}

	var reqBody io.Reader
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
	case string:
		contentType = "text/plain"
		reqBody = strings.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", &APIError{Message: fmt.Sprintf("encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, "", &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	requestID := uuid.NewString()
	if c.logger != nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("url", u).
			Msg("lightcast request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &APIError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response body: %v", err)}
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Msg("lightcast response")
	}

	respContentType := resp.Header.Get("Content-Type")

	if resp.StatusCode == http.StatusTooManyRequests {
		reset := resp.Header.Get("RateLimit-Reset")
		return nil, "", &RateLimitError{
			APIError: APIError{
				StatusCode: resp.StatusCode,
				Body:       map[string]any{"reset_time": reset},
				Message:    fmt.Sprintf("rate limit exceeded, reset at: %s", reset),
			},
			Reset: reset,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", newAPIError(resp.StatusCode, respContentType, raw)
	}

	return raw, respContentType, nil
}

// getJSON decodes a JSON GET response directly into out; used by the typed
// API family clients.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, params, out, opts...)
}

// postJSON decodes a JSON POST response directly into out.
func (c *Client) postJSON(ctx context.Context, path string, body any, params url.Values, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPost, path, body, params, out, opts...)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, params url.Values, out any, opts ...RequestOption) error {
	raw, contentType, err := c.do(ctx, method, path, body, params, opts...)
	if err != nil {
		return err
	}
	if !isJSONContent(contentType) {
		return fmt.Errorf("lightcast: expected a JSON response, got %q", contentType)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("lightcast: decode response: %w", err)
	}
	return nil
}

func isJSONContent(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
