package nitrado

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donmatraca/nitrado-go/pkg/logging"
	"github.com/donmatraca/nitrado-go/pkg/util"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.nitrado.net"

// defaultRetryAfter is slept before retrying a 429 whose Retry-After header
// is absent or not an integer.
const defaultRetryAfter = 5 * time.Second

// SleepFunc pauses for d or until ctx is done, whichever comes first.
// The client's rate-limit backoff goes through it so tests can run off a
// fake clock.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Client is an HTTP client for the Nitrado API. It holds the account token
// and issues one authenticated request per operation; there is no session
// state beyond the underlying http.Client's transport.
type Client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	log         *slog.Logger
	maxAttempts int // rate-limit attempts per request; <=0 retries forever
	sleep       SleepFunc
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, e.g. a test
// server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger attaches a logger for diagnostic output. The default discards
// everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithMaxAttempts bounds how often a single request is tried while the
// service answers 429. n <= 0 keeps the original retry-forever behavior.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		c.maxAttempts = n
	}
}

// WithSleep replaces the backoff sleep between rate-limited attempts.
func WithSleep(fn SleepFunc) Option {
	return func(c *Client) {
		c.sleep = fn
	}
}

// New creates a client for the given bearer token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:   logging.Nop(),
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Raw executes a request against an arbitrary API path and returns the
// response envelope as raw JSON. It is the escape hatch for endpoints the
// typed surface does not cover.
func (c *Client) Raw(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	env, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	return env.raw, nil
}

// do executes one authenticated request and normalizes the outcome: a 200
// envelope comes back decoded, a 429 is retried after the server-indicated
// delay, everything else becomes an error. The full request is re-issued on
// retry; only 429 retries, transport failures never do.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*envelope, error) {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = b
	}
	reqID := uuid.NewString()

	for attempt := 1; ; attempt++ {
		req, err := c.newRequest(ctx, method, path, body, reqID)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.Error("request failed", "method", method, "path", path, "request_id", reqID, "error", err)
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			env, err := decodeEnvelope(resp.Body)
			_ = resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", method, path, err)
			}
			c.log.Debug("request completed",
				"method", method, "path", path, "request_id", reqID,
				"body", util.TruncateBody(string(env.raw), 0))
			return env, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			apiErr := responseError(resp)
			if c.maxAttempts > 0 && attempt >= c.maxAttempts {
				c.log.Error("rate limit retry budget exhausted",
					"method", method, "path", path, "attempts", attempt, "request_id", reqID)
				return nil, fmt.Errorf("%s %s after %d attempts: %w", method, path, attempt, apiErr)
			}
			delay := retryAfterDelay(resp.Header)
			c.log.Warn("rate limit exceeded, retrying",
				"method", method, "path", path, "retry_after", delay, "request_id", reqID)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, fmt.Errorf("%s %s: %w", method, path, err)
			}

		default:
			apiErr := responseError(resp)
			c.log.Error("request rejected",
				"method", method, "path", path, "status", resp.StatusCode, "request_id", reqID,
				"error", apiErr.Message)
			return nil, apiErr
		}
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte, reqID string) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decodeEnvelope reads the whole body so Raw can hand it back unmodified.
func decodeEnvelope(r io.Reader) (*envelope, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	env.raw = body
	return &env, nil
}

// responseError drains a non-200 response into an *APIError, preferring the
// error envelope's message over the raw body.
func responseError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var env envelope
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		apiErr.Status = env.Status
		apiErr.Message = env.Message
		return apiErr
	}
	// Non-envelope bodies (proxy error pages) can be arbitrarily large.
	apiErr.Message = util.TruncateBody(strings.TrimSpace(string(body)), 0)
	return apiErr
}

// retryAfterDelay reads Retry-After as integer seconds. Absent or malformed
// values fall back to the 5 second default.
func retryAfterDelay(h http.Header) time.Duration {
	raw := strings.TrimSpace(h.Get("Retry-After"))
	if raw == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

// sleepContext is the production SleepFunc.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
