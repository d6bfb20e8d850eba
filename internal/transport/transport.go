package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// ErrTimeout is returned when a request exceeded its per-request deadline
// and all retries were exhausted.
var ErrTimeout = errors.New("request timed out")

// StatusError is returned for any non-2xx upstream response. Detail carries
// the upstream error description when the body is the NWS problem-detail
// shape, otherwise the raw body.
type StatusError struct {
	StatusCode int    `json:"status"`
	Detail     string `json:"detail"`
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code (StatusCode: %d, Detail: %s)", s.StatusCode, s.Detail)
}

// Config controls timeouts, retries, and the identifying client header.
type Config struct {
	Timeout         time.Duration
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	UserAgent       string
}

// Client is the shared outbound HTTP client. It owns a single pooled
// http.Transport and is created once at process start; all provider clients
// are handed the same instance. Safe for concurrent use.
type Client struct {
	http   *http.Client
	cfg    Config
	logger *slog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func pooledTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100
	return t
}

// New creates a Client with a pooled transport and the given settings.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 5 * time.Second
	}

	return &Client{
		http:     &http.Client{Transport: pooledTransport()},
		cfg:      cfg,
		logger:   logger.With("component", "transport"),
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// breaker returns the circuit breaker guarding the given upstream host,
// creating it on first use.
func (c *Client) breaker(host string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[host]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		// A definitive 4xx is a valid answer from a healthy upstream and
		// must not trip the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var statusErr *StatusError
			return errors.As(err, &statusErr) && statusErr.StatusCode < 500
		},
	})
	c.breakers[host] = cb
	return cb
}

// Get performs a GET request against url. Network errors and 5xx responses
// are retried with exponential backoff up to MaxRetries; 4xx responses are
// definitive and returned immediately as *StatusError. The returned bytes
// are the full response body of a 2xx response.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var attempt int
	var lastErr error

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, retryable, err := c.do(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}

		lastErr = err
		if attempt >= c.cfg.MaxRetries {
			return nil, lastErr
		}

		delay := c.cfg.InitialInterval << attempt
		if delay > c.cfg.MaxInterval {
			delay = c.cfg.MaxInterval
		}

		c.logger.Warn("retrying request",
			"url", url,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

// do performs a single attempt. The second return value reports whether the
// failure may be retried.
func (c *Client) do(ctx context.Context, url string) ([]byte, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	result, err := c.breaker(req.URL.Host).Execute(func() (interface{}, error) {
		resp, execErr := c.http.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, newStatusError(resp.StatusCode, body)
		}

		return body, nil
	})
	if err == nil {
		return result.([]byte), false, nil
	}

	// An open breaker means the upstream is already known to be failing;
	// do not queue further attempts behind it.
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, false, fmt.Errorf("upstream unavailable: %w", err)
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		// 5xx may be transient; anything else is definitive.
		return nil, statusErr.StatusCode >= 500, err
	}

	// Caller abandoned the request: surface cancellation untouched.
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	if isTimeout(err) {
		return nil, true, fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return nil, true, fmt.Errorf("request failed: %w", err)
}

func newStatusError(code int, body []byte) *StatusError {
	statusErr := &StatusError{StatusCode: code}
	if err := json.Unmarshal(body, statusErr); err != nil || statusErr.Detail == "" {
		statusErr.Detail = strings.TrimSpace(string(body))
	}
	statusErr.StatusCode = code
	return statusErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
