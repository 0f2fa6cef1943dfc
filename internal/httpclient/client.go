package httpclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// Config defines client behavior. Retries default to zero: every
// request is a single attempt unless the caller opts in.
type Config struct {
	Timeout   time.Duration
	Retries   int
	RateLimit float64 // requests per second, 0 means unlimited
	Token     string  // bearer token sent on every request
}

// Client wraps resty with rate limiting and bearer authentication.
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	mu      sync.RWMutex
	token   string
}

// New creates a client over a retryable transport.
func New(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Retries
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetHeader("User-Agent", "domkit/1.0")
	restyClient.SetTransport(retryClient.HTTPClient.Transport)

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), int(cfg.RateLimit))
	}

	return &Client{
		resty:   restyClient,
		limiter: limiter,
		token:   cfg.Token,
	}
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// request creates a new request with rate limiting applied.
func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	req := c.resty.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}

// Get issues an authenticated GET request.
func (c *Client) Get(ctx context.Context, url string) (*resty.Response, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	return req.Get(url)
}

// PostJSON issues an authenticated POST request with a JSON body.
func (c *Client) PostJSON(ctx context.Context, url string, body []byte) (*resty.Response, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	req.SetHeader("Content-Type", "application/json")
	req.SetBody(body)
	return req.Post(url)
}
