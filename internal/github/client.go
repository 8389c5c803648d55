// Package github constructs the shared GitHub API client used by every
// operation in the server.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v81/github"

	"github.com/bull/github-docs-mcp/internal/config"
)

// UserAgent identifies this tool on every API request.
const UserAgent = "github-docs-mcp/1.0"

// requestTimeout bounds each individual API call. There is no retry policy
// beyond the rate-limit waiter; failures propagate to the caller.
const requestTimeout = 30 * time.Second

// Client wraps the GitHub API client with rate limiting support.
type Client struct {
	*github.Client
}

// New creates a GitHub client from the process configuration. The client is
// created once at startup and shared for the process lifetime so that all
// calls reuse one connection pool.
//
// Secondary rate limits are handled transparently by the rate-limit waiter
// transport. When no token is configured the client runs unauthenticated at
// the lower 60 req/hour quota; the caller is responsible for warning about
// that.
func New(cfg config.Config) (*Client, error) {
	rateLimiter, err := github_ratelimit.NewRateLimitWaiterClient(nil)
	if err != nil {
		return nil, err
	}
	rateLimiter.Timeout = requestTimeout

	ghClient := github.NewClient(rateLimiter)
	ghClient.UserAgent = UserAgent

	if cfg.Token != "" {
		ghClient = ghClient.WithAuthToken(cfg.Token)
	}

	if cfg.APIBaseURL != "" && cfg.APIBaseURL != config.DefaultAPIBaseURL {
		base, err := url.Parse(cfg.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.APIBaseURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		ghClient.BaseURL = base
	}

	return &Client{Client: ghClient}, nil
}

// Ping verifies API connectivity. The rate-limit endpoint is free: it does
// not count against the caller's quota.
func (c *Client) Ping(ctx context.Context) error {
	if _, _, err := c.RateLimit.Get(ctx); err != nil {
		return fmt.Errorf("github api unreachable: %w", err)
	}
	return nil
}

// PingWithRetry pings the API with exponential backoff, for use at startup
// where a transient network blip should not kill the process.
func (c *Client) PingWithRetry(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		return c.Ping(ctx)
	}, backoff.WithContext(b, ctx))
}
