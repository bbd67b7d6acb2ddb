package weezevent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"weezsync/internal/config"
)

// Client talks to the Weezevent API. Every call is authenticated with the
// api key plus an access token passed as query parameters and carries its
// own timeout; there is no retry logic anywhere.
type Client struct {
	logger     *slog.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient creates a new Weezevent API client.
func NewClient(logger *slog.Logger, cfg *config.Config) *Client {
	op := "weezevent.NewClient()"
	log := logger.With(slog.String("op", op))

	log.Info("Creating weezevent client")

	return &Client{
		logger:     logger,
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// get issues a GET request with the given per-call timeout and returns the
// response body. Non-2xx statuses are errors; 404 is reported through
// errNotFound so callers that tolerate it can tell it apart.
func (c *Client) get(ctx context.Context, timeout time.Duration, endpoint string, query url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqURL := c.cfg.WeezeventConfig.BaseURL + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build request for %s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read response of %s: %w", endpoint, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request %s returned status %d: %s", endpoint, resp.StatusCode, truncate(body, 500))
	}

	return body, nil
}

// authQuery builds the api_key + access_token query parameters every
// authenticated endpoint requires.
func (c *Client) authQuery(token string) url.Values {
	q := url.Values{}
	q.Set("api_key", c.cfg.WeezeventConfig.ApiKey)
	q.Set("access_token", token)
	return q
}

var errNotFound = fmt.Errorf("not found")

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
