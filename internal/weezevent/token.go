package weezevent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// AccessToken exchanges the stored credentials for a short-lived access
// token. Missing credentials fail immediately without touching the network.
// No caching: a fresh token is requested at the start of every sync run.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	op := "weezevent.Client.AccessToken()"
	log := c.logger.With(slog.String("op", op))

	wcfg := c.cfg.WeezeventConfig
	if wcfg.ApiKey == "" || wcfg.Username == "" || wcfg.Password == "" {
		return "", fmt.Errorf("%s: weezevent credentials (api key, username, password) are not configured", op)
	}

	ctx, cancel := context.WithTimeout(ctx, wcfg.TokenTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("username", wcfg.Username)
	form.Set("password", wcfg.Password)
	form.Set("api_key", wcfg.ApiKey)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		wcfg.BaseURL+"/auth/access_token",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("%s: cannot build token request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: token request failed: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: cannot read token response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s: token endpoint returned status %d: %s", op, resp.StatusCode, truncate(body, 500))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%s: cannot decode token response: %w", op, err)
	}

	if tr.AccessToken == "" {
		return "", fmt.Errorf("%s: access token missing from response", op)
	}

	log.Info("access token acquired")

	return tr.AccessToken, nil
}
