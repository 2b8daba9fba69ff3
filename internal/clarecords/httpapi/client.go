// Package httpapi implements the CLA-records backend against a remote
// records service. The contract is GET {endpoint}?user=<login> answering
// {"signed": bool}, with 404 for a username the records do not know.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/brettcannon/the-knights-who-say-ni/config"
	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"

	"go.uber.org/zap"
)

// Client queries the remote CLA-records service.
type Client struct {
	log      *zap.SugaredLogger
	http     *http.Client
	endpoint string
}

// New creates a remote records backend instance.
func New(log *zap.SugaredLogger, cfg config.CLARecordsConfig) *Client {
	return &Client{
		log:      log.Named("records.http"),
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		endpoint: cfg.Endpoint,
	}
}

// OnStart is a no-op; the remote service needs no local setup.
func (c *Client) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op.
func (c *Client) OnStop(_ context.Context) error { return nil }

// Lookup returns the signature verdict for a single GitHub username.
func (c *Client) Lookup(ctx context.Context, username string) (entities.CLAStatus, error) {
	lookupURL := c.endpoint + "?user=" + url.QueryEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("build lookup request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", username, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return entities.StatusUsernameNotFound, nil
	}
	if resp.StatusCode >= 300 {
		c.log.Errorw("records lookup failed", "username", username, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: records lookup returned %d", entities.ErrUnexpectedStatus, resp.StatusCode)
	}

	var verdict struct {
		Signed bool `json:"signed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return "", fmt.Errorf("decode lookup response: %w", err)
	}

	if !verdict.Signed {
		return entities.StatusNotSigned, nil
	}
	return entities.StatusSigned, nil
}
