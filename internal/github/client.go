package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brettcannon/the-knights-who-say-ni/config"
	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"

	"go.uber.org/zap"
)

type restClient struct {
	http      *http.Client
	log       *zap.SugaredLogger
	token     string
	userAgent string
}

// New creates a GitHub REST client. Each call is a single attempt; the
// reconciliation engine relies on idempotency instead of retries.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) Client {
	return &restClient{
		http:      &http.Client{Timeout: cfg.RequestTimeout},
		log:       log.Named("github"),
		token:     cfg.APIToken,
		userAgent: cfg.UserAgent,
	}
}

// Commits fetches the commit listing of a PR.
func (c *restClient) Commits(ctx context.Context, url string) ([]Commit, error) {
	var commits []Commit
	if err := c.getJSON(ctx, url, &commits); err != nil {
		return nil, fmt.Errorf("fetch commits: %w", err)
	}
	return commits, nil
}

// Issue fetches the issue resource backing a PR.
func (c *restClient) Issue(ctx context.Context, url string) (*Issue, error) {
	var issue Issue
	if err := c.getJSON(ctx, url, &issue); err != nil {
		return nil, fmt.Errorf("fetch issue: %w", err)
	}
	return &issue, nil
}

// Labels fetches all labels currently on the issue.
func (c *restClient) Labels(ctx context.Context, url string) ([]Label, error) {
	var labels []Label
	if err := c.getJSON(ctx, url, &labels); err != nil {
		return nil, fmt.Errorf("fetch labels: %w", err)
	}
	return labels, nil
}

// AddLabels posts labels to the issue; additive, existing labels stay.
func (c *restClient) AddLabels(ctx context.Context, url string, names []string) error {
	if err := c.do(ctx, http.MethodPost, url, names); err != nil {
		return fmt.Errorf("add labels: %w", err)
	}
	return nil
}

// DeleteLabel removes a single label addressed by its escaped URL.
func (c *restClient) DeleteLabel(ctx context.Context, url string) error {
	if err := c.do(ctx, http.MethodDelete, url, nil); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}

// CreateComment posts an issue comment.
func (c *restClient) CreateComment(ctx context.Context, url, body string) error {
	payload := struct {
		Body string `json:"body"`
	}{Body: body}
	if err := c.do(ctx, http.MethodPost, url, payload); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (c *restClient) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.send(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *restClient) do(ctx context.Context, method, url string, payload any) error {
	resp, err := c.send(ctx, method, url, payload)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func (c *restClient) send(ctx context.Context, method, url string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", url, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	if resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		c.log.Errorw("github call failed", "method", method, "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s %s returned %d", entities.ErrUnexpectedStatus, method, url, resp.StatusCode)
	}
	return resp, nil
}
