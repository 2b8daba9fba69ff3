// Package github implements the thin side-effect client against the GitHub
// REST API. Any response status >= 300 surfaces as entities.ErrUnexpectedStatus;
// callers do not retry.
package github

import "context"

// Client exposes the issue, label and comment operations used during
// reconciliation. The interface exists so the reconciliation engine can be
// tested without network access.
type Client interface {
	Commits(ctx context.Context, url string) ([]Commit, error)
	Issue(ctx context.Context, url string) (*Issue, error)
	Labels(ctx context.Context, url string) ([]Label, error)
	AddLabels(ctx context.Context, url string, names []string) error
	DeleteLabel(ctx context.Context, url string) error
	CreateComment(ctx context.Context, url, body string) error
}
