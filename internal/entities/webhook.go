package entities

import "strings"

// JSONMediaType is the only content type accepted on webhook deliveries.
const JSONMediaType = "application/json"

// IsJSONMediaType reports whether a Content-Type header value names the JSON
// media type, ignoring parameters such as charset.
func IsJSONMediaType(contentType string) bool {
	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.TrimSpace(mediaType) == JSONMediaType
}

// WebhookPayload is the typed schema of a GitHub pull_request webhook
// delivery, restricted to the fields this service reads. Required fields are
// validated at the classifier boundary.
type WebhookPayload struct {
	Zen         string              `json:"zen"`
	Action      string              `json:"action"`
	Label       *WebhookLabel       `json:"label"`
	PullRequest *WebhookPullRequest `json:"pull_request"`
}

// WebhookLabel is the label attached to an unlabeled event.
type WebhookLabel struct {
	Name string `json:"name"`
}

// WebhookPullRequest carries the PR resource URLs and the author login.
type WebhookPullRequest struct {
	User        WebhookUser `json:"user"`
	CommitsURL  string      `json:"commits_url"`
	IssueURL    string      `json:"issue_url"`
	CommentsURL string      `json:"comments_url"`
}

// WebhookUser is a GitHub account reference inside a webhook payload.
type WebhookUser struct {
	Login string `json:"login"`
}

// Contribution is the unit of work for one webhook delivery: the classified
// event plus the payload it was read from. Immutable after classification and
// discarded once processing completes.
type Contribution struct {
	Event       PullRequestEvent
	PullRequest WebhookPullRequest
}
