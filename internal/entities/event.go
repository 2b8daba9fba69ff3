// Package entities contains core business entities.
package entities

// PullRequestEvent enumerates the webhook actions that trigger reconciliation.
// Every other action is discarded before a Contribution is built.
type PullRequestEvent string

const (
	// EventOpened marks a freshly opened pull request.
	EventOpened PullRequestEvent = "opened"
	// EventUnlabeled marks removal of a CLA label by a maintainer.
	EventUnlabeled PullRequestEvent = "unlabeled"
	// EventSynchronize marks new commits pushed to the pull request.
	EventSynchronize PullRequestEvent = "synchronize"
)
