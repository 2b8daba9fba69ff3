package domain

import (
	"fmt"
	"strings"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
)

// Classify turns a webhook delivery into a Contribution, or reports why none
// is needed. GitHub delivers many irrelevant event types and actions to the
// same endpoint; only opened, unlabeled and synchronize ever reach the
// reconciler, and unlabeled only when the removed label was a CLA label.
func (u *Usecase) Classify(contentType string, payload entities.WebhookPayload) (*entities.Contribution, error) {
	if !entities.IsJSONMediaType(contentType) {
		return nil, fmt.Errorf("%w: can only accept %s, not %q",
			entities.ErrUnsupportedMediaType, entities.JSONMediaType, contentType)
	}

	// A ping event; nothing to do.
	if payload.Zen != "" {
		return nil, fmt.Errorf("%w: ping event", entities.ErrNoActionNeeded)
	}

	var event entities.PullRequestEvent
	switch entities.PullRequestEvent(payload.Action) {
	case entities.EventOpened:
		event = entities.EventOpened
	case entities.EventSynchronize:
		event = entities.EventSynchronize
	case entities.EventUnlabeled:
		if payload.Label == nil {
			return nil, fmt.Errorf("%w: label.name is required for unlabeled events", entities.ErrInvalidPayload)
		}
		if !strings.HasPrefix(payload.Label.Name, entities.LabelPrefix) {
			return nil, fmt.Errorf("%w: removed label %q is not CLA-related", entities.ErrNoActionNeeded, payload.Label.Name)
		}
		event = entities.EventUnlabeled
	default:
		return nil, fmt.Errorf("%w: action %q", entities.ErrNoActionNeeded, payload.Action)
	}

	if err := validatePullRequest(payload.PullRequest); err != nil {
		return nil, err
	}

	u.log.Infow("contribution classified", "event", event, "author", payload.PullRequest.User.Login)
	return &entities.Contribution{
		Event:       event,
		PullRequest: *payload.PullRequest,
	}, nil
}

func validatePullRequest(pr *entities.WebhookPullRequest) error {
	if pr == nil {
		return fmt.Errorf("%w: pull_request is required", entities.ErrInvalidPayload)
	}
	required := []struct {
		field string
		value string
	}{
		{"pull_request.user.login", pr.User.Login},
		{"pull_request.commits_url", pr.CommitsURL},
		{"pull_request.issue_url", pr.IssueURL},
		{"pull_request.comments_url", pr.CommentsURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", entities.ErrInvalidPayload, r.field)
		}
	}
	return nil
}
