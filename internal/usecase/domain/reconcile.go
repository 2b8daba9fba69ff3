package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
	"github.com/brettcannon/the-knights-who-say-ni/internal/github"
	"github.com/brettcannon/the-knights-who-say-ni/internal/mapper"
)

// Reconcile processes one classified delivery to completion: resolve the
// contributor set, aggregate their CLA statuses, plan the corrective side
// effects and apply them in order. A failure partway through aborts the
// delivery with no rollback; the plan is idempotent, so a redelivery or the
// next synchronize converges the PR.
func (u *Usecase) Reconcile(ctx context.Context, contrib *entities.Contribution) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	logins, err := u.contributors(ctx, contrib)
	if err != nil {
		return err
	}

	status, err := u.claStatus(ctx, logins)
	if err != nil {
		return err
	}

	rc := newReconcileContext(u.gh, contrib.PullRequest)

	// The observed label only matters for synchronize; opened and unlabeled
	// overwrite regardless of it.
	var currentLabel string
	if contrib.Event == entities.EventSynchronize {
		currentLabel, err = rc.currentLabel(ctx)
		if err != nil {
			return err
		}
	}

	plan := buildPlan(contrib.Event, status, currentLabel)
	u.log.Infow("reconciliation planned",
		"event", contrib.Event,
		"status", status,
		"contributors", len(logins),
		"actions", len(plan),
	)

	return u.apply(ctx, rc, plan)
}

// apply executes a plan in order against the GitHub API.
func (u *Usecase) apply(ctx context.Context, rc *reconcileContext, plan []action) error {
	for _, a := range plan {
		switch a.Kind {
		case actionSetLabel:
			labelsURL, err := rc.labelsURL(ctx, "")
			if err != nil {
				return err
			}
			if err := u.gh.AddLabels(ctx, labelsURL, []string{a.Label}); err != nil {
				return err
			}
			u.log.Infow("label set", "label", a.Label)

		case actionRemoveLabel:
			deletionURL, err := rc.labelsURL(ctx, a.Label)
			if err != nil {
				return err
			}
			if err := u.gh.DeleteLabel(ctx, deletionURL); err != nil {
				return err
			}
			u.log.Infow("label removed", "label", a.Label)

		case actionPostComment:
			body, ok := entities.CommentBody(a.Status)
			if !ok {
				continue
			}
			if err := u.gh.CreateComment(ctx, rc.pr.CommentsURL, body); err != nil {
				return err
			}
			u.log.Infow("comment posted", "status", a.Status)
		}
	}
	return nil
}

// reconcileContext carries the per-delivery state of one reconciliation. The
// labels URL template is fetched from the issue resource on first need and
// cached; the cache's scope is exactly one delivery.
type reconcileContext struct {
	gh             github.Client
	pr             entities.WebhookPullRequest
	labelsTemplate string
}

func newReconcileContext(gh github.Client, pr entities.WebhookPullRequest) *reconcileContext {
	return &reconcileContext{gh: gh, pr: pr}
}

// labelsURL resolves the issue's labels endpoint, addressing a single label
// when one is given. The template carries a `{/name}` placeholder.
func (rc *reconcileContext) labelsURL(ctx context.Context, label string) (string, error) {
	if rc.labelsTemplate == "" {
		issue, err := rc.gh.Issue(ctx, rc.pr.IssueURL)
		if err != nil {
			return "", fmt.Errorf("resolve labels url: %w", err)
		}
		rc.labelsTemplate = issue.LabelsURL
	}

	var name string
	if label != "" {
		name = "/" + url.PathEscape(label)
	}
	return strings.Replace(rc.labelsTemplate, "{/name}", name, 1), nil
}

// currentLabel returns the CLA label presently on the PR, empty when none.
// Should more than one exist, the lexicographically first wins.
func (rc *reconcileContext) currentLabel(ctx context.Context) (string, error) {
	labelsURL, err := rc.labelsURL(ctx, "")
	if err != nil {
		return "", err
	}
	labels, err := rc.gh.Labels(ctx, labelsURL)
	if err != nil {
		return "", fmt.Errorf("read current label: %w", err)
	}

	claLabels := mapper.CLALabels(labels)
	if len(claLabels) == 0 {
		return "", nil
	}
	return claLabels[0], nil
}
