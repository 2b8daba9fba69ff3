package domain

import "github.com/brettcannon/the-knights-who-say-ni/internal/entities"

// actionKind enumerates the side effects a plan may order.
type actionKind string

const (
	actionSetLabel    actionKind = "set_label"
	actionRemoveLabel actionKind = "remove_label"
	actionPostComment actionKind = "post_comment"
)

// action is one planned side effect. Label names the label to set or remove;
// Status selects the comment body.
type action struct {
	Kind   actionKind
	Label  string
	Status entities.CLAStatus
}

// buildPlan is the reconciliation state machine: given the event, the
// aggregated status and the observed CLA label (empty when none), it returns
// the ordered side effects to apply. Labels always change before comments.
//
// opened and unlabeled unconditionally (re)apply the target label; opened
// additionally comments unless the PR is compliant. unlabeled never comments:
// a maintainer stripping a CLA label almost always means the contributor is
// about to become compliant, and re-commenting would be noisy.
//
// synchronize mutates only when a CLA label is present and disagrees with
// the target: the stale label is removed and, when the PR is not compliant,
// a comment explains the failure (new commits may have added a non-compliant
// contributor). Re-running with unchanged state therefore plans nothing.
func buildPlan(event entities.PullRequestEvent, status entities.CLAStatus, currentLabel string) []action {
	target := entities.TargetLabel(status)

	switch event {
	case entities.EventOpened:
		plan := []action{{Kind: actionSetLabel, Label: target}}
		if status != entities.StatusSigned {
			plan = append(plan, action{Kind: actionPostComment, Status: status})
		}
		return plan

	case entities.EventUnlabeled:
		return []action{{Kind: actionSetLabel, Label: target}}

	case entities.EventSynchronize:
		if currentLabel == "" || currentLabel == target {
			return nil
		}
		plan := []action{{Kind: actionRemoveLabel, Label: currentLabel}}
		if status != entities.StatusSigned {
			plan = append(plan, action{Kind: actionPostComment, Status: status})
		}
		return plan
	}

	return nil
}
