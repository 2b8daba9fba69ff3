package usecase

import (
	"context"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
)

// ContributionUsecaseInterface abstracts webhook processing for the delivery layer.
type ContributionUsecaseInterface interface {
	Classify(contentType string, payload entities.WebhookPayload) (*entities.Contribution, error)
	Reconcile(ctx context.Context, contrib *entities.Contribution) error
}
