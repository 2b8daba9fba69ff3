package usecase

import (
	"context"
	"time"

	"github.com/brettcannon/the-knights-who-say-ni/internal/clarecords"
	"github.com/brettcannon/the-knights-who-say-ni/internal/github"
	"github.com/brettcannon/the-knights-who-say-ni/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ContributionUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, gh github.Client, records clarecords.Records, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, gh, records, timeout)
}
