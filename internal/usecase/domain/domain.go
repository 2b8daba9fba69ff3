// Package domain contains the application service reconciling CLA status
// with the labels and comments on a pull request.
package domain

import (
	"context"
	"time"

	"github.com/brettcannon/the-knights-who-say-ni/internal/clarecords"
	"github.com/brettcannon/the-knights-who-say-ni/internal/github"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	gh      github.Client
	records clarecords.Records
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	gh github.Client,
	records clarecords.Records,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		gh:      gh,
		records: records,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
