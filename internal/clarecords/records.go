// Package clarecords provides factory for CLA-records backends.
package clarecords

import (
	"context"
	"fmt"

	"github.com/brettcannon/the-knights-who-say-ni/config"
	"github.com/brettcannon/the-knights-who-say-ni/internal/clarecords/httpapi"
	"github.com/brettcannon/the-knights-who-say-ni/internal/clarecords/postgres"

	"go.uber.org/zap"
)

// New constructs a CLA-records backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Records, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	case "http":
		return httpapi.New(log, cfg.CLARecords), nil
	default:
		return nil, fmt.Errorf("unknown records backend: %s", name)
	}
}
