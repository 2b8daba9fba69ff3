// Package clarecords contains interfaces for CLA-records backends.
package clarecords

import (
	"context"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
)

// LifecycleInterface describes backend startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// LookupInterface answers whether a GitHub username has a signed CLA on record.
type LookupInterface interface {
	Lookup(ctx context.Context, username string) (entities.CLAStatus, error)
}

// Records aggregates the CLA-records collaborator interfaces.
type Records interface {
	LifecycleInterface
	LookupInterface
}
