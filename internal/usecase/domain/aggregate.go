package domain

import (
	"context"
	"fmt"
	"sync"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
)

// claStatus looks up every contributor's signature verdict and reduces them
// to one PR-level status. The lookups are independent, so they fan out
// concurrently; reduction happens once all results are in. Any lookup failure
// aborts the delivery.
func (u *Usecase) claStatus(ctx context.Context, logins []string) (entities.CLAStatus, error) {
	statuses := make([]entities.CLAStatus, len(logins))
	errs := make([]error, len(logins))

	var wg sync.WaitGroup
	for i, login := range logins {
		wg.Add(1)
		go func(i int, login string) {
			defer wg.Done()
			statuses[i], errs[i] = u.records.Lookup(ctx, login)
		}(i, login)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return "", fmt.Errorf("aggregate status for %s: %w", logins[i], err)
		}
	}

	return entities.ReduceStatuses(statuses), nil
}
