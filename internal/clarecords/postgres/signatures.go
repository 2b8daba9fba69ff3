package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
)

const lookupQuery = `SELECT signed
FROM cla_signatures
WHERE lower(username) = lower($1)`

// Lookup returns the signature verdict for a single GitHub username. A
// missing row means the username is unknown to the records, which is a
// verdict, not an error.
func (p *Postgres) Lookup(ctx context.Context, username string) (entities.CLAStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	var signed bool
	err := p.db.QueryRow(ctx, lookupQuery, username).Scan(&signed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.StatusUsernameNotFound, nil
		}
		p.log.Errorw("failed to look up signature", "error", err, "username", username)
		return "", fmt.Errorf("lookup signature: %w", err)
	}

	if !signed {
		return entities.StatusNotSigned, nil
	}
	return entities.StatusSigned, nil
}
