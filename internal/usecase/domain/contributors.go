package domain

import (
	"context"
	"fmt"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
	"github.com/brettcannon/the-knights-who-say-ni/internal/mapper"
)

// contributors returns the deduplicated usernames responsible for a PR:
// the author plus every commit's author and committer.
func (u *Usecase) contributors(ctx context.Context, contrib *entities.Contribution) ([]string, error) {
	commits, err := u.gh.Commits(ctx, contrib.PullRequest.CommitsURL)
	if err != nil {
		return nil, fmt.Errorf("resolve contributors: %w", err)
	}
	return mapper.Usernames(contrib.PullRequest.User.Login, commits), nil
}
