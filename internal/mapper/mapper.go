// Package mapper converts GitHub wire shapes into domain values.
package mapper

import (
	"sort"
	"strings"

	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
	"github.com/brettcannon/the-knights-who-say-ni/internal/github"
)

// Usernames builds the deduplicated contributor set for a PR: the author plus
// every commit's author and committer. Commits whose email is not linked to a
// GitHub account carry nil author/committer and are skipped.
func Usernames(author string, commits []github.Commit) []string {
	seen := map[string]struct{}{}
	if author != "" {
		seen[author] = struct{}{}
	}
	for _, commit := range commits {
		if commit.Author != nil && commit.Author.Login != "" {
			seen[commit.Author.Login] = struct{}{}
		}
		if commit.Committer != nil && commit.Committer.Login != "" {
			seen[commit.Committer.Login] = struct{}{}
		}
	}

	logins := make([]string, 0, len(seen))
	for login := range seen {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins
}

// CLALabels filters issue labels down to CLA-prefixed names, sorted. More
// than one entry is tolerated drift, never steady state; callers act on the
// first.
func CLALabels(labels []github.Label) []string {
	names := make([]string, 0, 1)
	for _, l := range labels {
		if strings.HasPrefix(l.Name, entities.LabelPrefix) {
			names = append(names, l.Name)
		}
	}
	sort.Strings(names)
	return names
}
