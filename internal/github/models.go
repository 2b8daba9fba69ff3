package github

// Account is a GitHub account reference on a commit. GitHub returns null for
// commits whose email is not linked to any account.
type Account struct {
	Login string `json:"login"`
}

// Commit is one entry of a PR commit listing.
type Commit struct {
	Author    *Account `json:"author"`
	Committer *Account `json:"committer"`
}

// Issue is the issue resource backing a PR; labels_url carries a `{/name}`
// placeholder.
type Issue struct {
	LabelsURL string `json:"labels_url"`
}

// Label is one entry of an issue label listing.
type Label struct {
	Name string `json:"name"`
}
