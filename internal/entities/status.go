package entities

// CLAStatus is the worst-case signature verdict across all contributors of a PR.
type CLAStatus string

const (
	// StatusSigned means every contributor has a signed CLA on record.
	StatusSigned CLAStatus = "signed"
	// StatusNotSigned means at least one contributor has not signed the CLA.
	StatusNotSigned CLAStatus = "not_signed"
	// StatusUsernameNotFound means at least one contributor is unknown to the records.
	StatusUsernameNotFound CLAStatus = "username_not_found"
)

// ReduceStatuses collapses per-username verdicts to one PR-level status.
// An unknown identity outranks a known-unsigned one because it blocks
// manual resolution; a single non-compliant contributor taints the PR.
func ReduceStatuses(statuses []CLAStatus) CLAStatus {
	reduced := StatusSigned
	for _, s := range statuses {
		switch s {
		case StatusUsernameNotFound:
			return StatusUsernameNotFound
		case StatusNotSigned:
			reduced = StatusNotSigned
		}
	}
	return reduced
}
