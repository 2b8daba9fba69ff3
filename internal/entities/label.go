package entities

// LabelPrefix marks all CLA-related labels; at most one such label should
// exist on a well-formed PR.
const LabelPrefix = "CLA: "

const (
	// LabelCLAOK is the label for a fully compliant PR.
	LabelCLAOK = LabelPrefix + "☑"
	// LabelNoCLA is the label for a non-compliant PR.
	LabelNoCLA = LabelPrefix + "☐"
)

// TargetLabel returns the canonical label for an aggregated CLA status.
func TargetLabel(status CLAStatus) string {
	if status == StatusSigned {
		return LabelCLAOK
	}
	return LabelNoCLA
}
