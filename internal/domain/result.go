package domain

import "strconv"

// Outcome classifies what happened to one work item. Exactly one outcome is
// produced per item; items are never retried within a run.
type Outcome int

const (
	// Scored means the tool ran and a best affinity was extracted.
	Scored Outcome = iota

	// Unparseable means the tool exited zero but its output did not contain
	// the expected score line. Deliberately distinct from ToolFailed so
	// operators can tell "tool crashed" apart from "output surprised us".
	Unparseable

	// ToolFailed means the tool exited non-zero or could not be run at all.
	ToolFailed
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Scored:
		return "Scored"
	case Unparseable:
		return "Unparseable"
	case ToolFailed:
		return "ToolFailed"
	default:
		return "Unknown"
	}
}

// DockingResult is the outcome of docking one ligand.
type DockingResult struct {
	Ligand  string
	Outcome Outcome

	// Affinity holds the best (rank 1) binding affinity when Outcome is
	// Scored; undefined otherwise.
	Affinity float64

	// Detail carries the tool diagnostic (exit status plus captured output)
	// when Outcome is ToolFailed.
	Detail string
}

// Row markers for the non-scored outcomes.
const (
	MarkerUnparseable = "N/A"
	MarkerToolFailed  = "Error"
)

// ResultRow is the externally visible unit appended to the score table.
type ResultRow struct {
	Ligand       string
	BestAffinity string
}

// Row converts the result into its table row. BestAffinity is the decimal
// score for Scored, "N/A" for Unparseable, and "Error" for ToolFailed.
func (r DockingResult) Row() ResultRow {
	row := ResultRow{Ligand: r.Ligand}
	switch r.Outcome {
	case Scored:
		row.BestAffinity = strconv.FormatFloat(r.Affinity, 'f', -1, 64)
	case Unparseable:
		row.BestAffinity = MarkerUnparseable
	default:
		row.BestAffinity = MarkerToolFailed
	}
	return row
}
