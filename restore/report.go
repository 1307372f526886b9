package restore

import (
	"fmt"
	"io"
)

// Ambiguity records a broader label shared by several rows.
type Ambiguity struct {
	// Label is the broader reference as written in the spreadsheet.
	Label string

	// Candidates is how many row identifiers share the label.
	Candidates int

	// ChosenID is the identifier the resolver picked (lexicographically
	// smallest, so reruns are stable).
	ChosenID string
}

// Report accumulates the non-fatal resolution problems of one build. It is
// returned alongside the graph instead of living in shared state, so callers
// decide where and whether to surface it. One entry is recorded per
// occurrence, not per unique label; repeated bad references in the source
// should show up repeatedly.
type Report struct {
	Unresolved []string
	Ambiguous  []Ambiguity
}

func (r *Report) addUnresolved(label string) {
	r.Unresolved = append(r.Unresolved, label)
}

func (r *Report) addAmbiguity(label string, candidates int, chosenID string) {
	r.Ambiguous = append(r.Ambiguous, Ambiguity{
		Label:      label,
		Candidates: candidates,
		ChosenID:   chosenID,
	})
}

// Empty reports whether the build completed without warnings.
func (r *Report) Empty() bool {
	return len(r.Unresolved) == 0 && len(r.Ambiguous) == 0
}

// Write prints the warnings grouped by kind, in accumulation order.
func (r *Report) Write(w io.Writer) {
	if len(r.Ambiguous) > 0 {
		fmt.Fprintln(w, "WARNING: Ambiguous broader labels detected:")
		for _, a := range r.Ambiguous {
			fmt.Fprintf(w, "- %s -> %d identifiers; using lexicographically smallest\n", a.Label, a.Candidates)
		}
	}
	if len(r.Unresolved) > 0 {
		fmt.Fprintln(w, "WARNING: Unresolved broader labels (no matching prefLabel in CSV):")
		for _, label := range r.Unresolved {
			fmt.Fprintf(w, "- %s\n", label)
		}
	}
}
