package restore

import (
	"strings"

	"github.com/soilwise-he/soilvoc/tabular"
	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

// Kind is the classification of a spreadsheet row.
type Kind int

const (
	// KindConcept is an ordinary taxonomy concept.
	KindConcept Kind = iota

	// KindProcedure is a measurement procedure. Procedures hang off the
	// concept they measure via an ownership edge, not the hierarchy.
	KindProcedure
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == KindProcedure {
		return "procedure"
	}
	return "concept"
}

// Classifier tags rows as concepts or procedures. A row is a procedure iff
// one of its exactMatch identifiers starts with a recognized procedure
// namespace prefix. Classification is a pure function of the row.
type Classifier struct {
	prefixes []string
}

// NewClassifier creates a classifier for the given procedure namespace
// prefixes. An empty list falls back to the GLOSIS defaults.
func NewClassifier(prefixes []string) *Classifier {
	if len(prefixes) == 0 {
		prefixes = soilhealth.ProcedurePrefixes
	}
	return &Classifier{prefixes: prefixes}
}

// Classify returns the kind of a single row. A row without exactMatch
// values is never a procedure.
func (c *Classifier) Classify(row tabular.Row) Kind {
	for _, match := range row.ExactMatches() {
		for _, prefix := range c.prefixes {
			if strings.HasPrefix(match, prefix) {
				return KindProcedure
			}
		}
	}
	return KindConcept
}

// ClassifyRows classifies the full row set up front, keyed by row ID. The
// builder needs the classification of a broader reference's target before
// it can decide the edge kind, so this pass must complete before any
// reference is resolved. Rows without an ID are skipped.
func (c *Classifier) ClassifyRows(rows []tabular.Row) map[string]Kind {
	kinds := make(map[string]Kind, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		kinds[row.ID] = c.Classify(row)
	}
	return kinds
}
