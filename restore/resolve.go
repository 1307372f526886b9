package restore

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/soilwise-he/soilvoc/tabular"
)

// Resolver maps a broader prefLabel reference to a row identifier. The
// index is built once from the flat row set and never consults the graph
// under construction, so resolution is independent of processing order.
type Resolver struct {
	byLabel map[string][]string
}

// NewResolver indexes case-folded prefLabels to the identifiers that carry
// them. Duplicate identifiers are not guarded against (the triple set
// collapses them) but are logged so operators can fix the source.
func NewResolver(rows []tabular.Row) *Resolver {
	byLabel := make(map[string][]string)
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		if seen[row.ID] {
			slog.Warn("duplicate concept identifier in CSV", "id", row.ID)
		}
		seen[row.ID] = true
		if row.PrefLabel == "" {
			continue
		}
		key := strings.ToLower(row.PrefLabel)
		byLabel[key] = append(byLabel[key], row.ID)
	}
	for _, ids := range byLabel {
		sort.Strings(ids)
	}
	return &Resolver{byLabel: byLabel}
}

// Resolve returns the identifier for a broader label, recording unresolved
// and ambiguous lookups in the report. Ambiguous labels resolve to the
// lexicographically smallest candidate so the output is deterministic.
func (r *Resolver) Resolve(label string, report *Report) (string, bool) {
	ids := r.byLabel[strings.ToLower(label)]
	switch {
	case len(ids) == 0:
		report.addUnresolved(label)
		return "", false
	case len(ids) > 1:
		report.addAmbiguity(label, len(ids), ids[0])
		return ids[0], true
	default:
		return ids[0], true
	}
}
