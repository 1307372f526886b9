package restore

import (
	"fmt"
	"io"
	"sort"

	"github.com/knakk/rdf"

	"github.com/soilwise-he/soilvoc/graph"
)

// Default display limits for verification reports.
const (
	DefaultStructuralDiffLimit = 25
	DefaultLiteralDiffLimit    = 10
)

// VerifyOptions controls which relations participate in the comparison and
// how much of each difference class is reported.
type VerifyOptions struct {
	// Scheme is the concept scheme IRI, needed to close top-concept
	// inverses and count top concepts.
	Scheme rdf.IRI

	// IncludeRelated compares skos:related triples. Off by default:
	// related links never round-trip through the spreadsheet.
	IncludeRelated bool

	// IncludeTopConceptOf compares skos:topConceptOf triples. When set,
	// both graphs are first closed under the hasTopConcept/topConceptOf
	// inverse so a graph stating only one direction is not penalized.
	IncludeTopConceptOf bool

	// IncludeEquivalentTo compares semanticscience equivalentTo triples.
	IncludeEquivalentTo bool

	// StructuralDiffLimit caps how many missing/extra triples are kept
	// per direction (default 25).
	StructuralDiffLimit int

	// LiteralDiffLimit caps how many literal value-set mismatches are
	// kept. Zero keeps none; negative selects the default of 10.
	LiteralDiffLimit int
}

// LiteralDiff is one subject+predicate where both graphs carry literal
// values but the value sets differ (language tag, whitespace, wording).
// This is the difference class an operator can fix by editing the CSV.
type LiteralDiff struct {
	Subject   rdf.Subject
	Predicate rdf.Predicate
	Reference []rdf.Literal
	Rebuilt   []rdf.Literal
}

// VerifyResult is the outcome of comparing a rebuilt graph to a reference.
// Verification is purely diagnostic; nothing here affects written output.
type VerifyResult struct {
	// EqualRaw is set when the full triple sets match exactly.
	EqualRaw bool

	// EqualFiltered is set when the triple sets match after removing the
	// ignored predicates.
	EqualFiltered bool

	// Ignored lists the predicates excluded from the filtered comparison.
	Ignored []rdf.IRI

	// Top-concept counts from the unfiltered graphs.
	ReferenceTopConcepts int
	RebuiltTopConcepts   int

	// Missing holds triples present in the reference but absent from the
	// rebuilt graph; Extra the other direction. Both sorted, truncated
	// to StructuralDiffLimit; the totals carry the untruncated counts.
	Missing      []rdf.Triple
	Extra        []rdf.Triple
	MissingTotal int
	ExtraTotal   int

	LiteralDiffs []LiteralDiff
}

// Verify compares a rebuilt graph against a reference graph.
func Verify(reference, rebuilt *graph.Graph, opts VerifyOptions) VerifyResult {
	if opts.StructuralDiffLimit <= 0 {
		opts.StructuralDiffLimit = DefaultStructuralDiffLimit
	}
	// Zero is meaningful here: it suppresses literal diff reporting.
	// Negative means "not set".
	if opts.LiteralDiffLimit < 0 {
		opts.LiteralDiffLimit = DefaultLiteralDiffLimit
	}

	var ignored []rdf.IRI
	if !opts.IncludeRelated {
		ignored = append(ignored, predRelated)
	}
	if !opts.IncludeEquivalentTo {
		ignored = append(ignored, predEquivalentTo)
	}
	if !opts.IncludeTopConceptOf {
		ignored = append(ignored, predTopConceptOf)
	}

	refCmp := reference.WithoutPredicates(ignored...)
	rebuiltCmp := rebuilt.WithoutPredicates(ignored...)

	if opts.IncludeTopConceptOf {
		CloseTopConceptInverses(refCmp, opts.Scheme)
		CloseTopConceptInverses(rebuiltCmp, opts.Scheme)
	}

	result := VerifyResult{
		EqualRaw:             reference.Equal(rebuilt),
		EqualFiltered:        refCmp.Equal(rebuiltCmp),
		Ignored:              ignored,
		ReferenceTopConcepts: len(TopConcepts(reference, opts.Scheme)),
		RebuiltTopConcepts:   len(TopConcepts(rebuilt, opts.Scheme)),
	}

	if result.EqualFiltered {
		return result
	}

	missing := refCmp.Diff(rebuiltCmp)
	extra := rebuiltCmp.Diff(refCmp)
	result.MissingTotal = len(missing)
	result.ExtraTotal = len(extra)
	result.Missing = truncate(missing, opts.StructuralDiffLimit)
	result.Extra = truncate(extra, opts.StructuralDiffLimit)
	result.LiteralDiffs = literalDiffs(refCmp, rebuiltCmp, opts.LiteralDiffLimit)
	return result
}

// CloseTopConceptInverses adds the missing direction for every top-concept
// assertion, in both directions, for the given scheme.
func CloseTopConceptInverses(g *graph.Graph, scheme rdf.IRI) {
	for _, o := range g.Objects(scheme, predHasTopConcept) {
		if tc, ok := o.(rdf.IRI); ok {
			g.Add(rdf.Triple{Subj: tc, Pred: predTopConceptOf, Obj: scheme})
		}
	}
	for _, s := range g.Subjects(predTopConceptOf, scheme) {
		if tc, ok := s.(rdf.IRI); ok {
			g.Add(rdf.Triple{Subj: scheme, Pred: predHasTopConcept, Obj: tc})
		}
	}
}

// TopConcepts returns the objects of the scheme's hasTopConcept assertions.
func TopConcepts(g *graph.Graph, scheme rdf.IRI) []rdf.Object {
	return g.Objects(scheme, predHasTopConcept)
}

// literalDiffs finds subject+predicate pairs carrying literals in both
// graphs with differing value sets, for the text-bearing predicates.
func literalDiffs(reference, rebuilt *graph.Graph, limit int) []LiteralDiff {
	preds := []rdf.IRI{predPrefLabel, predAltLabel, predDefinition}

	type key struct {
		subj string
		pred string
	}
	collect := func(g *graph.Graph) (map[key]map[rdf.Literal]struct{}, map[key][2]rdf.Triple) {
		vals := make(map[key]map[rdf.Literal]struct{})
		terms := make(map[key][2]rdf.Triple)
		for _, p := range preds {
			for _, t := range g.TriplesWithPredicate(p) {
				lit, ok := t.Obj.(rdf.Literal)
				if !ok {
					continue
				}
				k := key{subj: t.Subj.String(), pred: t.Pred.String()}
				if vals[k] == nil {
					vals[k] = make(map[rdf.Literal]struct{})
				}
				vals[k][lit] = struct{}{}
				terms[k] = [2]rdf.Triple{t}
			}
		}
		return vals, terms
	}

	refVals, refTerms := collect(reference)
	rebuiltVals, _ := collect(rebuilt)

	var keys []key
	for k := range refVals {
		if _, ok := rebuiltVals[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].subj != keys[j].subj {
			return keys[i].subj < keys[j].subj
		}
		return keys[i].pred < keys[j].pred
	})

	var diffs []LiteralDiff
	for _, k := range keys {
		if len(diffs) >= limit {
			break
		}
		if literalSetsEqual(refVals[k], rebuiltVals[k]) {
			continue
		}
		t := refTerms[k][0]
		diffs = append(diffs, LiteralDiff{
			Subject:   t.Subj,
			Predicate: t.Pred,
			Reference: sortedLiterals(refVals[k]),
			Rebuilt:   sortedLiterals(rebuiltVals[k]),
		})
	}
	return diffs
}

func literalSetsEqual(a, b map[rdf.Literal]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for l := range a {
		if _, ok := b[l]; !ok {
			return false
		}
	}
	return true
}

func sortedLiterals(set map[rdf.Literal]struct{}) []rdf.Literal {
	out := make([]rdf.Literal, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Serialize(rdf.NTriples) < out[j].Serialize(rdf.NTriples)
	})
	return out
}

func truncate(ts []rdf.Triple, limit int) []rdf.Triple {
	if len(ts) <= limit {
		return ts
	}
	return ts[:limit]
}

// Write prints the human-readable verification report. The display graph
// supplies prefix bindings for compact IRI rendering.
func (r VerifyResult) Write(w io.Writer, display *graph.Graph) {
	if len(r.Ignored) > 0 {
		fmt.Fprintf(w, "Graph matches reference (raw): %t\n", r.EqualRaw)
		fmt.Fprintf(w, "Graph matches reference (ignoring %s): %t\n", joinIRIs(r.Ignored), r.EqualFiltered)
	} else {
		fmt.Fprintf(w, "Graph matches reference: %t\n", r.EqualRaw)
	}

	fmt.Fprintf(w, "\nTop concepts in reference: %d\n", r.ReferenceTopConcepts)
	fmt.Fprintf(w, "Top concepts in rebuilt:   %d\n", r.RebuiltTopConcepts)

	if r.EqualFiltered {
		return
	}

	fmt.Fprintf(w, "\nTriples missing from rebuilt (showing %d of %d):\n", len(r.Missing), r.MissingTotal)
	for _, t := range r.Missing {
		fmt.Fprintf(w, "- %s %s %s\n", display.CompactTerm(t.Subj), display.CompactTerm(t.Pred), display.CompactTerm(t.Obj))
	}

	fmt.Fprintf(w, "\nTriples extra in rebuilt (showing %d of %d):\n", len(r.Extra), r.ExtraTotal)
	for _, t := range r.Extra {
		fmt.Fprintf(w, "- %s %s %s\n", display.CompactTerm(t.Subj), display.CompactTerm(t.Pred), display.CompactTerm(t.Obj))
	}

	if len(r.LiteralDiffs) > 0 {
		fmt.Fprintf(w, "\nLiteral lexical-form differences (up to %d):\n", len(r.LiteralDiffs))
		for _, d := range r.LiteralDiffs {
			fmt.Fprintf(w, "- Subject: %s\n", d.Subject.String())
			fmt.Fprintf(w, "  Predicate: %s\n", d.Predicate.String())
			fmt.Fprintln(w, "  Reference literals:")
			for _, l := range d.Reference {
				fmt.Fprintf(w, "    - %s\n", display.CompactTerm(l))
			}
			fmt.Fprintln(w, "  Rebuilt literals:")
			for _, l := range d.Rebuilt {
				fmt.Fprintf(w, "    - %s\n", display.CompactTerm(l))
			}
		}
	}
}

func joinIRIs(iris []rdf.IRI) string {
	strs := make([]string, len(iris))
	for i, iri := range iris {
		strs[i] = iri.String()
	}
	sort.Strings(strs)
	out := ""
	for i, s := range strs {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
