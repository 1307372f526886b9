package glossary

import (
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/vocabulary/skos"
	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

var (
	predType       = graph.MustIRI(skos.RDFType)
	predPrefLabel  = graph.MustIRI(skos.PrefLabel)
	predDefinition = graph.MustIRI(skos.Definition)
	predRelated    = graph.MustIRI(skos.Related)
	classConcept   = graph.MustIRI(skos.Concept)
)

// MissingRelated records a related reference pointing at a term the
// glossary does not define. The link is skipped.
type MissingRelated struct {
	Term    string
	Related string
}

// Report collects the non-fatal problems of one conversion.
type Report struct {
	MissingRelated []MissingRelated
}

// Empty reports whether the conversion completed without warnings.
func (r *Report) Empty() bool { return len(r.MissingRelated) == 0 }

// Write prints the conversion warnings in a human-readable form.
func (r *Report) Write(w io.Writer) {
	for _, m := range r.MissingRelated {
		fmt.Fprintf(w, "Warning: related term %q of %q not found in glossary\n", m.Related, m.Term)
	}
}

// Converter turns glossary entries into SKOS concepts under a namespace.
type Converter struct {
	namespace string
	prefix    string
}

// NewConverter creates a converter minting concept URIs in the given
// namespace, bound under the given Turtle prefix. Empty arguments fall back
// to the soil health benchmarks glossary namespace.
func NewConverter(namespace, prefix string) *Converter {
	if namespace == "" {
		namespace = soilhealth.GlossaryNamespace
	}
	if prefix == "" {
		prefix = "benchmarks"
	}
	return &Converter{namespace: namespace, prefix: prefix}
}

// Fragment derives the URI fragment for an entry: the last path segment of
// its source URL when present, otherwise the hyphenated lowercase term.
func Fragment(e Entry) string {
	if f := fragmentFromURL(e.URL); f != "" {
		return f
	}
	return TermFragment(e.Term)
}

// TermFragment converts a term into a URI-friendly fragment by lowercasing
// and replacing spaces and underscores with hyphens.
func TermFragment(term string) string {
	term = strings.ToLower(term)
	term = strings.ReplaceAll(term, " ", "-")
	term = strings.ReplaceAll(term, "_", "-")
	return term
}

func fragmentFromURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return ""
	}
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// Convert builds the SKOS graph for the glossary. Terms are indexed in a
// first pass so related links resolve regardless of row order; lookups are
// case-insensitive on the term.
func (c *Converter) Convert(entries []Entry) (*graph.Graph, *Report) {
	report := &Report{}

	fragments := make(map[string]string, len(entries))
	for _, e := range entries {
		fragments[strings.ToLower(e.Term)] = Fragment(e)
	}

	g := graph.New()
	g.Bind("skos", skos.Namespace)
	g.Bind(c.prefix, c.namespace)

	for _, e := range entries {
		concept := graph.NewIRI(c.namespace + fragments[strings.ToLower(e.Term)])

		g.Add(rdf.Triple{Subj: concept, Pred: predType, Obj: classConcept})
		g.Add(rdf.Triple{Subj: concept, Pred: predPrefLabel, Obj: langLiteral(strings.ToLower(e.Term))})

		for _, def := range e.Definitions() {
			g.Add(rdf.Triple{Subj: concept, Pred: predDefinition, Obj: langLiteral(def)})
		}

		for _, rel := range e.RelatedTerms() {
			target, ok := fragments[strings.ToLower(rel)]
			if !ok {
				report.MissingRelated = append(report.MissingRelated, MissingRelated{Term: e.Term, Related: rel})
				continue
			}
			g.Add(rdf.Triple{Subj: concept, Pred: predRelated, Obj: graph.NewIRI(c.namespace + target)})
		}
	}

	return g, report
}

// Stats summarizes a converted glossary graph.
type Stats struct {
	Concepts int
	Triples  int
}

// GraphStats counts the concepts and triples of a converted graph.
func GraphStats(g *graph.Graph) Stats {
	return Stats{
		Concepts: len(g.Subjects(predType, classConcept)),
		Triples:  g.Len(),
	}
}

func langLiteral(v string) rdf.Literal {
	lit, err := rdf.NewLangLiteral(v, "en")
	if err != nil {
		plain, _ := rdf.NewLiteral(v)
		return plain
	}
	return lit
}
