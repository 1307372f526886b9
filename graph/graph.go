package graph

import (
	"sort"
	"strings"

	"github.com/knakk/rdf"
)

// Graph is a mutable set of triples plus the prefix bindings used when
// serializing. Triples are deduplicated; adding the same triple twice is a
// no-op. Graph is not safe for concurrent mutation.
type Graph struct {
	triples  map[rdf.Triple]struct{}
	prefixes map[string]string
}

// New returns an empty graph with no prefix bindings.
func New() *Graph {
	return &Graph{
		triples:  make(map[rdf.Triple]struct{}),
		prefixes: make(map[string]string),
	}
}

// Bind associates a prefix with a namespace for Turtle serialization.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns a copy of the current prefix bindings.
func (g *Graph) Prefixes() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for p, ns := range g.prefixes {
		out[p] = ns
	}
	return out
}

// Add inserts a triple into the graph.
func (g *Graph) Add(t rdf.Triple) {
	g.triples[t] = struct{}{}
}

// AddAll inserts multiple triples into the graph.
func (g *Graph) AddAll(ts ...rdf.Triple) {
	for _, t := range ts {
		g.Add(t)
	}
}

// Has reports whether the graph contains the exact triple.
func (g *Graph) Has(t rdf.Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns all triples sorted by subject, predicate, object. The
// sort gives deterministic serialization and diff output.
func (g *Graph) Triples() []rdf.Triple {
	out := make([]rdf.Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	SortTriples(out)
	return out
}

// Objects returns all objects of triples matching the subject and predicate.
func (g *Graph) Objects(s rdf.Subject, p rdf.Predicate) []rdf.Object {
	var out []rdf.Object
	for t := range g.triples {
		if t.Subj == s && t.Pred == p {
			out = append(out, t.Obj)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Serialize(rdf.NTriples) < out[j].Serialize(rdf.NTriples)
	})
	return out
}

// Subjects returns all subjects of triples matching the predicate and object.
func (g *Graph) Subjects(p rdf.Predicate, o rdf.Object) []rdf.Subject {
	var out []rdf.Subject
	for t := range g.triples {
		if t.Pred == p && t.Obj == o {
			out = append(out, t.Subj)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// TriplesWithPredicate returns all triples carrying the given predicate.
func (g *Graph) TriplesWithPredicate(p rdf.Predicate) []rdf.Triple {
	var out []rdf.Triple
	for t := range g.triples {
		if t.Pred == p {
			out = append(out, t)
		}
	}
	SortTriples(out)
	return out
}

// WithoutPredicates returns a new graph with every triple whose predicate is
// in the exclusion set removed. Prefix bindings carry over.
func (g *Graph) WithoutPredicates(preds ...rdf.IRI) *Graph {
	excluded := make(map[rdf.IRI]struct{}, len(preds))
	for _, p := range preds {
		excluded[p] = struct{}{}
	}
	out := New()
	out.prefixes = g.Prefixes()
	for t := range g.triples {
		if p, ok := t.Pred.(rdf.IRI); ok {
			if _, skip := excluded[p]; skip {
				continue
			}
		}
		out.Add(t)
	}
	return out
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := New()
	out.prefixes = g.Prefixes()
	for t := range g.triples {
		out.Add(t)
	}
	return out
}

// Equal reports whether both graphs contain exactly the same triple set.
// All SoilVoc nodes are named, so set equality is graph equality.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for t := range g.triples {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Diff returns the triples present in g but absent from other, sorted.
func (g *Graph) Diff(other *Graph) []rdf.Triple {
	var out []rdf.Triple
	for t := range g.triples {
		if !other.Has(t) {
			out = append(out, t)
		}
	}
	SortTriples(out)
	return out
}

// SortTriples orders triples by subject, then predicate, then the N-Triples
// form of the object so literals with different tags sort apart.
func SortTriples(ts []rdf.Triple) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.Subj.String() != b.Subj.String() {
			return a.Subj.String() < b.Subj.String()
		}
		if a.Pred.String() != b.Pred.String() {
			return a.Pred.String() < b.Pred.String()
		}
		return a.Obj.Serialize(rdf.NTriples) < b.Obj.Serialize(rdf.NTriples)
	})
}

// MustIRI builds an IRI from a trusted constant. It panics on failure, so it
// is only for vocabulary constants, never user input.
func MustIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic("graph: invalid IRI constant " + s + ": " + err.Error())
	}
	return iri
}

// NewIRI builds an IRI from user-supplied text. Identifiers coming out of
// spreadsheets are passed through opaquely rather than rejected, so the few
// characters the N-Triples grammar forbids are percent-escaped first.
func NewIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err == nil {
		return iri
	}
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r <= 0x20, r == '<', r == '>', r == '"', r == '{', r == '}', r == '|', r == '^', r == '`', r == '\\':
			for _, b := range []byte(string(r)) {
				sb.WriteString("%")
				const hex = "0123456789ABCDEF"
				sb.WriteByte(hex[b>>4])
				sb.WriteByte(hex[b&0x0f])
			}
		default:
			sb.WriteRune(r)
		}
	}
	iri, err = rdf.NewIRI(sb.String())
	if err != nil {
		// Still invalid (e.g. empty). Use a visible placeholder rather
		// than dropping the triple silently.
		return MustIRI("urn:soilvoc:invalid-iri")
	}
	return iri
}
