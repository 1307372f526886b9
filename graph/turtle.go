package graph

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/soilwise-he/soilvoc/vocabulary/skos"
)

// EncodeTurtle writes the graph as Turtle. Triples are grouped by subject,
// rdf:type assertions come first as "a", and bound prefixes compact IRIs.
// Output is fully deterministic for a given graph.
func (g *Graph) EncodeTurtle(w io.Writer) error {
	var sb strings.Builder

	prefixes := make([]string, 0, len(g.prefixes))
	for p := range g.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", p, g.prefixes[p]))
	}
	if len(prefixes) > 0 {
		sb.WriteString("\n")
	}

	triples := g.Triples()
	for i := 0; i < len(triples); {
		j := i
		for j < len(triples) && triples[j].Subj == triples[i].Subj {
			j++
		}
		g.writeSubjectBlock(&sb, triples[i:j])
		sb.WriteString("\n")
		i = j
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTurtleFile serializes the graph to a file.
func (g *Graph) WriteTurtleFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := g.EncodeTurtle(f); err != nil {
		return fmt.Errorf("serialize %s: %w", path, err)
	}
	return f.Close()
}

// writeSubjectBlock writes all triples of one subject as a Turtle block.
func (g *Graph) writeSubjectBlock(sb *strings.Builder, triples []rdf.Triple) {
	rdfType := skos.RDFType

	// rdf:type first, then the rest in sorted order.
	ordered := make([]rdf.Triple, 0, len(triples))
	for _, t := range triples {
		if t.Pred.String() == rdfType {
			ordered = append(ordered, t)
		}
	}
	for _, t := range triples {
		if t.Pred.String() != rdfType {
			ordered = append(ordered, t)
		}
	}

	sb.WriteString(g.term(ordered[0].Subj))
	sb.WriteString("\n")
	for i, t := range ordered {
		if t.Pred.String() == rdfType {
			sb.WriteString(fmt.Sprintf("    a %s", g.term(t.Obj)))
		} else {
			sb.WriteString(fmt.Sprintf("    %s %s", g.term(t.Pred), g.term(t.Obj)))
		}
		if i < len(ordered)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// CompactTerm renders a term the way Turtle output would: IRIs compacted
// against the bound prefixes, literals with their tag or datatype. Used by
// diagnostic reports so diffs read like the serialized file.
func (g *Graph) CompactTerm(t rdf.Term) string {
	return g.term(t)
}

// term renders a single term for Turtle output, compacting IRIs against the
// bound prefixes where the local name is safe.
func (g *Graph) term(t rdf.Term) string {
	switch t.Type() {
	case rdf.TermIRI:
		return g.iri(t.String())
	case rdf.TermLiteral:
		return g.literal(t.(rdf.Literal))
	default:
		return t.Serialize(rdf.NTriples)
	}
}

func (g *Graph) iri(iri string) string {
	best := ""
	bestNS := ""
	for prefix, ns := range g.prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			local := iri[len(ns):]
			if validLocalName(local) {
				best = prefix + ":" + local
				bestNS = ns
			}
		}
	}
	if best != "" {
		return best
	}
	return "<" + iri + ">"
}

func (g *Graph) literal(l rdf.Literal) string {
	out := "\"" + escapeLiteral(l.String()) + "\""
	if l.Lang() != "" {
		return out + "@" + l.Lang()
	}
	dt := l.DataType.String()
	if dt != "" && dt != xsdString {
		return out + "^^" + g.iri(dt)
	}
	return out
}

const xsdString = "http://www.w3.org/2001/XMLSchema#string"

// validLocalName reports whether a namespace remainder can appear as the
// local part of a prefixed name without escaping.
func validLocalName(s string) bool {
	if s == "" || strings.HasSuffix(s, ".") {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '_', r == '-':
			if i == 0 {
				return false
			}
		case r == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// escapeLiteral escapes special characters for Turtle string literals.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
