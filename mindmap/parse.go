package mindmap

import (
	"errors"
	"sort"
	"strings"

	"github.com/knakk/rdf"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/vocabulary/skos"
	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

var (
	predType          = graph.MustIRI(skos.RDFType)
	predValue         = graph.MustIRI(skos.RDFValue)
	predRDFSLabel     = graph.MustIRI(skos.RDFSLabel)
	predPrefLabel     = graph.MustIRI(skos.PrefLabel)
	predAltLabel      = graph.MustIRI(skos.AltLabel)
	predNotation      = graph.MustIRI(skos.Notation)
	predDefinition    = graph.MustIRI(skos.Definition)
	predBroader       = graph.MustIRI(skos.Broader)
	predNarrower      = graph.MustIRI(skos.Narrower)
	predHasTopConcept = graph.MustIRI(skos.HasTopConcept)
	predTopConceptOf  = graph.MustIRI(skos.TopConceptOf)
	predExactMatch    = graph.MustIRI(skos.ExactMatch)
	predHasProcedure  = graph.MustIRI(soilhealth.HasProcedure)
	predDCSource      = graph.MustIRI(skos.DCSource)
	predSchemaText    = graph.MustIRI(skos.SchemaText)

	classConcept       = graph.MustIRI(skos.Concept)
	classConceptScheme = graph.MustIRI(skos.ConceptScheme)
)

// ErrNoScheme is returned when the graph declares no skos:ConceptScheme.
var ErrNoScheme = errors.New("no SKOS ConceptScheme found in the graph")

// Definition is one definition text with its optional source reference.
type Definition struct {
	Text   string  `json:"text"`
	Source *string `json:"source"`
}

// Match is one external exactMatch link with a display label derived from
// the URI tail.
type Match struct {
	URI   string `json:"uri"`
	Label string `json:"label"`
}

// Concept is one node of the mind-map tree. The JSON field names are part
// of the page contract: the embedded script walks these keys.
type Concept struct {
	URI         string       `json:"uri"`
	Label       string       `json:"label"`
	AltLabel    *string      `json:"altLabel"`
	Notation    *string      `json:"notation"`
	Definition  *string      `json:"definition"`
	Definitions []Definition `json:"definitions"`
	ExactMatch  []Match      `json:"exactMatch"`
	IsProcedure bool         `json:"isProcedure"`
	Procedures  []*Concept   `json:"procedures"`
	Narrower    []*Concept   `json:"narrower"`
}

// Vocabulary is the whole tree handed to the page.
type Vocabulary struct {
	SchemeURI   string     `json:"scheme_uri"`
	SchemeLabel string     `json:"scheme_label"`
	TopConcepts []*Concept `json:"top_concepts"`
}

// Parse extracts the concept tree from a vocabulary graph. When the graph
// declares several schemes the lexicographically first one is used. Cycles
// in the hierarchy are broken by not descending into an ancestor again.
func Parse(g *graph.Graph) (*Vocabulary, error) {
	schemes := g.Subjects(predType, classConceptScheme)
	if len(schemes) == 0 {
		return nil, ErrNoScheme
	}
	scheme, ok := schemes[0].(rdf.IRI)
	if !ok {
		return nil, ErrNoScheme
	}

	p := &parser{g: g}

	voc := &Vocabulary{
		SchemeURI:   scheme.String(),
		SchemeLabel: p.schemeLabel(scheme),
		TopConcepts: []*Concept{},
	}
	for _, tc := range p.topConcepts(scheme) {
		voc.TopConcepts = append(voc.TopConcepts, p.concept(tc, map[string]bool{}))
	}
	return voc, nil
}

type parser struct {
	g *graph.Graph
}

// schemeLabel falls back from prefLabel through rdfs:label to the IRI tail.
func (p *parser) schemeLabel(scheme rdf.IRI) string {
	if label := p.firstLiteral(scheme, predPrefLabel); label != "" {
		return label
	}
	if label := p.firstLiteral(scheme, predRDFSLabel); label != "" {
		return label
	}
	return uriTail(scheme.String())
}

// topConcepts tries hasTopConcept, then topConceptOf, then concepts with no
// broader statement. Order is deterministic within each source.
func (p *parser) topConcepts(scheme rdf.IRI) []rdf.IRI {
	var out []rdf.IRI
	seen := map[string]bool{}

	for _, o := range p.g.Objects(scheme, predHasTopConcept) {
		if iri, ok := o.(rdf.IRI); ok && !seen[iri.String()] {
			seen[iri.String()] = true
			out = append(out, iri)
		}
	}
	for _, s := range p.g.Subjects(predTopConceptOf, scheme) {
		if iri, ok := s.(rdf.IRI); ok && !seen[iri.String()] {
			seen[iri.String()] = true
			out = append(out, iri)
		}
	}
	if len(out) > 0 {
		return out
	}

	hasBroader := map[string]bool{}
	for _, t := range p.g.TriplesWithPredicate(predBroader) {
		hasBroader[t.Subj.String()] = true
	}
	for _, s := range p.g.Subjects(predType, classConcept) {
		iri, ok := s.(rdf.IRI)
		if !ok || hasBroader[iri.String()] {
			continue
		}
		out = append(out, iri)
	}
	return out
}

// concept builds the subtree rooted at one concept. The visited set holds
// the ancestors of the current path; a child already on the path is skipped
// so malformed hierarchies cannot recurse forever.
func (p *parser) concept(uri rdf.IRI, visited map[string]bool) *Concept {
	visited[uri.String()] = true
	defer delete(visited, uri.String())

	c := &Concept{
		URI:         uri.String(),
		Definitions: []Definition{},
		ExactMatch:  []Match{},
		Procedures:  []*Concept{},
		Narrower:    []*Concept{},
	}

	if label := p.firstLiteral(uri, predPrefLabel); label != "" {
		c.Label = label
	} else {
		c.Label = uriTail(uri.String())
	}
	if alt := p.firstLiteral(uri, predAltLabel); alt != "" {
		c.AltLabel = &alt
	}
	if notation := p.firstLiteral(uri, predNotation); notation != "" {
		c.Notation = &notation
	}

	for _, o := range p.g.Objects(uri, predDefinition) {
		switch o.Type() {
		case rdf.TermLiteral:
			c.Definitions = append(c.Definitions, Definition{Text: o.(rdf.Literal).String()})
		case rdf.TermBlank:
			if def, ok := p.structuredDefinition(o.(rdf.Blank)); ok {
				c.Definitions = append(c.Definitions, def)
			}
		}
	}
	if len(c.Definitions) > 0 {
		c.Definition = &c.Definitions[0].Text
	}

	for _, o := range p.g.Objects(uri, predExactMatch) {
		if iri, ok := o.(rdf.IRI); ok {
			s := iri.String()
			c.ExactMatch = append(c.ExactMatch, Match{URI: s, Label: uriTail(s)})
			if strings.Contains(s, "glosis/model/procedure/") {
				c.IsProcedure = true
			}
		}
	}

	for _, child := range p.children(uri) {
		if visited[child.String()] {
			continue
		}
		c.Narrower = append(c.Narrower, p.concept(child, visited))
	}

	for _, o := range p.g.Objects(uri, predHasProcedure) {
		proc, ok := o.(rdf.IRI)
		if !ok || visited[proc.String()] {
			continue
		}
		c.Procedures = append(c.Procedures, p.concept(proc, visited))
	}

	return c
}

// children merges skos:narrower objects with the inverse of skos:broader.
func (p *parser) children(uri rdf.IRI) []rdf.IRI {
	seen := map[string]bool{}
	var out []rdf.IRI
	for _, o := range p.g.Objects(uri, predNarrower) {
		if iri, ok := o.(rdf.IRI); ok && !seen[iri.String()] {
			seen[iri.String()] = true
			out = append(out, iri)
		}
	}
	for _, s := range p.g.Subjects(predBroader, uri) {
		if iri, ok := s.(rdf.IRI); ok && !seen[iri.String()] {
			seen[iri.String()] = true
			out = append(out, iri)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// structuredDefinition unpacks a blank-node definition carrying its text
// under schema.org/text or rdf:value and its provenance under dct:source.
// An English text wins over the first one found.
func (p *parser) structuredDefinition(node rdf.Blank) (Definition, bool) {
	texts := p.g.Objects(node, predSchemaText)
	if len(texts) == 0 {
		texts = p.g.Objects(node, predValue)
	}

	var text string
	for _, o := range texts {
		lit, ok := o.(rdf.Literal)
		if !ok {
			continue
		}
		if text == "" {
			text = lit.String()
		}
		if lit.Lang() == "en" {
			text = lit.String()
			break
		}
	}
	if text == "" {
		return Definition{}, false
	}

	def := Definition{Text: text}
	for _, o := range p.g.Objects(node, predDCSource) {
		s := o.String()
		def.Source = &s
		break
	}
	return def, true
}

func (p *parser) firstLiteral(s rdf.Subject, pred rdf.IRI) string {
	for _, o := range p.g.Objects(s, pred) {
		if lit, ok := o.(rdf.Literal); ok {
			return lit.String()
		}
	}
	return ""
}

// uriTail extracts a readable label from a URI: the last path segment,
// then the last fragment part.
func uriTail(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		uri = uri[i+1:]
	}
	if i := strings.LastIndex(uri, "#"); i >= 0 {
		uri = uri[i+1:]
	}
	return uri
}
