package restore

import (
	"github.com/knakk/rdf"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/tabular"
	"github.com/soilwise-he/soilvoc/vocabulary/skos"
	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

// Predicate terms used across building and verification.
var (
	predType          = graph.MustIRI(skos.RDFType)
	predPrefLabel     = graph.MustIRI(skos.PrefLabel)
	predAltLabel      = graph.MustIRI(skos.AltLabel)
	predDefinition    = graph.MustIRI(skos.Definition)
	predBroader       = graph.MustIRI(skos.Broader)
	predNarrower      = graph.MustIRI(skos.Narrower)
	predRelated       = graph.MustIRI(skos.Related)
	predInScheme      = graph.MustIRI(skos.InScheme)
	predHasTopConcept = graph.MustIRI(skos.HasTopConcept)
	predTopConceptOf  = graph.MustIRI(skos.TopConceptOf)
	predExactMatch    = graph.MustIRI(skos.ExactMatch)
	predCloseMatch    = graph.MustIRI(skos.CloseMatch)
	predIsProcedureOf = graph.MustIRI(soilhealth.IsProcedureOf)
	predHasProcedure  = graph.MustIRI(soilhealth.HasProcedure)
	predEquivalentTo  = graph.MustIRI(soilhealth.EquivalentTo)

	classConcept       = graph.MustIRI(skos.Concept)
	classConceptScheme = graph.MustIRI(skos.ConceptScheme)
)

// Builder turns classified spreadsheet rows into a SKOS graph.
type Builder struct {
	scheme     rdf.IRI
	lang       string
	classifier *Classifier
}

// NewBuilder creates a builder emitting concepts into the given scheme.
// Labels and non-procedure definitions are tagged with lang ("en" if empty).
func NewBuilder(schemeURI, lang string, classifier *Classifier) *Builder {
	if lang == "" {
		lang = "en"
	}
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &Builder{
		scheme:     graph.NewIRI(schemeURI),
		lang:       lang,
		classifier: classifier,
	}
}

// Build constructs the full relation set from the rows. It never fails on
// row content: unresolvable references degrade into report warnings and the
// affected edge is dropped. An empty row set yields a scheme with no
// concepts, which is valid degenerate output.
func (b *Builder) Build(rows []tabular.Row) (*graph.Graph, *Report) {
	report := &Report{}

	// Classification must cover the whole row set before any reference is
	// resolved: the edge kind for a broader link depends on the kind of
	// the target row, not just the source.
	kinds := b.classifier.ClassifyRows(rows)
	resolver := NewResolver(rows)

	g := graph.New()
	g.Bind("skos", skos.Namespace)
	g.Bind("she", soilhealth.Namespace)

	g.Add(rdf.Triple{Subj: b.scheme, Pred: predType, Obj: classConceptScheme})

	// Identity, labels, definitions, external links.
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		concept := graph.NewIRI(row.ID)

		g.Add(rdf.Triple{Subj: concept, Pred: predType, Obj: classConcept})
		g.Add(rdf.Triple{Subj: concept, Pred: predInScheme, Obj: b.scheme})

		if row.PrefLabel != "" {
			g.Add(rdf.Triple{Subj: concept, Pred: predPrefLabel, Obj: b.langLiteral(row.PrefLabel)})
		}
		for _, alt := range row.AltLabels() {
			g.Add(rdf.Triple{Subj: concept, Pred: predAltLabel, Obj: b.langLiteral(alt)})
		}
		if row.Definition != "" {
			// Reference data tags concept definitions with a language
			// but leaves procedure definitions untagged.
			if kinds[row.ID] == KindProcedure {
				g.Add(rdf.Triple{Subj: concept, Pred: predDefinition, Obj: plainLiteral(row.Definition)})
			} else {
				g.Add(rdf.Triple{Subj: concept, Pred: predDefinition, Obj: b.langLiteral(row.Definition)})
			}
		}
		for _, uri := range row.ExactMatches() {
			g.Add(rdf.Triple{Subj: concept, Pred: predExactMatch, Obj: graph.NewIRI(uri)})
		}
		for _, uri := range row.CloseMatches() {
			g.Add(rdf.Triple{Subj: concept, Pred: predCloseMatch, Obj: graph.NewIRI(uri)})
		}
	}

	// Hierarchy and procedure-ownership edges.
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		concept := graph.NewIRI(row.ID)
		isProcedure := kinds[row.ID] == KindProcedure

		for _, label := range row.BroaderLabels() {
			parentID, ok := resolver.Resolve(label, report)
			if !ok {
				continue
			}
			parent := graph.NewIRI(parentID)
			switch {
			case isProcedure && kinds[parentID] == KindProcedure:
				g.Add(rdf.Triple{Subj: concept, Pred: predBroader, Obj: parent})
			case isProcedure:
				// A procedure under an ordinary concept is owned by
				// it, not subsumed by it.
				g.Add(rdf.Triple{Subj: concept, Pred: predIsProcedureOf, Obj: parent})
				g.Add(rdf.Triple{Subj: parent, Pred: predHasProcedure, Obj: concept})
			default:
				g.Add(rdf.Triple{Subj: concept, Pred: predBroader, Obj: parent})
			}
		}
	}

	// Derived inverse: every broader edge gets its narrower counterpart.
	for _, t := range g.TriplesWithPredicate(predBroader) {
		if parent, ok := t.Obj.(rdf.IRI); ok {
			if child, ok := t.Subj.(rdf.IRI); ok {
				g.Add(rdf.Triple{Subj: parent, Pred: predNarrower, Obj: child})
			}
		}
	}

	// Top concepts: non-procedure rows whose broader cell was blank.
	// Procedures never become top concepts, whatever their broader field.
	for _, row := range rows {
		if row.ID == "" || kinds[row.ID] == KindProcedure {
			continue
		}
		if len(row.BroaderLabels()) > 0 {
			continue
		}
		tc := graph.NewIRI(row.ID)
		g.Add(rdf.Triple{Subj: b.scheme, Pred: predHasTopConcept, Obj: tc})
		g.Add(rdf.Triple{Subj: tc, Pred: predTopConceptOf, Obj: b.scheme})
	}

	return g, report
}

func (b *Builder) langLiteral(v string) rdf.Literal {
	lit, err := rdf.NewLangLiteral(v, b.lang)
	if err != nil {
		return plainLiteral(v)
	}
	return lit
}

func plainLiteral(v string) rdf.Literal {
	lit, _ := rdf.NewLiteral(v)
	return lit
}
