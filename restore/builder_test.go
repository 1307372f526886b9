package restore

import (
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilwise-he/soilvoc/tabular"
	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

const testScheme = "https://soilwise-he.github.io/soil-health"

func iri(t *testing.T, s string) rdf.IRI {
	t.Helper()
	out, err := rdf.NewIRI(s)
	require.NoError(t, err)
	return out
}

func langLit(t *testing.T, v string) rdf.Literal {
	t.Helper()
	out, err := rdf.NewLangLiteral(v, "en")
	require.NoError(t, err)
	return out
}

// Three rows covering the main shapes: a top concept, a child, and a
// procedure hanging off the child.
func sampleRows() []tabular.Row {
	return []tabular.Row{
		{
			ID:         "https://example.org/soil-health",
			PrefLabel:  "soil health",
			Definition: "The continued capacity of soil to function as a vital living ecosystem.",
		},
		{
			ID:        "https://example.org/bulk-density",
			PrefLabel: "bulk density",
			AltLabel:  "BD; apparent density",
			Broader:   "soil health",
		},
		{
			ID:         "https://example.org/bulk-density-core",
			PrefLabel:  "bulk density by core method",
			Definition: "Mass of oven-dry soil per unit volume sampled with a core.",
			Broader:    "bulk density",
			ExactMatch: "http://w3id.org/glosis/model/procedure/bulkDensityFineEarthCore",
		},
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder(testScheme, "en", nil)
	g, report := b.Build(sampleRows())
	require.True(t, report.Empty(), "clean input should not warn")

	scheme := iri(t, testScheme)
	top := iri(t, "https://example.org/soil-health")
	child := iri(t, "https://example.org/bulk-density")
	proc := iri(t, "https://example.org/bulk-density-core")

	t.Run("scheme and membership", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: scheme, Pred: predType, Obj: classConceptScheme}))
		for _, c := range []rdf.IRI{top, child, proc} {
			assert.True(t, g.Has(rdf.Triple{Subj: c, Pred: predType, Obj: classConcept}))
			assert.True(t, g.Has(rdf.Triple{Subj: c, Pred: predInScheme, Obj: scheme}))
		}
	})

	t.Run("labels carry language tag", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: child, Pred: predPrefLabel, Obj: langLit(t, "bulk density")}))
		assert.True(t, g.Has(rdf.Triple{Subj: child, Pred: predAltLabel, Obj: langLit(t, "BD")}))
		assert.True(t, g.Has(rdf.Triple{Subj: child, Pred: predAltLabel, Obj: langLit(t, "apparent density")}))
	})

	t.Run("definition tagging differs by kind", func(t *testing.T) {
		conceptDef := langLit(t, "The continued capacity of soil to function as a vital living ecosystem.")
		assert.True(t, g.Has(rdf.Triple{Subj: top, Pred: predDefinition, Obj: conceptDef}))

		procDef, err := rdf.NewLiteral("Mass of oven-dry soil per unit volume sampled with a core.")
		require.NoError(t, err)
		assert.True(t, g.Has(rdf.Triple{Subj: proc, Pred: predDefinition, Obj: procDef}))
	})

	t.Run("broader edge gets narrower inverse", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: child, Pred: predBroader, Obj: top}))
		assert.True(t, g.Has(rdf.Triple{Subj: top, Pred: predNarrower, Obj: child}))
	})

	t.Run("procedure under concept routes to ownership pair", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: proc, Pred: predIsProcedureOf, Obj: child}))
		assert.True(t, g.Has(rdf.Triple{Subj: child, Pred: predHasProcedure, Obj: proc}))
		assert.False(t, g.Has(rdf.Triple{Subj: proc, Pred: predBroader, Obj: child}))
		assert.False(t, g.Has(rdf.Triple{Subj: child, Pred: predNarrower, Obj: proc}))
	})

	t.Run("top concept assertions are symmetric", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: scheme, Pred: predHasTopConcept, Obj: top}))
		assert.True(t, g.Has(rdf.Triple{Subj: top, Pred: predTopConceptOf, Obj: scheme}))
		assert.False(t, g.Has(rdf.Triple{Subj: scheme, Pred: predHasTopConcept, Obj: child}))
	})

	t.Run("exact match kept as IRI", func(t *testing.T) {
		ext := iri(t, "http://w3id.org/glosis/model/procedure/bulkDensityFineEarthCore")
		assert.True(t, g.Has(rdf.Triple{Subj: proc, Pred: predExactMatch, Obj: ext}))
	})
}

func TestBuildProcedureUnderProcedureStaysHierarchical(t *testing.T) {
	rows := []tabular.Row{
		{
			ID:         "https://example.org/ph",
			PrefLabel:  "pH measurement",
			ExactMatch: "http://w3id.org/glosis/model/procedure/ph",
		},
		{
			ID:         "https://example.org/ph-h2o",
			PrefLabel:  "pH in water",
			Broader:    "pH measurement",
			ExactMatch: "http://w3id.org/glosis/model/procedure/phH2o",
		},
	}

	b := NewBuilder(testScheme, "en", nil)
	g, report := b.Build(rows)
	require.True(t, report.Empty())

	parent := iri(t, "https://example.org/ph")
	childProc := iri(t, "https://example.org/ph-h2o")
	assert.True(t, g.Has(rdf.Triple{Subj: childProc, Pred: predBroader, Obj: parent}))
	assert.False(t, g.Has(rdf.Triple{Subj: childProc, Pred: predIsProcedureOf, Obj: parent}))
}

func TestBuildProceduresNeverTopConcepts(t *testing.T) {
	rows := []tabular.Row{
		{
			ID:         "https://example.org/rootless-procedure",
			PrefLabel:  "rootless procedure",
			ExactMatch: "http://w3id.org/glosis/model/procedure/orphan",
		},
	}

	b := NewBuilder(testScheme, "en", nil)
	g, _ := b.Build(rows)

	scheme := iri(t, testScheme)
	assert.Empty(t, g.Objects(scheme, predHasTopConcept))
}

func TestBuildUnresolvedBroaderDropsEdge(t *testing.T) {
	rows := []tabular.Row{
		{
			ID:        "https://example.org/child",
			PrefLabel: "child",
			Broader:   "no such parent",
		},
	}

	b := NewBuilder(testScheme, "en", nil)
	g, report := b.Build(rows)

	assert.Equal(t, []string{"no such parent"}, report.Unresolved)
	assert.Empty(t, g.TriplesWithPredicate(predBroader))
	// With the broader cell effectively present but unresolved, the row
	// is still not a top concept: the cell was not blank.
	assert.Empty(t, g.Objects(iri(t, testScheme), predHasTopConcept))
}

func TestBuildDeterministic(t *testing.T) {
	b := NewBuilder(testScheme, "en", nil)
	first, _ := b.Build(sampleRows())
	second, _ := b.Build(sampleRows())

	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Triples(), second.Triples())
}

func TestBuildEmptyRows(t *testing.T) {
	b := NewBuilder(testScheme, "en", nil)
	g, report := b.Build(nil)

	require.True(t, report.Empty())
	assert.Equal(t, 1, g.Len(), "only the scheme type triple")
	assert.True(t, g.Has(rdf.Triple{Subj: iri(t, testScheme), Pred: predType, Obj: classConceptScheme}))
}

func TestBuildBindsPrefixes(t *testing.T) {
	b := NewBuilder(testScheme, "en", nil)
	g, _ := b.Build(nil)

	prefixes := g.Prefixes()
	assert.Equal(t, "http://www.w3.org/2004/02/skos/core#", prefixes["skos"])
	assert.Equal(t, soilhealth.Namespace, prefixes["she"])
}

func TestBuildRoundTripVerifies(t *testing.T) {
	b := NewBuilder(testScheme, "en", nil)
	g, report := b.Build(sampleRows())
	require.True(t, report.Empty())

	reference := g.Clone()
	result := Verify(reference, g, VerifyOptions{Scheme: iri(t, testScheme)})

	assert.True(t, result.EqualRaw)
	assert.True(t, result.EqualFiltered)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Extra)
	assert.Equal(t, result.ReferenceTopConcepts, result.RebuiltTopConcepts)
}
