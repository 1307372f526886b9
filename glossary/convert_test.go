package glossary

import (
	"strings"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

func mustIRI(t *testing.T, s string) rdf.IRI {
	t.Helper()
	iri, err := rdf.NewIRI(s)
	require.NoError(t, err)
	return iri
}

func mustLang(t *testing.T, v string) rdf.Literal {
	t.Helper()
	lit, err := rdf.NewLangLiteral(v, "en")
	require.NoError(t, err)
	return lit
}

func TestFragment(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "from term",
			entry: Entry{Term: "Soil Organic Matter"},
			want:  "soil-organic-matter",
		},
		{
			name:  "underscores become hyphens",
			entry: Entry{Term: "bulk_density"},
			want:  "bulk-density",
		},
		{
			name:  "url wins over term",
			entry: Entry{Term: "Soil Health", URL: "https://soilhealthbenchmarks.eu/glossary/soil-health-indicator"},
			want:  "soil-health-indicator",
		},
		{
			name:  "trailing slash stripped",
			entry: Entry{Term: "Erosion", URL: "https://soilhealthbenchmarks.eu/glossary/erosion/"},
			want:  "erosion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fragment(tt.entry))
		})
	}
}

func TestConvert(t *testing.T) {
	entries := []Entry{
		{
			Term:       "Soil Health",
			Definition: "Capacity of soil to function. | Continued capacity as a living ecosystem.",
			Related:    "Soil Quality",
		},
		{
			Term: "Soil Quality",
			URL:  "https://soilhealthbenchmarks.eu/glossary/soil-quality",
		},
	}

	g, report := NewConverter("", "").Convert(entries)
	require.True(t, report.Empty())

	health := mustIRI(t, soilhealth.GlossaryNamespace+"soil-health")
	quality := mustIRI(t, soilhealth.GlossaryNamespace+"soil-quality")

	t.Run("concepts with lowercased labels", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: health, Pred: predType, Obj: classConcept}))
		assert.True(t, g.Has(rdf.Triple{Subj: health, Pred: predPrefLabel, Obj: mustLang(t, "soil health")}))
		assert.True(t, g.Has(rdf.Triple{Subj: quality, Pred: predPrefLabel, Obj: mustLang(t, "soil quality")}))
	})

	t.Run("pipe-separated definitions each get a triple", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: health, Pred: predDefinition, Obj: mustLang(t, "Capacity of soil to function.")}))
		assert.True(t, g.Has(rdf.Triple{Subj: health, Pred: predDefinition, Obj: mustLang(t, "Continued capacity as a living ecosystem.")}))
	})

	t.Run("related resolved case-insensitively", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{Subj: health, Pred: predRelated, Obj: quality}))
	})

	t.Run("stats", func(t *testing.T) {
		stats := GraphStats(g)
		assert.Equal(t, 2, stats.Concepts)
		assert.Equal(t, g.Len(), stats.Triples)
	})
}

func TestConvertMissingRelatedSkipped(t *testing.T) {
	entries := []Entry{
		{Term: "Erosion", Related: "Compaction"},
	}

	g, report := NewConverter("", "").Convert(entries)
	require.Len(t, report.MissingRelated, 1)
	assert.Equal(t, "Erosion", report.MissingRelated[0].Term)
	assert.Equal(t, "Compaction", report.MissingRelated[0].Related)
	assert.Empty(t, g.TriplesWithPredicate(predRelated))
}

func TestConvertOutOfOrderRelated(t *testing.T) {
	// Related term defined after the row referencing it.
	entries := []Entry{
		{Term: "A", Related: "B"},
		{Term: "B"},
	}

	g, report := NewConverter("https://example.org/gloss/", "ex").Convert(entries)
	require.True(t, report.Empty())
	assert.True(t, g.Has(rdf.Triple{
		Subj: mustIRI(t, "https://example.org/gloss/a"),
		Pred: predRelated,
		Obj:  mustIRI(t, "https://example.org/gloss/b"),
	}))
}

func TestRead(t *testing.T) {
	csvData := `term,definition,url,related
Soil Health,Capacity of soil to function.,https://soilhealthbenchmarks.eu/glossary/soil-health,Soil Quality
Soil Quality,,,
,skipped row without term,,
`
	entries, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Soil Health", entries[0].Term)
	assert.Equal(t, []string{"Capacity of soil to function."}, entries[0].Definitions())
	assert.Equal(t, []string{"Soil Quality"}, entries[0].RelatedTerms())
	assert.Equal(t, "Soil Quality", entries[1].Term)
}

func TestReadMissingTermColumn(t *testing.T) {
	_, err := Read(strings.NewReader("definition,url\nx,y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "term"`)
}
