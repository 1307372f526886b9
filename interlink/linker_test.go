package interlink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/vocabulary/skos"
)

func mustIRI(t *testing.T, s string) rdf.IRI {
	t.Helper()
	iri, err := rdf.NewIRI(s)
	require.NoError(t, err)
	return iri
}

func conceptWithLabel(t *testing.T, g *graph.Graph, uri, label string) rdf.IRI {
	t.Helper()
	concept := mustIRI(t, uri)
	lit, err := rdf.NewLangLiteral(label, "en")
	require.NoError(t, err)
	g.Add(rdf.Triple{Subj: concept, Pred: predPrefLabel, Obj: lit})
	return concept
}

func TestNormalizeUKToUS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"soil organic fertiliser", "soil organic fertilizer"},
		{"Sulphur content", "sulfur content"},
		{"aluminium toxicity", "aluminum toxicity"},
		{"water vapour flux", "water vapor flux"},
		{"fibrous roots", "fibrous roots"}, // no word-boundary match inside "fibrous"
		{"colourless", "colourless"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUKToUS(tt.in))
		})
	}
}

func TestReadThesaurus(t *testing.T) {
	csvData := `concept,prefLabel,altLabels
http://aims.fao.org/aos/agrovoc/c_7170,soil fertility,fertility of soil; soil fertilities
http://aims.fao.org/aos/agrovoc/c_7156,soil,
`
	th, err := ReadThesaurus(strings.NewReader(csvData), "agrovoc")
	require.NoError(t, err)

	assert.Equal(t, "agrovoc", th.Name)
	assert.Equal(t, "http://aims.fao.org/aos/agrovoc/c_7170", th.PrefLabels["soil fertility"])
	assert.Equal(t, "http://aims.fao.org/aos/agrovoc/c_7170", th.AltLabels["fertility of soil"])
	assert.Equal(t, "http://aims.fao.org/aos/agrovoc/c_7156", th.PrefLabels["soil"])
	assert.Len(t, th.AltLabels, 2)
}

func TestReadThesaurusMissingColumns(t *testing.T) {
	_, err := ReadThesaurus(strings.NewReader("concept,label\nx,y\n"), "agrovoc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "prefLabel"`)
}

func TestLink(t *testing.T) {
	th := &Thesaurus{
		Name: "agrovoc",
		PrefLabels: map[string]string{
			"soil fertility": "http://aims.fao.org/aos/agrovoc/c_7170",
		},
		AltLabels: map[string]string{
			"soil fertility": "http://aims.fao.org/aos/agrovoc/c_9999",
			"soil compactness": "http://aims.fao.org/aos/agrovoc/c_7157",
		},
	}

	g := graph.New()
	exact := conceptWithLabel(t, g, "https://example.org/fertility", "Soil Fertility")
	close_ := conceptWithLabel(t, g, "https://example.org/compaction", "soil compactness")
	conceptWithLabel(t, g, "https://example.org/unmatched", "mycorrhiza")

	stats, err := NewLinker(nil).Link(g, th)
	require.NoError(t, err)

	t.Run("exact match on preferred label, case-insensitive", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{
			Subj: exact,
			Pred: predExactMatch,
			Obj:  mustIRI(t, "http://aims.fao.org/aos/agrovoc/c_7170"),
		}))
	})

	t.Run("preferred label beats alternative label", func(t *testing.T) {
		assert.False(t, g.Has(rdf.Triple{
			Subj: exact,
			Pred: predCloseMatch,
			Obj:  mustIRI(t, "http://aims.fao.org/aos/agrovoc/c_9999"),
		}))
	})

	t.Run("close match on alternative label", func(t *testing.T) {
		assert.True(t, g.Has(rdf.Triple{
			Subj: close_,
			Pred: predCloseMatch,
			Obj:  mustIRI(t, "http://aims.fao.org/aos/agrovoc/c_7157"),
		}))
	})

	t.Run("stats", func(t *testing.T) {
		assert.Equal(t, 1, stats.ExactMatches)
		assert.Equal(t, 1, stats.CloseMatches)
		assert.Equal(t, 2, stats.Linked())
	})

	t.Run("namespace bound on graph", func(t *testing.T) {
		assert.Equal(t, "http://aims.fao.org/aos/agrovoc/", g.Prefixes()["agrovoc"])
	})
}

func TestLinkNormalizesSpelling(t *testing.T) {
	th := &Thesaurus{
		Name: "gemet",
		PrefLabels: map[string]string{
			"fertilizer": "http://www.eionet.europa.eu/gemet/concept/3239",
		},
		AltLabels: map[string]string{},
	}

	g := graph.New()
	concept := conceptWithLabel(t, g, "https://example.org/fertiliser", "Fertiliser")

	stats, err := NewLinker(nil).Link(g, th)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ExactMatches)
	assert.True(t, g.Has(rdf.Triple{
		Subj: concept,
		Pred: predExactMatch,
		Obj:  mustIRI(t, "http://www.eionet.europa.eu/gemet/concept/3239"),
	}))
}

func TestLinkUnknownThesaurus(t *testing.T) {
	g := graph.New()
	conceptWithLabel(t, g, "https://example.org/a", "soil")
	before := g.Len()

	_, err := NewLinker(nil).Link(g, &Thesaurus{Name: "mystery"})
	var unknown ErrUnknownThesaurus
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "mystery", unknown.Name)
	assert.Equal(t, before, g.Len(), "unknown thesaurus must not add links")
}

func TestLinkFiles(t *testing.T) {
	dir := t.TempDir()
	agrovoc := filepath.Join(dir, "agrovoc.csv")
	require.NoError(t, os.WriteFile(agrovoc, []byte(
		"concept,prefLabel,altLabels\nhttp://aims.fao.org/aos/agrovoc/c_7156,soil,\n"), 0o644))
	mystery := filepath.Join(dir, "mystery.csv")
	require.NoError(t, os.WriteFile(mystery, []byte(
		"concept,prefLabel,altLabels\nhttps://example.org/x,soil,\n"), 0o644))

	g := graph.New()
	conceptWithLabel(t, g, "https://example.org/soil", "soil")

	paths, err := DiscoverThesauri(dir, "*.csv")
	require.NoError(t, err)
	require.Len(t, paths, 2)

	stats, err := NewLinker(nil).LinkFiles(g, paths)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 1, stats[0].ExactMatches)
	assert.Equal(t, 0, stats[1].Linked(), "unregistered thesaurus contributes nothing")
}

func TestLinkSkipsNonLiteralLabels(t *testing.T) {
	g := graph.New()
	g.Add(rdf.Triple{
		Subj: mustIRI(t, "https://example.org/broken"),
		Pred: graph.MustIRI(skos.PrefLabel),
		Obj:  mustIRI(t, "https://example.org/not-a-label"),
	})

	stats, err := NewLinker(nil).Link(g, &Thesaurus{
		Name:       "agrovoc",
		PrefLabels: map[string]string{},
		AltLabels:  map[string]string{},
	})
	require.NoError(t, err)
	assert.Zero(t, stats.Linked())
}
