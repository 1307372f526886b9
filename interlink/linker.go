package interlink

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knakk/rdf"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/vocabulary/skos"
	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

var (
	predPrefLabel  = graph.MustIRI(skos.PrefLabel)
	predExactMatch = graph.MustIRI(skos.ExactMatch)
	predCloseMatch = graph.MustIRI(skos.CloseMatch)
)

// Stats counts the links one thesaurus contributed.
type Stats struct {
	Thesaurus    string
	ExactMatches int
	CloseMatches int
}

// Linked returns the total number of links added.
func (s Stats) Linked() int { return s.ExactMatches + s.CloseMatches }

// ErrUnknownThesaurus is returned when a thesaurus name has no registered
// namespace. Linking against it would mint prefixless matches, so it is
// skipped instead.
type ErrUnknownThesaurus struct {
	Name string
}

func (e ErrUnknownThesaurus) Error() string {
	return fmt.Sprintf("no namespace registered for thesaurus %q", e.Name)
}

// Linker adds label-based match links into a vocabulary graph.
type Linker struct {
	namespaces map[string]string
}

// NewLinker creates a linker over the given thesaurus namespace registry.
// A nil registry falls back to the built-in one.
func NewLinker(namespaces map[string]string) *Linker {
	if namespaces == nil {
		namespaces = soilhealth.ThesaurusNamespaces
	}
	return &Linker{namespaces: namespaces}
}

// Link walks every skos:prefLabel in the graph and adds an exactMatch when
// the normalized label matches a thesaurus preferred label, or a closeMatch
// when it only matches an alternative label. Preferred labels win: a label
// present in both maps yields exactMatch only. The thesaurus namespace gets
// bound on the graph under the thesaurus name.
func (l *Linker) Link(g *graph.Graph, th *Thesaurus) (Stats, error) {
	stats := Stats{Thesaurus: th.Name}

	ns, ok := l.namespaces[th.Name]
	if !ok {
		return stats, ErrUnknownThesaurus{Name: th.Name}
	}
	g.Bind(th.Name, ns)

	for _, t := range g.TriplesWithPredicate(predPrefLabel) {
		subj, ok := t.Subj.(rdf.IRI)
		if !ok {
			continue
		}
		lit, ok := t.Obj.(rdf.Literal)
		if !ok {
			continue
		}
		label := NormalizeUKToUS(strings.ToLower(lit.String()))

		if uri, ok := th.PrefLabels[label]; ok {
			g.Add(rdf.Triple{Subj: subj, Pred: predExactMatch, Obj: graph.NewIRI(uri)})
			stats.ExactMatches++
			continue
		}
		if uri, ok := th.AltLabels[label]; ok {
			g.Add(rdf.Triple{Subj: subj, Pred: predCloseMatch, Obj: graph.NewIRI(uri)})
			stats.CloseMatches++
		}
	}
	return stats, nil
}

// LinkFiles loads each thesaurus dump and links the graph against it in
// order. Dumps without a registered namespace are skipped and reported in
// the returned stats with zero links; IO and parse failures abort.
func (l *Linker) LinkFiles(g *graph.Graph, paths []string) ([]Stats, error) {
	var all []Stats
	for _, path := range paths {
		th, err := LoadThesaurus(path)
		if err != nil {
			return all, err
		}
		stats, err := l.Link(g, th)
		if err != nil {
			var unknown ErrUnknownThesaurus
			if errors.As(err, &unknown) {
				slog.Warn("skipping unknown thesaurus", "name", unknown.Name, "file", path)
				all = append(all, stats)
				continue
			}
			return all, err
		}
		all = append(all, stats)
	}
	return all, nil
}
