package graph

import (
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// DecodeTurtle parses Turtle from r into a new graph.
func DecodeTurtle(r io.Reader) (*Graph, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("parse turtle: %w", err)
	}
	g := New()
	for _, t := range triples {
		g.Add(t)
	}
	return g, nil
}

// LoadTurtleFile parses a Turtle file into a new graph.
func LoadTurtleFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := DecodeTurtle(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}
