// Package graph provides an in-memory RDF triple set with Turtle input and
// output. It is deliberately small: a set of github.com/knakk/rdf triples
// with the handful of lookups the SoilVoc pipeline needs, not a triple store.
package graph
