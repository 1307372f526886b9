// Package skos provides IRI constants for the SKOS vocabulary.
//
// SKOS (Simple Knowledge Organization System) is the W3C vocabulary for
// thesauri and taxonomies. Every concept, hierarchy edge, and mapping link
// the toolchain emits or inspects is expressed in these terms.
package skos
