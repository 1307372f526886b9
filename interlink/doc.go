// Package interlink enriches a SKOS vocabulary with skos:exactMatch and
// skos:closeMatch links into external thesauri. Matching is label-based:
// each local prefLabel, normalized from British to American spelling, is
// looked up against a thesaurus dump's preferred labels first and its
// alternative labels second.
package interlink
