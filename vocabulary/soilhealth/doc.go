// Package soilhealth provides IRI constants for the SoilWise soil-health
// vocabulary, including the procedure-ownership predicates that extend SKOS
// and the namespaces of the external thesauri SoilVoc links against.
package soilhealth
