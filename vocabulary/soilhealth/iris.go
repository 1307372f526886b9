package soilhealth

// Namespace is the base IRI prefix for soil-health vocabulary terms.
const Namespace = "https://soilwise-he.github.io/soil-health#"

// DefaultSchemeIRI is the concept scheme IRI for SoilVoc.
const DefaultSchemeIRI = "https://soilwise-he.github.io/soil-health"

// GlossaryNamespace is the base IRI for soil-health-benchmarks glossary
// concepts minted from glossary spreadsheet rows.
const GlossaryNamespace = "https://soilhealthbenchmarks.eu/glossary/"

// Procedure-ownership property IRIs.
//
// A procedure concept is owned by the concept it measures, not subsumed by
// it, so the ordinary broader/narrower hierarchy edge does not apply.
const (
	// IsProcedureOf points from a procedure to the concept that owns it.
	IsProcedureOf = Namespace + "isProcedureOf"

	// HasProcedure is the inverse of IsProcedureOf.
	HasProcedure = Namespace + "hasProcedure"
)

// EquivalentTo is the semanticscience.org equivalence property. It appears
// in the hand-maintained reference vocabulary but does not round-trip
// through the spreadsheet, so verification excludes it by default.
const EquivalentTo = "http://semanticscience.org/resource/equivalentTo"

// ProcedurePrefixes lists the GLOSIS procedure namespace prefixes. A concept
// whose exactMatch starts with one of these is classified as a procedure.
// Both forms occur in source data; the slash-less variant matches sloppy
// spreadsheet entries.
var ProcedurePrefixes = []string{
	"http://w3id.org/glosis/model/procedure/",
	"http://w3id.org/glosis/model/procedure",
}

// ThesaurusNamespaces maps thesaurus names to their concept namespaces.
// The interlink step binds these prefixes when it links against a
// thesaurus dump of the same name.
var ThesaurusNamespaces = map[string]string{
	"agrovoc":  "http://aims.fao.org/aos/agrovoc/",
	"iso11074": "https://data.geoscience.earth/ncl/ISO11074v2025/",
	"gemet":    "http://www.eionet.europa.eu/gemet/concept/",
	"inrae":    "http://opendata.inrae.fr/thesaurusINRAE/",
	"she":      Namespace,
}
