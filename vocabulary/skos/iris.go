package skos

// Namespace is the base IRI prefix for SKOS core terms.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

// Class IRIs define the SKOS entity types.
const (
	// Concept is a single named entity in a taxonomy.
	Concept = Namespace + "Concept"

	// ConceptScheme is the root container of a taxonomy.
	ConceptScheme = Namespace + "ConceptScheme"
)

// Labeling and documentation property IRIs.
const (
	// PrefLabel is the preferred display name of a concept.
	PrefLabel = Namespace + "prefLabel"

	// AltLabel is an alternate name of a concept.
	AltLabel = Namespace + "altLabel"

	// Notation is a short code identifying a concept within a scheme.
	Notation = Namespace + "notation"

	// Definition is the free-text definition of a concept.
	Definition = Namespace + "definition"
)

// Hierarchy and membership property IRIs.
const (
	// Broader points from a concept to its more general parent.
	Broader = Namespace + "broader"

	// Narrower is the inverse of Broader.
	Narrower = Namespace + "narrower"

	// Related is a non-hierarchical association between concepts.
	Related = Namespace + "related"

	// InScheme links a concept to the scheme it belongs to.
	InScheme = Namespace + "inScheme"

	// HasTopConcept links a scheme to one of its top-level concepts.
	HasTopConcept = Namespace + "hasTopConcept"

	// TopConceptOf is the inverse of HasTopConcept.
	TopConceptOf = Namespace + "topConceptOf"
)

// Mapping property IRIs link concepts to external vocabularies.
const (
	// ExactMatch asserts equivalence with an external concept.
	ExactMatch = Namespace + "exactMatch"

	// CloseMatch asserts approximate equivalence with an external concept.
	CloseMatch = Namespace + "closeMatch"
)

// Standard ontology IRI constants used alongside SKOS.
const (
	// RDFType is the rdf:type predicate.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RDFValue is the rdf:value predicate, used in structured definitions.
	RDFValue = "http://www.w3.org/1999/02/22-rdf-syntax-ns#value"

	// RDFSLabel is the rdfs:label property, a fallback for scheme labels.
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// DCSource is the Dublin Core source property, attached to structured
	// definitions to credit where the text came from.
	DCSource = "http://purl.org/dc/terms/source"

	// SchemaText is the schema.org text property, the literal carrier in
	// blank-node structured definitions.
	SchemaText = "https://schema.org/text"
)
