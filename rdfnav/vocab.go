package rdfnav

// Well-known namespace prefixes.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Vocabulary terms used by the navigation layer.
var (
	// RDFType is the rdf:type predicate.
	RDFType = IRI{Value: NSRDF + "type"}
	// RDFSSubClassOf is the rdfs:subClassOf predicate, consulted by
	// NodeRef.IsInstanceOf when subsumption triples are present.
	RDFSSubClassOf = IRI{Value: NSRDFS + "subClassOf"}
	// XSDString is the default datatype of plain literals.
	XSDString = IRI{Value: NSXSD + "string"}
)
