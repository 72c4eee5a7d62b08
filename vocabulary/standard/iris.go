// Package standard provides W3C namespace and term IRIs used across all
// serialization formats.
package standard

// Namespace IRIs for the core W3C vocabularies.
const (
	// RDF is the RDF syntax namespace.
	RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFS is the RDF Schema namespace.
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// XSD is the XML Schema datatypes namespace.
	XSD = "http://www.w3.org/2001/XMLSchema#"
)

// Term IRIs.
const (
	// RDFType is the rdf:type predicate linking an entity to its class.
	RDFType = RDF + "type"

	// RDFSLabel is the rdfs:label predicate for human-readable names.
	RDFSLabel = RDFS + "label"

	// RDFSSubClassOf is the rdfs:subClassOf predicate.
	RDFSSubClassOf = RDFS + "subClassOf"
)

// Datatype IRIs for typed literals.
const (
	// XSDString is the xsd:string datatype.
	XSDString = XSD + "string"

	// XSDBoolean is the xsd:boolean datatype.
	XSDBoolean = XSD + "boolean"

	// XSDInteger is the xsd:integer datatype.
	XSDInteger = XSD + "integer"
)
