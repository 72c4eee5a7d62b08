// Package emit provides streaming RDF triple serialization.
//
// A TripleSink consumes (subject, predicate, object) statements and renders
// them to an underlying writer. Two serializations are supported: N-Triples
// (one self-contained line per statement) and Turtle (prefixed, compacted).
package emit

import (
	"fmt"
	"io"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"
)

// ParseFormat maps a user-supplied format name to a Format. Short aliases
// ("nt", "ttl") are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ntriples", "nt", "n-triples":
		return FormatNTriples, nil
	case "turtle", "ttl":
		return FormatTurtle, nil
	default:
		return "", fmt.Errorf("unknown format: %s (supported: ntriples, turtle)", name)
	}
}

// TripleSink consumes a stream of RDF statements.
//
// Emit calls are write-only and never fail the caller: serialization
// problems surface on Flush via the underlying writer. TripleCount reports
// the number of statements emitted so far; prefix registrations do not
// count as statements.
type TripleSink interface {
	// EmitIRI emits a triple whose object is another IRI.
	EmitIRI(subject, predicate, object string)

	// EmitLiteral emits a triple with a plain string literal object.
	EmitLiteral(subject, predicate, value string)

	// EmitTypedLiteral emits a triple with a datatyped literal object.
	EmitTypedLiteral(subject, predicate, value, datatype string)

	// EmitBool emits a triple with an xsd:boolean literal object.
	EmitBool(subject, predicate string, value bool)

	// EmitInt emits a triple with an xsd:integer literal object.
	EmitInt(subject, predicate string, value int64)

	// AddPrefix registers a namespace prefix. Formats without a native
	// prefix mechanism may render it as a comment or ignore it.
	AddPrefix(prefix, namespace string)

	// Flush writes any buffered output to the underlying destination.
	Flush() error

	// TripleCount returns the number of triples emitted so far.
	TripleCount() uint64
}

// NewSink creates a TripleSink for the given format writing to w.
func NewSink(format Format, w io.Writer) (TripleSink, error) {
	switch format {
	case FormatNTriples:
		return NewNTriplesEmitter(w), nil
	case FormatTurtle:
		return NewTurtleEmitter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
