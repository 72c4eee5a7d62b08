package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/crategraph/vocabulary/standard"
)

// NTriplesEmitter streams triples as `<s> <p> <o> .` lines.
type NTriplesEmitter struct {
	w     *bufio.Writer
	count uint64
}

// NewNTriplesEmitter creates an N-Triples sink writing to w.
func NewNTriplesEmitter(w io.Writer) *NTriplesEmitter {
	return &NTriplesEmitter{w: bufio.NewWriter(w)}
}

// escapeNTriples escapes a literal per the RDF 1.1 N-Triples grammar.
// Control characters outside the named escapes become \uXXXX; non-ASCII
// characters pass through (the encoding is UTF-8).
func escapeNTriples(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// EmitIRI emits a triple whose object is an IRI.
func (e *NTriplesEmitter) EmitIRI(subject, predicate, object string) {
	fmt.Fprintf(e.w, "<%s> <%s> <%s> .\n", subject, predicate, object)
	e.count++
}

// EmitLiteral emits a triple with a plain string literal object.
func (e *NTriplesEmitter) EmitLiteral(subject, predicate, value string) {
	fmt.Fprintf(e.w, "<%s> <%s> \"%s\" .\n", subject, predicate, escapeNTriples(value))
	e.count++
}

// EmitTypedLiteral emits a triple with a datatyped literal object.
func (e *NTriplesEmitter) EmitTypedLiteral(subject, predicate, value, datatype string) {
	fmt.Fprintf(e.w, "<%s> <%s> \"%s\"^^<%s> .\n", subject, predicate, escapeNTriples(value), datatype)
	e.count++
}

// EmitBool emits a triple with an xsd:boolean literal object.
func (e *NTriplesEmitter) EmitBool(subject, predicate string, value bool) {
	e.EmitTypedLiteral(subject, predicate, fmt.Sprintf("%t", value), standard.XSDBoolean)
}

// EmitInt emits a triple with an xsd:integer literal object.
func (e *NTriplesEmitter) EmitInt(subject, predicate string, value int64) {
	e.EmitTypedLiteral(subject, predicate, fmt.Sprintf("%d", value), standard.XSDInteger)
}

// AddPrefix renders the registration as a comment line for readability.
// N-Triples has no native prefix mechanism, so this does not count as a
// triple.
func (e *NTriplesEmitter) AddPrefix(prefix, namespace string) {
	fmt.Fprintf(e.w, "# @prefix %s: <%s> .\n", prefix, namespace)
}

// Flush writes buffered output to the underlying writer.
func (e *NTriplesEmitter) Flush() error {
	return e.w.Flush()
}

// TripleCount returns the number of triples emitted so far.
func (e *NTriplesEmitter) TripleCount() uint64 {
	return e.count
}
