package emit

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/c360studio/crategraph/vocabulary/standard"
)

// TurtleEmitter streams triples in Turtle format with prefix compaction.
//
// Registered prefixes are written as a sorted @prefix block immediately
// before the first triple; registrations after that point only affect
// compaction of later statements.
type TurtleEmitter struct {
	w               *bufio.Writer
	count           uint64
	prefixes        map[string]string
	prefixesWritten bool
}

// NewTurtleEmitter creates a Turtle sink writing to w.
func NewTurtleEmitter(w io.Writer) *TurtleEmitter {
	return &TurtleEmitter{
		w:        bufio.NewWriter(w),
		prefixes: make(map[string]string),
	}
}

// writePrefixes writes all registered prefixes once, sorted by prefix name
// for deterministic output, followed by a blank line.
func (e *TurtleEmitter) writePrefixes() {
	if e.prefixesWritten {
		return
	}
	e.prefixesWritten = true

	names := make([]string, 0, len(e.prefixes))
	for name := range e.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(e.w, "@prefix %s: <%s> .\n", name, e.prefixes[name])
	}
	if len(names) > 0 {
		fmt.Fprintln(e.w)
	}
}

// compact rewrites an IRI as prefix:localname using the longest registered
// namespace that is a prefix of it. Compaction only applies when the
// remaining local name is non-empty and consists of letters, digits and
// underscores; otherwise the IRI is emitted in full bracketed form.
func (e *TurtleEmitter) compact(iri string) string {
	var bestPrefix, bestNS string
	for prefix, ns := range e.prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			bestPrefix, bestNS = prefix, ns
		}
	}
	if bestNS != "" {
		local := iri[len(bestNS):]
		if local != "" && isLocalName(local) {
			return bestPrefix + ":" + local
		}
	}
	return "<" + iri + ">"
}

func isLocalName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// escapeTurtle escapes a literal for a quoted Turtle string.
func escapeTurtle(s string) string {
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
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// EmitIRI emits a triple whose object is an IRI.
func (e *TurtleEmitter) EmitIRI(subject, predicate, object string) {
	e.writePrefixes()
	fmt.Fprintf(e.w, "%s %s %s .\n", e.compact(subject), e.compact(predicate), e.compact(object))
	e.count++
}

// EmitLiteral emits a triple with a plain string literal object.
func (e *TurtleEmitter) EmitLiteral(subject, predicate, value string) {
	e.writePrefixes()
	fmt.Fprintf(e.w, "%s %s \"%s\" .\n", e.compact(subject), e.compact(predicate), escapeTurtle(value))
	e.count++
}

// EmitTypedLiteral emits a triple with a datatyped literal object.
func (e *TurtleEmitter) EmitTypedLiteral(subject, predicate, value, datatype string) {
	e.writePrefixes()
	fmt.Fprintf(e.w, "%s %s \"%s\"^^%s .\n",
		e.compact(subject), e.compact(predicate), escapeTurtle(value), e.compact(datatype))
	e.count++
}

// EmitBool emits a triple with an xsd:boolean literal object.
func (e *TurtleEmitter) EmitBool(subject, predicate string, value bool) {
	e.EmitTypedLiteral(subject, predicate, fmt.Sprintf("%t", value), standard.XSDBoolean)
}

// EmitInt emits a triple with an xsd:integer literal object.
func (e *TurtleEmitter) EmitInt(subject, predicate string, value int64) {
	e.EmitTypedLiteral(subject, predicate, fmt.Sprintf("%d", value), standard.XSDInteger)
}

// AddPrefix registers a namespace prefix for compaction and the @prefix
// block.
func (e *TurtleEmitter) AddPrefix(prefix, namespace string) {
	e.prefixes[prefix] = namespace
}

// Flush writes buffered output to the underlying writer.
func (e *TurtleEmitter) Flush() error {
	return e.w.Flush()
}

// TripleCount returns the number of triples emitted so far.
func (e *TurtleEmitter) TripleCount() uint64 {
	return e.count
}
