package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ntOutput(t *testing.T, emitFn func(*NTriplesEmitter)) string {
	t.Helper()
	var buf bytes.Buffer
	em := NewNTriplesEmitter(&buf)
	emitFn(em)
	require.NoError(t, em.Flush())
	return buf.String()
}

func TestNTriplesIRITriple(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitIRI("http://example.org/s", "http://example.org/p", "http://example.org/o")
	})
	assert.Equal(t, "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n", out)
}

func TestNTriplesLiteralTriple(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitLiteral("http://example.org/s", "http://example.org/name", "hello world")
	})
	assert.Equal(t, "<http://example.org/s> <http://example.org/name> \"hello world\" .\n", out)
}

func TestNTriplesTypedLiteral(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitTypedLiteral("http://example.org/s", "http://example.org/p",
			"42", "http://www.w3.org/2001/XMLSchema#integer")
	})
	assert.Equal(t,
		"<http://example.org/s> <http://example.org/p> \"42\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n",
		out)
}

func TestNTriplesBoolAndInt(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitBool("http://example.org/s", "http://example.org/flag", true)
		em.EmitBool("http://example.org/s", "http://example.org/flag", false)
		em.EmitInt("http://example.org/s", "http://example.org/count", -7)
	})
	assert.Contains(t, out, "\"true\"^^<http://www.w3.org/2001/XMLSchema#boolean>")
	assert.Contains(t, out, "\"false\"^^<http://www.w3.org/2001/XMLSchema#boolean>")
	assert.Contains(t, out, "\"-7\"^^<http://www.w3.org/2001/XMLSchema#integer>")
}

func TestNTriplesEscapesSpecialChars(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitLiteral("http://example.org/s", "http://example.org/p",
			"line1\nline2\ttab\\slash\"quote")
	})
	assert.Contains(t, out, `\n`)
	assert.Contains(t, out, `\t`)
	assert.Contains(t, out, `\\`)
	assert.Contains(t, out, `\"`)
}

func TestNTriplesEscapesControlChars(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitLiteral("http://example.org/s", "http://example.org/p", "a\x01b")
	})
	assert.Contains(t, out, `\u0001`)
	assert.NotContains(t, out, "\x01")
}

func TestNTriplesUnicodePassthrough(t *testing.T) {
	out := ntOutput(t, func(em *NTriplesEmitter) {
		em.EmitLiteral("http://example.org/s", "http://example.org/p", "café")
	})
	assert.Contains(t, out, "café")
}

func TestNTriplesPrefixAsComment(t *testing.T) {
	var buf bytes.Buffer
	em := NewNTriplesEmitter(&buf)
	em.AddPrefix("ex", "http://example.org/")
	require.NoError(t, em.Flush())

	assert.Equal(t, "# @prefix ex: <http://example.org/> .\n", buf.String())
	assert.Equal(t, uint64(0), em.TripleCount())
}

func TestNTriplesTripleCount(t *testing.T) {
	var buf bytes.Buffer
	em := NewNTriplesEmitter(&buf)

	assert.Equal(t, uint64(0), em.TripleCount())
	em.EmitIRI("http://example.org/s", "http://example.org/p", "http://example.org/o")
	assert.Equal(t, uint64(1), em.TripleCount())
	em.EmitLiteral("http://example.org/s", "http://example.org/p", "val")
	em.EmitBool("http://example.org/s", "http://example.org/p", true)
	em.EmitInt("http://example.org/s", "http://example.org/p", 10)
	assert.Equal(t, uint64(4), em.TripleCount())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"ntriples", FormatNTriples, false},
		{"nt", FormatNTriples, false},
		{"N-Triples", FormatNTriples, false},
		{"turtle", FormatTurtle, false},
		{"ttl", FormatTurtle, false},
		{" Turtle ", FormatTurtle, false},
		{"rdfxml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSink(t *testing.T) {
	var buf bytes.Buffer

	nt, err := NewSink(FormatNTriples, &buf)
	require.NoError(t, err)
	assert.IsType(t, &NTriplesEmitter{}, nt)

	ttl, err := NewSink(FormatTurtle, &buf)
	require.NoError(t, err)
	assert.IsType(t, &TurtleEmitter{}, ttl)

	_, err = NewSink(Format("bogus"), &buf)
	assert.Error(t, err)
}
