// Package iri mints deterministic, globally unique IRIs for type-graph
// entities. Equal inputs always produce equal IRIs, so the minter doubles
// as the identity scheme for deduplication during extraction.
package iri

import (
	"fmt"
	"strings"
)

// unreserved reports whether b passes through an IRI path segment unescaped.
// Alphanumerics plus -, _, ., ~ are kept per RFC 3987. Controls, space and
// the reserved delimiters are percent-encoded; backslash is not in the
// encode set, so it passes through. Bytes above 0x7F are part of multi-byte
// UTF-8 sequences and pass through.
func unreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.' || b == '~' || b == '\\':
		return true
	case b >= 0x80:
		return true
	}
	return false
}

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes a string for use as an IRI path segment.
func Escape(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		b := value[i]
		if unreserved(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0xF])
	}
	return sb.String()
}

// Minter generates IRIs for Rust symbols under a configured base address.
type Minter struct {
	base string
}

// NewMinter creates a Minter. Trailing slashes on base are stripped so
// minted IRIs never contain doubled separators.
func NewMinter(base string) *Minter {
	return &Minter{base: strings.TrimRight(base, "/")}
}

// Base returns the configured base address without trailing slash.
func (m *Minter) Base() string {
	return m.base
}

// Crate mints the IRI for a crate (tg:Assembly / rt:Crate).
func (m *Minter) Crate(name, version string) string {
	return fmt.Sprintf("%s/crate/%s/%s", m.base, Escape(name), Escape(version))
}

// Module mints the IRI for a module by its :: dotted path.
func (m *Minter) Module(crateName, version, modulePath string) string {
	return fmt.Sprintf("%s/module/%s/%s/%s", m.base, Escape(crateName), Escape(version), Escape(modulePath))
}

// Type mints the IRI for a named type (struct, enum, trait, union, alias).
func (m *Minter) Type(crateName, version, fullPath string) string {
	return fmt.Sprintf("%s/type/%s/%s/%s", m.base, Escape(crateName), Escape(version), Escape(fullPath))
}

// Member mints the IRI for a member (method, field, constant, associated
// item) of an owner. The signature disambiguator is appended only when
// non-empty.
func (m *Minter) Member(ownerIRI, name, signature string) string {
	if signature == "" {
		return fmt.Sprintf("%s/member/%s", ownerIRI, Escape(name))
	}
	return fmt.Sprintf("%s/member/%s(%s)", ownerIRI, Escape(name), Escape(signature))
}

// Parameter mints the IRI for a function parameter by ordinal.
func (m *Minter) Parameter(methodIRI string, ordinal int) string {
	return fmt.Sprintf("%s/param/%d", methodIRI, ordinal)
}

// TypeParameter mints the IRI for a generic parameter by ordinal.
func (m *Minter) TypeParameter(ownerIRI string, ordinal int) string {
	return fmt.Sprintf("%s/typeparam/%d", ownerIRI, ordinal)
}

// Variant mints the IRI for an enum variant.
func (m *Minter) Variant(enumIRI, name string) string {
	return fmt.Sprintf("%s/variant/%s", enumIRI, Escape(name))
}

// Impl mints the IRI for an impl block. The impl's item ID from the source
// document serves as the stable per-impl token.
func (m *Minter) Impl(crateName, version, implID string) string {
	return fmt.Sprintf("%s/impl/%s/%s/%s", m.base, Escape(crateName), Escape(version), Escape(implID))
}

// Lifetime mints the IRI for a lifetime parameter, stripping the leading
// apostrophe from the name.
func (m *Minter) Lifetime(ownerIRI, name string) string {
	clean := strings.TrimPrefix(name, "'")
	return fmt.Sprintf("%s/lifetime/%s", ownerIRI, Escape(clean))
}

// Primitive mints the IRI for a primitive type.
func (m *Minter) Primitive(name string) string {
	return fmt.Sprintf("%s/type/_primitive_/%s", m.base, Escape(name))
}

// Tuple mints the IRI for a tuple type by arity.
func (m *Minter) Tuple(arity int) string {
	return fmt.Sprintf("%s/type/_tuple_/%d", m.base, arity)
}

// Slice mints the IRI for a slice type by element display name.
func (m *Minter) Slice(elementName string) string {
	return fmt.Sprintf("%s/type/_slice_/%s", m.base, Escape(elementName))
}

// Array mints the IRI for an array type by element display name and length.
func (m *Minter) Array(elementName, length string) string {
	return fmt.Sprintf("%s/type/_array_/%s/%s", m.base, Escape(elementName), Escape(length))
}

// Ref mints the IRI for a borrowed reference type.
func (m *Minter) Ref(targetName string, mutable bool) string {
	kind := "ref"
	if mutable {
		kind = "mut"
	}
	return fmt.Sprintf("%s/type/_%s_/%s", m.base, kind, Escape(targetName))
}

// RawPointer mints the IRI for a raw pointer type.
func (m *Minter) RawPointer(targetName string, mutable bool) string {
	kind := "const"
	if mutable {
		kind = "mut"
	}
	return fmt.Sprintf("%s/type/_ptr_%s_/%s", m.base, kind, Escape(targetName))
}
