package extract

import (
	"fmt"
	"strings"

	"github.com/c360studio/crategraph/rustdoc"
	"github.com/c360studio/crategraph/vocabulary/standard"
	"github.com/c360studio/crategraph/vocabulary/typegraph"
)

// resolveType maps a type expression to a node IRI. Type parameters and
// existential types have no node of their own and report false.
func (e *Extractor) resolveType(ty *rustdoc.Type) (string, bool) {
	switch ty.Kind {
	case rustdoc.TypeResolvedPath:
		return e.resolvePath(ty.Path), true
	case rustdoc.TypePrimitive:
		return e.iris.Primitive(ty.Primitive), true
	case rustdoc.TypeTuple:
		return e.iris.Tuple(len(ty.Elements)), true
	case rustdoc.TypeSlice:
		return e.iris.Slice(typeDisplayName(ty.Elem)), true
	case rustdoc.TypeArray:
		return e.iris.Array(typeDisplayName(ty.Elem), ty.Len), true
	case rustdoc.TypeRawPointer:
		return e.iris.RawPointer(typeDisplayName(ty.Elem), ty.Mutable), true
	case rustdoc.TypeBorrowedRef:
		return e.iris.Ref(typeDisplayName(ty.Elem), ty.Mutable), true
	default:
		// Generic parameters reference the owner's type parameter node
		// rather than a standalone type; impl/dyn traits, qualified
		// paths, function pointers and unknown kinds are skipped.
		return "", false
	}
}

// resolvePath maps a path reference to a type IRI using three tiers: the
// paths table (full dotted path, covers local and external items), the
// index (local item name), then the raw path text at the reference site.
func (e *Extractor) resolvePath(path *rustdoc.ResolvedPath) string {
	if path.ID != "" {
		if summary, ok := e.crate.Paths[path.ID.String()]; ok {
			fullPath := strings.Join(summary.Path, "::")
			return e.iris.Type(e.name, e.version, fullPath)
		}
		if item, ok := e.crate.Index[path.ID.String()]; ok && item.Name != "" {
			return e.iris.Type(e.name, e.version, item.Name)
		}
	}
	return e.iris.Type(e.name, e.version, path.Path)
}

// ensureTypeStub emits a minimal node for a referenced type that is not
// declared in this crate, so edges to it never dangle.
func (e *Extractor) ensureTypeStub(typeIRI, name string) {
	if !e.markType(typeIRI) {
		return
	}
	e.sink.EmitIRI(typeIRI, standard.RDFType, typegraph.ClassType)
	e.sink.EmitLiteral(typeIRI, typegraph.PropName, name)
}

// typeDisplayName renders a type expression as source-like text for use
// inside composite type IRIs.
func typeDisplayName(ty *rustdoc.Type) string {
	if ty == nil {
		return "unknown"
	}
	switch ty.Kind {
	case rustdoc.TypePrimitive:
		return ty.Primitive
	case rustdoc.TypeResolvedPath:
		return ty.Path.Path
	case rustdoc.TypeGeneric:
		return ty.Generic
	case rustdoc.TypeTuple:
		parts := make([]string, len(ty.Elements))
		for i := range ty.Elements {
			parts[i] = typeDisplayName(&ty.Elements[i])
		}
		return "(" + strings.Join(parts, ",") + ")"
	case rustdoc.TypeSlice:
		return "[" + typeDisplayName(ty.Elem) + "]"
	case rustdoc.TypeArray:
		return fmt.Sprintf("[%s;%s]", typeDisplayName(ty.Elem), ty.Len)
	case rustdoc.TypeBorrowedRef:
		if ty.Mutable {
			return "&mut " + typeDisplayName(ty.Elem)
		}
		return "&" + typeDisplayName(ty.Elem)
	case rustdoc.TypeRawPointer:
		if ty.Mutable {
			return "*mut " + typeDisplayName(ty.Elem)
		}
		return "*const " + typeDisplayName(ty.Elem)
	default:
		return "unknown"
	}
}
