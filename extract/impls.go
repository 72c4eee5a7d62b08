package extract

import (
	"sort"

	"github.com/c360studio/crategraph/rustdoc"
	"github.com/c360studio/crategraph/vocabulary/rust"
	"github.com/c360studio/crategraph/vocabulary/standard"
	"github.com/c360studio/crategraph/vocabulary/typegraph"
)

// processAllImpls runs the impl block pass over the whole index. Impls are
// processed after the module walk so that target types are already known,
// which lets the pass skip impls on foreign types. IDs are sorted for
// stable output since Go map iteration order is randomized.
func (e *Extractor) processAllImpls() {
	var implIDs []string
	for id, item := range e.crate.Index {
		if item.Inner.Impl != nil {
			implIDs = append(implIDs, id)
		}
	}
	sort.Strings(implIDs)

	for _, implID := range implIDs {
		e.processImpl(implID)
	}
}

func (e *Extractor) processImpl(implID string) {
	item, ok := e.crate.Index[implID]
	if !ok {
		return
	}
	impl := item.Inner.Impl

	// Synthetic impls (auto traits like Send/Sync) and blanket impls
	// carry no declared structure worth a node.
	if impl.IsSynthetic || impl.BlanketImpl != nil {
		return
	}

	forIRI, ok := e.resolveType(&impl.For)
	if !ok {
		return
	}

	// Only impls for types defined in this crate.
	if _, local := e.emittedTypes[forIRI]; !local {
		return
	}

	implIRI := e.iris.Impl(e.name, e.version, implID)

	if impl.Trait != nil {
		traitIRI := e.resolvePath(impl.Trait)
		e.sink.EmitIRI(implIRI, standard.RDFType, rust.ClassTraitImpl)
		e.sink.EmitIRI(implIRI, rust.PropImplFor, forIRI)
		e.sink.EmitIRI(implIRI, rust.PropImplTrait, traitIRI)
		e.sink.EmitIRI(forIRI, typegraph.PropImplements, traitIRI)
		e.ensureTypeStub(traitIRI, impl.Trait.Path)
	} else {
		e.sink.EmitIRI(implIRI, standard.RDFType, rust.ClassInherentImpl)
		e.sink.EmitIRI(implIRI, rust.PropImplFor, forIRI)
	}

	// Inherent impl methods belong to the type directly; trait impl
	// methods belong to the impl node.
	ownerIRI := implIRI
	if impl.Trait == nil {
		ownerIRI = forIRI
	}
	for _, memberID := range impl.Items {
		e.extractImplItem(memberID.String(), ownerIRI)
	}
}

func (e *Extractor) extractImplItem(itemID, ownerIRI string) {
	item, ok := e.crate.Index[itemID]
	if !ok {
		return
	}

	switch inner := &item.Inner; {
	case inner.Function != nil:
		e.extractTypeMethod(itemID, ownerIRI)
	case inner.AssocType != nil, inner.AssocConst != nil:
		if item.Name == "" {
			return
		}
		memberIRI := e.iris.Member(ownerIRI, item.Name, "")
		e.sink.EmitIRI(memberIRI, standard.RDFType, typegraph.ClassMember)
		e.sink.EmitLiteral(memberIRI, typegraph.PropName, item.Name)
		e.sink.EmitIRI(ownerIRI, typegraph.PropHasMember, memberIRI)
	}
}

// extractDerivesFor records a derive literal for each automatically
// derived trait impl attached to a struct or enum.
func (e *Extractor) extractDerivesFor(itemID, typeIRI string) {
	item, ok := e.crate.Index[itemID]
	if !ok {
		return
	}

	var implIDs []rustdoc.ID
	switch inner := &item.Inner; {
	case inner.Struct != nil:
		implIDs = inner.Struct.Impls
	case inner.Enum != nil:
		implIDs = inner.Enum.Impls
	default:
		return
	}

	for _, implID := range implIDs {
		implItem, ok := e.crate.Index[implID.String()]
		if !ok || !implItem.HasAttr("automatically_derived") {
			continue
		}
		if impl := implItem.Inner.Impl; impl != nil && impl.Trait != nil {
			e.sink.EmitLiteral(typeIRI, rust.PropDerives, impl.Trait.Path)
		}
	}
}
