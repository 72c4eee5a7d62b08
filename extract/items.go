package extract

import (
	"strings"

	"github.com/c360studio/crategraph/rustdoc"
	"github.com/c360studio/crategraph/vocabulary/rust"
	"github.com/c360studio/crategraph/vocabulary/standard"
	"github.com/c360studio/crategraph/vocabulary/typegraph"
)

func (e *Extractor) extractStruct(itemID string, item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}
	fullPath := modulePath + "::" + item.Name
	typeIRI := e.iris.Type(e.name, e.version, fullPath)
	if !e.markType(typeIRI) {
		return
	}

	e.sink.EmitIRI(typeIRI, standard.RDFType, typegraph.ClassStruct)
	e.emitTypeHeader(typeIRI, item.Name, fullPath, modulePath, item)

	s := item.Inner.Struct
	if hasTypeParams(s.Generics) {
		e.sink.EmitBool(typeIRI, typegraph.PropIsGeneric, true)
	}
	e.extractGenerics(s.Generics, typeIRI)

	switch s.Kind.Kind {
	case rustdoc.StructPlain:
		for _, fieldID := range s.Kind.Fields {
			e.extractField(fieldID.String(), typeIRI)
		}
	case rustdoc.StructTuple:
		for _, fieldID := range s.Kind.TupleFields {
			if fieldID != nil {
				e.extractField(fieldID.String(), typeIRI)
			}
		}
	}

	if e.opts.ExtractDerives {
		e.extractDerivesFor(itemID, typeIRI)
	}
}

func (e *Extractor) extractEnum(itemID string, item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}
	fullPath := modulePath + "::" + item.Name
	typeIRI := e.iris.Type(e.name, e.version, fullPath)
	if !e.markType(typeIRI) {
		return
	}

	e.sink.EmitIRI(typeIRI, standard.RDFType, typegraph.ClassEnum)
	e.emitTypeHeader(typeIRI, item.Name, fullPath, modulePath, item)

	enum := item.Inner.Enum
	if hasTypeParams(enum.Generics) {
		e.sink.EmitBool(typeIRI, typegraph.PropIsGeneric, true)
	}
	e.extractGenerics(enum.Generics, typeIRI)

	for _, variantID := range enum.Variants {
		e.extractVariant(variantID.String(), typeIRI)
	}

	if e.opts.ExtractDerives {
		e.extractDerivesFor(itemID, typeIRI)
	}
}

func (e *Extractor) extractVariant(variantID, enumIRI string) {
	item, ok := e.crate.Index[variantID]
	if !ok || item.Name == "" {
		return
	}

	variantIRI := e.iris.Variant(enumIRI, item.Name)
	e.sink.EmitIRI(variantIRI, standard.RDFType, rust.ClassEnumVariant)
	e.sink.EmitLiteral(variantIRI, typegraph.PropName, item.Name)
	e.sink.EmitIRI(enumIRI, rust.PropHasVariant, variantIRI)

	variant := item.Inner.Variant
	if variant == nil {
		return
	}
	switch variant.Kind.Kind {
	case rustdoc.VariantPlain:
		e.sink.EmitLiteral(variantIRI, rust.PropVariantKind, "plain")
	case rustdoc.VariantTuple:
		e.sink.EmitLiteral(variantIRI, rust.PropVariantKind, "tuple")
		for _, fieldID := range variant.Kind.TupleFields {
			if fieldID != nil {
				e.extractVariantField(fieldID.String(), variantIRI)
			}
		}
	case rustdoc.VariantStruct:
		e.sink.EmitLiteral(variantIRI, rust.PropVariantKind, "struct")
		for _, fieldID := range variant.Kind.Fields {
			e.extractVariantField(fieldID.String(), variantIRI)
		}
	}
}

// extractVariantField is a lighter form of extractField: variant payload
// fields hang off the variant with a dedicated edge and carry no
// accessibility.
func (e *Extractor) extractVariantField(fieldID, variantIRI string) {
	item, ok := e.crate.Index[fieldID]
	if !ok || item.Inner.StructField == nil {
		return
	}

	name := item.Name
	if name == "" {
		name = "unnamed"
	}

	fieldIRI := e.iris.Member(variantIRI, name, "")
	e.sink.EmitIRI(fieldIRI, standard.RDFType, typegraph.ClassField)
	e.sink.EmitLiteral(fieldIRI, typegraph.PropName, name)
	e.sink.EmitIRI(variantIRI, rust.PropVariantField, fieldIRI)

	if typeIRI, ok := e.resolveType(item.Inner.StructField); ok {
		e.sink.EmitIRI(fieldIRI, typegraph.PropFieldType, typeIRI)
	}
}

func (e *Extractor) extractTrait(item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}
	fullPath := modulePath + "::" + item.Name
	typeIRI := e.iris.Type(e.name, e.version, fullPath)
	if !e.markType(typeIRI) {
		return
	}

	e.sink.EmitIRI(typeIRI, standard.RDFType, typegraph.ClassInterface)
	e.sink.EmitIRI(typeIRI, standard.RDFType, rust.ClassTrait)
	e.emitTypeHeader(typeIRI, item.Name, fullPath, modulePath, item)

	trait := item.Inner.Trait
	if trait.IsUnsafe {
		e.sink.EmitBool(typeIRI, rust.PropIsUnsafe, true)
	}
	if hasTypeParams(trait.Generics) {
		e.sink.EmitBool(typeIRI, typegraph.PropIsGeneric, true)
	}
	e.extractGenerics(trait.Generics, typeIRI)

	for i := range trait.Bounds {
		bound := trait.Bounds[i].TraitBound
		if bound == nil {
			continue
		}
		supertraitIRI := e.resolvePath(&bound.Trait)
		e.sink.EmitIRI(typeIRI, rust.PropSuperTrait, supertraitIRI)
		e.ensureTypeStub(supertraitIRI, bound.Trait.Path)
	}

	for _, methodID := range trait.Items {
		e.extractTypeMethod(methodID.String(), typeIRI)
	}
}

func (e *Extractor) extractModuleFunction(item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}

	fullPath := modulePath + "::" + item.Name
	moduleIRI := e.iris.Module(e.name, e.version, modulePath)
	fnIRI := e.iris.Member(moduleIRI, item.Name, "")

	e.sink.EmitIRI(fnIRI, standard.RDFType, typegraph.ClassMethod)
	e.sink.EmitLiteral(fnIRI, typegraph.PropName, item.Name)
	e.sink.EmitLiteral(fnIRI, typegraph.PropFullName, fullPath)
	e.sink.EmitIRI(moduleIRI, typegraph.PropHasMember, fnIRI)
	e.sink.EmitIRI(fnIRI, typegraph.PropMemberOf, moduleIRI)
	e.sink.EmitLiteral(fnIRI, typegraph.PropAccessibility, accessibility(item.Visibility))

	fn := item.Inner.Function
	e.extractFunctionDetails(fnIRI, fn)
	if e.opts.ExtractErrorTypes {
		e.extractErrorType(fnIRI, &fn.Sig)
	}
}

// extractTypeMethod handles members owned by a trait, an impl node, or a
// type (inherent impl methods attach to the type directly). Named trait
// items that are not functions, such as associated consts and types, still
// get the member statements; only the signature details need a function
// payload.
func (e *Extractor) extractTypeMethod(methodID, ownerIRI string) {
	item, ok := e.crate.Index[methodID]
	if !ok || item.Name == "" {
		return
	}

	methodIRI := e.iris.Member(ownerIRI, item.Name, "")

	e.sink.EmitIRI(methodIRI, standard.RDFType, typegraph.ClassMethod)
	e.sink.EmitLiteral(methodIRI, typegraph.PropName, item.Name)
	e.sink.EmitIRI(ownerIRI, typegraph.PropHasMember, methodIRI)
	e.sink.EmitIRI(methodIRI, typegraph.PropMemberOf, ownerIRI)
	e.sink.EmitLiteral(methodIRI, typegraph.PropAccessibility, accessibility(item.Visibility))

	fn := item.Inner.Function
	if fn == nil {
		return
	}
	e.extractFunctionDetails(methodIRI, fn)

	// A trait method without a body is required rather than provided.
	if !fn.HasBody {
		e.sink.EmitBool(methodIRI, typegraph.PropIsAbstract, true)
	}

	if e.opts.ExtractErrorTypes {
		e.extractErrorType(methodIRI, &fn.Sig)
	}
}

func (e *Extractor) extractConstant(item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}

	moduleIRI := e.iris.Module(e.name, e.version, modulePath)
	constIRI := e.iris.Member(moduleIRI, item.Name, "")

	e.sink.EmitIRI(constIRI, standard.RDFType, typegraph.ClassField)
	e.sink.EmitIRI(constIRI, standard.RDFType, rust.ClassConstant)
	e.sink.EmitLiteral(constIRI, typegraph.PropName, item.Name)
	e.sink.EmitBool(constIRI, typegraph.PropIsConst, true)
	e.sink.EmitIRI(moduleIRI, typegraph.PropHasMember, constIRI)
	e.sink.EmitIRI(constIRI, typegraph.PropMemberOf, moduleIRI)
	e.sink.EmitLiteral(constIRI, typegraph.PropAccessibility, accessibility(item.Visibility))

	if typeIRI, ok := e.resolveType(&item.Inner.Constant.Type); ok {
		e.sink.EmitIRI(constIRI, typegraph.PropFieldType, typeIRI)
	}
}

func (e *Extractor) extractStatic(item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}

	moduleIRI := e.iris.Module(e.name, e.version, modulePath)
	staticIRI := e.iris.Member(moduleIRI, item.Name, "")

	e.sink.EmitIRI(staticIRI, standard.RDFType, rust.ClassStatic)
	e.sink.EmitLiteral(staticIRI, typegraph.PropName, item.Name)
	e.sink.EmitIRI(moduleIRI, typegraph.PropHasMember, staticIRI)
	e.sink.EmitIRI(staticIRI, typegraph.PropMemberOf, moduleIRI)
	e.sink.EmitLiteral(staticIRI, typegraph.PropAccessibility, accessibility(item.Visibility))

	st := item.Inner.Static
	if st.IsMutable {
		e.sink.EmitBool(staticIRI, rust.PropIsMutable, true)
	}
	if typeIRI, ok := e.resolveType(&st.Type); ok {
		e.sink.EmitIRI(staticIRI, typegraph.PropFieldType, typeIRI)
	}
}

func (e *Extractor) extractTypeAlias(item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}
	fullPath := modulePath + "::" + item.Name
	typeIRI := e.iris.Type(e.name, e.version, fullPath)
	if !e.markType(typeIRI) {
		return
	}

	e.sink.EmitIRI(typeIRI, standard.RDFType, rust.ClassTypeAlias)
	e.emitTypeHeader(typeIRI, item.Name, fullPath, modulePath, item)

	if target := item.Inner.TypeAlias.Type; target != nil {
		if targetIRI, ok := e.resolveType(target); ok {
			e.sink.EmitIRI(typeIRI, typegraph.PropRelatedTo, targetIRI)
		}
	}
}

func (e *Extractor) extractUnion(item *rustdoc.Item, modulePath string) {
	if item.Name == "" {
		return
	}
	fullPath := modulePath + "::" + item.Name
	typeIRI := e.iris.Type(e.name, e.version, fullPath)
	if !e.markType(typeIRI) {
		return
	}

	e.sink.EmitIRI(typeIRI, standard.RDFType, rust.ClassUnion)
	e.emitTypeHeader(typeIRI, item.Name, fullPath, modulePath, item)

	union := item.Inner.Union
	e.extractGenerics(union.Generics, typeIRI)
	for _, fieldID := range union.Fields {
		e.extractField(fieldID.String(), typeIRI)
	}
}

func (e *Extractor) extractField(fieldID, ownerIRI string) {
	item, ok := e.crate.Index[fieldID]
	if !ok || item.Inner.StructField == nil {
		return
	}

	name := item.Name
	if name == "" {
		name = "unnamed"
	}

	fieldIRI := e.iris.Member(ownerIRI, name, "")

	e.sink.EmitIRI(fieldIRI, standard.RDFType, typegraph.ClassField)
	e.sink.EmitLiteral(fieldIRI, typegraph.PropName, name)
	e.sink.EmitIRI(ownerIRI, typegraph.PropHasMember, fieldIRI)
	e.sink.EmitIRI(fieldIRI, typegraph.PropMemberOf, ownerIRI)
	e.sink.EmitLiteral(fieldIRI, typegraph.PropAccessibility, accessibility(item.Visibility))

	if typeIRI, ok := e.resolveType(item.Inner.StructField); ok {
		e.sink.EmitIRI(fieldIRI, typegraph.PropFieldType, typeIRI)
	}
}

// extractFunctionDetails emits header flags, generics, parameters and the
// return type for one function node.
func (e *Extractor) extractFunctionDetails(fnIRI string, fn *rustdoc.Function) {
	if fn.Header.IsUnsafe {
		e.sink.EmitBool(fnIRI, rust.PropIsUnsafe, true)
	}
	if fn.Header.IsAsync {
		e.sink.EmitBool(fnIRI, typegraph.PropIsAsync, true)
	}
	if fn.Header.IsConst {
		e.sink.EmitBool(fnIRI, typegraph.PropIsConst, true)
	}

	if hasTypeParams(fn.Generics) {
		e.sink.EmitBool(fnIRI, typegraph.PropIsGeneric, true)
	}
	e.extractGenerics(fn.Generics, fnIRI)

	for ordinal := range fn.Sig.Inputs {
		param := &fn.Sig.Inputs[ordinal]
		// Receivers do not get a separate parameter node.
		if param.Name == "self" {
			continue
		}

		paramIRI := e.iris.Parameter(fnIRI, ordinal)
		e.sink.EmitIRI(paramIRI, standard.RDFType, typegraph.ClassParameter)
		e.sink.EmitLiteral(paramIRI, typegraph.PropName, param.Name)
		e.sink.EmitInt(paramIRI, typegraph.PropOrdinal, int64(ordinal))
		e.sink.EmitIRI(fnIRI, typegraph.PropHasParameter, paramIRI)
		e.sink.EmitIRI(paramIRI, typegraph.PropParameterOf, fnIRI)

		if typeIRI, ok := e.resolveType(&param.Type); ok {
			e.sink.EmitIRI(paramIRI, typegraph.PropParameterType, typeIRI)
		}
	}

	if fn.Sig.Output != nil {
		if typeIRI, ok := e.resolveType(fn.Sig.Output); ok {
			e.sink.EmitIRI(fnIRI, typegraph.PropReturnType, typeIRI)
		}
	}
}

// extractGenerics emits one node per declared generic parameter, keyed by
// declaration ordinal so positions stay stable across re-runs.
func (e *Extractor) extractGenerics(generics rustdoc.Generics, ownerIRI string) {
	for ordinal := range generics.Params {
		param := &generics.Params[ordinal]
		switch kind := &param.Kind; {
		case kind.Type != nil:
			tpIRI := e.iris.TypeParameter(ownerIRI, ordinal)
			e.sink.EmitIRI(tpIRI, standard.RDFType, typegraph.ClassTypeParameter)
			e.sink.EmitLiteral(tpIRI, typegraph.PropName, param.Name)
			e.sink.EmitInt(tpIRI, typegraph.PropOrdinal, int64(ordinal))
			e.sink.EmitIRI(ownerIRI, typegraph.PropHasTypeParameter, tpIRI)
			e.sink.EmitIRI(tpIRI, typegraph.PropTypeParameterOf, ownerIRI)

			for i := range kind.Type.Bounds {
				bound := kind.Type.Bounds[i].TraitBound
				if bound == nil {
					continue
				}
				boundIRI := e.resolvePath(&bound.Trait)
				e.sink.EmitIRI(tpIRI, rust.PropTraitBound, boundIRI)
				e.ensureTypeStub(boundIRI, bound.Trait.Path)
			}
		case kind.Lifetime != nil:
			ltIRI := e.iris.Lifetime(ownerIRI, param.Name)
			e.sink.EmitIRI(ltIRI, standard.RDFType, rust.ClassLifetime)
			e.sink.EmitLiteral(ltIRI, typegraph.PropName, param.Name)
			e.sink.EmitIRI(ownerIRI, rust.PropHasLifetime, ltIRI)
		case kind.Const != nil:
			cpIRI := e.iris.TypeParameter(ownerIRI, ordinal)
			e.sink.EmitIRI(cpIRI, standard.RDFType, rust.ClassConstParam)
			e.sink.EmitLiteral(cpIRI, typegraph.PropName, param.Name)
			e.sink.EmitInt(cpIRI, typegraph.PropOrdinal, int64(ordinal))
			e.sink.EmitIRI(ownerIRI, typegraph.PropHasTypeParameter, cpIRI)

			if typeIRI, ok := e.resolveType(&kind.Const.Type); ok {
				e.sink.EmitIRI(cpIRI, typegraph.PropParameterType, typeIRI)
			}
		}
	}
}

// extractErrorType records the E of a Result<T, E> return type.
func (e *Extractor) extractErrorType(fnIRI string, sig *rustdoc.FunctionSignature) {
	out := sig.Output
	if out == nil || out.Kind != rustdoc.TypeResolvedPath || out.Path == nil {
		return
	}
	path := out.Path
	if path.Path != "Result" && !strings.HasSuffix(path.Path, "::Result") {
		return
	}

	if path.Args == nil || len(path.Args.Args) < 2 {
		return
	}
	errType := path.Args.Args[1].Type
	if errType == nil {
		return
	}
	if errIRI, ok := e.resolveType(errType); ok {
		e.sink.EmitIRI(fnIRI, rust.PropErrorType, errIRI)
	}
}

func hasTypeParams(generics rustdoc.Generics) bool {
	for i := range generics.Params {
		if generics.Params[i].Kind.Type != nil {
			return true
		}
	}
	return false
}
