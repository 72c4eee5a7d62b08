package rustdoc

import (
	"encoding/json"
	"fmt"
)

// TypeKind enumerates the type expression variants extraction recognizes.
type TypeKind string

const (
	TypeResolvedPath    TypeKind = "resolved_path"
	TypePrimitive       TypeKind = "primitive"
	TypeGeneric         TypeKind = "generic"
	TypeTuple           TypeKind = "tuple"
	TypeSlice           TypeKind = "slice"
	TypeArray           TypeKind = "array"
	TypeRawPointer      TypeKind = "raw_pointer"
	TypeBorrowedRef     TypeKind = "borrowed_ref"
	TypeFunctionPointer TypeKind = "function_pointer"
	TypeQualifiedPath   TypeKind = "qualified_path"
	TypeImplTrait       TypeKind = "impl_trait"
	TypeDynTrait        TypeKind = "dyn_trait"
	TypeInfer           TypeKind = "infer"
	TypeUnknown         TypeKind = "unknown"
)

// Type is a type expression. Rustdoc serializes these as an externally
// tagged union, with payload-free variants as bare strings; the fields
// used by a given Kind are set and the rest stay zero.
type Type struct {
	Kind TypeKind

	// Path is the resolved path for TypeResolvedPath, and the first trait
	// path for TypeDynTrait.
	Path *ResolvedPath

	// Primitive is the primitive name for TypePrimitive.
	Primitive string

	// Generic is the type parameter name for TypeGeneric.
	Generic string

	// Elements are the member types of a TypeTuple.
	Elements []Type

	// Elem is the element or pointee type for slices, arrays, references
	// and raw pointers, and the self type for qualified paths.
	Elem *Type

	// Len is the textual array length for TypeArray.
	Len string

	// Mutable is set for mutable references and raw pointers.
	Mutable bool

	// Lifetime is the reference lifetime for TypeBorrowedRef, if any.
	Lifetime string

	// UnknownTag records the tag of an unrecognized variant.
	UnknownTag string
}

// UnmarshalJSON decodes both wire shapes: a bare string for payload-free
// variants and a one-key object for the rest. Unrecognized tags degrade
// to TypeUnknown.
func (t *Type) UnmarshalJSON(data []byte) error {
	t.Kind = TypeUnknown
	if len(data) == 0 {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal type: %w", err)
		}
		if s == "infer" {
			t.Kind = TypeInfer
		} else {
			t.UnknownTag = s
		}
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal type: %w", err)
	}

	for tag, raw := range tagged {
		switch tag {
		case "resolved_path":
			t.Kind = TypeResolvedPath
			t.Path = &ResolvedPath{}
			return decodeVariant(tag, raw, t.Path)
		case "primitive":
			t.Kind = TypePrimitive
			return decodeVariant(tag, raw, &t.Primitive)
		case "generic":
			t.Kind = TypeGeneric
			return decodeVariant(tag, raw, &t.Generic)
		case "tuple":
			t.Kind = TypeTuple
			return decodeVariant(tag, raw, &t.Elements)
		case "slice":
			t.Kind = TypeSlice
			t.Elem = &Type{}
			return decodeVariant(tag, raw, t.Elem)
		case "array":
			t.Kind = TypeArray
			var arr struct {
				Type Type   `json:"type"`
				Len  string `json:"len"`
			}
			if err := decodeVariant(tag, raw, &arr); err != nil {
				return err
			}
			t.Elem = &arr.Type
			t.Len = arr.Len
			return nil
		case "raw_pointer":
			t.Kind = TypeRawPointer
			var ptr struct {
				IsMutable bool `json:"is_mutable"`
				Type      Type `json:"type"`
			}
			if err := decodeVariant(tag, raw, &ptr); err != nil {
				return err
			}
			t.Mutable = ptr.IsMutable
			t.Elem = &ptr.Type
			return nil
		case "borrowed_ref":
			t.Kind = TypeBorrowedRef
			var ref struct {
				Lifetime  string `json:"lifetime"`
				IsMutable bool   `json:"is_mutable"`
				Type      Type   `json:"type"`
			}
			if err := decodeVariant(tag, raw, &ref); err != nil {
				return err
			}
			t.Lifetime = ref.Lifetime
			t.Mutable = ref.IsMutable
			t.Elem = &ref.Type
			return nil
		case "qualified_path":
			t.Kind = TypeQualifiedPath
			var qp struct {
				Name     string `json:"name"`
				SelfType *Type  `json:"self_type"`
			}
			if err := decodeVariant(tag, raw, &qp); err != nil {
				return err
			}
			t.Generic = qp.Name
			t.Elem = qp.SelfType
			return nil
		case "function_pointer":
			t.Kind = TypeFunctionPointer
			return nil
		case "impl_trait":
			t.Kind = TypeImplTrait
			return nil
		case "dyn_trait":
			t.Kind = TypeDynTrait
			var dyn struct {
				Traits []struct {
					Trait ResolvedPath `json:"trait"`
				} `json:"traits"`
			}
			if err := decodeVariant(tag, raw, &dyn); err != nil {
				return err
			}
			if len(dyn.Traits) > 0 {
				path := dyn.Traits[0].Trait
				t.Path = &path
			}
			return nil
		default:
			t.UnknownTag = tag
		}
	}
	return nil
}

// ResolvedPath is a reference to a named item by ID plus display path.
type ResolvedPath struct {
	// Path is the path text as written at the reference site. Older
	// format versions call this field "name".
	Path string

	// ID is the referenced item's ID.
	ID ID

	// Args are the generic arguments applied at the reference site.
	Args *GenericArgs
}

// UnmarshalJSON accepts both the "path" and the legacy "name" field.
func (p *ResolvedPath) UnmarshalJSON(data []byte) error {
	var wire struct {
		Path string       `json:"path"`
		Name string       `json:"name"`
		ID   ID           `json:"id"`
		Args *GenericArgs `json:"args"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal path: %w", err)
	}
	p.Path = wire.Path
	if p.Path == "" {
		p.Path = wire.Name
	}
	p.ID = wire.ID
	p.Args = wire.Args
	return nil
}

// GenericArgs carries angle-bracketed generic arguments. Parenthesized
// (Fn-sugar) argument lists are ignored.
type GenericArgs struct {
	Args []GenericArg
}

// UnmarshalJSON decodes `{ "angle_bracketed": { "args": [...] } }`.
func (g *GenericArgs) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal generic args: %w", err)
	}
	if raw, ok := tagged["angle_bracketed"]; ok {
		var angle struct {
			Args []GenericArg `json:"args"`
		}
		if err := decodeVariant("angle_bracketed", raw, &angle); err != nil {
			return err
		}
		g.Args = angle.Args
	}
	return nil
}

// TypeArgs returns the type-valued arguments in order, skipping lifetimes
// and const arguments.
func (g *GenericArgs) TypeArgs() []*Type {
	if g == nil {
		return nil
	}
	var out []*Type
	for i := range g.Args {
		if g.Args[i].Type != nil {
			out = append(out, g.Args[i].Type)
		}
	}
	return out
}

// GenericArg is a single generic argument: a lifetime, a type, or a const
// expression. Const arguments and unrecognized tags leave all fields zero.
type GenericArg struct {
	Lifetime string
	Type     *Type
}

// UnmarshalJSON decodes the externally tagged argument.
func (a *GenericArg) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		// Payload-free argument such as "infer".
		return nil
	}
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal generic arg: %w", err)
	}
	if raw, ok := tagged["lifetime"]; ok {
		return decodeVariant("lifetime", raw, &a.Lifetime)
	}
	if raw, ok := tagged["type"]; ok {
		a.Type = &Type{}
		return decodeVariant("type", raw, a.Type)
	}
	return nil
}

// Generics is the generic parameter block of a declaration.
type Generics struct {
	Params []GenericParamDef `json:"params"`
}

// GenericParamDef is one declared generic parameter.
type GenericParamDef struct {
	Name string              `json:"name"`
	Kind GenericParamDefKind `json:"kind"`
}

// GenericParamDefKind tags a generic parameter as a lifetime, type, or
// const parameter. Exactly one variant pointer is set.
type GenericParamDefKind struct {
	Lifetime *LifetimeParam
	Type     *TypeParam
	Const    *ConstParam
}

// UnmarshalJSON decodes the externally tagged kind.
func (k *GenericParamDefKind) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal generic param kind: %w", err)
	}
	if raw, ok := tagged["lifetime"]; ok {
		k.Lifetime = &LifetimeParam{}
		return decodeVariant("lifetime", raw, k.Lifetime)
	}
	if raw, ok := tagged["type"]; ok {
		k.Type = &TypeParam{}
		return decodeVariant("type", raw, k.Type)
	}
	if raw, ok := tagged["const"]; ok {
		k.Const = &ConstParam{}
		return decodeVariant("const", raw, k.Const)
	}
	return nil
}

// LifetimeParam is a declared lifetime parameter.
type LifetimeParam struct {
	Outlives []string `json:"outlives"`
}

// TypeParam is a declared type parameter.
type TypeParam struct {
	Bounds  []GenericBound `json:"bounds"`
	Default *Type          `json:"default"`
}

// ConstParam is a declared const parameter.
type ConstParam struct {
	Type    Type   `json:"type"`
	Default string `json:"default"`
}

// GenericBound is a bound on a generic parameter: a trait bound or a
// lifetime (outlives) bound.
type GenericBound struct {
	TraitBound *TraitBound
	Outlives   string
}

// UnmarshalJSON decodes the externally tagged bound.
func (b *GenericBound) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal generic bound: %w", err)
	}
	if raw, ok := tagged["trait_bound"]; ok {
		b.TraitBound = &TraitBound{}
		return decodeVariant("trait_bound", raw, b.TraitBound)
	}
	if raw, ok := tagged["outlives"]; ok {
		return decodeVariant("outlives", raw, &b.Outlives)
	}
	return nil
}

// TraitBound names the trait a bound requires.
type TraitBound struct {
	Trait ResolvedPath `json:"trait"`
}

// FunctionSignature is a function's parameter and return types.
type FunctionSignature struct {
	Inputs      []FunctionParam `json:"inputs"`
	Output      *Type           `json:"output"`
	IsCVariadic bool            `json:"is_c_variadic"`
}

// FunctionParam is a named parameter. Rustdoc serializes parameters as
// two-element arrays of name and type.
type FunctionParam struct {
	Name string
	Type Type
}

// UnmarshalJSON decodes the `[name, type]` pair.
func (p *FunctionParam) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("unmarshal function param: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("unmarshal function param: want 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &p.Name); err != nil {
		return fmt.Errorf("unmarshal function param name: %w", err)
	}
	if err := json.Unmarshal(pair[1], &p.Type); err != nil {
		return fmt.Errorf("unmarshal function param type: %w", err)
	}
	return nil
}

// FunctionHeader carries function qualifiers.
type FunctionHeader struct {
	IsConst  bool `json:"is_const"`
	IsAsync  bool `json:"is_async"`
	IsUnsafe bool `json:"is_unsafe"`
}
