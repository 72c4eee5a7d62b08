// Package rustdoc models the rustdoc JSON output format.
//
// The model is deliberately tolerant of schema drift across rustdoc format
// versions: every non-essential field has a zero-value default, unknown
// object fields are ignored, and every tagged union carries an unknown
// catch-all instead of failing on unrecognized tags. Only structurally
// broken documents (invalid JSON, missing root pointer) are rejected.
package rustdoc

import (
	"encoding/json"
	"fmt"
)

// Crate is the top-level rustdoc JSON document.
type Crate struct {
	// Root is the item ID of the root module.
	Root ID `json:"root"`

	// CrateVersion is the crate version, if rustdoc knew it.
	CrateVersion string `json:"crate_version"`

	// Index maps item IDs to locally defined items.
	Index map[string]Item `json:"index"`

	// Paths maps item IDs to path summaries, covering items (local and
	// external) that are referenced but not necessarily in Index.
	Paths map[string]ItemSummary `json:"paths"`

	// ExternalCrates lists referenced external crates by numeric key.
	ExternalCrates map[string]ExternalCrate `json:"external_crates"`

	// FormatVersion is the rustdoc JSON format version (informational).
	FormatVersion int `json:"format_version"`
}

// Validate checks the structural invariants that extraction depends on.
func (c *Crate) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("document has no root module pointer")
	}
	return nil
}

// RootName returns the crate name taken from the root module item, or
// "unknown" when the root item is missing or unnamed.
func (c *Crate) RootName() string {
	if item, ok := c.Index[c.Root.String()]; ok && item.Name != "" {
		return item.Name
	}
	return "unknown"
}

// Version returns the crate version, or the "0.0.0" placeholder when the
// document does not carry one.
func (c *Crate) Version() string {
	if c.CrateVersion != "" {
		return c.CrateVersion
	}
	return "0.0.0"
}

// ItemSummary is the dotted-path record for an item in Paths.
type ItemSummary struct {
	// Path is the item's path components (e.g. ["std", "io", "Error"]).
	Path []string `json:"path"`

	// Kind is the item kind tag (informational).
	Kind string `json:"kind"`
}

// ExternalCrate is a referenced external crate. Only the name is used;
// rustdoc JSON carries no version information for dependencies.
type ExternalCrate struct {
	Name        string `json:"name"`
	HTMLRootURL string `json:"html_root_url"`
}

// Item is a single declaration node in the item tree.
type Item struct {
	// ID is the item's own identifier, when present.
	ID ID `json:"id"`

	// Name is the declared name. Empty for impl blocks and some
	// synthesized items.
	Name string `json:"name"`

	// Visibility of the declaration.
	Visibility Visibility `json:"visibility"`

	// Attrs are the item's attributes. Depending on format version the
	// entries are strings or structured objects, so they stay raw.
	Attrs []json.RawMessage `json:"attrs"`

	// Docs is the documentation string (unused by extraction).
	Docs string `json:"docs"`

	// Span is the source location (unused by extraction).
	Span *Span `json:"span"`

	// Inner is the kind-specific payload.
	Inner Inner `json:"inner"`
}

// HasAttr reports whether the item carries the given string attribute.
func (i *Item) HasAttr(name string) bool {
	for _, raw := range i.Attrs {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s == name {
			return true
		}
	}
	return false
}

// Span is a source code location.
type Span struct {
	Filename string `json:"filename"`
	Begin    [2]int `json:"begin"`
	End      [2]int `json:"end"`
}

// VisibilityKind enumerates the visibility levels of a declaration.
type VisibilityKind string

const (
	// VisibilityPublic is `pub`.
	VisibilityPublic VisibilityKind = "public"

	// VisibilityDefault is the absence of a visibility qualifier.
	VisibilityDefault VisibilityKind = "default"

	// VisibilityCrate is `pub(crate)`.
	VisibilityCrate VisibilityKind = "crate"

	// VisibilityRestricted is `pub(in path)`.
	VisibilityRestricted VisibilityKind = "restricted"
)

// Visibility is the declared visibility of an item. Rustdoc serializes it
// either as a bare string or, for restricted visibility, as a one-key
// object carrying the restriction path.
type Visibility struct {
	Kind VisibilityKind

	// Path is the restriction path for VisibilityRestricted (e.g. "super").
	Path string
}

// UnmarshalJSON accepts both wire shapes. Unrecognized tags fall back to
// the default visibility rather than failing.
func (v *Visibility) UnmarshalJSON(data []byte) error {
	v.Kind = VisibilityDefault
	if len(data) == 0 {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal visibility: %w", err)
		}
		switch VisibilityKind(s) {
		case VisibilityPublic, VisibilityDefault, VisibilityCrate:
			v.Kind = VisibilityKind(s)
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("unmarshal visibility: %w", err)
	}
	if raw, ok := obj["restricted"]; ok {
		var restricted struct {
			Parent ID     `json:"parent"`
			Path   string `json:"path"`
		}
		if err := json.Unmarshal(raw, &restricted); err != nil {
			return fmt.Errorf("unmarshal restricted visibility: %w", err)
		}
		v.Kind = VisibilityRestricted
		v.Path = restricted.Path
	}
	return nil
}

// Inner is the kind-specific payload of an Item: exactly one variant
// pointer is set for recognized kinds. Unrecognized tags land in
// UnknownTag so future rustdoc constructs degrade to a skip instead of a
// parse failure.
type Inner struct {
	Module      *Module
	Struct      *Struct
	Union       *Union
	Enum        *Enum
	Variant     *Variant
	Function    *Function
	Trait       *Trait
	Impl        *Impl
	Use         *Use
	TypeAlias   *TypeAlias
	Constant    *Constant
	Static      *Static
	StructField *Type
	AssocConst  *AssocConst
	AssocType   *AssocType

	// UnknownTag records the tag of an unrecognized payload.
	UnknownTag string
}

// UnmarshalJSON decodes the externally tagged representation
// `{ "struct": { ... } }`.
func (in *Inner) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		// A non-object payload (newer unit-variant kinds serialize as
		// bare strings) degrades to unknown.
		var tag string
		if err := json.Unmarshal(data, &tag); err == nil {
			in.UnknownTag = tag
			return nil
		}
		return fmt.Errorf("unmarshal item payload: %w", err)
	}

	for tag, raw := range tagged {
		switch tag {
		case "module":
			in.Module = &Module{}
			return decodeVariant(tag, raw, in.Module)
		case "struct":
			in.Struct = &Struct{}
			return decodeVariant(tag, raw, in.Struct)
		case "union":
			in.Union = &Union{}
			return decodeVariant(tag, raw, in.Union)
		case "enum":
			in.Enum = &Enum{}
			return decodeVariant(tag, raw, in.Enum)
		case "variant":
			in.Variant = &Variant{}
			return decodeVariant(tag, raw, in.Variant)
		case "function":
			in.Function = &Function{}
			return decodeVariant(tag, raw, in.Function)
		case "trait":
			in.Trait = &Trait{}
			return decodeVariant(tag, raw, in.Trait)
		case "impl":
			in.Impl = &Impl{}
			return decodeVariant(tag, raw, in.Impl)
		case "use", "import":
			in.Use = &Use{}
			return decodeVariant(tag, raw, in.Use)
		case "type_alias", "typedef":
			in.TypeAlias = &TypeAlias{}
			return decodeVariant(tag, raw, in.TypeAlias)
		case "constant":
			in.Constant = &Constant{}
			return decodeVariant(tag, raw, in.Constant)
		case "static":
			in.Static = &Static{}
			return decodeVariant(tag, raw, in.Static)
		case "struct_field":
			in.StructField = &Type{}
			return decodeVariant(tag, raw, in.StructField)
		case "assoc_const":
			in.AssocConst = &AssocConst{}
			return decodeVariant(tag, raw, in.AssocConst)
		case "assoc_type":
			in.AssocType = &AssocType{}
			return decodeVariant(tag, raw, in.AssocType)
		default:
			in.UnknownTag = tag
		}
	}
	return nil
}

// decodeVariant decodes one tagged-union payload, wrapping errors with the
// tag for diagnosability.
func decodeVariant(tag string, raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", tag, err)
	}
	return nil
}

// Module is a module declaration.
type Module struct {
	Items      []ID `json:"items"`
	IsStripped bool `json:"is_stripped"`
}

// Struct is a struct declaration.
type Struct struct {
	Kind     StructLayout `json:"kind"`
	Generics Generics     `json:"generics"`
	Impls    []ID         `json:"impls"`
}

// Union is a union declaration.
type Union struct {
	Generics Generics `json:"generics"`
	Fields   []ID     `json:"fields"`
	Impls    []ID     `json:"impls"`
}

// Enum is an enum declaration.
type Enum struct {
	Generics Generics `json:"generics"`
	Variants []ID     `json:"variants"`
	Impls    []ID     `json:"impls"`
}

// Variant is a single enum variant.
type Variant struct {
	Kind VariantLayout `json:"kind"`
}

// Function is a free function, method, or trait method.
type Function struct {
	Sig      FunctionSignature `json:"sig"`
	Generics Generics          `json:"generics"`
	HasBody  bool              `json:"has_body"`
	Header   FunctionHeader    `json:"header"`
}

// Trait is a trait declaration.
type Trait struct {
	Generics Generics       `json:"generics"`
	Bounds   []GenericBound `json:"bounds"`
	Items    []ID           `json:"items"`
	IsAuto   bool           `json:"is_auto"`
	IsUnsafe bool           `json:"is_unsafe"`
}

// Impl is an impl block.
type Impl struct {
	Generics    Generics      `json:"generics"`
	Trait       *ResolvedPath `json:"trait"`
	For         Type          `json:"for"`
	Items       []ID          `json:"items"`
	IsUnsafe    bool          `json:"is_unsafe"`
	IsNegative  bool          `json:"is_negative"`
	IsSynthetic bool          `json:"is_synthetic"`
	BlanketImpl *Type         `json:"blanket_impl"`
}

// Use is a re-export declaration.
type Use struct {
	Source string `json:"source"`
	Name   string `json:"name"`
	ID     *ID    `json:"id"`
	IsGlob bool   `json:"is_glob"`
}

// TypeAlias is a type alias declaration.
type TypeAlias struct {
	Generics Generics `json:"generics"`
	Type     *Type    `json:"type"`
}

// Constant is a constant declaration.
type Constant struct {
	Type Type `json:"type"`
}

// Static is a static declaration.
type Static struct {
	Type      Type   `json:"type"`
	IsMutable bool   `json:"is_mutable"`
	IsUnsafe  bool   `json:"is_unsafe"`
	Expr      string `json:"expr"`
}

// AssocConst is an associated constant inside a trait or impl.
type AssocConst struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
}

// AssocType is an associated type inside a trait or impl.
type AssocType struct {
	Generics Generics       `json:"generics"`
	Bounds   []GenericBound `json:"bounds"`
	Type     *Type          `json:"type"`
}

// StructLayoutKind enumerates struct field layouts.
type StructLayoutKind string

const (
	// StructUnit is a unit struct with no fields.
	StructUnit StructLayoutKind = "unit"

	// StructTuple is a tuple struct with positional fields.
	StructTuple StructLayoutKind = "tuple"

	// StructPlain is a struct with named fields.
	StructPlain StructLayoutKind = "plain"
)

// StructLayout describes how a struct lays out its fields. The wire shape
// is `"unit"`, `{ "tuple": [...] }` or `{ "plain": { "fields": [...] } }`.
type StructLayout struct {
	Kind StructLayoutKind

	// TupleFields holds positional field IDs; entries are nil for
	// stripped (private) fields.
	TupleFields []*ID

	// Fields holds named field IDs for the plain layout.
	Fields []ID
}

// UnmarshalJSON accepts all three wire shapes. Unrecognized tags degrade
// to the unit layout.
func (l *StructLayout) UnmarshalJSON(data []byte) error {
	l.Kind = StructUnit
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal struct kind: %w", err)
		}
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal struct kind: %w", err)
	}
	if raw, ok := tagged["tuple"]; ok {
		l.Kind = StructTuple
		return decodeVariant("tuple", raw, &l.TupleFields)
	}
	if raw, ok := tagged["plain"]; ok {
		l.Kind = StructPlain
		var plain struct {
			Fields []ID `json:"fields"`
		}
		if err := decodeVariant("plain", raw, &plain); err != nil {
			return err
		}
		l.Fields = plain.Fields
	}
	return nil
}

// VariantLayoutKind enumerates enum variant payload layouts.
type VariantLayoutKind string

const (
	// VariantPlain is a payload-free variant.
	VariantPlain VariantLayoutKind = "plain"

	// VariantTuple is a variant with positional payload fields.
	VariantTuple VariantLayoutKind = "tuple"

	// VariantStruct is a variant with named payload fields.
	VariantStruct VariantLayoutKind = "struct"
)

// VariantLayout describes the payload of an enum variant. The wire shape
// mirrors StructLayout with "plain" as the unit-like case.
type VariantLayout struct {
	Kind VariantLayoutKind

	// TupleFields holds positional field IDs; entries are nil for
	// stripped fields.
	TupleFields []*ID

	// Fields holds named field IDs for the struct layout.
	Fields []ID
}

// UnmarshalJSON accepts all three wire shapes. Unrecognized tags degrade
// to the plain layout.
func (l *VariantLayout) UnmarshalJSON(data []byte) error {
	l.Kind = VariantPlain
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal variant kind: %w", err)
		}
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal variant kind: %w", err)
	}
	if raw, ok := tagged["tuple"]; ok {
		l.Kind = VariantTuple
		return decodeVariant("tuple", raw, &l.TupleFields)
	}
	if raw, ok := tagged["struct"]; ok {
		l.Kind = VariantStruct
		var structLayout struct {
			Fields []ID `json:"fields"`
		}
		if err := decodeVariant("struct", raw, &structLayout); err != nil {
			return err
		}
		l.Fields = structLayout.Fields
	}
	return nil
}
