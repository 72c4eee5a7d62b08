package rust

// Prefix is the conventional short name for the Rust extension vocabulary.
const Prefix = "rt"

// Namespace is the base IRI prefix for Rust-specific vocabulary terms.
const Namespace = "http://rust.example/ontology/"

// Class IRIs define Rust-specific entity types.
const (
	// ClassCrate represents a Rust crate (also typed tg:Assembly).
	ClassCrate = Namespace + "Crate"

	// ClassModule represents a Rust module (also typed tg:Namespace).
	ClassModule = Namespace + "Module"

	// ClassTrait represents a trait definition (also typed tg:Interface).
	ClassTrait = Namespace + "Trait"

	// ClassUnion represents a union type.
	ClassUnion = Namespace + "Union"

	// ClassTypeAlias represents a type alias declaration.
	ClassTypeAlias = Namespace + "TypeAlias"

	// ClassEnumVariant represents a single variant of an enum.
	ClassEnumVariant = Namespace + "EnumVariant"

	// ClassTraitImpl represents an `impl Trait for Type` block.
	ClassTraitImpl = Namespace + "TraitImpl"

	// ClassInherentImpl represents an `impl Type` block.
	ClassInherentImpl = Namespace + "InherentImpl"

	// ClassLifetime represents a lifetime parameter.
	ClassLifetime = Namespace + "Lifetime"

	// ClassConstParam represents a const generic parameter.
	ClassConstParam = Namespace + "ConstParam"

	// ClassStatic represents a static item.
	ClassStatic = Namespace + "Static"

	// ClassConstant represents a constant item.
	ClassConstant = Namespace + "Constant"
)

// Predicate IRIs define Rust-specific properties and relationships.
const (
	// PropDependsOn links a crate to an external crate it references.
	PropDependsOn = Namespace + "dependsOn"

	// PropSuperTrait links a trait to one of its supertraits.
	PropSuperTrait = Namespace + "superTrait"

	// PropImplFor links an impl block to its target type.
	PropImplFor = Namespace + "implFor"

	// PropImplTrait links a trait-impl block to the implemented trait.
	PropImplTrait = Namespace + "implTrait"

	// PropHasVariant links an enum to one of its variants.
	PropHasVariant = Namespace + "hasVariant"

	// PropVariantKind is the variant layout: "plain", "tuple" or "struct".
	PropVariantKind = Namespace + "variantKind"

	// PropVariantField links a variant to one of its payload fields.
	PropVariantField = Namespace + "variantField"

	// PropHasLifetime links a declaration to a lifetime parameter.
	PropHasLifetime = Namespace + "hasLifetime"

	// PropTraitBound links a type parameter to a bounding trait.
	PropTraitBound = Namespace + "traitBound"

	// PropErrorType links a function to the E of its Result<T, E> return.
	PropErrorType = Namespace + "errorType"

	// PropDerives records a derived trait name as a literal.
	PropDerives = Namespace + "derives"

	// PropIsUnsafe marks an unsafe function or trait.
	PropIsUnsafe = Namespace + "isUnsafe"

	// PropIsMutable marks a mutable static.
	PropIsMutable = Namespace + "isMutable"
)
