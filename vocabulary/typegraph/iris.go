package typegraph

// Prefix is the conventional short name for the shared vocabulary.
const Prefix = "tg"

// Namespace is the base IRI prefix for shared type-graph vocabulary terms.
const Namespace = "http://typegraph.example/ontology/"

// Class IRIs define the language-neutral entity types.
const (
	// ClassAssembly represents a compiled library unit (a crate, an assembly, a jar).
	ClassAssembly = Namespace + "Assembly"

	// ClassNamespace represents a named scope grouping declarations.
	ClassNamespace = Namespace + "Namespace"

	// ClassType represents any named type when no more specific class applies.
	ClassType = Namespace + "Type"

	// ClassStruct represents a structure/record type.
	ClassStruct = Namespace + "Struct"

	// ClassInterface represents an abstract contract type (a Rust trait).
	ClassInterface = Namespace + "Interface"

	// ClassEnum represents an enumerated type.
	ClassEnum = Namespace + "Enum"

	// ClassMember represents a type member when no more specific class applies.
	ClassMember = Namespace + "Member"

	// ClassMethod represents a function or method member.
	ClassMethod = Namespace + "Method"

	// ClassField represents a data field member.
	ClassField = Namespace + "Field"

	// ClassParameter represents a function parameter.
	ClassParameter = Namespace + "Parameter"

	// ClassTypeParameter represents a generic type parameter.
	ClassTypeParameter = Namespace + "TypeParameter"
)

// Data property IRIs define literal-valued attributes.
const (
	// PropName is the declared (simple) name of an entity.
	PropName = Namespace + "name"

	// PropFullName is the fully qualified name of an entity.
	PropFullName = Namespace + "fullName"

	// PropAccessibility is the visibility of a declaration
	// (Public, Private, Internal, Protected).
	PropAccessibility = Namespace + "accessibility"

	// PropVersion is the version label of an assembly.
	PropVersion = Namespace + "version"

	// PropLanguage is the source language of an assembly.
	PropLanguage = Namespace + "language"

	// PropOrdinal is the zero-based position of a parameter.
	PropOrdinal = Namespace + "ordinal"

	// PropIsGeneric marks a declaration with generic type parameters.
	PropIsGeneric = Namespace + "isGeneric"

	// PropIsAsync marks an asynchronous method.
	PropIsAsync = Namespace + "isAsync"

	// PropIsConst marks a compile-time-evaluable declaration.
	PropIsConst = Namespace + "isConst"

	// PropIsAbstract marks a method without a body.
	PropIsAbstract = Namespace + "isAbstract"
)

// Object property IRIs define relationships between entities.
const (
	// PropDefinedInAssembly links a declaration to its owning assembly.
	PropDefinedInAssembly = Namespace + "definedInAssembly"

	// PropInNamespace links a type to its enclosing namespace.
	PropInNamespace = Namespace + "inNamespace"

	// PropParentNamespace links a namespace to its parent namespace.
	PropParentNamespace = Namespace + "parentNamespace"

	// PropImplements links a type to an interface it implements.
	PropImplements = Namespace + "implements"

	// PropHasMember links an owner to one of its members.
	PropHasMember = Namespace + "hasMember"

	// PropMemberOf links a member back to its owner.
	PropMemberOf = Namespace + "memberOf"

	// PropHasParameter links a method to one of its parameters.
	PropHasParameter = Namespace + "hasParameter"

	// PropParameterOf links a parameter back to its method.
	PropParameterOf = Namespace + "parameterOf"

	// PropParameterType links a parameter to its declared type.
	PropParameterType = Namespace + "parameterType"

	// PropReturnType links a method to its return type.
	PropReturnType = Namespace + "returnType"

	// PropFieldType links a field to its declared type.
	PropFieldType = Namespace + "fieldType"

	// PropHasTypeParameter links a declaration to a generic parameter.
	PropHasTypeParameter = Namespace + "hasTypeParameter"

	// PropTypeParameterOf links a generic parameter back to its owner.
	PropTypeParameterOf = Namespace + "typeParameterOf"

	// PropRelatedTo links a declaration to a semantically related type
	// (used for type-alias targets).
	PropRelatedTo = Namespace + "relatedTo"
)
