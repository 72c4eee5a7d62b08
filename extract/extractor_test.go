package extract_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/crategraph/emit"
	"github.com/c360studio/crategraph/extract"
	"github.com/c360studio/crategraph/rustdoc"
)

const (
	rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	tgNS    = "http://typegraph.example/ontology/"
	rtNS    = "http://rust.example/ontology/"
	base    = "http://rust.example"
)

func tg(local string) string { return tgNS + local }
func rt(local string) string { return rtNS + local }

func crateIRI() string { return base + "/crate/fixture_crate/0.1.0" }

func moduleIRI(path string) string { return base + "/module/fixture_crate/0.1.0/" + path }

func typeIRI(path string) string { return base + "/type/fixture_crate/0.1.0/" + path }

func loadFixture(t *testing.T) *rustdoc.Crate {
	t.Helper()
	crate, err := rustdoc.LoadFile("testdata/fixture_crate.json")
	require.NoError(t, err)
	return crate
}

func extractNTriples(t *testing.T, opts extract.Options) string {
	t.Helper()
	var buf bytes.Buffer
	sink := emit.NewNTriplesEmitter(&buf)
	extract.New(sink, loadFixture(t), opts, nil).Extract()
	require.NoError(t, sink.Flush())
	return buf.String()
}

func extractDefault(t *testing.T) string {
	return extractNTriples(t, extract.DefaultOptions())
}

func hasIRITriple(out, subject, predicate, object string) bool {
	return hasLine(out, fmt.Sprintf("<%s> <%s> <%s> .", subject, predicate, object))
}

func hasLiteralTriple(out, subject, predicate, value string) bool {
	return hasLine(out, fmt.Sprintf("<%s> <%s> %q .", subject, predicate, value))
}

func hasBoolTriple(out, subject, predicate string, value bool) bool {
	return hasLine(out, fmt.Sprintf(
		"<%s> <%s> \"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean> .",
		subject, predicate, value))
}

func hasIntTriple(out, subject, predicate string, value int64) bool {
	return hasLine(out, fmt.Sprintf(
		"<%s> <%s> \"%d\"^^<http://www.w3.org/2001/XMLSchema#integer> .",
		subject, predicate, value))
}

func hasLine(out, line string) bool {
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}

func TestCrateNode(t *testing.T) {
	out := extractDefault(t)

	assert.True(t, hasIRITriple(out, crateIRI(), rdfType, rt("Crate")))
	assert.True(t, hasIRITriple(out, crateIRI(), rdfType, tg("Assembly")))
	assert.True(t, hasLiteralTriple(out, crateIRI(), tg("name"), "fixture_crate"))
	assert.True(t, hasLiteralTriple(out, crateIRI(), tg("version"), "0.1.0"))
	assert.True(t, hasLiteralTriple(out, crateIRI(), tg("language"), "rust"))
}

func TestExternalDependencies(t *testing.T) {
	out := extractDefault(t)

	stdIRI := base + "/crate/std/0.0.0"
	assert.True(t, hasIRITriple(out, crateIRI(), rt("dependsOn"), stdIRI))
	assert.True(t, hasIRITriple(out, stdIRI, rdfType, rt("Crate")))
	assert.True(t, hasLiteralTriple(out, stdIRI, tg("name"), "std"))
}

func TestModuleHierarchy(t *testing.T) {
	out := extractDefault(t)

	nested := moduleIRI("fixture_crate%3A%3Anested")
	deep := moduleIRI("fixture_crate%3A%3Anested%3A%3Adeep")

	assert.True(t, hasIRITriple(out, nested, rdfType, rt("Module")))
	assert.True(t, hasIRITriple(out, nested, rdfType, tg("Namespace")))
	assert.True(t, hasLiteralTriple(out, nested, tg("name"), "nested"))
	assert.True(t, hasIRITriple(out, nested, tg("definedInAssembly"), crateIRI()))

	assert.True(t, hasIRITriple(out, deep, rdfType, rt("Module")))
	assert.True(t, hasLiteralTriple(out, deep, tg("name"), "deep"))
	assert.True(t, hasIRITriple(out, deep, tg("parentNamespace"), nested))
}

func TestRootModuleNotEmittedAsNamespace(t *testing.T) {
	out := extractDefault(t)

	// The root module doubles as the crate node; its namespace IRI is
	// used as a member owner but never gets its own type statement.
	assert.False(t, hasIRITriple(out, moduleIRI("fixture_crate"), rdfType, rt("Module")))
}

func TestStructExtraction(t *testing.T) {
	out := extractDefault(t)
	myStruct := typeIRI("fixture_crate%3A%3AMyStruct")

	assert.True(t, hasIRITriple(out, myStruct, rdfType, tg("Struct")))
	assert.True(t, hasLiteralTriple(out, myStruct, tg("name"), "MyStruct"))
	assert.True(t, hasLiteralTriple(out, myStruct, tg("fullName"), "fixture_crate::MyStruct"))
	assert.True(t, hasLiteralTriple(out, myStruct, tg("accessibility"), "Public"))
	assert.True(t, hasIRITriple(out, myStruct, tg("definedInAssembly"), crateIRI()))
	assert.True(t, hasIRITriple(out, myStruct, tg("inNamespace"), moduleIRI("fixture_crate")))
	assert.True(t, hasBoolTriple(out, myStruct, tg("isGeneric"), true))
}

func TestStructFields(t *testing.T) {
	out := extractDefault(t)
	myStruct := typeIRI("fixture_crate%3A%3AMyStruct")

	fieldIRI := myStruct + "/member/field"
	assert.True(t, hasIRITriple(out, fieldIRI, rdfType, tg("Field")))
	assert.True(t, hasLiteralTriple(out, fieldIRI, tg("name"), "field"))
	assert.True(t, hasIRITriple(out, myStruct, tg("hasMember"), fieldIRI))
	assert.True(t, hasLiteralTriple(out, fieldIRI, tg("accessibility"), "Public"))

	countIRI := myStruct + "/member/count"
	assert.True(t, hasIRITriple(out, countIRI, rdfType, tg("Field")))
	assert.True(t, hasIRITriple(out, countIRI, tg("fieldType"), base+"/type/_primitive_/usize"))
}

func TestUnitStruct(t *testing.T) {
	out := extractDefault(t)
	deep := typeIRI("fixture_crate%3A%3Anested%3A%3Adeep%3A%3ADeep")

	assert.True(t, hasIRITriple(out, deep, rdfType, tg("Struct")))
	assert.True(t, hasLiteralTriple(out, deep, tg("name"), "Deep"))
}

func TestEnumVariants(t *testing.T) {
	out := extractDefault(t)
	myEnum := typeIRI("fixture_crate%3A%3AMyEnum")

	assert.True(t, hasIRITriple(out, myEnum, rdfType, tg("Enum")))

	plain := myEnum + "/variant/Plain"
	assert.True(t, hasIRITriple(out, plain, rdfType, rt("EnumVariant")))
	assert.True(t, hasLiteralTriple(out, plain, tg("name"), "Plain"))
	assert.True(t, hasIRITriple(out, myEnum, rt("hasVariant"), plain))
	assert.True(t, hasLiteralTriple(out, plain, rt("variantKind"), "plain"))

	tuple := myEnum + "/variant/Tuple"
	assert.True(t, hasLiteralTriple(out, tuple, rt("variantKind"), "tuple"))

	structV := myEnum + "/variant/Struct"
	assert.True(t, hasLiteralTriple(out, structV, rt("variantKind"), "struct"))
}

func TestEnumVariantFields(t *testing.T) {
	out := extractDefault(t)
	myEnum := typeIRI("fixture_crate%3A%3AMyEnum")

	structV := myEnum + "/variant/Struct"
	xField := structV + "/member/x"
	assert.True(t, hasIRITriple(out, structV, rt("variantField"), xField))
	assert.True(t, hasIRITriple(out, xField, rdfType, tg("Field")))
	assert.True(t, hasIRITriple(out, xField, tg("fieldType"), base+"/type/_primitive_/f64"))

	tuple := myEnum + "/variant/Tuple"
	field0 := tuple + "/member/0"
	assert.True(t, hasIRITriple(out, tuple, rt("variantField"), field0))
	assert.True(t, hasIRITriple(out, field0, tg("fieldType"), base+"/type/_primitive_/i32"))
}

func TestTraitExtraction(t *testing.T) {
	out := extractDefault(t)
	myTrait := typeIRI("fixture_crate%3A%3AMyTrait")

	assert.True(t, hasIRITriple(out, myTrait, rdfType, tg("Interface")))
	assert.True(t, hasIRITriple(out, myTrait, rdfType, rt("Trait")))
	assert.True(t, hasLiteralTriple(out, myTrait, tg("name"), "MyTrait"))
}

func TestTraitSupertraits(t *testing.T) {
	out := extractDefault(t)
	myTrait := typeIRI("fixture_crate%3A%3AMyTrait")

	sendIRI := typeIRI("core%3A%3Amarker%3A%3ASend")
	syncIRI := typeIRI("core%3A%3Amarker%3A%3ASync")
	assert.True(t, hasIRITriple(out, myTrait, rt("superTrait"), sendIRI))
	assert.True(t, hasIRITriple(out, myTrait, rt("superTrait"), syncIRI))

	// Referenced foreign traits get stub nodes.
	assert.True(t, hasIRITriple(out, sendIRI, rdfType, tg("Type")))
	assert.True(t, hasLiteralTriple(out, sendIRI, tg("name"), "Send"))
}

func TestTraitMethods(t *testing.T) {
	out := extractDefault(t)
	myTrait := typeIRI("fixture_crate%3A%3AMyTrait")

	required := myTrait + "/member/required"
	assert.True(t, hasIRITriple(out, required, rdfType, tg("Method")))
	assert.True(t, hasIRITriple(out, myTrait, tg("hasMember"), required))
	assert.True(t, hasBoolTriple(out, required, tg("isAbstract"), true))
	assert.True(t, hasLiteralTriple(out, required, tg("accessibility"), "Private"))

	provided := myTrait + "/member/provided"
	assert.True(t, hasIRITriple(out, provided, rdfType, tg("Method")))
	assert.False(t, hasBoolTriple(out, provided, tg("isAbstract"), true))
}

func TestTraitAssociatedConst(t *testing.T) {
	out := extractDefault(t)
	myTrait := typeIRI("fixture_crate%3A%3AMyTrait")

	limit := myTrait + "/member/LIMIT"
	assert.True(t, hasIRITriple(out, limit, rdfType, tg("Method")))
	assert.True(t, hasLiteralTriple(out, limit, tg("name"), "LIMIT"))
	assert.True(t, hasIRITriple(out, myTrait, tg("hasMember"), limit))
	assert.True(t, hasIRITriple(out, limit, tg("memberOf"), myTrait))
	// No function payload, so no abstractness or parameter statements.
	assert.False(t, hasBoolTriple(out, limit, tg("isAbstract"), true))
}

func TestTraitLifetimeParameter(t *testing.T) {
	out := extractDefault(t)
	withLt := typeIRI("fixture_crate%3A%3AWithLifetime")

	ltIRI := withLt + "/lifetime/a"
	assert.True(t, hasIRITriple(out, ltIRI, rdfType, rt("Lifetime")))
	assert.True(t, hasLiteralTriple(out, ltIRI, tg("name"), "'a"))
	assert.True(t, hasIRITriple(out, withLt, rt("hasLifetime"), ltIRI))
}

func TestFunctionParameters(t *testing.T) {
	out := extractDefault(t)
	simpleAdd := moduleIRI("fixture_crate") + "/member/simple_add"

	assert.True(t, hasIRITriple(out, simpleAdd, rdfType, tg("Method")))
	assert.True(t, hasLiteralTriple(out, simpleAdd, tg("fullName"), "fixture_crate::simple_add"))

	paramA := simpleAdd + "/param/0"
	paramB := simpleAdd + "/param/1"
	i32IRI := base + "/type/_primitive_/i32"

	assert.True(t, hasIRITriple(out, paramA, rdfType, tg("Parameter")))
	assert.True(t, hasLiteralTriple(out, paramA, tg("name"), "a"))
	assert.True(t, hasIntTriple(out, paramA, tg("ordinal"), 0))
	assert.True(t, hasIRITriple(out, paramA, tg("parameterType"), i32IRI))
	assert.True(t, hasIRITriple(out, paramA, tg("parameterOf"), simpleAdd))
	assert.True(t, hasIRITriple(out, simpleAdd, tg("hasParameter"), paramA))

	assert.True(t, hasIntTriple(out, paramB, tg("ordinal"), 1))
	assert.True(t, hasIRITriple(out, simpleAdd, tg("returnType"), i32IRI))
}

func TestSelfReceiverSkipped(t *testing.T) {
	out := extractDefault(t)
	myTrait := typeIRI("fixture_crate%3A%3AMyTrait")
	required := myTrait + "/member/required"

	assert.False(t, strings.Contains(out, required+"/param/0"))
}

func TestUnsafeFunction(t *testing.T) {
	out := extractDefault(t)
	unsafeFn := moduleIRI("fixture_crate") + "/member/unsafe_fn"

	assert.True(t, hasBoolTriple(out, unsafeFn, rt("isUnsafe"), true))
}

func TestErrorTypeExtraction(t *testing.T) {
	out := extractDefault(t)
	fallible := moduleIRI("fixture_crate") + "/member/fallible"

	errIRI := typeIRI("std%3A%3Aio%3A%3Aerror%3A%3AError")
	assert.True(t, hasIRITriple(out, fallible, rt("errorType"), errIRI))

	resultIRI := typeIRI("core%3A%3Aresult%3A%3AResult")
	assert.True(t, hasIRITriple(out, fallible, tg("returnType"), resultIRI))
}

func TestErrorTypeCanBeDisabled(t *testing.T) {
	opts := extract.DefaultOptions()
	opts.ExtractErrorTypes = false
	out := extractNTriples(t, opts)

	assert.False(t, strings.Contains(out, rt("errorType")))
}

func TestDerives(t *testing.T) {
	out := extractDefault(t)
	derived := typeIRI("fixture_crate%3A%3ADerived")

	assert.True(t, hasLiteralTriple(out, derived, rt("derives"), "Debug"))
	assert.True(t, hasLiteralTriple(out, derived, rt("derives"), "Clone"))
	assert.True(t, hasLiteralTriple(out, derived, rt("derives"), "PartialEq"))
}

func TestDerivesCanBeDisabled(t *testing.T) {
	opts := extract.DefaultOptions()
	opts.ExtractDerives = false
	out := extractNTriples(t, opts)

	derived := typeIRI("fixture_crate%3A%3ADerived")
	assert.True(t, hasIRITriple(out, derived, rdfType, tg("Struct")))
	assert.False(t, hasLiteralTriple(out, derived, rt("derives"), "Debug"))
}

func TestConstantExtraction(t *testing.T) {
	out := extractDefault(t)
	myConst := moduleIRI("fixture_crate") + "/member/MY_CONST"

	assert.True(t, hasIRITriple(out, myConst, rdfType, tg("Field")))
	assert.True(t, hasIRITriple(out, myConst, rdfType, rt("Constant")))
	assert.True(t, hasBoolTriple(out, myConst, tg("isConst"), true))
	assert.True(t, hasIRITriple(out, myConst, tg("fieldType"), base+"/type/_primitive_/i32"))
	assert.True(t, hasIRITriple(out, myConst, tg("memberOf"), moduleIRI("fixture_crate")))
}

func TestStaticExtraction(t *testing.T) {
	out := extractDefault(t)
	myStatic := moduleIRI("fixture_crate") + "/member/MY_STATIC"

	assert.True(t, hasIRITriple(out, myStatic, rdfType, rt("Static")))
	assert.True(t, hasIRITriple(out, myStatic, tg("fieldType"), base+"/type/_ref_/str"))
	assert.False(t, hasBoolTriple(out, myStatic, rt("isMutable"), true))
}

func TestTypeAliasExtraction(t *testing.T) {
	out := extractDefault(t)
	stringVec := typeIRI("fixture_crate%3A%3AStringVec")

	assert.True(t, hasIRITriple(out, stringVec, rdfType, rt("TypeAlias")))
	assert.True(t, hasIRITriple(out, stringVec, tg("relatedTo"), typeIRI("alloc%3A%3Avec%3A%3AVec")))
}

func TestUnionExtraction(t *testing.T) {
	out := extractDefault(t)
	myUnion := typeIRI("fixture_crate%3A%3AMyUnion")

	assert.True(t, hasIRITriple(out, myUnion, rdfType, rt("Union")))

	intVal := myUnion + "/member/int_val"
	floatVal := myUnion + "/member/float_val"
	assert.True(t, hasIRITriple(out, intVal, tg("fieldType"), base+"/type/_primitive_/i32"))
	assert.True(t, hasIRITriple(out, floatVal, tg("fieldType"), base+"/type/_primitive_/f32"))
}

func TestTraitImpl(t *testing.T) {
	out := extractDefault(t)
	myStruct := typeIRI("fixture_crate%3A%3AMyStruct")
	myTrait := typeIRI("fixture_crate%3A%3AMyTrait")
	implIRI := base + "/impl/fixture_crate/0.1.0/76"

	assert.True(t, hasIRITriple(out, implIRI, rdfType, rt("TraitImpl")))
	assert.True(t, hasIRITriple(out, implIRI, rt("implFor"), myStruct))
	assert.True(t, hasIRITriple(out, implIRI, rt("implTrait"), myTrait))
	assert.True(t, hasIRITriple(out, myStruct, tg("implements"), myTrait))

	// Trait impl methods hang off the impl node.
	assert.True(t, hasIRITriple(out, implIRI+"/member/required", rdfType, tg("Method")))
}

func TestInherentImplMethodsAttachToType(t *testing.T) {
	out := extractDefault(t)
	myStruct := typeIRI("fixture_crate%3A%3AMyStruct")
	implIRI := base + "/impl/fixture_crate/0.1.0/77"

	assert.True(t, hasIRITriple(out, implIRI, rdfType, rt("InherentImpl")))
	assert.True(t, hasIRITriple(out, implIRI, rt("implFor"), myStruct))

	getIRI := myStruct + "/member/get"
	assert.True(t, hasIRITriple(out, getIRI, rdfType, tg("Method")))
	assert.True(t, hasIRITriple(out, myStruct, tg("hasMember"), getIRI))
}

func TestImplsCanBeDisabled(t *testing.T) {
	withImpls := extractDefault(t)

	opts := extract.DefaultOptions()
	opts.IncludeImpls = false
	withoutImpls := extractNTriples(t, opts)

	assert.Greater(t,
		len(strings.Split(withImpls, "\n")),
		len(strings.Split(withoutImpls, "\n")))
	assert.False(t, strings.Contains(withoutImpls, rt("TraitImpl")))
}

func TestTypeParameterExtraction(t *testing.T) {
	out := extractDefault(t)
	myStruct := typeIRI("fixture_crate%3A%3AMyStruct")

	tpIRI := myStruct + "/typeparam/0"
	assert.True(t, hasIRITriple(out, tpIRI, rdfType, tg("TypeParameter")))
	assert.True(t, hasLiteralTriple(out, tpIRI, tg("name"), "T"))
	assert.True(t, hasIntTriple(out, tpIRI, tg("ordinal"), 0))
	assert.True(t, hasIRITriple(out, myStruct, tg("hasTypeParameter"), tpIRI))
	assert.True(t, hasIRITriple(out, tpIRI, tg("typeParameterOf"), myStruct))

	cloneIRI := typeIRI("core%3A%3Aclone%3A%3AClone")
	assert.True(t, hasIRITriple(out, tpIRI, rt("traitBound"), cloneIRI))
}

func TestNestedStructInModule(t *testing.T) {
	out := extractDefault(t)
	inner := typeIRI("fixture_crate%3A%3Anested%3A%3AInner")

	assert.True(t, hasIRITriple(out, inner, rdfType, tg("Struct")))
	assert.True(t, hasIRITriple(out, inner, tg("inNamespace"), moduleIRI("fixture_crate%3A%3Anested")))
}

func TestCustomBaseIRI(t *testing.T) {
	opts := extract.DefaultOptions()
	opts.BaseIRI = "http://custom.example"
	out := extractNTriples(t, opts)

	assert.Contains(t, out, "http://custom.example/crate/fixture_crate/0.1.0")
	assert.NotContains(t, out, base+"/crate/fixture_crate")
}

func TestExtractionIsDeterministic(t *testing.T) {
	first := extractDefault(t)
	second := extractDefault(t)
	assert.Equal(t, first, second)
}

func TestTripleCountNonZero(t *testing.T) {
	var buf bytes.Buffer
	sink := emit.NewNTriplesEmitter(&buf)
	extract.New(sink, loadFixture(t), extract.DefaultOptions(), nil).Extract()
	require.NoError(t, sink.Flush())

	assert.Greater(t, sink.TripleCount(), uint64(100))
}
