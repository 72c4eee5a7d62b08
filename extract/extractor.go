// Package extract walks a rustdoc crate graph and emits RDF triples.
//
// The Extractor traverses the item tree from the root module, resolving
// type references and relationships, and streams statements through an
// emit.TripleSink. Traversal is deterministic for a given document: nodes
// are deduplicated by IRI, so shared references produce each node once.
package extract

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/c360studio/crategraph/emit"
	"github.com/c360studio/crategraph/iri"
	"github.com/c360studio/crategraph/rustdoc"
	"github.com/c360studio/crategraph/vocabulary/rust"
	"github.com/c360studio/crategraph/vocabulary/standard"
	"github.com/c360studio/crategraph/vocabulary/typegraph"
)

// Extractor walks a rustdoc.Crate and emits RDF triples to a sink.
type Extractor struct {
	sink    emit.TripleSink
	iris    *iri.Minter
	crate   *rustdoc.Crate
	name    string
	version string
	opts    Options
	logger  *slog.Logger

	emittedTypes   map[string]struct{}
	emittedModules map[string]struct{}
}

// New creates an extractor over the given crate. Call Extract to run.
func New(sink emit.TripleSink, crate *rustdoc.Crate, opts Options, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		sink:           sink,
		iris:           iri.NewMinter(opts.BaseIRI),
		crate:          crate,
		name:           crate.RootName(),
		version:        crate.Version(),
		opts:           opts,
		logger:         logger,
		emittedTypes:   make(map[string]struct{}),
		emittedModules: make(map[string]struct{}),
	}
}

// CrateName returns the name taken from the crate's root module.
func (e *Extractor) CrateName() string { return e.name }

// CrateVersion returns the crate version, defaulted when absent.
func (e *Extractor) CrateVersion() string { return e.version }

// Extract runs the full extraction, emitting all triples to the sink.
func (e *Extractor) Extract() {
	e.registerPrefixes()
	e.emitCrateNode()
	e.emitExternalCrates()
	e.walkModule(e.crate.Root.String(), e.name)
	if e.opts.IncludeImpls {
		e.processAllImpls()
	}
}

func (e *Extractor) registerPrefixes() {
	e.sink.AddPrefix("rdf", standard.RDF)
	e.sink.AddPrefix("rdfs", standard.RDFS)
	e.sink.AddPrefix("xsd", standard.XSD)
	e.sink.AddPrefix(typegraph.Prefix, typegraph.Namespace)
	e.sink.AddPrefix(rust.Prefix, rust.Namespace)
}

func (e *Extractor) crateIRI() string {
	return e.iris.Crate(e.name, e.version)
}

func (e *Extractor) emitCrateNode() {
	crateIRI := e.crateIRI()
	e.sink.EmitIRI(crateIRI, standard.RDFType, rust.ClassCrate)
	e.sink.EmitIRI(crateIRI, standard.RDFType, typegraph.ClassAssembly)
	e.sink.EmitLiteral(crateIRI, typegraph.PropName, e.name)
	e.sink.EmitLiteral(crateIRI, typegraph.PropLanguage, "rust")
	e.sink.EmitLiteral(crateIRI, typegraph.PropVersion, e.version)
}

// emitExternalCrates records dependency edges. Rustdoc JSON carries no
// version information for dependencies, so a placeholder version keeps
// their IRIs well-formed. Keys are sorted for stable output.
func (e *Extractor) emitExternalCrates() {
	crateIRI := e.crateIRI()

	keys := make([]string, 0, len(e.crate.ExternalCrates))
	for k := range e.crate.ExternalCrates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		ext := e.crate.ExternalCrates[k]
		depIRI := e.iris.Crate(ext.Name, "0.0.0")
		e.sink.EmitIRI(crateIRI, rust.PropDependsOn, depIRI)
		e.sink.EmitIRI(depIRI, standard.RDFType, rust.ClassCrate)
		e.sink.EmitLiteral(depIRI, typegraph.PropName, ext.Name)
	}
}

// walkModule emits the module node and recurses into its children. The
// root module is walked but not emitted as a namespace since it doubles
// as the crate itself.
func (e *Extractor) walkModule(itemID, modulePath string) {
	item, ok := e.crate.Index[itemID]
	if !ok || item.Inner.Module == nil {
		return
	}

	if itemID != e.crate.Root.String() {
		e.emitModuleNode(modulePath, &item)
	}

	for _, childID := range item.Inner.Module.Items {
		e.walkItem(childID.String(), modulePath)
	}
}

func (e *Extractor) emitModuleNode(modulePath string, item *rustdoc.Item) {
	if _, seen := e.emittedModules[modulePath]; seen {
		return
	}
	e.emittedModules[modulePath] = struct{}{}

	moduleIRI := e.iris.Module(e.name, e.version, modulePath)

	e.sink.EmitIRI(moduleIRI, standard.RDFType, rust.ClassModule)
	e.sink.EmitIRI(moduleIRI, standard.RDFType, typegraph.ClassNamespace)

	name := item.Name
	if name == "" {
		name = modulePath
	}
	e.sink.EmitLiteral(moduleIRI, typegraph.PropName, name)
	e.sink.EmitLiteral(moduleIRI, typegraph.PropFullName, modulePath)
	e.sink.EmitIRI(moduleIRI, typegraph.PropDefinedInAssembly, e.crateIRI())
	e.sink.EmitLiteral(moduleIRI, typegraph.PropAccessibility, accessibility(item.Visibility))

	if parentPath, _, ok := rsplitPath(modulePath); ok {
		parentIRI := e.iris.Module(e.name, e.version, parentPath)
		e.sink.EmitIRI(moduleIRI, typegraph.PropParentNamespace, parentIRI)
	}
}

// walkItem dispatches one item to its kind-specific extractor. Use items
// are skipped and impl blocks wait for the dedicated pass. Unknown kinds
// are logged and ignored.
func (e *Extractor) walkItem(itemID, parentModulePath string) {
	item, ok := e.crate.Index[itemID]
	if !ok {
		return
	}

	switch inner := &item.Inner; {
	case inner.Module != nil:
		name := item.Name
		if name == "" {
			name = "unnamed"
		}
		e.walkModule(itemID, parentModulePath+"::"+name)
	case inner.Struct != nil:
		e.extractStruct(itemID, &item, parentModulePath)
	case inner.Enum != nil:
		e.extractEnum(itemID, &item, parentModulePath)
	case inner.Trait != nil:
		e.extractTrait(&item, parentModulePath)
	case inner.Function != nil:
		e.extractModuleFunction(&item, parentModulePath)
	case inner.Constant != nil:
		e.extractConstant(&item, parentModulePath)
	case inner.Static != nil:
		e.extractStatic(&item, parentModulePath)
	case inner.TypeAlias != nil:
		e.extractTypeAlias(&item, parentModulePath)
	case inner.Union != nil:
		e.extractUnion(&item, parentModulePath)
	case inner.Use != nil, inner.Impl != nil:
		// Impls are processed in a separate pass; re-exports are skipped.
	default:
		if inner.UnknownTag != "" {
			e.logger.Debug("skipping unrecognized item kind", "kind", inner.UnknownTag, "id", itemID)
		}
	}
}

// markType records a type IRI as emitted and reports whether it was new.
func (e *Extractor) markType(typeIRI string) bool {
	if _, seen := e.emittedTypes[typeIRI]; seen {
		return false
	}
	e.emittedTypes[typeIRI] = struct{}{}
	return true
}

// emitTypeHeader emits the common statements shared by every named type
// node: name, full path, owning assembly, namespace and accessibility.
func (e *Extractor) emitTypeHeader(typeIRI, name, fullPath, modulePath string, item *rustdoc.Item) {
	moduleIRI := e.iris.Module(e.name, e.version, modulePath)
	e.sink.EmitLiteral(typeIRI, typegraph.PropName, name)
	e.sink.EmitLiteral(typeIRI, typegraph.PropFullName, fullPath)
	e.sink.EmitIRI(typeIRI, typegraph.PropDefinedInAssembly, e.crateIRI())
	e.sink.EmitIRI(typeIRI, typegraph.PropInNamespace, moduleIRI)
	e.sink.EmitLiteral(typeIRI, typegraph.PropAccessibility, accessibility(item.Visibility))
}

// rsplitPath splits a "::" path at its last separator.
func rsplitPath(path string) (parent, last string, ok bool) {
	idx := strings.LastIndex(path, "::")
	if idx < 0 {
		return "", "", false
	}
	return path[:idx], path[idx+2:], true
}

// accessibility maps a declared visibility to the shared accessibility
// vocabulary: pub is Public, unqualified is Private, pub(crate) and
// pub(in path) are Internal, and pub(super) is Protected.
func accessibility(vis rustdoc.Visibility) string {
	switch vis.Kind {
	case rustdoc.VisibilityPublic:
		return "Public"
	case rustdoc.VisibilityCrate:
		return "Internal"
	case rustdoc.VisibilityRestricted:
		if vis.Path == "super" {
			return "Protected"
		}
		return "Internal"
	default:
		return "Private"
	}
}
