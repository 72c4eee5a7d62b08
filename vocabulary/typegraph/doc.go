// Package typegraph provides the shared cross-language type-graph vocabulary.
//
// The vocabulary models compiled-library structure (assemblies, namespaces,
// types, members, parameters) in a language-neutral way so that graphs
// extracted from different languages can be queried with one ontology.
// Language-specific constructs live in extension vocabularies such as
// vocabulary/rust.
//
// All IRIs are compile-time constants under the tg: namespace; they are part
// of the tool's output contract and are not configurable.
package typegraph
