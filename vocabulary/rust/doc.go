// Package rust provides the Rust extension vocabulary for type-graph output.
//
// Constructs without a cross-language analog, such as traits, impl blocks,
// enum variants with payloads, lifetimes and const generics, live under
// the rt: namespace. Entities typed with these classes usually carry a
// shared class from vocabulary/typegraph as well (a trait is both rt:Trait
// and tg:Interface).
package rust
