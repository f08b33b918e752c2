// Package inspectable resolves runtime values into inspectable wrappers.
//
// It offers:
// - immutable type descriptors for primitive, array and reference types
// - a process-wide table from the nine primitive kinds to their boxed types
// - a registry of specialized wrapper constructors keyed by a naming convention
// - a Resolver that always returns a wrapper, falling back to ObjectValue
// - catalog export (DOT/Mermaid) and YAML configuration
package inspectable
