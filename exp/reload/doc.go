// Package reload provides experimental hot reload of an inspectable.Resolver.
//
// Reloader is the core type and performs:
// 1. hash the new config and return early when unchanged
// 2. build the next resolver over the shared registry
// 3. atomically swap the current resolver
// 4. report which primitive kinds changed wrapper identifier
//
// This package is EXPERIMENTAL and its API may change before v1.
package reload
