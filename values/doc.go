// Package values holds the built-in specialized wrappers: one per boxed
// primitive type plus lang.String.
package values
