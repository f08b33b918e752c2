package inspectable

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Category tells which of the three type shapes a Type describes.
type Category uint8

const (
	CategoryInvalid Category = iota
	CategoryPrimitive
	CategoryArray
	CategoryReference
)

func (c Category) String() string {
	switch c {
	case CategoryPrimitive:
		return "primitive"
	case CategoryArray:
		return "array"
	case CategoryReference:
		return "reference"
	default:
		return "invalid"
	}
}

// Type is the immutable descriptor of a value's declared type.
// The zero Type is invalid; build one with Primitive, ArrayOf, Named or ParseType.
// Types are comparable: equal descriptors are ==, and can key maps.
type Type struct {
	base Category // category of the innermost element type
	kind PrimitiveKind
	name string
	dims int
}

// Primitive returns the descriptor of primitive kind k.
func Primitive(k PrimitiveKind) Type {
	return Type{base: CategoryPrimitive, kind: k, name: k.String()}
}

// ArrayOf returns the descriptor of an array whose elements are elem.
// Multi-dimensional arrays nest: ArrayOf(ArrayOf(Primitive(Int))).
func ArrayOf(elem Type) Type {
	elem.name += "[]"
	elem.dims++
	return elem
}

// Named returns the descriptor of a reference type by its fully qualified name.
func Named(name string) Type {
	return Type{base: CategoryReference, name: name}
}

func (t Type) Category() Category {
	if t.dims > 0 {
		return CategoryArray
	}
	return t.base
}

// Name returns the fully qualified type name. Array names end with "[]".
func (t Type) Name() string { return t.name }

func (t Type) String() string {
	if t.IsZero() {
		return "<invalid>"
	}
	return t.name
}

func (t Type) IsZero() bool      { return t.Category() == CategoryInvalid }
func (t Type) IsArray() bool     { return t.dims > 0 }
func (t Type) IsPrimitive() bool { return t.Category() == CategoryPrimitive }

// Elem returns the element type of an array type.
func (t Type) Elem() (Type, bool) {
	if t.dims == 0 {
		return Type{}, false
	}
	t.name = strings.TrimSuffix(t.name, "[]")
	t.dims--
	return t, true
}

// Primitive returns the primitive kind of a primitive type.
func (t Type) Primitive() (PrimitiveKind, bool) {
	if t.Category() != CategoryPrimitive {
		return 0, false
	}
	return t.kind, true
}

// Equal reports whether t and other describe the same type.
func (t Type) Equal(other Type) bool {
	return t == other
}

func (t Type) MarshalText() ([]byte, error) {
	if t.IsZero() {
		return nil, fmt.Errorf("marshal type: descriptor is invalid")
	}
	return []byte(t.name), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType parses the text form of a descriptor: a primitive kind name
// ("int"), a fully qualified reference name ("lang.String"), either followed
// by any number of "[]".
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("parse type: text is empty")
	}

	dims := 0
	for strings.HasSuffix(s, "[]") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "[]"))
		dims++
	}
	if s == "" {
		return Type{}, fmt.Errorf("parse type: element type is empty")
	}
	if err := validateName(s); err != nil {
		return Type{}, fmt.Errorf("parse type %q: %w", s, err)
	}

	var t Type
	if k, ok := primitiveByName[s]; ok {
		t = Primitive(k)
	} else {
		t = Named(s)
	}
	for ; dims > 0; dims-- {
		t = ArrayOf(t)
	}
	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// validateName accepts every name TypeOf produces, unnamed Go types such
// as "map[string]int" or "struct { A int }" included.
func validateName(s string) error {
	if s[0] == '[' {
		return fmt.Errorf("array element must come first, as in elem[]")
	}
	var open []rune
	for _, r := range s {
		switch r {
		case '[', '(', '{':
			open = append(open, r)
		case ']', ')', '}':
			if len(open) == 0 || open[len(open)-1] != pairs[r] {
				return fmt.Errorf("unbalanced %q", r)
			}
			open = open[:len(open)-1]
		default:
			if unicode.IsControl(r) {
				return fmt.Errorf("invalid character %q", r)
			}
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("unbalanced %q", open[len(open)-1])
	}
	return nil
}

var pairs = map[rune]rune{']': '[', ')': '(', '}': '{'}

var (
	// ObjectType is the descriptor used for values whose type cannot be told.
	ObjectType = Named("lang.Object")
	// StringType is the descriptor of Go strings.
	StringType = Named("lang.String")
)

// TypeOf derives a descriptor from a Go type. Go kinds that carry a
// primitive kind map to it, slices and arrays map to arrays, pointers are
// dereferenced and everything else is a reference type. Predeclared Go types
// without a primitive kind (int, uint64, ...) live under "builtin.".
func TypeOf(rt reflect.Type) Type {
	return typeOf(rt, make(map[reflect.Type]bool))
}

// typeOf stops at the first type seen twice, so self-referential types
// such as `type T []T` or `type P *P` end as a reference named after it.
func typeOf(rt reflect.Type, seen map[reflect.Type]bool) Type {
	if rt == nil {
		return ObjectType
	}
	for rt.Kind() == reflect.Pointer {
		if seen[rt] {
			return namedOf(rt)
		}
		seen[rt] = true
		rt = rt.Elem()
	}
	if rt.PkgPath() == "" {
		if k, ok := primitiveByGoKind[rt.Kind()]; ok {
			return Primitive(k)
		}
		if rt.Kind() == reflect.String {
			return StringType
		}
	}
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		if seen[rt] {
			return namedOf(rt)
		}
		seen[rt] = true
		return ArrayOf(typeOf(rt.Elem(), seen))
	}
	return namedOf(rt)
}

func namedOf(rt reflect.Type) Type {
	if rt.Name() == "" {
		return Named(rt.String())
	}
	if rt.PkgPath() == "" {
		return Named("builtin." + rt.Name())
	}
	return Named(rt.PkgPath() + "." + rt.Name())
}

// TypeOfValue returns TypeOf the dynamic type of v. A nil v is an ObjectType.
func TypeOfValue(v any) Type {
	if v == nil {
		return ObjectType
	}
	return TypeOf(reflect.TypeOf(v))
}
