package inspectable

import "reflect"

// Inspectable is a value holder handed to the inspection layer.
type Inspectable interface {
	// Type returns the type the wrapper represents. For primitives this is
	// the boxed type.
	Type() Type
	// Value returns the wrapped value unchanged.
	Value() any
}

// ObjectValue is the generic wrapper used when no specialized one applies.
type ObjectValue struct {
	value any
}

func NewObjectValue(value any) *ObjectValue {
	return &ObjectValue{value: value}
}

func (v *ObjectValue) Type() Type { return TypeOfValue(v.value) }
func (v *ObjectValue) Value() any { return v.value }

// ArrayValue wraps an array together with its element type.
type ArrayValue struct {
	elem  Type
	value any
}

func NewArrayValue(elem Type, value any) *ArrayValue {
	return &ArrayValue{elem: elem, value: value}
}

func (v *ArrayValue) Type() Type { return ArrayOf(v.elem) }
func (v *ArrayValue) Value() any { return v.value }

// Elem returns the element type. For multi-dimensional arrays it is itself
// an array type.
func (v *ArrayValue) Elem() Type { return v.elem }

// Len returns the number of elements when the value is a Go slice or array,
// and 0 otherwise.
func (v *ArrayValue) Len() int {
	rv := reflect.ValueOf(v.value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return 0
}
