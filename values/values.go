package values

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/chenyanchen/inspectable"
)

// Box is the specialized wrapper of a boxed primitive type. A Box built
// from nil is empty: Value returns nil and Get reports false.
type Box[T any] struct {
	typ     inspectable.Type
	value   T
	present bool
}

func (b *Box[T]) Type() inspectable.Type { return b.typ }

func (b *Box[T]) Value() any {
	if !b.present {
		return nil
	}
	return b.value
}

func (b *Box[T]) Get() (T, bool) { return b.value, b.present }

// ErrNotConvertible is returned when a value cannot become the Go type
// carrying a primitive kind without loss.
var ErrNotConvertible = errors.New("value not convertible")

func boxOf[T any](k inspectable.PrimitiveKind) inspectable.Constructor[any] {
	typ := k.Boxed()
	return func(value any) (inspectable.Inspectable, error) {
		if value == nil {
			return &Box[T]{typ: typ}, nil
		}
		if v, ok := value.(T); ok {
			return &Box[T]{typ: typ, value: v, present: true}, nil
		}
		converted, ok := convert(reflect.ValueOf(value), k.GoType())
		if !ok {
			return nil, fmt.Errorf("box %T as %s: %w", value, typ, ErrNotConvertible)
		}
		return &Box[T]{typ: typ, value: converted.Interface().(T), present: true}, nil
	}
}

// convert converts v to the bool, integer or float type to, refusing
// anything that would overflow or drop a fraction.
func convert(v reflect.Value, to reflect.Type) (reflect.Value, bool) {
	switch to.Kind() {
	case reflect.Bool:
		if v.Kind() == reflect.Bool {
			return v.Convert(to), true
		}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch {
		case v.CanInt():
			n := v.Int()
			if !reflect.Zero(to).OverflowInt(n) {
				return reflect.ValueOf(n).Convert(to), true
			}
		case v.CanUint():
			n := v.Uint()
			if n <= math.MaxInt64 && !reflect.Zero(to).OverflowInt(int64(n)) {
				return reflect.ValueOf(n).Convert(to), true
			}
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch {
		case v.CanInt():
			n := v.Int()
			if n >= 0 && !reflect.Zero(to).OverflowUint(uint64(n)) {
				return reflect.ValueOf(n).Convert(to), true
			}
		case v.CanUint():
			n := v.Uint()
			if !reflect.Zero(to).OverflowUint(n) {
				return reflect.ValueOf(n).Convert(to), true
			}
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		switch {
		case v.CanInt():
			f = float64(v.Int())
		case v.CanUint():
			f = float64(v.Uint())
		case v.CanFloat():
			f = v.Float()
		default:
			return reflect.Value{}, false
		}
		if !reflect.Zero(to).OverflowFloat(f) {
			return reflect.ValueOf(f).Convert(to), true
		}
	}
	return reflect.Value{}, false
}

// ErrVoidValue is returned when a void wrapper is asked to hold a value.
var ErrVoidValue = errors.New("void holds no value")

// VoidValue is the wrapper of lang.Void. It only ever holds nil.
type VoidValue struct{}

func NewVoidValue(value any) (inspectable.Inspectable, error) {
	if value != nil {
		return nil, fmt.Errorf("new void value from %T: %w", value, ErrVoidValue)
	}
	return VoidValue{}, nil
}

func (VoidValue) Type() inspectable.Type { return inspectable.Void.Boxed() }
func (VoidValue) Value() any             { return nil }

// StringValue is the wrapper of lang.String.
type StringValue struct {
	value string
}

func NewStringValue(value string) (inspectable.Inspectable, error) {
	return &StringValue{value: value}, nil
}

func (s *StringValue) Type() inspectable.Type { return inspectable.StringType }
func (s *StringValue) Value() any             { return s.value }
func (s *StringValue) String() string         { return s.value }

// Len returns the length in runes.
func (s *StringValue) Len() int { return utf8.RuneCountInString(s.value) }

// Register registers every built-in wrapper in reg under naming n.
func Register(reg *inspectable.Registry, n inspectable.Naming) error {
	regs := []func() error{
		func() error { return registerBox[bool](reg, n, inspectable.Boolean) },
		func() error { return registerBox[uint8](reg, n, inspectable.Byte) },
		func() error { return registerBox[uint16](reg, n, inspectable.Char) },
		func() error { return registerBox[float64](reg, n, inspectable.Double) },
		func() error { return registerBox[float32](reg, n, inspectable.Float) },
		func() error { return registerBox[int32](reg, n, inspectable.Int) },
		func() error { return registerBox[int64](reg, n, inspectable.Long) },
		func() error { return registerBox[int16](reg, n, inspectable.Short) },
		func() error {
			return inspectable.RegisterFor[any](reg, n, inspectable.Primitive(inspectable.Void), NewVoidValue)
		},
		func() error { return inspectable.RegisterFor[string](reg, n, inspectable.StringType, NewStringValue) },
	}

	var errs []error
	for _, register := range regs {
		if err := register(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func registerBox[T any](reg *inspectable.Registry, n inspectable.Naming, k inspectable.PrimitiveKind) error {
	return inspectable.RegisterFor[any](reg, n, inspectable.Primitive(k), boxOf[T](k))
}

// NewResolver returns a resolver over a fresh registry holding the
// built-in wrappers. The registry uses the naming given in opts.
func NewResolver(opts ...inspectable.Option) (*inspectable.Resolver, error) {
	reg := inspectable.NewRegistry()
	r, err := inspectable.New(reg, opts...)
	if err != nil {
		return nil, err
	}
	if err := Register(reg, r.Naming()); err != nil {
		return nil, fmt.Errorf("register built-in wrappers: %w", err)
	}
	return r, nil
}
