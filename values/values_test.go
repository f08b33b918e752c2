package values

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/chenyanchen/inspectable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, opts ...inspectable.Option) *inspectable.Resolver {
	t.Helper()
	r, err := NewResolver(opts...)
	require.NoError(t, err)
	return r
}

func TestResolveIntBoxesToInteger(t *testing.T) {
	r := newResolver(t)

	got := r.Resolve(inspectable.Primitive(inspectable.Int), int32(5))
	box, ok := got.(*Box[int32])
	require.True(t, ok, "want *Box[int32], got %T", got)
	assert.Equal(t, inspectable.Named("lang.Integer"), box.Type())
	v, ok := box.Get()
	assert.True(t, ok)
	assert.Equal(t, int32(5), v)

	untyped := r.Resolve(inspectable.Primitive(inspectable.Int), 5)
	require.IsType(t, &Box[int32]{}, untyped)
	assert.Equal(t, int32(5), untyped.Value())
}

func TestEveryPrimitiveHasBoxedWrapper(t *testing.T) {
	r := newResolver(t)

	for _, p := range inspectable.PrimitiveKinds() {
		k, _ := p.Primitive()
		var value any
		if k != inspectable.Void {
			value = reflect.Zero(k.GoType()).Interface()
		}

		got, err := r.TryResolve(p, value)
		require.NoError(t, err, p.String())
		assert.Equal(t, inspectable.Boxed(p), got.Type(), p.String())
		assert.Equal(t, value, got.Value(), p.String())
	}
}

func TestResolveArray(t *testing.T) {
	r := newResolver(t)

	arr := []int32{1, 2, 3}
	got := r.Resolve(inspectable.ArrayOf(inspectable.Primitive(inspectable.Int)), arr)
	av, ok := got.(*inspectable.ArrayValue)
	require.True(t, ok, "want *ArrayValue, got %T", got)
	assert.Equal(t, inspectable.Primitive(inspectable.Int), av.Elem())
	assert.Equal(t, arr, av.Value())
}

func TestResolveUnregisteredReference(t *testing.T) {
	var observed error
	r := newResolver(t, inspectable.WithObserver(func(_ inspectable.Type, _ string, err error) {
		observed = err
	}))

	got := r.Resolve(inspectable.Named("app.Greeting"), "hello")
	ov, ok := got.(*inspectable.ObjectValue)
	require.True(t, ok, "want *ObjectValue, got %T", got)
	assert.Equal(t, "hello", ov.Value())

	var notFound inspectable.WrapperNotFoundError
	require.ErrorAs(t, observed, &notFound)
	assert.Equal(t, "values.app.GreetingValue", notFound.Name)
}

func TestResolveString(t *testing.T) {
	r := newResolver(t)

	got := r.ResolveValue("héllo")
	sv, ok := got.(*StringValue)
	require.True(t, ok, "want *StringValue, got %T", got)
	assert.Equal(t, 5, sv.Len())
	assert.Equal(t, "héllo", sv.String())
}

func TestVoidRejectsValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newResolver(t, inspectable.WithLogger(logger))

	void := inspectable.Primitive(inspectable.Void)
	assert.IsType(t, VoidValue{}, r.Resolve(void, nil))

	got := r.Resolve(void, struct{}{})
	assert.IsType(t, &inspectable.ObjectValue{}, got)
	assert.Equal(t, struct{}{}, got.Value())
	assert.Contains(t, buf.String(), "wrapper=values.lang.VoidValue")

	_, err := r.TryResolve(void, 1)
	var ce inspectable.ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.True(t, errors.Is(err, ErrVoidValue))
}

func TestNilPrimitiveIsEmptyBox(t *testing.T) {
	r := newResolver(t)

	for _, p := range inspectable.PrimitiveKinds() {
		got, err := r.TryResolve(p, nil)
		require.NoError(t, err, p.String())
		assert.Equal(t, inspectable.Boxed(p), got.Type(), p.String())
		assert.Nil(t, got.Value(), p.String())
	}

	long := r.Resolve(inspectable.Primitive(inspectable.Long), nil)
	box, ok := long.(*Box[int64])
	require.True(t, ok, "want *Box[int64], got %T", long)
	assert.Equal(t, inspectable.Named("lang.Long"), box.Type())
	_, present := box.Get()
	assert.False(t, present)
}

func TestPrimitiveConversion(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name  string
		kind  inspectable.PrimitiveKind
		value any
		want  any
	}{
		{name: "int to double", kind: inspectable.Double, value: 1, want: float64(1)},
		{name: "float64 to float", kind: inspectable.Float, value: 1.5, want: float32(1.5)},
		{name: "int to long", kind: inspectable.Long, value: -7, want: int64(-7)},
		{name: "uint to short", kind: inspectable.Short, value: uint(300), want: int16(300)},
		{name: "rune to char", kind: inspectable.Char, value: 'a', want: uint16('a')},
		{name: "int to byte", kind: inspectable.Byte, value: 255, want: uint8(255)},
		{name: "named bool", kind: inspectable.Boolean, value: flag(true), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TryResolve(inspectable.Primitive(tt.kind), tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.kind.Boxed(), got.Type())
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

type flag bool

func TestPrimitiveConversionRejectsLoss(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name  string
		kind  inspectable.PrimitiveKind
		value any
	}{
		{name: "overflow int", kind: inspectable.Int, value: int64(1) << 40},
		{name: "negative byte", kind: inspectable.Byte, value: -1},
		{name: "overflow short", kind: inspectable.Short, value: uint64(1) << 63},
		{name: "fraction to int", kind: inspectable.Int, value: 1.5},
		{name: "overflow float", kind: inspectable.Float, value: 1e300},
		{name: "string to int", kind: inspectable.Int, value: "5"},
		{name: "int to boolean", kind: inspectable.Boolean, value: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.TryResolve(inspectable.Primitive(tt.kind), tt.value)
			require.ErrorIs(t, err, ErrNotConvertible)

			got := r.Resolve(inspectable.Primitive(tt.kind), tt.value)
			assert.IsType(t, &inspectable.ObjectValue{}, got)
			assert.Equal(t, tt.value, got.Value())
		})
	}
}

func TestRegisterWithCustomNaming(t *testing.T) {
	naming := inspectable.Naming{Namespace: "joi.values", Suffix: "Value"}
	r := newResolver(t, inspectable.WithNaming(naming))

	names, err := r.Registry().Names("joi.values.lang.*")
	require.NoError(t, err)
	assert.Len(t, names, 10)

	assert.Error(t, Register(r.Registry(), naming), "second registration collides")
}
