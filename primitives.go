package inspectable

import "reflect"

// PrimitiveKind enumerates the nine primitive kinds.
type PrimitiveKind uint8

const (
	Boolean PrimitiveKind = iota + 1
	Byte
	Char
	Double
	Float
	Int
	Long
	Short
	Void
)

type primitiveEntry struct {
	name   string
	boxed  string
	goType reflect.Type
}

// primitiveTable maps every primitive kind to its boxed reference type and
// the Go type carrying its values. It is filled during package
// initialization and only read afterwards.
var primitiveTable = [...]primitiveEntry{
	Boolean: {name: "boolean", boxed: "lang.Boolean", goType: reflect.TypeOf(false)},
	Byte:    {name: "byte", boxed: "lang.Byte", goType: reflect.TypeOf(uint8(0))},
	Char:    {name: "char", boxed: "lang.Character", goType: reflect.TypeOf(uint16(0))},
	Double:  {name: "double", boxed: "lang.Double", goType: reflect.TypeOf(float64(0))},
	Float:   {name: "float", boxed: "lang.Float", goType: reflect.TypeOf(float32(0))},
	Int:     {name: "int", boxed: "lang.Integer", goType: reflect.TypeOf(int32(0))},
	Long:    {name: "long", boxed: "lang.Long", goType: reflect.TypeOf(int64(0))},
	Short:   {name: "short", boxed: "lang.Short", goType: reflect.TypeOf(int16(0))},
	Void:    {name: "void", boxed: "lang.Void", goType: reflect.TypeOf(struct{}{})},
}

var (
	primitiveByName   = indexPrimitives(func(e primitiveEntry) (string, bool) { return e.name, true })
	primitiveByGoKind = indexPrimitives(func(e primitiveEntry) (reflect.Kind, bool) {
		return e.goType.Kind(), e.goType.Kind() != reflect.Struct
	})
)

func indexPrimitives[K comparable](key func(primitiveEntry) (K, bool)) map[K]PrimitiveKind {
	out := make(map[K]PrimitiveKind, len(primitiveTable))
	for k := Boolean; k <= Void; k++ {
		if v, ok := key(primitiveTable[k]); ok {
			out[v] = k
		}
	}
	return out
}

func (k PrimitiveKind) valid() bool { return k >= Boolean && k <= Void }

func (k PrimitiveKind) String() string {
	if !k.valid() {
		return "invalid"
	}
	return primitiveTable[k].name
}

// Boxed returns the boxed reference type of k.
func (k PrimitiveKind) Boxed() Type {
	if !k.valid() {
		return Type{}
	}
	return Named(primitiveTable[k].boxed)
}

// GoType returns the Go type that carries values of kind k.
func (k PrimitiveKind) GoType() reflect.Type {
	if !k.valid() {
		return nil
	}
	return primitiveTable[k].goType
}

// PrimitiveKinds returns the descriptors of the nine primitive kinds in
// declaration order. The slice is a fresh copy on every call.
func PrimitiveKinds() []Type {
	out := make([]Type, 0, len(primitiveTable)-1)
	for k := Boolean; k <= Void; k++ {
		out = append(out, Primitive(k))
	}
	return out
}

// IsPrimitiveKind reports whether t is one of the nine primitive kinds.
func IsPrimitiveKind(t Type) bool {
	k, ok := t.Primitive()
	return ok && k.valid()
}

// Boxed returns the boxed equivalent of a primitive type and t itself otherwise.
func Boxed(t Type) Type {
	if k, ok := t.Primitive(); ok && k.valid() {
		return k.Boxed()
	}
	return t
}
