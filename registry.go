package inspectable

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/gobwas/glob"
)

// Constructor builds a specialized wrapper from a value of type T.
type Constructor[T any] func(value T) (Inspectable, error)

// Factory is a registered constructor with its argument type erased.
// It returns ConstructorMismatchError or ConstructionError on failure and
// never panics.
type Factory func(value any) (Inspectable, error)

type registryEntry struct {
	want    reflect.Type
	factory Factory
}

// Registry maps wrapper identifiers to wrapper constructors.
// Populate it at startup; lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]registryEntry),
	}
}

// Register registers the constructor of the wrapper identified by name.
func Register[T any](r *Registry, name string, ctor Constructor[T]) error {
	if r == nil {
		return fmt.Errorf("register wrapper: registry is nil")
	}
	if name == "" {
		return fmt.Errorf("register wrapper: name is empty")
	}
	if ctor == nil {
		return fmt.Errorf("register wrapper: constructor is nil for %s", name)
	}

	want := reflect.TypeOf((*T)(nil)).Elem()
	entry := registryEntry{
		want: want,
		factory: func(value any) (out Inspectable, err error) {
			typed, ok := value.(T)
			if !ok {
				if value != nil || !nillable(want) {
					return nil, ConstructorMismatchError{
						Name: name,
						Want: want.String(),
						Got:  fmt.Sprintf("%T", value),
					}
				}
			}

			defer func() {
				if p := recover(); p != nil {
					out, err = nil, ConstructionError{Name: name, Err: PanicError{Value: p}}
				}
			}()
			out, err = ctor(typed)
			if err != nil {
				return nil, ConstructionError{Name: name, Err: err}
			}
			if isNilInspectable(out) {
				return nil, ConstructionError{Name: name, Err: fmt.Errorf("constructor returned nil")}
			}
			return out, nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("register wrapper: duplicate wrapper for %s", name)
	}
	r.entries[name] = entry
	return nil
}

// MustRegister panics on registration error; intended for bootstrap code paths.
func MustRegister[T any](r *Registry, name string, ctor Constructor[T]) {
	if err := Register(r, name, ctor); err != nil {
		panic(err)
	}
}

// RegisterFor registers ctor under the wrapper identifier n assigns to t.
func RegisterFor[T any](r *Registry, n Naming, t Type, ctor Constructor[T]) error {
	name, ok := n.WrapperName(t)
	if !ok {
		return fmt.Errorf("register wrapper: %s has no wrapper name", t)
	}
	return Register(r, name, ctor)
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e.factory, ok
}

// ArgumentType returns the Go type the wrapper registered under name accepts.
func (r *Registry) ArgumentType(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e.want, ok
}

// Names returns the sorted wrapper identifiers matching a glob pattern.
// Segments are separated by '.', so "values.lang.*" does not match nested
// names while "values.**" does. An empty pattern matches everything.
func (r *Registry) Names(pattern string) ([]string, error) {
	var g glob.Glob
	if pattern != "" {
		compiled, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("compile name pattern %q: %w", pattern, err)
		}
		g = compiled
	}

	names := r.names()
	if g == nil {
		return names, nil
	}
	matched := names[:0]
	for _, name := range names {
		if g.Match(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// names returns every registered identifier, sorted.
func (r *Registry) names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func isNilInspectable(v Inspectable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return nillable(rv.Type()) && rv.IsNil()
}
