package inspectable

import (
	"fmt"
	"log/slog"
)

// Observer receives every failure Resolve absorbs before falling back.
// err is a WrapperNotFoundError, ConstructorMismatchError or ConstructionError.
type Observer func(t Type, name string, err error)

type Option func(*Resolver)

// WithNaming sets the wrapper naming convention.
func WithNaming(n Naming) Option {
	return func(r *Resolver) { r.naming = n }
}

// WithObserver adds an observer. Observers run synchronously in the
// resolving goroutine, in the order they were added.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithLogger logs absorbed failures at debug level.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		return func(*Resolver) {}
	}
	return WithObserver(func(t Type, name string, err error) {
		logger.Debug("inspectable wrapper fallback",
			slog.String("type", t.String()),
			slog.String("wrapper", name),
			slog.Any("error", err),
		)
	})
}

// Resolver turns (type, value) pairs into Inspectable wrappers.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	registry  *Registry
	naming    Naming
	observers []Observer
}

func New(registry *Registry, opts ...Option) (*Resolver, error) {
	if registry == nil {
		return nil, fmt.Errorf("new resolver: registry is nil")
	}
	r := &Resolver{
		registry: registry,
		naming:   DefaultNaming(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.naming.validate(); err != nil {
		return nil, fmt.Errorf("new resolver: %w", err)
	}
	return r, nil
}

// Naming returns the naming convention in use.
func (r *Resolver) Naming() Naming { return r.naming }

// Registry returns the registry wrappers are looked up in.
func (r *Resolver) Registry() *Registry { return r.registry }

// WrapperName returns the identifier the specialized wrapper for t is
// looked up under.
func (r *Resolver) WrapperName(t Type) (string, bool) {
	return r.naming.WrapperName(t)
}

// Resolve returns the wrapper for value declared as t:
//  1. arrays get an ArrayValue of their element type;
//  2. primitives are replaced by their boxed type;
//  3. the wrapper registered under the boxed type's identifier is built;
//  4. on any lookup or construction failure, an ObjectValue holding value.
//
// Resolve never panics and never returns nil. t must be valid.
func (r *Resolver) Resolve(t Type, value any) Inspectable {
	out, err := r.TryResolve(t, value)
	if err == nil {
		return out
	}
	name, _ := r.naming.WrapperName(t)
	r.notify(t, name, err)
	return NewObjectValue(value)
}

// TryResolve is Resolve without the fallback: it returns the specialized
// wrapper or the reason none could be built.
func (r *Resolver) TryResolve(t Type, value any) (Inspectable, error) {
	if elem, ok := t.Elem(); ok {
		return NewArrayValue(elem, value), nil
	}

	name, ok := r.naming.WrapperName(t)
	if !ok {
		return nil, WrapperNotFoundError{Name: t.String()}
	}
	factory, ok := r.registry.Lookup(name)
	if !ok {
		return nil, WrapperNotFoundError{Name: name}
	}
	return factory(value)
}

// ResolveValue resolves v by its dynamic Go type.
func (r *Resolver) ResolveValue(v any) Inspectable {
	return r.Resolve(TypeOfValue(v), v)
}

func (r *Resolver) notify(t Type, name string, err error) {
	for _, o := range r.observers {
		func() {
			defer func() { _ = recover() }()
			o(t, name, err)
		}()
	}
}
