package reload

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chenyanchen/inspectable"
)

// Rename records a type whose wrapper identifier moved across a reload.
type Rename struct {
	Type inspectable.Type
	From string
	To   string
}

// Result describes the outcome of one reload.
type Result struct {
	Changed  bool     // Config hash differs; the resolver was swapped.
	Previous string   // Hash of the config before the reload.
	Next     string   // Hash of the config after the reload.
	Renamed  []Rename // Primitive kinds in declaration order.
	// Unregistered lists primitive kinds whose new identifier has no wrapper
	// in the registry; they resolve to the generic fallback from now on.
	Unregistered []inspectable.Type
}

// Reloader keeps the active resolver and swaps it when the config changes.
// Every resolver it builds shares one registry.
type Reloader struct {
	registry *inspectable.Registry
	extra    []inspectable.Option

	mu      sync.RWMutex
	current *inspectable.Resolver
	hash    string
}

// New builds the initial resolver from cfg. extra options are applied to
// every resolver after the config's own options.
func New(registry *inspectable.Registry, cfg inspectable.Config, extra ...inspectable.Option) (*Reloader, error) {
	if registry == nil {
		return nil, fmt.Errorf("new reloader: registry is nil")
	}
	r := &Reloader{
		registry: registry,
		extra:    extra,
	}
	current, hash, err := r.build(cfg)
	if err != nil {
		return nil, err
	}
	r.current = current
	r.hash = hash
	return r, nil
}

// Current returns the active resolver.
func (r *Reloader) Current() *inspectable.Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Reload switches to a resolver built from cfg. On error the current
// resolver stays active.
func (r *Reloader) Reload(cfg inspectable.Config) (Result, error) {
	next, hash, err := r.build(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("build next resolver: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := Result{Previous: r.hash, Next: hash}
	if hash == r.hash {
		return result, nil
	}
	result.Changed = true

	for _, t := range inspectable.PrimitiveKinds() {
		from, _ := r.current.WrapperName(t)
		to, _ := next.WrapperName(t)
		if from != to {
			result.Renamed = append(result.Renamed, Rename{Type: t, From: from, To: to})
		}
		if _, ok := r.registry.Lookup(to); !ok {
			result.Unregistered = append(result.Unregistered, t)
		}
	}

	r.current = next
	r.hash = hash
	return result, nil
}

func (r *Reloader) build(cfg inspectable.Config) (*inspectable.Resolver, string, error) {
	normalized := cfg.Normalized()
	hash, err := hashConfig(normalized)
	if err != nil {
		return nil, "", fmt.Errorf("hash config: %w", err)
	}
	opts := append(normalized.Options(), r.extra...)
	res, err := inspectable.New(r.registry, opts...)
	if err != nil {
		return nil, "", err
	}
	return res, hash, nil
}

func hashConfig(cfg inspectable.Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
