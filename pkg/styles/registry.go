// Package styles is the registry of named background styles.
//
// A style pairs a background [scene.Gradient] with a [patterns.Pattern].
// The registry is a lookup table, so adding a style never touches the
// dispatcher:
//
//	reg := styles.Default()
//	d, err := reg.Resolve("ai_neural")
//
// [Default] holds the ten built-in styles in display order.
package styles

import (
	"slices"
	"sync"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/patterns"
	"github.com/matzehuels/backdrop/pkg/scene"
)

// Descriptor is one registry entry.
type Descriptor struct {
	Key        string
	Title      string
	Background scene.Gradient
	Pattern    patterns.Pattern
}

// Registry maps style keys to descriptors. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	order []string
	byKey map[string]Descriptor
}

// New builds a registry from descs, keeping their order. It rejects empty or
// malformed keys, duplicates, missing patterns and invalid gradients.
func New(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(descs)),
		byKey: make(map[string]Descriptor, len(descs)),
	}
	for _, d := range descs {
		if err := errs.ValidateStyleKey(d.Key); err != nil {
			return nil, err
		}
		if _, dup := r.byKey[d.Key]; dup {
			return nil, errs.New(errs.ErrCodeInvalidStyle, "duplicate style key %q", d.Key)
		}
		if d.Pattern == nil {
			return nil, errs.New(errs.ErrCodeInvalidStyle, "style %q has no pattern", d.Key)
		}
		if err := d.Background.Validate(); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidStyle, err, "style %q background", d.Key)
		}
		r.order = append(r.order, d.Key)
		r.byKey[d.Key] = d
	}
	return r, nil
}

// Resolve returns the descriptor for key, or an UNKNOWN_STYLE error.
func (r *Registry) Resolve(key string) (Descriptor, error) {
	d, ok := r.byKey[key]
	if !ok {
		return Descriptor{}, errs.New(errs.ErrCodeUnknownStyle, "unknown style %q", key)
	}
	return d, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.order)
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.order))
	for i, k := range r.order {
		out[i] = r.byKey[k]
	}
	return out
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	return len(r.order)
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry of built-in styles. It is built once.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(builtins()...)
		if err != nil {
			panic("styles: invalid built-in registry: " + err.Error())
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
