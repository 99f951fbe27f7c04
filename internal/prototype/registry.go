// Package prototype implements a discriminator-keyed registry of template
// objects that hands out independent clones on request.
package prototype

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrNotFound is returned by GetPrototype and Clone when nothing is registered
// under the requested discriminator.
var ErrNotFound = errors.New("prototype not found")

// NotFoundError reports the discriminator that had no registered prototype.
type NotFoundError struct {
	Type any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNotFound, e.Type)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Prototype is an entity tagged with a fixed discriminator that can produce
// an independently owned copy of itself.
//
// Clone must return a new instance whose fields equal the receiver's and
// whose discriminator is unchanged. Any reference-typed field must be
// deep-copied so the clone shares no mutable storage with its source.
type Prototype[K comparable, T any] interface {
	Type() K
	Clone() T
}

// Registry maps each discriminator to at most one prototype. Registering a
// second prototype under a used discriminator replaces the first.
//
// The registry keeps a reference to each registered prototype; callers keep
// theirs too. A Registry is safe for concurrent use.
type Registry[K comparable, T Prototype[K, T]] struct {
	mu         sync.RWMutex
	prototypes map[K]T
	order      []K
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, T Prototype[K, T]]() *Registry[K, T] {
	return &Registry[K, T]{
		prototypes: make(map[K]T),
	}
}

// AddPrototype stores p under p.Type(), overwriting any previous entry.
func (r *Registry[K, T]) AddPrototype(p T) {
	k := p.Type()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prototypes[k]; !ok {
		r.order = append(r.order, k)
	}
	r.prototypes[k] = p
}

// GetPrototype returns the prototype registered under k.
func (r *Registry[K, T]) GetPrototype(k K) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prototypes[k]
	if !ok {
		var zero T
		return zero, &NotFoundError{Type: k}
	}
	return p, nil
}

// Clone returns a fresh copy of the prototype registered under k.
func (r *Registry[K, T]) Clone(k K) (T, error) {
	p, err := r.GetPrototype(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Clone(), nil
}

// Types returns the registered discriminators in registration order.
func (r *Registry[K, T]) Types() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Len returns the number of registered prototypes.
func (r *Registry[K, T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prototypes)
}

// SortedTypes returns the registered discriminators of r in ascending order.
func SortedTypes[K cmp.Ordered, T Prototype[K, T]](r *Registry[K, T]) []K {
	types := r.Types()
	slices.Sort(types)
	return types
}
