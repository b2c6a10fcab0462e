package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/promptline/pkg/errors"
)

// Registry maps names to items of one kind. The kind ("module") is only
// used to make error messages readable.
type Registry[T any] struct {
	mu       sync.RWMutex
	kind     string
	notFound errors.ErrorCode
	items    map[string]T
}

// New creates an empty registry. Lookups of unknown names fail with
// notFound.
func New[T any](kind string, notFound errors.ErrorCode) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		notFound: notFound,
		items:    make(map[string]T),
	}
}

// Register adds an item under name. Names are unique.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s '%s' is already registered", r.kind, name).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

// Get returns the item registered under name
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(r.notFound, "unknown %s '%s'", r.kind, name).
			WithDetail("name", name)
	}
	return item, nil
}

// Unregister removes name; removing an unknown name is a no-op
func (r *Registry[T]) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, name)
}

// Has reports whether name is registered
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.items[name]
	return exists
}

// List returns all registered names, sorted
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered items
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// MustRegister registers an item and panics on failure. Registration
// errors in init() are programming errors.
func (r *Registry[T]) MustRegister(name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s %s: %v", r.kind, name, err))
	}
}
