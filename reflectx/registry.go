package reflectx

import (
	"reflect"
	"slices"
	"sync"
)

// Registry maps names to types so values can be created by name.
// The zero value is ready to use. A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// Register associates name with t. It is idempotent for the same
// (name, type) pair.
func (r *Registry) Register(name string, t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.types[name]; ok {
		if old == t {
			return nil
		}
		return ErrConflictingRegistration
	}
	if r.types == nil {
		r.types = make(map[string]reflect.Type)
	}
	r.types[name] = t
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// NewByName returns a pointer to a new zero value of the type registered
// under name.
func (r *Registry) NewByName(name string) (any, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, &InstanceCreationError{Type: name, Err: ErrUnknownType}
	}
	return New(t)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// RegisterType registers T under its canonical name, e.g.
// "github.com/foo/bar.User".
func RegisterType[T any](r *Registry) (string, error) {
	t := reflect.TypeFor[T]()
	name := CanonicalName(t)
	return name, r.Register(name, t)
}

// CanonicalName returns the package-qualified name of t, or its string form
// when t is unnamed.
func CanonicalName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
