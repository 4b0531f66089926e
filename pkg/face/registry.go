package face

import (
	"context"

	"visage.dev/pkg/visage/pkg/driver"
)

// Accessor resolves one registered name against a scope. Accessors are
// built once, when the name is registered.
type Accessor func(ctx context.Context, s *Scope, args ...any) (driver.Control, error)

// Binding is one name→definition pair for RegisterMany.
type Binding struct {
	Name       string
	Definition any
}

// Bindings is an ordered list of definitions.
type Bindings []Binding

type entry struct {
	face     Face
	accessor Accessor
}

// Registry is an ordered mapping from names to faces. It is not safe for
// concurrent mutation: finish registering before resolving.
type Registry struct {
	entries map[string]entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register binds name to definition, replacing any previous binding. The
// definition must be a Locator, a non-nil *Locator or an Expression
// (or a plain func with the Expression signature).
func (r *Registry) Register(name string, definition any) error {
	f, err := normalize(name, definition)
	if err != nil {
		return err
	}

	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}

	r.entries[name] = entry{face: f, accessor: bind(f)}

	return nil
}

// RegisterMany registers bindings in order. It stops at the first invalid
// definition; bindings before it stay registered.
func (r *Registry) RegisterMany(bindings Bindings) error {
	for _, b := range bindings {
		if err := r.Register(b.Name, b.Definition); err != nil {
			return err
		}
	}

	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Lookup returns the face registered under name.
func (r *Registry) Lookup(name string) (Face, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	return e.face, true
}

// Accessor returns the accessor bound to name.
func (r *Registry) Accessor(name string) (Accessor, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	return e.accessor, true
}

// Names returns registered names in first-registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Extend returns a copy of r for a derived scope. Later registrations on
// either registry are invisible to the other.
func (r *Registry) Extend() *Registry {
	child := &Registry{
		entries: make(map[string]entry, len(r.entries)),
		order:   make([]string, len(r.order)),
	}

	copy(child.order, r.order)

	for name, e := range r.entries {
		child.entries[name] = e
	}

	return child
}

func normalize(name string, definition any) (Face, error) {
	if name == "" {
		return nil, &ConfigurationError{Name: name, Definition: definition, Reason: "empty name"}
	}

	switch def := definition.(type) {
	case Locator:
		if def.Kind == "" {
			return nil, &ConfigurationError{Name: name, Definition: definition, Reason: "locator without element kind"}
		}

		if def.How == "" && def.Extra != nil {
			return nil, &ConfigurationError{Name: name, Definition: definition, Reason: "extra needs a lookup strategy"}
		}

		return def, nil
	case *Locator:
		if def == nil {
			break
		}

		return normalize(name, *def)
	case Expression:
		if def == nil {
			break
		}

		return def, nil
	case func(context.Context, driver.Element, ...any) (driver.Control, error):
		if def == nil {
			break
		}

		return Expression(def), nil
	}

	return nil, &ConfigurationError{Name: name, Definition: definition}
}

func bind(f Face) Accessor {
	return func(ctx context.Context, s *Scope, args ...any) (driver.Control, error) {
		base, err := s.BaseElement(ctx)
		if err != nil {
			return nil, err
		}

		return Resolve(ctx, base, f, args...)
	}
}
