// Package driver defines the capability visage expects from a browser
// automation backend: a root element, kind-named element lookups below it,
// and verb operations on the controls those lookups return.
//
// Backends live in sub-packages (pwdriver, cdpdriver, htmldriver). Errors
// returned by a backend are passed to callers untouched.
package driver

import "context"

// Driver is a handle to one live UI, typically a browser page.
type Driver interface {
	// Root returns the element every lookup starts from by default.
	Root(ctx context.Context) (Element, error)
}

// Operator exposes named low-level operations with an existence predicate,
// so callers can check before forwarding instead of failing on a missing
// method.
type Operator interface {
	Supports(op string) bool
	Invoke(ctx context.Context, op string, args ...any) (any, error)
}

// Element is a container controls can be looked up in: the page root, a
// frame or any sub-container.
type Element interface {
	Operator

	// Lookup finds one control of the given kind. args is either a single
	// value (e.g. a radio group name) or a strategy followed by a value and
	// an optional extra argument.
	Lookup(ctx context.Context, kind ElementKind, args ...any) (Control, error)
}

// Control is a resolved, live UI control.
type Control interface {
	Kind() ControlKind
	// Set is the write operation. Accepted values depend on the kind.
	Set(ctx context.Context, value any) error
	// Value is the generic read.
	Value(ctx context.Context) (any, error)
	// Selected reads the chosen option(s) of a choice group.
	Selected(ctx context.Context) (any, error)
}
