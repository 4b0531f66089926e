package face

import (
	"context"
	"fmt"

	"visage.dev/pkg/visage/pkg/driver"
)

// Face is a named binding's definition: a Locator or an Expression.
type Face interface {
	isFace()
}

// Locator describes how to find one control.
type Locator struct {
	Kind  driver.ElementKind
	How   driver.How
	What  string
	Extra any
}

func (Locator) isFace() {}

// Locate builds a Locator. At most one extra argument is used.
func Locate(kind driver.ElementKind, how driver.How, what string, extra ...any) Locator {
	l := Locator{Kind: kind, How: how, What: what}
	if len(extra) > 0 {
		l.Extra = extra[0]
	}

	return l
}

// Group builds a Locator keyed by a single value, such as a radio group
// name.
func Group(kind driver.ElementKind, name string) Locator {
	return Locator{Kind: kind, What: name}
}

// args returns the positional arguments passed to Element.Lookup.
func (l Locator) args() []any {
	if l.How == "" {
		if l.What == "" {
			return []any{string(l.Kind)}
		}

		return []any{l.What}
	}

	args := []any{l.How, l.What}
	if l.Extra != nil {
		args = append(args, l.Extra)
	}

	return args
}

func (l Locator) String() string {
	if l.How == "" {
		return fmt.Sprintf("%s(%q)", l.Kind, l.What)
	}

	return fmt.Sprintf("%s(%s=%q)", l.Kind, l.How, l.What)
}

// Expression computes a control from the base element and call-time
// arguments. It must not depend on registry state.
type Expression func(ctx context.Context, base driver.Element, args ...any) (driver.Control, error)

func (Expression) isFace() {}

// Within returns an Expression that looks up each container in path in
// turn and resolves the last locator inside the innermost one. Every
// intermediate control must also be a driver.Element (a frame, a form).
func Within(path ...Locator) Expression {
	return func(ctx context.Context, base driver.Element, _ ...any) (driver.Control, error) {
		if len(path) == 0 {
			return nil, fmt.Errorf("empty locator path")
		}

		current := base

		for i, loc := range path {
			if loc.How == "" && loc.Extra != nil {
				return nil, fmt.Errorf("%s: extra needs a lookup strategy", loc)
			}

			control, err := current.Lookup(ctx, loc.Kind, loc.args()...)
			if err != nil {
				return nil, err
			}

			if i == len(path)-1 {
				return control, nil
			}

			next, ok := control.(driver.Element)
			if !ok {
				return nil, fmt.Errorf("%s is not a container", loc)
			}

			current = next
		}

		return nil, fmt.Errorf("empty locator path")
	}
}
