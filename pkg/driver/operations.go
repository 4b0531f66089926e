package driver

import (
	"context"
	"fmt"
	"sort"
)

// Operation is one named low-level operation of an element or driver.
type Operation func(ctx context.Context, args ...any) (any, error)

// Operations is a name→operation table implementing Operator.
type Operations map[string]Operation

// Supports implements Operator.
func (o Operations) Supports(op string) bool {
	_, ok := o[op]
	return ok
}

// Invoke implements Operator. Callers are expected to check Supports first.
func (o Operations) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	fn, ok := o[op]
	if !ok {
		return nil, fmt.Errorf("operation %q not supported", op)
	}

	return fn(ctx, args...)
}

// Names returns the operation names in sorted order.
func (o Operations) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// StringArg returns args[i] as a string.
func StringArg(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}

	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d must be a string, got %T", i, args[i])
	}

	return s, nil
}
