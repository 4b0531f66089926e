package face

import (
	"context"
	"fmt"

	"visage.dev/pkg/visage/pkg/driver"
)

// Scope operations reachable through Call by name.
const (
	OpSpray       = "spray"
	OpScrape      = "scrape"
	OpGetFace     = "get_face"
	OpBaseElement = "base_element"
	OpDriver      = "driver"
)

// Face invokes the accessor bound to name, forwarding args to an
// Expression.
func (s *Scope) Face(ctx context.Context, name string, args ...any) (driver.Control, error) {
	accessor, ok := s.registry.Accessor(name)
	if !ok {
		return nil, &UnknownFaceError{Name: name}
	}

	s.logger.Debug("resolving face", "name", name, "args", len(args))

	control, err := accessor(ctx, s, args...)
	if err != nil {
		return nil, err
	}

	if control == nil {
		return nil, fmt.Errorf("face %q resolved to no control", name)
	}

	return control, nil
}

// GetFace is the explicit lookup: an unregistered name is an
// *UnknownFaceError and never reaches the driver.
func (s *Scope) GetFace(ctx context.Context, name string) (driver.Control, error) {
	if !s.registry.Has(name) {
		return nil, &UnknownFaceError{Name: name}
	}

	return s.Face(ctx, name)
}

// Get is shorthand for GetFace.
func (s *Scope) Get(ctx context.Context, name string) (driver.Control, error) {
	return s.GetFace(ctx, name)
}

// Responds reports whether Call(op) would find a target without trying
// to resolve anything. It may fetch the base element.
func (s *Scope) Responds(ctx context.Context, op string) bool {
	if s.registry.Has(op) || isScopeOperation(op) {
		return true
	}

	if base, err := s.BaseElement(ctx); err == nil && base.Supports(op) {
		return true
	}

	if d, err := s.Driver(); err == nil {
		if operator, ok := d.(driver.Operator); ok && operator.Supports(op) {
			return true
		}
	}

	return false
}

// Call dispatches op by name. Registered faces come first, then the
// scope's own operations, then the base element and finally the driver,
// each only if it reports support for op. Results of forwarded
// operations are returned unchanged.
func (s *Scope) Call(ctx context.Context, op string, args ...any) (any, error) {
	if s.registry.Has(op) {
		return s.Face(ctx, op, args...)
	}

	if isScopeOperation(op) {
		return s.callScopeOperation(ctx, op, args...)
	}

	base, err := s.BaseElement(ctx)
	if err != nil {
		return nil, err
	}

	if base.Supports(op) {
		s.logger.Debug("forwarding to base element", "op", op)
		return base.Invoke(ctx, op, args...)
	}

	d, err := s.Driver()
	if err == nil {
		if operator, ok := d.(driver.Operator); ok && operator.Supports(op) {
			s.logger.Debug("forwarding to driver", "op", op)
			return operator.Invoke(ctx, op, args...)
		}
	}

	return nil, &UnknownOperationError{Operation: op}
}

func isScopeOperation(op string) bool {
	switch op {
	case OpSpray, OpScrape, OpGetFace, OpBaseElement, OpDriver:
		return true
	}

	return false
}

func (s *Scope) callScopeOperation(ctx context.Context, op string, args ...any) (any, error) {
	switch op {
	case OpSpray:
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: expected 1 argument, got %d", op, len(args))
		}

		fields, ok := args[0].(Fields)
		if !ok {
			return nil, fmt.Errorf("%s: expected Fields, got %T", op, args[0])
		}

		return nil, s.Spray(ctx, fields)
	case OpScrape:
		names := make([]string, 0, len(args))

		for _, arg := range args {
			name, ok := arg.(string)
			if !ok {
				return nil, fmt.Errorf("%s: names must be strings, got %T", op, arg)
			}

			names = append(names, name)
		}

		return s.Scrape(ctx, names...)
	case OpGetFace:
		name, err := driver.StringArg(args, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return s.GetFace(ctx, name)
	case OpBaseElement:
		return s.BaseElement(ctx)
	case OpDriver:
		return s.Driver()
	}

	return nil, &UnknownOperationError{Operation: op}
}
