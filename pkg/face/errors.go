package face

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid face definition")
	// ErrUnknownFace matches every *UnknownFaceError.
	ErrUnknownFace = errors.New("unknown face")
	// ErrUnknownOperation matches every *UnknownOperationError.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrNoDriver is returned when a scope has no injected driver and no
	// default driver is set.
	ErrNoDriver = errors.New("no driver configured")
)

// ConfigurationError reports a definition that is neither a Locator nor an
// Expression.
type ConfigurationError struct {
	Name       string
	Definition any
	Reason     string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("face %q: %s", e.Name, e.Reason)
	}

	return fmt.Sprintf("face %q: definition of type %T is neither a locator nor an expression", e.Name, e.Definition)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnknownFaceError reports an explicit lookup of an unregistered name.
type UnknownFaceError struct {
	Name string
}

func (e *UnknownFaceError) Error() string {
	return fmt.Sprintf("unknown face %q", e.Name)
}

func (e *UnknownFaceError) Unwrap() error { return ErrUnknownFace }

// UnknownOperationError reports an operation that is neither a face, a
// scope operation nor supported by the base element or driver.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Operation)
}

func (e *UnknownOperationError) Unwrap() error { return ErrUnknownOperation }
