// Package drivertest provides an in-memory, recording implementation of
// the driver interfaces for tests.
package drivertest

import (
	"context"
	"errors"
	"fmt"

	"visage.dev/pkg/visage/pkg/driver"
)

// ErrNotFound is returned by Element.Lookup when nothing was put under the
// requested kind and arguments.
var ErrNotFound = errors.New("drivertest: element not found")

// Key builds the lookup key for kind and args.
func Key(kind driver.ElementKind, args ...any) string {
	return fmt.Sprintf("%s%v", kind, args)
}

// Driver is a fake driver. It also implements driver.Operator through Ops.
type Driver struct {
	RootElement *Element
	RootErr     error
	RootCalls   int
	Ops         driver.Operations
}

// New returns a driver whose root element is empty.
func New() *Driver {
	return &Driver{RootElement: NewElement("root")}
}

// Root implements driver.Driver.
func (d *Driver) Root(_ context.Context) (driver.Element, error) {
	d.RootCalls++
	if d.RootErr != nil {
		return nil, d.RootErr
	}

	return d.RootElement, nil
}

// Supports implements driver.Operator.
func (d *Driver) Supports(op string) bool {
	return d.Ops.Supports(op)
}

// Invoke implements driver.Operator.
func (d *Driver) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	return d.Ops.Invoke(ctx, op, args...)
}

// LookupCall records one Element.Lookup call.
type LookupCall struct {
	Kind driver.ElementKind
	Args []any
}

// Element is a fake container.
type Element struct {
	Name      string
	Ops       driver.Operations
	LookupErr error
	Lookups   []LookupCall

	controls map[string]driver.Control
}

// NewElement returns an empty element.
func NewElement(name string) *Element {
	return &Element{
		Name:     name,
		Ops:      driver.Operations{},
		controls: make(map[string]driver.Control),
	}
}

// Put makes Lookup(kind, args...) return control.
func (e *Element) Put(control driver.Control, kind driver.ElementKind, args ...any) {
	e.controls[Key(kind, args...)] = control
}

// Lookup implements driver.Element.
func (e *Element) Lookup(_ context.Context, kind driver.ElementKind, args ...any) (driver.Control, error) {
	e.Lookups = append(e.Lookups, LookupCall{Kind: kind, Args: args})

	if e.LookupErr != nil {
		return nil, e.LookupErr
	}

	control, ok := e.controls[Key(kind, args...)]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, Key(kind, args...), e.Name)
	}

	return control, nil
}

// Supports implements driver.Operator.
func (e *Element) Supports(op string) bool {
	return e.Ops.Supports(op)
}

// Invoke implements driver.Operator.
func (e *Element) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	return e.Ops.Invoke(ctx, op, args...)
}

// Control is a fake control that records writes and reads.
type Control struct {
	ControlKind driver.ControlKind
	Current     any
	Choice      any
	SetErr      error
	ReadErr     error

	Writes        []any
	ValueCalls    int
	SelectedCalls int
}

// NewControl returns a control of kind holding value.
func NewControl(kind driver.ControlKind, value any) *Control {
	return &Control{ControlKind: kind, Current: value}
}

// Kind implements driver.Control.
func (c *Control) Kind() driver.ControlKind {
	return c.ControlKind
}

// Set implements driver.Control.
func (c *Control) Set(_ context.Context, value any) error {
	c.Writes = append(c.Writes, value)
	if c.SetErr != nil {
		return c.SetErr
	}

	c.Current = value

	return nil
}

// Value implements driver.Control.
func (c *Control) Value(_ context.Context) (any, error) {
	c.ValueCalls++
	return c.Current, c.ReadErr
}

// Selected implements driver.Control.
func (c *Control) Selected(_ context.Context) (any, error) {
	c.SelectedCalls++
	return c.Choice, c.ReadErr
}

// Frame is a control that is also a container.
type Frame struct {
	*Element
	*Control
}

// NewFrame returns an empty frame.
func NewFrame(name string) *Frame {
	return &Frame{Element: NewElement(name), Control: NewControl(driver.KindFrame, nil)}
}
