package face

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"visage.dev/pkg/visage/pkg/driver"
)

var (
	defaultDriverMu sync.RWMutex
	defaultDriver   driver.Driver
)

// SetDefaultDriver installs the process-wide driver used by scopes created
// without WithDriver. Set it once, before the first scope resolves a name.
func SetDefaultDriver(d driver.Driver) {
	defaultDriverMu.Lock()
	defer defaultDriverMu.Unlock()

	defaultDriver = d
}

// DefaultDriver returns the process-wide driver, or nil.
func DefaultDriver() driver.Driver {
	defaultDriverMu.RLock()
	defer defaultDriverMu.RUnlock()

	return defaultDriver
}

// ResetDefaultDriver clears the process-wide driver.
func ResetDefaultDriver() {
	SetDefaultDriver(nil)
}

// Option configures a Scope.
type Option func(*Scope)

// WithDriver injects the driver; it takes precedence over the default.
func WithDriver(d driver.Driver) Option {
	return func(s *Scope) {
		s.driver = d
	}
}

// WithBaseElement starts the scope inside el instead of the driver root.
func WithBaseElement(el driver.Element) Option {
	return func(s *Scope) {
		s.base = el
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scope) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scope resolves the names of a registry against a driver and a base
// element. It is one instance of a page or module definition.
type Scope struct {
	registry *Registry
	driver   driver.Driver
	base     driver.Element
	logger   *slog.Logger
}

// New creates a scope over registry. A nil registry is treated as empty.
func New(registry *Registry, opts ...Option) *Scope {
	if registry == nil {
		registry = NewRegistry()
	}

	s := &Scope{
		registry: registry,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Registry returns the registry the scope resolves names from.
func (s *Scope) Registry() *Registry {
	return s.registry
}

// Driver returns the injected driver or, failing that, the default one.
func (s *Scope) Driver() (driver.Driver, error) {
	if s.driver != nil {
		return s.driver, nil
	}

	if d := DefaultDriver(); d != nil {
		return d, nil
	}

	return nil, ErrNoDriver
}

// BaseElement returns the element names are resolved in. It defaults to
// the driver root, fetched on first use and kept.
func (s *Scope) BaseElement(ctx context.Context) (driver.Element, error) {
	if s.base != nil {
		return s.base, nil
	}

	d, err := s.Driver()
	if err != nil {
		return nil, err
	}

	root, err := d.Root(ctx)
	if err != nil {
		return nil, err
	}

	s.base = root

	return root, nil
}

// SetBaseElement makes every later resolution happen inside el until
// ResetBaseElement is called.
func (s *Scope) SetBaseElement(el driver.Element) {
	s.logger.Debug("base element overridden")
	s.base = el
}

// ResetBaseElement goes back to the driver root on next use.
func (s *Scope) ResetBaseElement() {
	s.logger.Debug("base element reset")
	s.base = nil
}

// EnterFrame resolves name and, if the control is a container, makes it
// the base element.
func (s *Scope) EnterFrame(ctx context.Context, name string, args ...any) error {
	control, err := s.Face(ctx, name, args...)
	if err != nil {
		return err
	}

	el, ok := control.(driver.Element)
	if !ok {
		return fmt.Errorf("face %q resolved to a %s, which is not a container", name, control.Kind())
	}

	s.SetBaseElement(el)

	return nil
}
