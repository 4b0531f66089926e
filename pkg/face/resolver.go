package face

import (
	"context"
	"fmt"

	"visage.dev/pkg/visage/pkg/driver"
)

// Resolve turns f into a live control below base. A Locator becomes a
// base.Lookup call; an Expression is called with base and args. Errors
// from the driver are returned as they are.
func Resolve(ctx context.Context, base driver.Element, f Face, args ...any) (driver.Control, error) {
	switch def := f.(type) {
	case Locator:
		return base.Lookup(ctx, def.Kind, def.args()...)
	case Expression:
		return def(ctx, base, args...)
	}

	return nil, fmt.Errorf("unsupported face %T", f)
}
