package pwdriver

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"visage.dev/pkg/visage/pkg/driver"
)

// container is something locators can be created in: a page, a frame or
// another locator.
type container interface {
	locator(selector string) playwright.Locator
	byLabel(text string) playwright.Locator
	frame(selector string) playwright.FrameLocator
}

type pageContainer struct{ page playwright.Page }

func (c pageContainer) locator(selector string) playwright.Locator { return c.page.Locator(selector) }
func (c pageContainer) byLabel(text string) playwright.Locator     { return c.page.GetByLabel(text) }
func (c pageContainer) frame(selector string) playwright.FrameLocator {
	return c.page.FrameLocator(selector)
}

type frameContainer struct{ fl playwright.FrameLocator }

func (c frameContainer) locator(selector string) playwright.Locator { return c.fl.Locator(selector) }
func (c frameContainer) byLabel(text string) playwright.Locator     { return c.fl.GetByLabel(text) }
func (c frameContainer) frame(selector string) playwright.FrameLocator {
	return c.fl.FrameLocator(selector)
}

type locatorContainer struct{ loc playwright.Locator }

func (c locatorContainer) locator(selector string) playwright.Locator { return c.loc.Locator(selector) }
func (c locatorContainer) byLabel(text string) playwright.Locator     { return c.loc.GetByLabel(text) }
func (c locatorContainer) frame(selector string) playwright.FrameLocator {
	return c.loc.FrameLocator(selector)
}

// element is a lookup root. page is set only for the page root.
type element struct {
	container container
	page      playwright.Page
}

// Lookup implements driver.Element. The returned control is lazy: playwright
// locators resolve on each action.
func (e *element) Lookup(ctx context.Context, kind driver.ElementKind, args ...any) (driver.Control, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lookup, err := driver.ParseLookup(kind, args...)
	if err != nil {
		return nil, err
	}

	switch kind {
	case driver.RadioGroup, driver.CheckboxGroup:
		if lookup.How != driver.ByName {
			return nil, fmt.Errorf("pwdriver: %s is looked up by name, got %s", kind, lookup.How)
		}

		return &group{container: e.container, kind: kind.ControlKind(), name: lookup.What}, nil
	case driver.Frame:
		return e.lookupFrame(lookup)
	}

	loc, err := e.locate(kind, lookup)
	if err != nil {
		return nil, err
	}

	if kind == driver.AnyElement {
		return &box{control: control{loc: loc, kind: driver.KindElement}, element: element{container: locatorContainer{loc: loc}}}, nil
	}

	return &control{loc: loc, kind: kind.ControlKind()}, nil
}

func (e *element) locate(kind driver.ElementKind, lookup driver.Lookup) (playwright.Locator, error) {
	selector, err := selectorFor(kind, lookup)
	if err != nil {
		return nil, err
	}

	switch lookup.How {
	case driver.ByIndex:
		i, err := lookup.Index()
		if err != nil {
			return nil, err
		}

		return e.container.locator(selector).Nth(i), nil
	case driver.ByLabel:
		return e.container.byLabel(lookup.What).First(), nil
	}

	return e.container.locator(selector).First(), nil
}

func (e *element) lookupFrame(lookup driver.Lookup) (driver.Control, error) {
	if lookup.How == driver.ByLabel {
		return nil, fmt.Errorf("pwdriver: frames cannot be looked up by label")
	}

	selector, err := selectorFor(driver.Frame, lookup)
	if err != nil {
		return nil, err
	}

	fl := e.container.frame(selector)

	if lookup.How == driver.ByIndex {
		i, err := lookup.Index()
		if err != nil {
			return nil, err
		}

		fl = fl.Nth(i)
	} else {
		fl = fl.First()
	}

	return &frame{element: element{container: frameContainer{fl: fl}}, locator: fl}, nil
}

// Supports implements driver.Operator.
func (e *element) Supports(op string) bool {
	return e.operations().Supports(op)
}

// Invoke implements driver.Operator.
func (e *element) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return e.operations().Invoke(ctx, op, args...)
}

func (e *element) operations() driver.Operations {
	ops := driver.Operations{
		"text": func(_ context.Context, _ ...any) (any, error) {
			return e.container.locator("body").InnerText()
		},
		"html": func(_ context.Context, _ ...any) (any, error) {
			return e.container.locator(":root").InnerHTML()
		},
		"evaluate": func(_ context.Context, args ...any) (any, error) {
			expr, err := driver.StringArg(args, 0)
			if err != nil {
				return nil, err
			}

			return e.container.locator(":root").Evaluate(expr, nil)
		},
	}

	if e.page == nil {
		return ops
	}

	ops["goto"] = func(_ context.Context, args ...any) (any, error) {
		url, err := driver.StringArg(args, 0)
		if err != nil {
			return nil, err
		}

		if _, err := e.page.Goto(url); err != nil {
			return nil, err
		}

		return e.page.URL(), nil
	}
	ops["title"] = func(_ context.Context, _ ...any) (any, error) {
		return e.page.Title()
	}
	ops["url"] = func(_ context.Context, _ ...any) (any, error) {
		return e.page.URL(), nil
	}
	ops["html"] = func(_ context.Context, _ ...any) (any, error) {
		return e.page.Content()
	}
	ops["evaluate"] = func(_ context.Context, args ...any) (any, error) {
		expr, err := driver.StringArg(args, 0)
		if err != nil {
			return nil, err
		}

		return e.page.Evaluate(expr)
	}
	ops["reload"] = func(_ context.Context, _ ...any) (any, error) {
		_, err := e.page.Reload()
		return nil, err
	}

	return ops
}
