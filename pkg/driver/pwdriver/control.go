package pwdriver

import (
	"context"
	"fmt"
	"slices"

	"github.com/playwright-community/playwright-go"

	"visage.dev/pkg/visage/pkg/driver"
)

const selectedOptionsJS = `el => el.multiple ? Array.from(el.selectedOptions, o => o.value) : el.value`

type control struct {
	loc  playwright.Locator
	kind driver.ControlKind
}

func (c *control) Kind() driver.ControlKind {
	return c.kind
}

func (c *control) Set(ctx context.Context, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch c.kind {
	case driver.KindText:
		s, err := driver.ToString(value)
		if err != nil {
			return err
		}

		return c.loc.Fill(s)
	case driver.KindCheckbox, driver.KindRadio:
		on, err := driver.ToBool(value)
		if err != nil {
			return err
		}

		return c.loc.SetChecked(on)
	case driver.KindSelectList:
		values, err := driver.ToStrings(value)
		if err != nil {
			return err
		}

		_, err = c.loc.SelectOption(playwright.SelectOptionValues{Values: &values})

		return err
	}

	return fmt.Errorf("pwdriver: %s: %w", c.kind, driver.ErrNotWritable)
}

func (c *control) Value(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch c.kind {
	case driver.KindText, driver.KindSelectList:
		return c.loc.InputValue()
	case driver.KindCheckbox, driver.KindRadio:
		return c.loc.IsChecked()
	case driver.KindLink:
		return c.loc.GetAttribute("href")
	case driver.KindButton:
		return c.loc.Evaluate(`el => el.tagName === "INPUT" ? el.value : el.textContent.trim()`, nil)
	}

	return c.loc.InnerText()
}

func (c *control) Selected(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch c.kind {
	case driver.KindSelectList:
		v, err := c.loc.Evaluate(selectedOptionsJS, nil)
		if err != nil {
			return nil, err
		}

		if list, ok := v.([]any); ok {
			return toStringSlice(list), nil
		}

		return v, nil
	case driver.KindCheckbox, driver.KindRadio:
		return c.loc.IsChecked()
	}

	return nil, fmt.Errorf("pwdriver: %s has no selection", c.kind)
}

// group is a radio or checkbox group addressed by input name.
type group struct {
	container container
	kind      driver.ControlKind
	name      string
}

func (g *group) inputType() string {
	if g.kind == driver.KindRadioGroup {
		return "radio"
	}

	return "checkbox"
}

func (g *group) members() playwright.Locator {
	return g.container.locator(fmt.Sprintf("input[type=%s][name=%s]", g.inputType(), cssString(g.name)))
}

func (g *group) Kind() driver.ControlKind {
	return g.kind
}

func (g *group) Set(ctx context.Context, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	values, err := driver.ToStrings(value)
	if err != nil {
		return err
	}

	if g.kind == driver.KindRadioGroup && len(values) != 1 {
		return fmt.Errorf("pwdriver: %w: radio group takes one value, got %d", driver.ErrUnsupportedValue, len(values))
	}

	members, err := g.members().All()
	if err != nil {
		return err
	}

	memberValues := make([]string, 0, len(members))

	for _, m := range members {
		v, err := m.GetAttribute("value")
		if err != nil {
			return err
		}

		memberValues = append(memberValues, v)
	}

	for _, v := range values {
		if !slices.Contains(memberValues, v) {
			return fmt.Errorf("pwdriver: no %s member %q in %q", g.kind, v, g.name)
		}
	}

	for i, m := range members {
		want := slices.Contains(values, memberValues[i])
		if g.kind == driver.KindRadioGroup && !want {
			continue
		}

		if err := m.SetChecked(want); err != nil {
			return err
		}
	}

	return nil
}

func (g *group) Value(ctx context.Context) (any, error) {
	return g.Selected(ctx)
}

func (g *group) Selected(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := g.members().EvaluateAll(`els => els.filter(e => e.checked).map(e => e.value)`)
	if err != nil {
		return nil, err
	}

	checked := toStringSlice(v)

	if g.kind == driver.KindRadioGroup {
		if len(checked) == 0 {
			return "", nil
		}

		return checked[0], nil
	}

	return checked, nil
}

// frame is a frame control that is also a lookup root.
type frame struct {
	element
	locator playwright.FrameLocator
}

func (f *frame) Kind() driver.ControlKind {
	return driver.KindFrame
}

func (f *frame) Set(_ context.Context, _ any) error {
	return fmt.Errorf("pwdriver: frame: %w", driver.ErrNotWritable)
}

func (f *frame) Value(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.locator.Locator("body").InnerText()
}

func (f *frame) Selected(_ context.Context) (any, error) {
	return nil, fmt.Errorf("pwdriver: frame has no selection")
}

// box is a generic element that can also scope further lookups.
type box struct {
	control
	element
}

func toStringSlice(v any) []string {
	out := []string{}

	switch list := v.(type) {
	case []any:
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
	case []string:
		out = append(out, list...)
	case nil:
	default:
		out = append(out, fmt.Sprint(list))
	}

	return out
}
