package htmldriver

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"visage.dev/pkg/visage/pkg/driver"
)

type control struct {
	node   *html.Node
	driver *Driver
	kind   driver.ControlKind
}

func (c *control) Kind() driver.ControlKind {
	return c.kind
}

func (c *control) Set(_ context.Context, value any) error {
	switch c.kind {
	case driver.KindText:
		s, err := driver.ToString(value)
		if err != nil {
			return err
		}

		if isElement(c.node, atom.Textarea) {
			setTextContent(c.node, s)
		} else {
			setAttr(c.node, "value", s)
		}

		return nil
	case driver.KindCheckbox, driver.KindRadio:
		on, err := driver.ToBool(value)
		if err != nil {
			return err
		}

		if on && c.kind == driver.KindRadio {
			uncheckSiblings(c.node)
		}

		setFlag(c.node, "checked", on)

		return nil
	case driver.KindSelectList:
		values, err := driver.ToStrings(value)
		if err != nil {
			return err
		}

		return selectOptions(c.node, values)
	case driver.KindElement:
		s, err := driver.ToString(value)
		if err != nil {
			return err
		}

		setTextContent(c.node, s)

		return nil
	}

	return fmt.Errorf("htmldriver: %s: %w", c.kind, driver.ErrNotWritable)
}

func (c *control) Value(_ context.Context) (any, error) {
	switch c.kind {
	case driver.KindText:
		if isElement(c.node, atom.Textarea) {
			return textContent(c.node), nil
		}

		return attrOr(c.node, "value", ""), nil
	case driver.KindCheckbox, driver.KindRadio:
		return hasAttr(c.node, "checked"), nil
	case driver.KindSelectList:
		selected := selectedOptions(c.node)
		if len(selected) == 0 {
			return "", nil
		}

		return selected[0], nil
	case driver.KindButton:
		if isElement(c.node, atom.Input) {
			return attrOr(c.node, "value", ""), nil
		}
	case driver.KindLink:
		return attrOr(c.node, "href", ""), nil
	}

	return textContent(c.node), nil
}

func (c *control) Selected(ctx context.Context) (any, error) {
	switch c.kind {
	case driver.KindSelectList:
		selected := selectedOptions(c.node)
		if hasAttr(c.node, "multiple") {
			return selected, nil
		}

		if len(selected) == 0 {
			return "", nil
		}

		return selected[0], nil
	case driver.KindCheckbox, driver.KindRadio:
		return c.Value(ctx)
	}

	return nil, fmt.Errorf("htmldriver: %s has no selection", c.kind)
}

func options(sel *html.Node) []*html.Node {
	return filter(descendants(sel), func(n *html.Node) bool { return isElement(n, atom.Option) })
}

func optionValue(option *html.Node) string {
	if v, ok := attr(option, "value"); ok {
		return v
	}

	return textContent(option)
}

// selectedOptions returns the values of selected options. A single select
// without an explicit selection reports its first option, as browsers do.
func selectedOptions(sel *html.Node) []string {
	all := options(sel)
	selected := []string{}

	for _, option := range all {
		if hasAttr(option, "selected") {
			selected = append(selected, optionValue(option))
		}
	}

	if len(selected) == 0 && !hasAttr(sel, "multiple") && len(all) > 0 {
		selected = append(selected, optionValue(all[0]))
	}

	return selected
}

// selectOptions selects options by value or visible text.
func selectOptions(sel *html.Node, values []string) error {
	if len(values) > 1 && !hasAttr(sel, "multiple") {
		return fmt.Errorf("htmldriver: %w: %d values for a single select", driver.ErrUnsupportedValue, len(values))
	}

	all := options(sel)
	chosen := make([]*html.Node, 0, len(values))

	for _, v := range values {
		i := slices.IndexFunc(all, func(o *html.Node) bool {
			return optionValue(o) == v || textContent(o) == v
		})
		if i < 0 {
			return fmt.Errorf("htmldriver: no option %q", v)
		}

		chosen = append(chosen, all[i])
	}

	for _, option := range all {
		setFlag(option, "selected", slices.Contains(chosen, option))
	}

	return nil
}

func uncheckSiblings(radio *html.Node) {
	name := attrOr(radio, "name", "")
	if name == "" {
		return
	}

	doc := ownerDocument(radio)
	for _, n := range descendants(doc) {
		if n != radio && isElement(n, atom.Input) && inputType(n) == "radio" && attrOr(n, "name", "") == name {
			removeAttr(n, "checked")
		}
	}
}

// group is a radio or checkbox group.
type group struct {
	control
	members []*html.Node
}

func (g *group) Set(_ context.Context, value any) error {
	values, err := driver.ToStrings(value)
	if err != nil {
		return err
	}

	if g.kind == driver.KindRadioGroup && len(values) != 1 {
		return fmt.Errorf("htmldriver: %w: radio group takes one value, got %d", driver.ErrUnsupportedValue, len(values))
	}

	for _, v := range values {
		if !slices.ContainsFunc(g.members, func(n *html.Node) bool { return attrOr(n, "value", "on") == v }) {
			return fmt.Errorf("htmldriver: no %s member with value %q", g.kind, v)
		}
	}

	for _, n := range g.members {
		setFlag(n, "checked", slices.Contains(values, attrOr(n, "value", "on")))
	}

	return nil
}

func (g *group) Value(ctx context.Context) (any, error) {
	return g.Selected(ctx)
}

func (g *group) Selected(_ context.Context) (any, error) {
	checked := []string{}

	for _, n := range g.members {
		if hasAttr(n, "checked") {
			checked = append(checked, attrOr(n, "value", "on"))
		}
	}

	if g.kind == driver.KindRadioGroup {
		if len(checked) == 0 {
			return "", nil
		}

		return checked[0], nil
	}

	return checked, nil
}

// frame is a control that also acts as a container for its srcdoc.
type frame struct {
	control
	*element
}

func (f *frame) Set(_ context.Context, _ any) error {
	return fmt.Errorf("htmldriver: frame: %w", driver.ErrNotWritable)
}

func (f *frame) Value(_ context.Context) (any, error) {
	return textContent(f.element.node), nil
}

// box is a generic element that also scopes lookups to its subtree.
type box struct {
	control
	*element
}
