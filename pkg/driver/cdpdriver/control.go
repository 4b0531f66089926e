package cdpdriver

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"visage.dev/pkg/visage/pkg/driver"
)

type control struct {
	driver *Driver
	node   *cdp.Node
	kind   driver.ControlKind
}

func (c *control) ids() []cdp.NodeID {
	return []cdp.NodeID{c.node.NodeID}
}

func (c *control) Kind() driver.ControlKind {
	return c.kind
}

func (c *control) Set(ctx context.Context, value any) error {
	switch c.kind {
	case driver.KindText:
		s, err := driver.ToString(value)
		if err != nil {
			return err
		}

		return c.driver.run(ctx, chromedp.SetValue(c.ids(), s, chromedp.ByNodeID))
	case driver.KindCheckbox, driver.KindRadio:
		on, err := driver.ToBool(value)
		if err != nil {
			return err
		}

		return setChecked(ctx, c.driver, c.node, on)
	case driver.KindSelectList:
		values, err := driver.ToStrings(value)
		if err != nil {
			return err
		}

		return c.selectOptions(ctx, values)
	}

	return fmt.Errorf("cdpdriver: %s: %w", c.kind, driver.ErrNotWritable)
}

func (c *control) Value(ctx context.Context) (any, error) {
	switch c.kind {
	case driver.KindText, driver.KindSelectList:
		var s string
		err := c.driver.run(ctx, chromedp.Value(c.ids(), &s, chromedp.ByNodeID))

		return s, err
	case driver.KindCheckbox, driver.KindRadio:
		return isChecked(ctx, c.driver, c.node)
	case driver.KindLink:
		var href string

		var ok bool
		err := c.driver.run(ctx, chromedp.AttributeValue(c.ids(), "href", &href, &ok, chromedp.ByNodeID))

		return href, err
	case driver.KindButton:
		if strings.EqualFold(c.node.NodeName, "input") {
			var s string
			err := c.driver.run(ctx, chromedp.Value(c.ids(), &s, chromedp.ByNodeID))

			return s, err
		}
	}

	var text string
	err := c.driver.run(ctx, chromedp.Text(c.ids(), &text, chromedp.ByNodeID))

	return strings.TrimSpace(text), err
}

func (c *control) Selected(ctx context.Context) (any, error) {
	switch c.kind {
	case driver.KindSelectList:
		options, err := c.options(ctx)
		if err != nil {
			return nil, err
		}

		selected := []string{}

		for _, option := range options {
			on, err := boolProperty(ctx, c.driver, option, "selected")
			if err != nil {
				return nil, err
			}

			if on {
				selected = append(selected, optionValue(option))
			}
		}

		if hasAttribute(c.node, "multiple") {
			return selected, nil
		}

		if len(selected) == 0 {
			return "", nil
		}

		return selected[0], nil
	case driver.KindCheckbox, driver.KindRadio:
		return isChecked(ctx, c.driver, c.node)
	}

	return nil, fmt.Errorf("cdpdriver: %s has no selection", c.kind)
}

func (c *control) options(ctx context.Context) ([]*cdp.Node, error) {
	var options []*cdp.Node

	err := c.driver.run(ctx, chromedp.Nodes("option", &options, chromedp.ByQueryAll, chromedp.AtLeast(0), chromedp.FromNode(c.node)))

	return options, err
}

func (c *control) selectOptions(ctx context.Context, values []string) error {
	options, err := c.options(ctx)
	if err != nil {
		return err
	}

	if len(values) > 1 && !hasAttribute(c.node, "multiple") {
		return fmt.Errorf("cdpdriver: %w: %d values for a single select", driver.ErrUnsupportedValue, len(values))
	}

	for _, v := range values {
		if !slices.ContainsFunc(options, func(o *cdp.Node) bool { return optionValue(o) == v }) {
			return fmt.Errorf("cdpdriver: no option %q", v)
		}
	}

	actions := make([]chromedp.Action, 0, len(options))

	for _, option := range options {
		on := ""
		if slices.Contains(values, optionValue(option)) {
			on = "true"
		}

		actions = append(actions, chromedp.SetJavascriptAttribute([]cdp.NodeID{option.NodeID}, "selected", on, chromedp.ByNodeID))
	}

	return c.driver.run(ctx, actions...)
}

func optionValue(option *cdp.Node) string {
	if hasAttribute(option, "value") {
		return option.AttributeValue("value")
	}

	var b strings.Builder
	for _, child := range option.Children {
		b.WriteString(child.NodeValue)
	}

	return strings.TrimSpace(b.String())
}

func hasAttribute(n *cdp.Node, name string) bool {
	for i := 0; i+1 < len(n.Attributes); i += 2 {
		if n.Attributes[i] == name {
			return true
		}
	}

	return false
}

func boolProperty(ctx context.Context, d *Driver, n *cdp.Node, name string) (bool, error) {
	var on bool
	err := d.run(ctx, chromedp.JavascriptAttribute([]cdp.NodeID{n.NodeID}, name, &on, chromedp.ByNodeID))

	return on, err
}

func isChecked(ctx context.Context, d *Driver, n *cdp.Node) (bool, error) {
	return boolProperty(ctx, d, n, "checked")
}

// setChecked clicks n when its state differs, so change handlers run.
func setChecked(ctx context.Context, d *Driver, n *cdp.Node, on bool) error {
	checked, err := isChecked(ctx, d, n)
	if err != nil {
		return err
	}

	if checked == on {
		return nil
	}

	return d.run(ctx, chromedp.Click([]cdp.NodeID{n.NodeID}, chromedp.ByNodeID))
}

// group is a radio or checkbox group sharing the first match's name.
type group struct {
	element *element
	kind    driver.ControlKind
	name    string
	first   *cdp.Node
}

func (g *group) members(ctx context.Context) ([]*cdp.Node, error) {
	if g.name == "" {
		return []*cdp.Node{g.first}, nil
	}

	inputType := "checkbox"
	if g.kind == driver.KindRadioGroup {
		inputType = "radio"
	}

	return g.element.nodes(ctx, query{selector: fmt.Sprintf("input[type=%s][name=%s]", inputType, cssString(g.name))})
}

func memberValue(n *cdp.Node) string {
	if hasAttribute(n, "value") {
		return n.AttributeValue("value")
	}

	return "on"
}

func (g *group) Kind() driver.ControlKind {
	return g.kind
}

func (g *group) Set(ctx context.Context, value any) error {
	values, err := driver.ToStrings(value)
	if err != nil {
		return err
	}

	if g.kind == driver.KindRadioGroup && len(values) != 1 {
		return fmt.Errorf("cdpdriver: %w: radio group takes one value, got %d", driver.ErrUnsupportedValue, len(values))
	}

	members, err := g.members(ctx)
	if err != nil {
		return err
	}

	for _, v := range values {
		if !slices.ContainsFunc(members, func(n *cdp.Node) bool { return memberValue(n) == v }) {
			return fmt.Errorf("cdpdriver: no %s member %q in %q", g.kind, v, g.name)
		}
	}

	for _, n := range members {
		want := slices.Contains(values, memberValue(n))
		if g.kind == driver.KindRadioGroup && !want {
			continue
		}

		if err := setChecked(ctx, g.element.driver, n, want); err != nil {
			return err
		}
	}

	return nil
}

func (g *group) Value(ctx context.Context) (any, error) {
	return g.Selected(ctx)
}

func (g *group) Selected(ctx context.Context) (any, error) {
	members, err := g.members(ctx)
	if err != nil {
		return nil, err
	}

	checked := []string{}

	for _, n := range members {
		on, err := isChecked(ctx, g.element.driver, n)
		if err != nil {
			return nil, err
		}

		if on {
			checked = append(checked, memberValue(n))
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

// frame is a frame control whose content document is a lookup root.
type frame struct {
	control
	element
}

func (f *frame) Set(_ context.Context, _ any) error {
	return fmt.Errorf("cdpdriver: frame: %w", driver.ErrNotWritable)
}

// box is a generic element that can also scope further lookups.
type box struct {
	control
	element
}
