package cdpdriver

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"visage.dev/pkg/visage/pkg/driver"
)

// element is a lookup root: the document when node is nil, otherwise the
// given node (or its content document for frames).
type element struct {
	driver *Driver
	node   *cdp.Node
}

func (e *element) scope() []chromedp.QueryOption {
	if e.node == nil {
		return nil
	}

	return []chromedp.QueryOption{chromedp.FromNode(e.node)}
}

func (e *element) nodes(ctx context.Context, q query) ([]*cdp.Node, error) {
	var nodes []*cdp.Node

	opts := []chromedp.QueryOption{chromedp.AtLeast(0)}

	if q.xpath {
		if e.node != nil {
			return nil, fmt.Errorf("cdpdriver: xpath and text lookups only work from the page root")
		}

		opts = append(opts, chromedp.BySearch)
	} else {
		opts = append(opts, chromedp.ByQueryAll)
		opts = append(opts, e.scope()...)
	}

	if err := e.driver.run(ctx, chromedp.Nodes(q.selector, &nodes, opts...)); err != nil {
		return nil, err
	}

	return nodes, nil
}

// Lookup implements driver.Element.
func (e *element) Lookup(ctx context.Context, kind driver.ElementKind, args ...any) (driver.Control, error) {
	lookup, err := driver.ParseLookup(kind, args...)
	if err != nil {
		return nil, err
	}

	if lookup.How == driver.ByLabel {
		return nil, fmt.Errorf("cdpdriver: label lookups are not supported")
	}

	q, err := compile(kind, lookup)
	if err != nil {
		return nil, err
	}

	nodes, err := e.nodes(ctx, q)
	if err != nil {
		return nil, err
	}

	if q.xpath || lookup.How == driver.ByCSS {
		nodes = filterKind(kind, nodes)
	}

	if lookup.How == driver.ByIndex {
		i, err := lookup.Index()
		if err != nil {
			return nil, err
		}

		if i >= len(nodes) {
			return nil, fmt.Errorf("cdpdriver: no %s at index %d", kind, i)
		}

		nodes = nodes[i : i+1]
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("cdpdriver: no %s with %s", kind, lookup)
	}

	first := nodes[0]

	switch kind {
	case driver.RadioGroup, driver.CheckboxGroup:
		return &group{element: e, kind: kind.ControlKind(), name: first.AttributeValue("name"), first: first}, nil
	case driver.Frame:
		doc := first.ContentDocument
		if doc == nil {
			return nil, fmt.Errorf("cdpdriver: frame %s has no accessible document", lookup)
		}

		return &frame{control: control{driver: e.driver, node: first, kind: driver.KindFrame}, element: element{driver: e.driver, node: doc}}, nil
	case driver.AnyElement:
		return &box{control: control{driver: e.driver, node: first, kind: driver.KindElement}, element: element{driver: e.driver, node: first}}, nil
	}

	return &control{driver: e.driver, node: first, kind: kind.ControlKind()}, nil
}

func filterKind(kind driver.ElementKind, nodes []*cdp.Node) []*cdp.Node {
	var out []*cdp.Node

	for _, n := range nodes {
		if nodeIsKind(kind, n) {
			out = append(out, n)
		}
	}

	return out
}

func nodeIsKind(kind driver.ElementKind, n *cdp.Node) bool {
	name := strings.ToLower(n.NodeName)
	inputType := strings.ToLower(n.AttributeValue("type"))

	switch kind {
	case driver.TextField:
		if name != "input" {
			return false
		}

		switch inputType {
		case "checkbox", "radio", "submit", "button", "reset", "image", "hidden", "file":
			return false
		}

		return true
	case driver.TextArea:
		return name == "textarea"
	case driver.Button:
		return name == "button" || (name == "input" && (inputType == "submit" || inputType == "button" || inputType == "reset" || inputType == "image"))
	case driver.Link:
		return name == "a"
	case driver.SelectList:
		return name == "select"
	case driver.Checkbox, driver.CheckboxGroup:
		return name == "input" && inputType == "checkbox"
	case driver.Radio, driver.RadioGroup:
		return name == "input" && inputType == "radio"
	case driver.Frame:
		return name == "iframe" || name == "frame"
	case driver.AnyElement:
		return n.NodeType == cdp.NodeTypeElement
	}

	return false
}

// Supports implements driver.Operator.
func (e *element) Supports(op string) bool {
	return e.operations().Supports(op)
}

// Invoke implements driver.Operator.
func (e *element) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	return e.operations().Invoke(ctx, op, args...)
}

func (e *element) operations() driver.Operations {
	ops := driver.Operations{
		"text": func(ctx context.Context, _ ...any) (any, error) {
			var text string
			err := e.driver.run(ctx, chromedp.Text("body", &text, append([]chromedp.QueryOption{chromedp.ByQuery}, e.scope()...)...))

			return text, err
		},
		"html": func(ctx context.Context, _ ...any) (any, error) {
			var html string
			err := e.driver.run(ctx, chromedp.OuterHTML("html", &html, append([]chromedp.QueryOption{chromedp.ByQuery}, e.scope()...)...))

			return html, err
		},
	}

	if e.node != nil {
		return ops
	}

	ops["goto"] = func(ctx context.Context, args ...any) (any, error) {
		url, err := driver.StringArg(args, 0)
		if err != nil {
			return nil, err
		}

		var location string
		err = e.driver.run(ctx, chromedp.Navigate(url), chromedp.Location(&location))

		return location, err
	}
	ops["title"] = func(ctx context.Context, _ ...any) (any, error) {
		var title string
		err := e.driver.run(ctx, chromedp.Title(&title))

		return title, err
	}
	ops["url"] = func(ctx context.Context, _ ...any) (any, error) {
		var location string
		err := e.driver.run(ctx, chromedp.Location(&location))

		return location, err
	}
	ops["evaluate"] = func(ctx context.Context, args ...any) (any, error) {
		expr, err := driver.StringArg(args, 0)
		if err != nil {
			return nil, err
		}

		var res any
		err = e.driver.run(ctx, chromedp.Evaluate(expr, &res))

		return res, err
	}

	return ops
}
