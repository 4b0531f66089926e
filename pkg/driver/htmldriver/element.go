package htmldriver

import (
	"context"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"visage.dev/pkg/visage/pkg/driver"
)

type element struct {
	node   *html.Node
	driver *Driver
}

// Lookup implements driver.Element.
func (e *element) Lookup(_ context.Context, kind driver.ElementKind, args ...any) (driver.Control, error) {
	lookup, err := driver.ParseLookup(kind, args...)
	if err != nil {
		return nil, err
	}

	ofKind := matcherFor(kind)
	if ofKind == nil {
		return nil, fmt.Errorf("htmldriver: unsupported element kind %q", kind)
	}

	candidates := filter(descendants(e.node), ofKind)

	matches, err := e.match(candidates, lookup)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("htmldriver: no %s with %s", kind, lookup)
	}

	return e.wrap(kind, matches)
}

func (e *element) wrap(kind driver.ElementKind, matches []*html.Node) (driver.Control, error) {
	first := matches[0]
	base := control{node: first, driver: e.driver, kind: kind.ControlKind()}

	switch kind {
	case driver.RadioGroup, driver.CheckboxGroup:
		// a group is every input of that type sharing the first match's name
		name := attrOr(first, "name", "")
		members := matches

		if name != "" {
			members = filter(descendants(e.node), func(n *html.Node) bool {
				return matcherFor(kind)(n) && attrOr(n, "name", "") == name
			})
		}

		return &group{control: base, members: members}, nil
	case driver.Frame:
		doc, err := e.driver.frameDocument(first)
		if err != nil {
			return nil, err
		}

		return &frame{control: base, element: &element{node: doc, driver: e.driver}}, nil
	case driver.AnyElement:
		return &box{control: base, element: &element{node: first, driver: e.driver}}, nil
	}

	return &base, nil
}

func (e *element) match(candidates []*html.Node, lookup driver.Lookup) ([]*html.Node, error) {
	switch lookup.How {
	case driver.ByIndex:
		i, err := lookup.Index()
		if err != nil {
			return nil, err
		}

		if i >= len(candidates) {
			return nil, nil
		}

		return candidates[i : i+1], nil
	case driver.ByCSS:
		sel, err := cascadia.Parse(lookup.What)
		if err != nil {
			return nil, fmt.Errorf("htmldriver: %w", err)
		}

		return filter(candidates, sel.Match), nil
	case driver.ByXPath:
		return nil, fmt.Errorf("htmldriver: xpath lookups are not supported")
	case driver.ByLabel:
		return filter(candidates, e.labelled(lookup.What)), nil
	}

	return filter(candidates, attributeMatcher(lookup)), nil
}

func attributeMatcher(lookup driver.Lookup) func(*html.Node) bool {
	return func(n *html.Node) bool {
		switch lookup.How {
		case driver.ByID:
			return attrOr(n, "id", "") == lookup.What
		case driver.ByName:
			return attrOr(n, "name", "") == lookup.What
		case driver.ByValue:
			return attrOr(n, "value", "") == lookup.What
		case driver.ByClass:
			for _, class := range strings.Fields(attrOr(n, "class", "")) {
				if class == lookup.What {
					return true
				}
			}

			return false
		case driver.ByText:
			if isElement(n, atom.Input) {
				return attrOr(n, "value", "") == lookup.What
			}

			return textContent(n) == lookup.What
		}

		return false
	}
}

// labelled matches controls named by a <label> with the given text, either
// through its for attribute or by nesting.
func (e *element) labelled(text string) func(*html.Node) bool {
	var ids []string

	var nested []*html.Node

	for _, n := range descendants(e.node) {
		if !isElement(n, atom.Label) || textContent(n) != text {
			continue
		}

		if id, ok := attr(n, "for"); ok {
			ids = append(ids, id)
			continue
		}

		nested = append(nested, descendants(n)...)
	}

	return func(n *html.Node) bool {
		for _, id := range ids {
			if attrOr(n, "id", "") == id {
				return true
			}
		}

		for _, c := range nested {
			if c == n {
				return true
			}
		}

		return false
	}
}

func filter(nodes []*html.Node, keep func(*html.Node) bool) []*html.Node {
	var out []*html.Node

	for _, n := range nodes {
		if keep(n) {
			out = append(out, n)
		}
	}

	return out
}

var nonTextInputs = map[string]bool{
	"checkbox": true, "radio": true, "submit": true, "button": true,
	"reset": true, "image": true, "hidden": true, "file": true,
}

func matcherFor(kind driver.ElementKind) func(*html.Node) bool {
	switch kind {
	case driver.TextField:
		return func(n *html.Node) bool {
			return isElement(n, atom.Input) && !nonTextInputs[inputType(n)]
		}
	case driver.TextArea:
		return func(n *html.Node) bool { return isElement(n, atom.Textarea) }
	case driver.Button:
		return func(n *html.Node) bool {
			if isElement(n, atom.Button) {
				return true
			}

			switch inputType(n) {
			case "submit", "button", "reset", "image":
				return isElement(n, atom.Input)
			}

			return false
		}
	case driver.Link:
		return func(n *html.Node) bool { return isElement(n, atom.A) }
	case driver.SelectList:
		return func(n *html.Node) bool { return isElement(n, atom.Select) }
	case driver.Checkbox, driver.CheckboxGroup:
		return func(n *html.Node) bool { return isElement(n, atom.Input) && inputType(n) == "checkbox" }
	case driver.Radio, driver.RadioGroup:
		return func(n *html.Node) bool { return isElement(n, atom.Input) && inputType(n) == "radio" }
	case driver.Frame:
		return func(n *html.Node) bool { return isElement(n, atom.Iframe) || isElement(n, atom.Frame) }
	case driver.AnyElement:
		return func(n *html.Node) bool { return n.Type == html.ElementNode }
	}

	return nil
}

func (e *element) operations() driver.Operations {
	return driver.Operations{
		"text": func(_ context.Context, _ ...any) (any, error) {
			return textContent(e.node), nil
		},
		"html": func(_ context.Context, _ ...any) (any, error) {
			var b strings.Builder
			if err := html.Render(&b, e.node); err != nil {
				return nil, err
			}

			return b.String(), nil
		},
		"title": func(_ context.Context, _ ...any) (any, error) {
			title := findFirst(ownerDocument(e.node), func(n *html.Node) bool {
				return isElement(n, atom.Title)
			})
			if title == nil {
				return "", nil
			}

			return textContent(title), nil
		},
		"count": func(_ context.Context, args ...any) (any, error) {
			name, err := driver.StringArg(args, 0)
			if err != nil {
				return nil, err
			}

			kind, err := driver.ParseElementKind(name)
			if err != nil {
				return nil, err
			}

			return len(filter(descendants(e.node), matcherFor(kind))), nil
		},
	}
}

// Supports implements driver.Operator.
func (e *element) Supports(op string) bool {
	return e.operations().Supports(op)
}

// Invoke implements driver.Operator.
func (e *element) Invoke(ctx context.Context, op string, args ...any) (any, error) {
	return e.operations().Invoke(ctx, op, args...)
}
