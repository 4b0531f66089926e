// Package htmldriver is a driver backed by a static HTML document parsed
// with golang.org/x/net/html. Writes change the in-memory document, so a
// sprayed form can be rendered back out with the driver's "render" operation.
//
// Frames are supported through the srcdoc attribute only.
package htmldriver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"visage.dev/pkg/visage/pkg/driver"
)

// Driver holds one parsed document.
type Driver struct {
	doc    *html.Node
	frames map[*html.Node]*html.Node
}

// Parse reads a document from r.
func Parse(r io.Reader) (*Driver, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return &Driver{doc: doc, frames: make(map[*html.Node]*html.Node)}, nil
}

// ParseString parses src.
func ParseString(src string) (*Driver, error) {
	return Parse(strings.NewReader(src))
}

// Open parses the file at path.
func Open(path string) (*Driver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Root implements driver.Driver.
func (d *Driver) Root(_ context.Context) (driver.Element, error) {
	return &element{node: d.doc, driver: d}, nil
}

// Render writes the current document.
func (d *Driver) Render(w io.Writer) error {
	return html.Render(w, d.doc)
}

// Supports implements driver.Operator for driver-level operations.
func (d *Driver) Supports(op string) bool {
	return op == "render"
}

// Invoke implements driver.Operator.
func (d *Driver) Invoke(_ context.Context, op string, _ ...any) (any, error) {
	if op != "render" {
		return nil, fmt.Errorf("htmldriver: operation %q not supported", op)
	}

	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}

	return buf.String(), nil
}

// frameDocument parses the srcdoc of a frame node once and keeps it, so
// writes inside the frame persist across lookups.
func (d *Driver) frameDocument(frame *html.Node) (*html.Node, error) {
	if doc, ok := d.frames[frame]; ok {
		return doc, nil
	}

	src, ok := attr(frame, "srcdoc")
	if !ok {
		return nil, fmt.Errorf("htmldriver: frame without srcdoc is not supported")
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse frame: %w", err)
	}

	d.frames[frame] = doc

	return doc, nil
}
