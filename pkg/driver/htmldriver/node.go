package htmldriver

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func attrOr(n *html.Node, key, fallback string) string {
	if v, ok := attr(n, key); ok {
		return v
	}

	return fallback
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]

	for _, a := range n.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}

	n.Attr = kept
}

func setFlag(n *html.Node, key string, on bool) {
	if on {
		setAttr(n, key, "")
		return
	}

	removeAttr(n, key)
}

func inputType(n *html.Node) string {
	return strings.ToLower(attrOr(n, "type", "text"))
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// textContent concatenates the text below n with whitespace collapsed.
func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

func setTextContent(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}

	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// descendants returns element nodes below n in document order. It does
// not enter srcdoc frames; those are separate documents.
func descendants(n *html.Node) []*html.Node {
	var out []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				out = append(out, c)
			}

			walk(c)
		}
	}
	walk(n)

	return out
}

func ownerDocument(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}

	return n
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for _, d := range descendants(n) {
		if match(d) {
			return d
		}
	}

	return nil
}
