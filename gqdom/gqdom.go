// Package gqdom implements the dom interfaces on a pure-Go document
// parsed with golang.org/x/net/html. Selectors are served by goquery and
// cascadia, events by an in-memory registry with synchronous dispatch.
// Geometry is reported from inline style metrics; there is no layout
// engine.
package gqdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gowade/dom"
)

// Document owns a parsed HTML tree and the listener registry shared by
// its elements.
type Document struct {
	top    *html.Node
	events *registry
}

var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

// Parse reads a full HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	return &Document{top: node, events: newRegistry()}, nil
}

// ParseString parses a full HTML document from source.
func ParseString(source string) *Document {
	d, err := Parse(strings.NewReader(strings.TrimSpace(source)))
	if err != nil {
		panic(err)
	}

	return d
}

// Root returns the document element.
func (d *Document) Root() dom.Element {
	for n := d.top.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return d.elem(n)
		}
	}

	return nil
}

// CreateElement returns a new, detached element with the given tag name.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.elem(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// GetElementByID returns the first element in document order whose id
// attribute equals id, or nil.
func (d *Document) GetElementByID(id string) dom.Element {
	var found *html.Node
	walk(d.top, func(n *html.Node) bool {
		if v, ok := nodeAttr(n, "id"); ok && v == id {
			found = n
			return false
		}
		return true
	})

	if found == nil {
		return nil
	}

	return d.elem(found)
}

// GetElementsByClassName returns a snapshot of every element carrying
// class, in document order.
func (d *Document) GetElementsByClassName(class string) []dom.Element {
	els := []dom.Element{}
	walk(d.top, func(n *html.Node) bool {
		if v, ok := nodeAttr(n, "class"); ok && hasToken(v, class) {
			els = append(els, d.elem(n))
		}
		return true
	})

	return els
}

// GetElementsByTagName returns a snapshot of every element with the given
// tag name, in document order.
func (d *Document) GetElementsByTagName(tag string) []dom.Element {
	tag = strings.ToLower(tag)
	els := []dom.Element{}
	walk(d.top, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			els = append(els, d.elem(n))
		}
		return true
	})

	return els
}

// QuerySelector returns the first element matching the CSS selector, or
// nil. Invalid selector syntax panics, mirroring the host SyntaxError.
func (d *Document) QuerySelector(selector string) dom.Element {
	return d.queryFirst(d.top, selector)
}

// QuerySelectorAll returns a snapshot of every element matching the CSS
// selector, in document order.
func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return d.queryAll(d.top, selector)
}

func (d *Document) queryFirst(scope *html.Node, selector string) dom.Element {
	s := sel(scope).FindMatcher(compile(selector))
	if s.Length() == 0 {
		return nil
	}

	return d.elem(s.Get(0))
}

func (d *Document) queryAll(scope *html.Node, selector string) []dom.Element {
	s := sel(scope).FindMatcher(compile(selector))
	els := make([]dom.Element, 0, s.Length())
	s.Each(func(_ int, match *goquery.Selection) {
		els = append(els, d.elem(match.Get(0)))
	})

	return els
}

func (d *Document) elem(n *html.Node) *Element {
	return &Element{node: n, doc: d}
}

// compile builds a matcher from a CSS selector group. A syntax error is
// a host-level failure and panics, like querySelector in a browser.
func compile(selector string) cascadia.Selector {
	m, err := cascadia.Compile(selector)
	if err != nil {
		panic(fmt.Errorf("gqdom: invalid selector %q: %w", selector, err))
	}

	return m
}

// sel wraps a node in a goquery selection.
func sel(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// walk visits n and its subtree in document order, elements only. The
// visitor returns false to stop the walk.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}

	return true
}

func nodeAttr(n *html.Node, name string) (string, bool) {
	if n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if t == token {
			return true
		}
	}

	return false
}
