package gqdom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/gowade/dom"
)

// Element is a handle to a single node of a gqdom document.
type Element struct {
	node *html.Node
	doc  *Document
}

// Node exposes the underlying html node for callers that need to drop
// below the dom interfaces.
func (e *Element) Node() *html.Node {
	return e.node
}

func (e *Element) QuerySelector(selector string) dom.Element {
	return e.doc.queryFirst(e.node, selector)
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return e.doc.queryAll(e.node, selector)
}

func (e *Element) TagName() string {
	return e.node.Data
}

func (e *Element) Parent() dom.Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}

	return e.doc.elem(p)
}

func (e *Element) Children() []dom.Element {
	els := []dom.Element{}
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			els = append(els, e.doc.elem(c))
		}
	}

	return els
}

func (e *Element) AppendChild(child dom.Element) error {
	c := unwrap(child)
	if isAncestor(c.node, e.node) {
		return dom.ErrHierarchy
	}

	detach(c.node)
	e.node.AppendChild(c.node)
	return nil
}

func (e *Element) InsertBefore(child, ref dom.Element) error {
	if ref == nil {
		return e.AppendChild(child)
	}

	c, r := unwrap(child), unwrap(ref)
	if r.node.Parent != e.node {
		return dom.ErrNotChild
	}
	if isAncestor(c.node, e.node) {
		return dom.ErrHierarchy
	}

	detach(c.node)
	e.node.InsertBefore(c.node, r.node)
	return nil
}

func (e *Element) ReplaceChild(old, replacement dom.Element) error {
	o, r := unwrap(old), unwrap(replacement)
	if o.node.Parent != e.node {
		return dom.ErrNotChild
	}
	if o.node == r.node {
		return nil
	}
	if isAncestor(r.node, e.node) {
		return dom.ErrHierarchy
	}

	detach(r.node)
	e.node.InsertBefore(r.node, o.node)
	e.node.RemoveChild(o.node)
	return nil
}

func (e *Element) RemoveChild(child dom.Element) error {
	c := unwrap(child)
	if c.node.Parent != e.node {
		return dom.ErrNotChild
	}

	e.node.RemoveChild(c.node)
	return nil
}

func (e *Element) Attr(name string) (string, bool) {
	return nodeAttr(e.node, strings.ToLower(name))
}

func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i] = html.Attribute{Key: name, Val: value}
			return
		}
	}

	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}

	cl, _ := e.Attr("class")
	e.SetAttr("class", strings.TrimSpace(cl+" "+class))
}

func (e *Element) RemoveClass(class string) {
	cl, ok := e.Attr("class")
	if !ok {
		return
	}

	kept := []string{}
	for _, t := range strings.Fields(cl) {
		if t != class {
			kept = append(kept, t)
		}
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

func (e *Element) HasClass(class string) bool {
	cl, _ := e.Attr("class")
	return hasToken(cl, class)
}

// Text returns the concatenated text of the whole subtree, hidden or not.
func (e *Element) Text() string {
	return sel(e.node).Text()
}

func (e *Element) SetText(text string) {
	removeChildren(e.node)
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// RenderedText returns the text a renderer would show: script, style and
// head content is skipped, as are subtrees carrying the hidden attribute
// or an inline display:none; whitespace is collapsed.
func (e *Element) RenderedText() string {
	var b strings.Builder
	renderedText(e.node, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func (e *Element) SetRenderedText(text string) {
	e.SetText(text)
}

func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	html.Render(&buf, e.node)
	return buf.String()
}

func (e *Element) AddEventListener(typ string, l *dom.EventListener, opts dom.EventOptions) {
	e.doc.events.add(e.node, typ, l, opts)
}

func (e *Element) RemoveEventListener(typ string, l *dom.EventListener, opts dom.EventOptions) {
	e.doc.events.remove(e.node, typ, l, opts)
}

var invisibleTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

func renderedText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	case html.ElementNode:
		if invisibleTags[n.Data] {
			return
		}
		if _, hidden := nodeAttr(n, "hidden"); hidden {
			return
		}
		if v, ok := nodeAttr(n, "style"); ok && styleValue(parseStyle(v), "display") == "none" {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderedText(c, b)
	}
}

func unwrap(el dom.Element) *Element {
	e, ok := el.(*Element)
	if !ok {
		panic("gqdom: element belongs to a different dom backend")
	}

	return e
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func isAncestor(n, of *html.Node) bool {
	for p := of; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}

	return false
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}
