//go:build js && wasm

// Package jsdom implements the dom interfaces on the live browser
// document through syscall/js. Every method is a direct call into the
// host; failures thrown by the host surface as errors or panics
// unchanged.
package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/gowade/dom"
)

type document struct {
	v js.Value
}

// Document returns the global browser document.
func Document() dom.Document {
	d := js.Global().Get("document")
	if d.IsUndefined() {
		panic("jsdom: no document in this environment")
	}

	return document{d}
}

// Element wraps a browser element.
type Element struct {
	v js.Value
}

// JS exposes the underlying js value.
func (e *Element) JS() js.Value {
	return e.v
}

var (
	_ dom.Document = document{}
	_ dom.Element  = (*Element)(nil)
)

func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}

	return &Element{v}
}

// elements copies a NodeList or HTMLCollection into a snapshot slice.
func elements(list js.Value) []dom.Element {
	n := list.Length()
	els := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		els = append(els, &Element{list.Index(i)})
	}

	return els
}

func unwrap(el dom.Element) *Element {
	e, ok := el.(*Element)
	if !ok {
		panic("jsdom: element belongs to a different dom backend")
	}

	return e
}

// catch converts a thrown host exception into an error. Non-host panics
// are re-raised.
func catch(err *error) {
	if r := recover(); r != nil {
		if jserr, ok := r.(js.Error); ok {
			*err = jserr
			return
		}
		panic(r)
	}
}

func (d document) Root() dom.Element {
	return wrap(d.v.Get("documentElement"))
}

func (d document) CreateElement(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}

func (d document) GetElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d document) GetElementsByClassName(class string) []dom.Element {
	return elements(d.v.Call("getElementsByClassName", class))
}

func (d document) GetElementsByTagName(tag string) []dom.Element {
	return elements(d.v.Call("getElementsByTagName", tag))
}

func (d document) QuerySelector(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d document) QuerySelectorAll(selector string) []dom.Element {
	return elements(d.v.Call("querySelectorAll", selector))
}

func (e *Element) QuerySelector(selector string) dom.Element {
	return wrap(e.v.Call("querySelector", selector))
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return elements(e.v.Call("querySelectorAll", selector))
}

func (e *Element) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *Element) Parent() dom.Element {
	return wrap(e.v.Get("parentElement"))
}

func (e *Element) Children() []dom.Element {
	return elements(e.v.Get("children"))
}

func (e *Element) AppendChild(child dom.Element) (err error) {
	defer catch(&err)
	e.v.Call("appendChild", unwrap(child).v)
	return nil
}

func (e *Element) InsertBefore(child, ref dom.Element) (err error) {
	defer catch(&err)
	r := js.Null()
	if ref != nil {
		r = unwrap(ref).v
	}
	e.v.Call("insertBefore", unwrap(child).v, r)
	return nil
}

func (e *Element) ReplaceChild(old, replacement dom.Element) (err error) {
	defer catch(&err)
	e.v.Call("replaceChild", unwrap(replacement).v, unwrap(old).v)
	return nil
}

func (e *Element) RemoveChild(child dom.Element) (err error) {
	defer catch(&err)
	e.v.Call("removeChild", unwrap(child).v)
	return nil
}

func (e *Element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}

	return v.String(), true
}

func (e *Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) RemoveAttr(name string) {
	e.v.Call("removeAttribute", name)
}

func (e *Element) AddClass(class string) {
	e.v.Get("classList").Call("add", class)
}

func (e *Element) RemoveClass(class string) {
	e.v.Get("classList").Call("remove", class)
}

func (e *Element) HasClass(class string) bool {
	return e.v.Get("classList").Call("contains", class).Bool()
}

func (e *Element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) RenderedText() string {
	return e.v.Get("innerText").String()
}

func (e *Element) SetRenderedText(text string) {
	e.v.Set("innerText", text)
}

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) Rect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
		Top:    r.Get("top").Float(),
		Left:   r.Get("left").Float(),
	}
}

func (e *Element) OuterHTML() string {
	return e.v.Get("outerHTML").String()
}
