// Package dom provides convenience helpers over a host-provided document
// tree. The host is abstracted behind the Document and Element interfaces;
// package gqdom implements them on a pure-Go parsed document, package jsdom
// on the live browser document.
package dom

import (
	"errors"
)

var (
	// ErrNotChild is returned by tree mutators when the given node is not
	// a child of the parent it is being detached from or inserted around.
	ErrNotChild = errors.New("dom: node is not a child of the given parent")

	// ErrDetached is returned when an operation requires the node to have
	// a parent and it has none.
	ErrDetached = errors.New("dom: node has no parent")

	// ErrHierarchy is returned when an insertion would make a node its
	// own ancestor.
	ErrHierarchy = errors.New("dom: insertion would create a cycle")
)

type (
	// Document is the capability surface of a host document: lookup and
	// element creation. Implementations must return an untyped nil
	// Element when a single-result lookup has no match.
	Document interface {
		GetElementByID(id string) Element
		GetElementsByClassName(class string) []Element
		GetElementsByTagName(tag string) []Element
		QuerySelector(selector string) Element
		QuerySelectorAll(selector string) []Element
		CreateElement(tag string) Element
		Root() Element
	}

	// Element is an opaque handle to a single node in the host document
	// tree. Multi-result methods return snapshots, never live views.
	Element interface {
		QuerySelector(selector string) Element
		QuerySelectorAll(selector string) []Element

		TagName() string
		Parent() Element
		Children() []Element
		AppendChild(child Element) error
		InsertBefore(child, ref Element) error
		ReplaceChild(old, replacement Element) error
		RemoveChild(child Element) error

		Attr(name string) (string, bool)
		SetAttr(name, value string)
		RemoveAttr(name string)
		AddClass(class string)
		RemoveClass(class string)
		HasClass(class string) bool

		Text() string
		SetText(text string)
		RenderedText() string
		SetRenderedText(text string)

		Style(prop string) string
		SetStyle(prop, value string)
		Rect() Rect

		OuterHTML() string

		AddEventListener(typ string, l *EventListener, opts EventOptions)
		RemoveEventListener(typ string, l *EventListener, opts EventOptions)
	}

	// Attr is a single attribute pair. CreateOptions carries attributes
	// as a slice so they are applied in the caller's order.
	Attr struct {
		Name  string
		Value string
	}

	// CreateOptions is the options bag for Create. An empty ClassName or
	// TextContent is treated as not provided.
	CreateOptions struct {
		ClassName   string
		TextContent string
		Attributes  []Attr
	}

	// Rect is a geometry snapshot taken from the host layout engine at
	// call time.
	Rect struct {
		Width  float64
		Height float64
		Top    float64
		Left   float64
	}
)
