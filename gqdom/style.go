package gqdom

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/gowade/dom"
)

func (e *Element) Style(prop string) string {
	v, _ := e.Attr("style")
	return styleValue(parseStyle(v), prop)
}

func (e *Element) SetStyle(prop, value string) {
	v, _ := e.Attr("style")
	decls := parseStyle(v)

	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range decls {
		if d.Property == prop {
			d.Value = value
			e.SetAttr("style", formatStyle(decls))
			return
		}
	}

	decls = append(decls, &css.Declaration{Property: prop, Value: value})
	e.SetAttr("style", formatStyle(decls))
}

// Rect reports geometry from the element's inline width, height, top and
// left pixel values. The gqdom host performs no layout, so anything not
// declared inline is zero.
func (e *Element) Rect() dom.Rect {
	v, _ := e.Attr("style")
	decls := parseStyle(v)

	return dom.Rect{
		Width:  pixels(styleValue(decls, "width")),
		Height: pixels(styleValue(decls, "height")),
		Top:    pixels(styleValue(decls, "top")),
		Left:   pixels(styleValue(decls, "left")),
	}
}

// parseStyle reads the declarations of a style attribute, keeping their
// order. A malformed attribute reads as empty.
func parseStyle(s string) []*css.Declaration {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// The parser reads an unterminated final declaration as empty.
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}

	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		return nil
	}
	for _, d := range decls {
		d.Property = strings.ToLower(d.Property)
	}

	return decls
}

// formatStyle serializes declarations for the style attribute. Every
// declaration is terminated with a semicolon; the parser treats an
// unterminated final declaration as having an empty value.
func formatStyle(decls []*css.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Property + ": " + d.Value + ";"
	}

	return strings.Join(parts, " ")
}

func styleValue(decls []*css.Declaration, prop string) string {
	for _, d := range decls {
		if d.Property == prop {
			return d.Value
		}
	}

	return ""
}

func pixels(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}

	return f
}
