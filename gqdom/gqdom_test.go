package gqdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><body><div id="a"><p>x</p><p>y</p></div><div id="b"></div></body></html>`

func TestParseString(t *testing.T) {
	d := ParseString(page)

	root := d.Root()
	require.NotNil(t, root)
	require.Equal(t, "html", root.TagName())
}

func TestParseBuildsSkeleton(t *testing.T) {
	// The html parser wraps bare content in html/head/body.
	d := ParseString(`<p>loose</p>`)
	require.Len(t, d.GetElementsByTagName("body"), 1)
	require.Len(t, d.GetElementsByTagName("p"), 1)
}

func TestQuerySelectorScope(t *testing.T) {
	d := ParseString(page)

	a := d.GetElementByID("a")
	require.Len(t, a.QuerySelectorAll("p"), 2)

	b := d.GetElementByID("b")
	require.Nil(t, b.QuerySelector("p"))
	require.Empty(t, b.QuerySelectorAll("p"))
}

func TestInvalidSelectorPanics(t *testing.T) {
	d := ParseString(page)

	require.Panics(t, func() { d.QuerySelector("p[") })
	require.Panics(t, func() { d.QuerySelectorAll("???") })
}

func TestTagNameOrder(t *testing.T) {
	d := ParseString(page)

	divs := d.GetElementsByTagName("div")
	require.Len(t, divs, 2)
	ida, _ := divs[0].Attr("id")
	idb, _ := divs[1].Attr("id")
	require.Equal(t, "a", ida)
	require.Equal(t, "b", idb)
}

func TestCreateElementAtom(t *testing.T) {
	d := ParseString(page)

	el := d.CreateElement("DIV")
	require.Equal(t, "div", el.TagName())
	require.Empty(t, el.Children())
}

func TestOuterHTML(t *testing.T) {
	d := ParseString(page)

	out := d.GetElementByID("b").OuterHTML()
	require.Equal(t, `<div id="b"></div>`, out)
}

func TestStyleParsing(t *testing.T) {
	decls := parseStyle("COLOR: red; width : 10px ;")
	require.Len(t, decls, 2)
	require.Equal(t, "color", decls[0].Property)
	require.Equal(t, "red", decls[0].Value)
	require.Equal(t, "color: red; width: 10px;", formatStyle(decls))

	// Authored attributes often omit the final semicolon.
	unterminated := parseStyle("display:none")
	require.Len(t, unterminated, 1)
	require.Equal(t, "none", unterminated[0].Value)
}

func TestStyleRoundTripKeepsLastDeclaration(t *testing.T) {
	d := ParseString(page)
	el := d.GetElementByID("b")

	el.SetStyle("color", "red")
	require.Equal(t, "red", el.Style("color"))

	// Serialized form must terminate the final declaration, or parsing
	// it back drops the value.
	reparsed := parseStyle(formatStyle(parseStyle("color: red;")))
	require.Len(t, reparsed, 1)
	require.Equal(t, "red", reparsed[0].Value)

	el.SetStyle("display", "none")
	require.Equal(t, "none", el.Style("display"))
	require.Equal(t, "red", el.Style("color"))
}

func TestStyleMalformedReadsEmpty(t *testing.T) {
	require.Empty(t, parseStyle("}{ not a declaration"))
	require.Empty(t, parseStyle("   "))
}

func TestPixels(t *testing.T) {
	require.Equal(t, 12.5, pixels("12.5px"))
	require.Equal(t, 12.0, pixels(" 12px "))
	require.Equal(t, 0.0, pixels(""))
	require.Equal(t, 0.0, pixels("auto"))
}

func TestSetTextClearsSubtree(t *testing.T) {
	d := ParseString(page)

	a := d.GetElementByID("a")
	a.SetText("flat")
	require.Equal(t, "flat", a.Text())
	require.Empty(t, a.Children())
	require.False(t, strings.Contains(a.OuterHTML(), "<p>"))
}

func TestAttrNamesAreLowercased(t *testing.T) {
	d := ParseString(page)

	el := d.GetElementByID("b")
	el.SetAttr("Data-K", "v")
	v, ok := el.Attr("data-k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}
