package dom

import (
	"fmt"

	"github.com/yosssi/gohtml"
)

// DebugInfo describes an element for diagnostics: tag name, id and the
// ancestor chain down to it.
func DebugInfo(el Element) string {
	str := el.TagName()
	if id, ok := el.Attr("id"); ok {
		str += "#" + id
	}

	chain := ""
	for p := el.Parent(); p != nil; p = p.Parent() {
		chain = p.TagName() + ">" + chain
	}

	return str + " (" + chain + ")"
}

// ElementError returns an error annotated with DebugInfo on the element.
func ElementError(el Element, msg string) error {
	return fmt.Errorf("dom: element {%v}: %v", DebugInfo(el), msg)
}

// FormatHTML returns el's outer HTML, indented for human eyes.
func FormatHTML(el Element) string {
	return gohtml.Format(el.OuterHTML())
}
