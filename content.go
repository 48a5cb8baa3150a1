package dom

// Text returns the text content of el's subtree.
func Text(el Element) string {
	return el.Text()
}

// SetText replaces el's children with the given text.
func SetText(el Element, text string) {
	el.SetText(text)
}

// RenderedText returns el's text as the host would render it, honoring
// the host's visibility rules. It differs from Text for hidden content.
func RenderedText(el Element) string {
	return el.RenderedText()
}

// SetRenderedText replaces el's children with the given text.
func SetRenderedText(el Element, text string) {
	el.SetRenderedText(text)
}

// AddClass adds a class to el. Adding a class that is already present is
// a no-op.
func AddClass(el Element, class string) {
	el.AddClass(class)
}

// RemoveClass removes a class from el. Removing an absent class is a
// no-op.
func RemoveClass(el Element, class string) {
	el.RemoveClass(class)
}

// SetStyle sets an inline style property on el.
func SetStyle(el Element, prop, value string) {
	el.SetStyle(prop, value)
}

// Style returns the current value of an inline style property, or the
// empty string when it is not set.
func Style(el Element, prop string) string {
	return el.Style(prop)
}

// Show forces el's display to "block". It does not restore any display
// value that was set before a Hide.
func Show(el Element) {
	el.SetStyle("display", "block")
}

// Hide forces el's display to "none". Calling it twice is the same as
// calling it once.
func Hide(el Element) {
	el.SetStyle("display", "none")
}

// GetRect returns el's geometry as reported by the host layout engine at
// call time.
func GetRect(el Element) Rect {
	return el.Rect()
}
