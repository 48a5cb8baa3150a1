package dom

import "go.uber.org/zap"

// ByID returns the element with the given id, or nil if there is none.
// A missing element is not an error: a single warning is logged and the
// caller decides how to proceed.
func ByID(d Document, id string) Element {
	el := d.GetElementByID(id)
	if el == nil {
		logger.Warn("dom: no element matches id", zap.String("id", id))
	}
	return el
}

// ByClass returns a snapshot of all elements carrying the given class,
// in document order. The result is empty, never nil, when nothing matches.
func ByClass(d Document, class string) []Element {
	return d.GetElementsByClassName(class)
}

// ByTag returns a snapshot of all elements with the given tag name, in
// document order.
func ByTag(d Document, tag string) []Element {
	return d.GetElementsByTagName(tag)
}

// Query returns the first element matching the CSS selector, searching
// the whole document, or nil (with a warning) if nothing matches.
// Invalid selector syntax propagates as a host failure.
func Query(d Document, selector string) Element {
	el := d.QuerySelector(selector)
	if el == nil {
		logger.Warn("dom: no element matches selector", zap.String("selector", selector))
	}
	return el
}

// QueryFrom is Query scoped to the descendants of scope.
func QueryFrom(scope Element, selector string) Element {
	el := scope.QuerySelector(selector)
	if el == nil {
		logger.Warn("dom: no element matches selector", zap.String("selector", selector))
	}
	return el
}

// QueryAll returns a snapshot of every element matching the selector,
// in document order.
func QueryAll(d Document, selector string) []Element {
	return d.QuerySelectorAll(selector)
}

// QueryAllFrom is QueryAll scoped to the descendants of scope.
func QueryAllFrom(scope Element, selector string) []Element {
	return scope.QuerySelectorAll(selector)
}
