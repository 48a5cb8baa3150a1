package dom

// Children returns a snapshot of parent's element children.
func Children(parent Element) []Element {
	return parent.Children()
}

// Create builds a new, detached element and applies the options bag in a
// fixed order: class name, text content, then attributes. An empty class
// name or text content is treated as not provided; attributes are set in
// slice order through the generic attribute setter.
func Create(d Document, tag string, opts CreateOptions) Element {
	el := d.CreateElement(tag)
	if opts.ClassName != "" {
		el.AddClass(opts.ClassName)
	}
	if opts.TextContent != "" {
		el.SetText(opts.TextContent)
	}
	for _, a := range opts.Attributes {
		el.SetAttr(a.Name, a.Value)
	}
	return el
}

// Append appends child as the last child of parent. A child that already
// has a parent is moved, per host semantics.
func Append(parent, child Element) error {
	return parent.AppendChild(child)
}

// InsertBefore inserts child into parent before ref. A nil ref appends at
// the end, per host convention.
func InsertBefore(parent, child, ref Element) error {
	return parent.InsertBefore(child, ref)
}

// Replace swaps old for replacement in old's parent. It fails with a
// host error when old currently has no parent. The document element has
// no parent element, only the document itself, so the root cannot be
// replaced through this helper and reports ErrDetached.
func Replace(old, replacement Element) error {
	p := old.Parent()
	if p == nil {
		return ErrDetached
	}
	return p.ReplaceChild(old, replacement)
}

// RemoveChild detaches child from parent. It fails with a host error
// when child is not currently a child of parent.
func RemoveChild(parent, child Element) error {
	return parent.RemoveChild(child)
}
