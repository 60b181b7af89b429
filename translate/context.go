package translate

import "github.com/beevik/etree"

// Current-insertion-point stack operations. The stack always contains at
// least the article element while a traversal is in flight; popping past it
// is a bug in a handler, not a property of the input, hence the panic.

// cur returns the current insertion point.
func (t *translator) cur() *etree.Element {
	return t.el[len(t.el)-1]
}

// push appends a new element as the last child of the current insertion point
// and makes it current.
func (t *translator) push(tag string) *etree.Element {
	el := t.cur().CreateElement(tag)
	t.el = append(t.el, el)
	return el
}

// pushExisting makes an already-attached element the current insertion point.
// Used when content must flow into an element created elsewhere in the output
// tree (header regions, metadata table cells).
func (t *translator) pushExisting(el *etree.Element) {
	t.el = append(t.el, el)
}

// pop makes the parent of the current insertion point current again.
func (t *translator) pop() {
	if len(t.el) <= 1 {
		panic("translate: insertion-point pop below traversal root")
	}
	t.el = t.el[:len(t.el)-1]
}

// appendText attaches loose text to the current insertion point: to its
// leading text while it has no children, to the trailing text of its last
// child otherwise.
func (t *translator) appendText(text string) {
	if text == "" {
		return
	}
	el := t.cur()
	children := el.ChildElements()
	if len(children) == 0 {
		el.SetText(el.Text() + text)
		return
	}
	last := children[len(children)-1]
	last.SetTail(last.Tail() + text)
}

// scopeTop returns the nearest enclosing section-or-article element.
func (t *translator) scopeTop() *etree.Element {
	return t.scopes[len(t.scopes)-1]
}
