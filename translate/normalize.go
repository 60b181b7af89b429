package translate

import "github.com/beevik/etree"

// compactParagraphs collapses paragraph wrappers that are the only element
// child of their parent into the parent itself. Runs bottom up so nested
// single-paragraph containers compact in one pass. A paragraph carrying
// attributes is never collapsed; its markup is meaningful on its own.
func compactParagraphs(el *etree.Element) {
	for _, child := range el.ChildElements() {
		compactParagraphs(child)
	}

	children := el.ChildElements()
	if len(children) != 1 || el.Text() != "" {
		return
	}
	p := children[0]
	if p.Tag != "p" || len(p.Attr) != 0 {
		return
	}

	hoist(el, p)
}

// hoist replaces the sole child p with its own content, keeping text, tails
// and child order intact.
func hoist(parent, p *etree.Element) {
	tail := p.Tail()
	text := p.Text()
	grandchildren := p.ChildElements()
	tails := make([]string, len(grandchildren))
	for i, gc := range grandchildren {
		tails[i] = gc.Tail()
	}

	p.SetTail("")
	parent.RemoveChild(p)

	parent.SetText(text)
	for i, gc := range grandchildren {
		gc.SetTail("")
		parent.AddChild(gc)
		gc.SetTail(tails[i])
	}

	if tail == "" {
		return
	}
	if len(grandchildren) > 0 {
		last := grandchildren[len(grandchildren)-1]
		last.SetTail(last.Tail() + tail)
	} else {
		parent.SetText(parent.Text() + tail)
	}
}
