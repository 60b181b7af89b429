package translate

import "github.com/beevik/etree"

// Header regions and the metadata table inside them are created on first
// demand and cached per scope element, so repeated docinfo fields and a
// title/subtitle pair all land in the same place without searching the
// output tree.

// localHeader returns the header of the nearest enclosing scope, creating it
// as the scope's first child when missing.
func (t *translator) localHeader() *etree.Element {
	scope := t.scopeTop()
	if header, ok := t.headers[scope]; ok {
		return header
	}
	header := etree.NewElement("header")
	scope.InsertChildAt(0, header)
	t.headers[scope] = header
	return header
}

// localDocInfo returns the metadata table body of the local header, creating
// table and body on first use.
func (t *translator) localDocInfo() *etree.Element {
	header := t.localHeader()
	if tbody, ok := t.docinfos[header]; ok {
		return tbody
	}
	table := header.CreateElement("table")
	table.CreateAttr("class", "docinfo")
	tbody := table.CreateElement("tbody")
	t.docinfos[header] = tbody
	return tbody
}

// prepDocInfo adds a labeled metadata row and returns its data cell.
func (t *translator) prepDocInfo(label, itemprop string) *etree.Element {
	row := t.localDocInfo().CreateElement("tr")
	row.CreateElement("th").SetText(label)
	td := row.CreateElement("td")
	td.CreateAttr("itemprop", itemprop)
	return td
}
