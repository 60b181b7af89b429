package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"rst2html5/doctree"
)

const nbsp = "\u00a0"

func enterText(t *translator, n *doctree.Node) error {
	t.appendText(n.Text)
	return nil
}

func enterDocument(t *translator, n *doctree.Node) error {
	t.buildSkeleton(n)
	return nil
}

// Sections nest the scope stack; the heading depth they opened (via their
// title) is closed on leave.

func enterSection(t *translator, n *doctree.Node) error {
	section := t.push("section")
	if id := n.FirstID(); id != "" {
		section.CreateAttr("id", id)
		t.usedIDs[id]++
	}
	t.scopes = append(t.scopes, section)
	return nil
}

func leaveSection(t *translator, _ *doctree.Node) error {
	if t.level == 0 {
		return fmt.Errorf("section leave would make heading depth negative")
	}
	t.level--
	t.scopes = t.scopes[:len(t.scopes)-1]
	t.pop()
	return nil
}

// Titles hoist themselves out of document order into the enclosing scope's
// header region, grouped so a following subtitle can join them.

func enterTitle(t *translator, n *doctree.Node) error {
	t.level++

	scope := t.scopeTop()
	if scope != t.article && scope.SelectAttrValue("id", "") == "" {
		scope.CreateAttr("id", t.makeSectionID(n.AsPlainText()))
	}
	if !t.titleDone && scope == t.article {
		t.headTitle.SetText(n.AsPlainText())
		t.titleDone = true
	}

	header := t.localHeader()
	hgroup := header.CreateElement("hgroup")
	t.hgroups[header] = hgroup

	h := hgroup.CreateElement(t.headingTag(t.level))
	t.pushExisting(h)
	return nil
}

func enterSubtitle(t *translator, _ *doctree.Node) error {
	hgroup := t.hgroups[t.localHeader()]
	if hgroup == nil {
		return fmt.Errorf("subtitle without a preceding title in scope")
	}
	h := hgroup.CreateElement(t.headingTag(t.level + 1))
	t.pushExisting(h)
	return nil
}

// headingTag renders the tag for a heading depth, clamped at the configured
// maximum.
func (t *translator) headingTag(level int) string {
	return "h" + strconv.Itoa(min(level, t.opts.MaxHeadingLevel))
}

// makeSectionID slugs a title into a document-unique section anchor.
func (t *translator) makeSectionID(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "section"
	}
	t.usedIDs[base]++
	if n := t.usedIDs[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}

// Metadata fields share a lazily created table inside the header region; each
// field becomes a labeled row with its data cell pushed as insertion point.

type docinfoField struct {
	label    string
	itemprop string
}

var docinfoFields = map[doctree.Kind]docinfoField{
	doctree.KindAuthor:       {label: "Author", itemprop: "author"},
	doctree.KindOrganization: {label: "Organization", itemprop: "organization"},
	doctree.KindContact:      {label: "Contact", itemprop: "contact"},
	doctree.KindAddress:      {label: "Address", itemprop: "address"},
	doctree.KindVersion:      {label: "Version", itemprop: "version"},
	doctree.KindRevision:     {label: "Revision", itemprop: "revision"},
	doctree.KindStatus:       {label: "Status", itemprop: "status"},
	doctree.KindCopyright:    {label: "Copyright", itemprop: "copyright"},
}

func enterDocInfo(t *translator, _ *doctree.Node) error {
	t.localHeader().CreateAttr("itemscope", "true")
	return nil
}

func enterDocInfoField(field docinfoField) handlerFunc {
	return func(t *translator, _ *doctree.Node) error {
		t.pushExisting(t.prepDocInfo(field.label, field.itemprop))
		return nil
	}
}

func leaveDocInfoField(field docinfoField) handlerFunc {
	return func(t *translator, n *doctree.Node) error {
		t.pop()
		t.meta[field.itemprop] = n.AsPlainText()
		return nil
	}
}

// Dates additionally wrap their text in a time element carrying a
// machine-readable timestamp when the raw text parses. Parse failure is not
// an error; the human-readable text always survives.

func enterDate(t *translator, n *doctree.Node) error {
	t.pushExisting(t.prepDocInfo("Date", "date"))
	timeEl := t.push("time")

	raw := n.AsPlainText()
	if iso, err := parseDateString(raw); err == nil {
		timeEl.CreateAttr("datetime", iso)
		t.meta["date"] = iso
	} else {
		t.log.Debug("Date field is not machine readable", zap.String("raw", raw), zap.Error(err))
		t.meta["date"] = raw
	}
	return nil
}

func leaveDate(t *translator, _ *doctree.Node) error {
	t.pop() // time
	t.pop() // data cell
	return nil
}

// Generic fields reuse the docinfo table: field_name fills the label cell,
// field_body the data cell.

func enterField(t *translator, _ *doctree.Node) error {
	t.fieldRow = t.localDocInfo().CreateElement("tr")
	return nil
}

func leaveField(t *translator, _ *doctree.Node) error {
	t.fieldRow = nil
	return nil
}

func enterFieldName(t *translator, _ *doctree.Node) error {
	if t.fieldRow == nil {
		return fmt.Errorf("field_name outside a field")
	}
	t.pushExisting(t.fieldRow.CreateElement("th"))
	return nil
}

func enterFieldBody(t *translator, _ *doctree.Node) error {
	if t.fieldRow == nil {
		return fmt.Errorf("field_body outside a field")
	}
	td := t.fieldRow.CreateElement("td")
	if th := t.fieldRow.SelectElement("th"); th != nil {
		if prop := slug.Make(th.Text()); prop != "" {
			td.CreateAttr("itemprop", prop)
		}
	}
	t.pushExisting(td)
	return nil
}

func leaveFieldBody(t *translator, n *doctree.Node) error {
	t.pop()
	if t.fieldRow != nil {
		if th := t.fieldRow.SelectElement("th"); th != nil {
			if prop := slug.Make(th.Text()); prop != "" {
				t.meta[prop] = n.AsPlainText()
			}
		}
	}
	return nil
}

// Table header groups flip the header-cell flag for their lifetime; entries
// pick their tag off it and compute span attributes, omitted when default.

func enterTHead(t *translator, _ *doctree.Node) error {
	t.push("thead")
	t.inTHead = true
	return nil
}

func leaveTHead(t *translator, _ *doctree.Node) error {
	t.pop()
	t.inTHead = false
	return nil
}

func enterEntry(t *translator, n *doctree.Node) error {
	tag := "td"
	if t.inTHead {
		tag = "th"
	}
	cell := t.push(tag)

	if span := spanCount(n.Attr("morerows")); span > 1 {
		cell.CreateAttr("rowspan", strconv.Itoa(span))
	}
	if span := spanCount(n.Attr("morecols")); span > 1 {
		cell.CreateAttr("colspan", strconv.Itoa(span))
	}
	return nil
}

// spanCount converts a declared extra-rows/columns attribute into a span.
func spanCount(extra string) int {
	n, err := strconv.Atoi(extra)
	if err != nil || n < 0 {
		return 1
	}
	return n + 1
}

// Block quotes wrap quoted content in a nested body container so a trailing
// attribution can sit next to it inside the wrapper.

func enterBlockQuote(t *translator, _ *doctree.Node) error {
	t.push("blockquote")
	t.push("div")
	return nil
}

func leaveBlockQuote(t *translator, _ *doctree.Node) error {
	if t.cur().Tag != "blockquote" {
		// no attribution closed the body container early
		t.pop()
	}
	t.pop()
	return nil
}

func enterAttribution(t *translator, _ *doctree.Node) error {
	if t.cur().Tag == "blockquote" {
		return fmt.Errorf("attribution outside an open quotation body")
	}
	t.pop() // end quoted-content collection
	cite := t.push("cite")
	cite.CreateAttr("class", "attribution")
	return nil
}

// Enumerated lists map the source enumeration style onto a CSS list-style
// declaration, omitted for the default numeric rendering.

var enumStyles = map[string]string{
	"arabic":     "",
	"loweralpha": "lower-alpha",
	"upperalpha": "upper-alpha",
	"lowerroman": "lower-roman",
	"upperroman": "upper-roman",
}

func enterEnumeratedList(t *translator, n *doctree.Node) error {
	ol := t.push("ol")
	if style := enumStyles[n.Attr("enumtype")]; style != "" {
		ol.CreateAttr("style", "list-style-type: "+style+";")
	}
	return nil
}

// Option groups render as a header cell holding keyboard-input styled option
// names; descriptions as the matching data cell.

func enterOptionGroup(t *translator, _ *doctree.Node) error {
	t.push("th")
	t.push("kbd")
	return nil
}

func leaveOptionGroup(t *translator, _ *doctree.Node) error {
	t.pop()
	t.pop()
	return nil
}

func enterOptionArgument(t *translator, n *doctree.Node) error {
	delim := t.push("span")
	delim.CreateAttr("class", "delimiter")
	delim.SetText(n.Attr("delimiter"))
	t.pop()

	t.push("var")
	return nil
}

func enterDescription(t *translator, _ *doctree.Node) error {
	t.push("td").CreateAttr("class", "description")
	return nil
}

// Line blocks realize indentation per line as runs of non-breaking spaces and
// close every line with a forced break.

func enterLineBlock(t *translator, _ *doctree.Node) error {
	t.lineIndent++
	return nil
}

func leaveLineBlock(t *translator, _ *doctree.Node) error {
	t.lineIndent--
	return nil
}

func enterLine(t *translator, _ *doctree.Node) error {
	if t.lineIndent > 0 {
		t.appendText(strings.Repeat(nbsp, 4*t.lineIndent))
	}
	return nil
}

func leaveLine(t *translator, _ *doctree.Node) error {
	t.cur().CreateElement("br")
	return nil
}

// References become anchors; mailto targets are cloaked when enabled.

func enterReference(t *translator, n *doctree.Node) error {
	a := t.push("a")
	switch {
	case n.Attr("refuri") != "":
		href := n.Attr("refuri")
		if t.opts.CloakEmailLinks && strings.HasPrefix(href, "mailto:") {
			href = CloakMailto(href)
		}
		a.CreateAttr("href", href)
	case n.Attr("refid") != "":
		a.CreateAttr("href", "#"+n.Attr("refid"))
	}
	return nil
}
