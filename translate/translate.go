// Package translate implements the document-tree to HTML5-tree translation
// engine. It walks the parsed source tree once, depth first, building a
// mutable etree output document, then runs a structural normalization pass
// over the finished tree. Serialization of the result is a thin front door
// over etree; everything interesting happens during the walk.
package translate

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"rst2html5/config"
	"rst2html5/doctree"
	"rst2html5/misc"
)

// Options control translation behavior that is not dictated by the source
// tree itself.
type Options struct {
	// MaxHeadingLevel caps emitted heading tags (h1..hN). Semantic nesting
	// depth is unbounded; only the tag is clamped.
	MaxHeadingLevel int
	// UnknownNodes selects what happens when the source tree contains a node
	// kind outside the closed set the dispatch table covers.
	UnknownNodes config.UnknownNodePolicy
	// CloakEmailLinks enables mailto: href cloaking on reference nodes.
	CloakEmailLinks bool
	// CompactParagraphs enables the post-traversal normalization pass that
	// collapses sole-paragraph wrappers.
	CompactParagraphs bool
	// Language, when set, becomes the lang attribute of the html root.
	Language string
	// Stylesheet, when set, is emitted as a stylesheet link in head.
	Stylesheet string
}

// DefaultOptions returns translation options matching the embedded
// configuration defaults.
func DefaultOptions() Options {
	return Options{
		MaxHeadingLevel:   6,
		UnknownNodes:      config.UnknownNodePolicyStrict,
		CloakEmailLinks:   true,
		CompactParagraphs: true,
	}
}

// Result is the finished translation: the output document plus the
// process-wide metadata summary collected from docinfo fields.
type Result struct {
	doc *etree.Document

	HTML    *etree.Element
	Head    *etree.Element
	Body    *etree.Element
	Article *etree.Element

	// Meta maps machine-readable docinfo keys (author, date, ...) to their
	// summary values. Date values are ISO-8601 when the date parser
	// succeeded, raw field text otherwise.
	Meta map[string]string
}

// translator holds all traversal-order-dependent state. A fresh translator is
// created per document, so translations are independent and reentrant.
type translator struct {
	opts Options
	log  *zap.Logger

	doc       *etree.Document
	html      *etree.Element
	head      *etree.Element
	body      *etree.Element
	article   *etree.Element
	headTitle *etree.Element

	// el is the current-insertion-point stack; top is where new content goes.
	el []*etree.Element
	// scopes tracks enclosing section-or-article elements for header lookups.
	scopes []*etree.Element

	level      int  // heading depth, balanced by section leaves
	inTHead    bool // scoped to the lifetime of a header row group
	lineIndent int  // line block nesting, -1 outside any line block

	headers   map[*etree.Element]*etree.Element // scope element -> its header
	hgroups   map[*etree.Element]*etree.Element // header -> most recent heading group
	docinfos  map[*etree.Element]*etree.Element // header -> metadata table body
	fieldRow  *etree.Element                    // row of the generic field being processed
	titleDone bool                              // head <title> already filled

	meta    map[string]string
	usedIDs map[string]int
}

func newTranslator(opts Options, log *zap.Logger) *translator {
	if opts.MaxHeadingLevel < 1 {
		opts.MaxHeadingLevel = 6
	}
	return &translator{
		opts:       opts,
		log:        log,
		lineIndent: -1,
		headers:    make(map[*etree.Element]*etree.Element),
		hgroups:    make(map[*etree.Element]*etree.Element),
		docinfos:   make(map[*etree.Element]*etree.Element),
		meta:       make(map[string]string),
		usedIDs:    make(map[string]int),
	}
}

// Translate converts a parsed document tree into an HTML5 output tree. The
// source tree is never mutated. Structural contract violations in the source
// tree abort the translation; no partial result is ever returned.
func Translate(root *doctree.Node, opts Options, log *zap.Logger) (*Result, error) {
	if root == nil {
		return nil, fmt.Errorf("nil document tree")
	}
	if root.Kind != doctree.KindDocument {
		return nil, fmt.Errorf("unexpected tree root kind %q", root.Kind)
	}

	t := newTranslator(opts, log)
	if err := t.walk(root); err != nil {
		return nil, err
	}
	t.finishHead()

	if opts.CompactParagraphs {
		compactParagraphs(t.body)
	}

	return &Result{
		doc:     t.doc,
		HTML:    t.html,
		Head:    t.head,
		Body:    t.body,
		Article: t.article,
		Meta:    t.meta,
	}, nil
}

// walk performs the enter/children/leave traversal of a single node.
func (t *translator) walk(n *doctree.Node) error {
	h, ok := handlers[n.Kind]
	if !ok {
		return t.walkUnknown(n)
	}
	if h.skip {
		return nil
	}
	if h.enter != nil {
		if err := h.enter(t, n); err != nil {
			return fmt.Errorf("%s: %w", n.Kind, err)
		}
	}
	for _, child := range n.Children {
		if err := t.walk(child); err != nil {
			return err
		}
	}
	if h.leave != nil {
		if err := h.leave(t, n); err != nil {
			return fmt.Errorf("%s: %w", n.Kind, err)
		}
	}
	return nil
}

// walkUnknown applies the configured policy to node kinds without a dispatch
// entry.
func (t *translator) walkUnknown(n *doctree.Node) error {
	switch t.opts.UnknownNodes {
	case config.UnknownNodePolicyPassthrough:
		t.log.Warn("Unknown node kind, emitting transparent container", zap.String("kind", string(n.Kind)))
		div := t.push("div")
		div.CreateAttr("class", string(n.Kind))
		for _, child := range n.Children {
			if err := t.walk(child); err != nil {
				return err
			}
		}
		t.pop()
		return nil
	default:
		return fmt.Errorf("no dispatch entry for node kind %q", n.Kind)
	}
}

// finishHead duplicates the collected docinfo summary into the head region
// and fills in the document title.
func (t *translator) finishHead() {
	for _, key := range sortedKeys(t.meta) {
		meta := t.head.CreateElement("meta")
		meta.CreateAttr("name", key)
		meta.CreateAttr("content", t.meta[key])
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildSkeleton creates the fixed output document structure. The article
// element becomes the traversal root for all document content.
func (t *translator) buildSkeleton(n *doctree.Node) {
	t.doc = etree.NewDocument()
	t.doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	t.html = t.doc.CreateElement("html")
	if t.opts.Language != "" {
		t.html.CreateAttr("lang", t.opts.Language)
	} else if lang := n.Attr("lang"); lang != "" {
		t.html.CreateAttr("lang", lang)
	}

	t.head = t.html.CreateElement("head")

	charset := t.head.CreateElement("meta")
	charset.CreateAttr("charset", "utf-8")

	generator := t.head.CreateElement("meta")
	generator.CreateAttr("name", "generator")
	generator.CreateAttr("content", misc.GetAppName()+" "+misc.GetVersion())

	if t.opts.Stylesheet != "" {
		link := t.head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("type", "text/css")
		link.CreateAttr("href", t.opts.Stylesheet)
	}

	t.headTitle = t.head.CreateElement("title")

	t.body = t.html.CreateElement("body")
	t.article = t.body.CreateElement("article")

	t.el = []*etree.Element{t.article}
	t.scopes = []*etree.Element{t.article}
}
