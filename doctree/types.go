// Package doctree defines the parsed structured-document tree consumed by the
// translation engine. The tree mirrors the docutils document model: a single
// document root, nested sections, block and inline constructs, and metadata
// fields. Nodes are built once by ParseXML and never mutated afterwards.
package doctree

import "strings"

// Kind distinguishes the different kinds of document nodes.
type Kind string

// The closed set of node kinds the engine understands. Parsing preserves
// unknown element tags as-is so the translator's unknown-kind policy can
// decide what to do with them.
const (
	KindDocument Kind = "document"
	KindSection  Kind = "section"
	KindTitle    Kind = "title"
	KindSubtitle Kind = "subtitle"

	KindParagraph    Kind = "paragraph"
	KindText         Kind = "#text"
	KindEmphasis     Kind = "emphasis"
	KindStrong       Kind = "strong"
	KindLiteral      Kind = "literal"
	KindLiteralBlock Kind = "literal_block"
	KindAbbreviation Kind = "abbreviation"
	KindAcronym      Kind = "acronym"
	KindReference    Kind = "reference"
	KindTarget       Kind = "target"

	KindBulletList         Kind = "bullet_list"
	KindEnumeratedList     Kind = "enumerated_list"
	KindListItem           Kind = "list_item"
	KindDefinitionList     Kind = "definition_list"
	KindDefinitionListItem Kind = "definition_list_item"
	KindTerm               Kind = "term"
	KindDefinition         Kind = "definition"

	KindOptionList     Kind = "option_list"
	KindOptionListItem Kind = "option_list_item"
	KindOptionGroup    Kind = "option_group"
	KindOption         Kind = "option"
	KindOptionString   Kind = "option_string"
	KindOptionArgument Kind = "option_argument"
	KindDescription    Kind = "description"

	KindTable   Kind = "table"
	KindTGroup  Kind = "tgroup"
	KindColSpec Kind = "colspec"
	KindTHead   Kind = "thead"
	KindTBody   Kind = "tbody"
	KindRow     Kind = "row"
	KindEntry   Kind = "entry"

	KindImage   Kind = "image"
	KindFigure  Kind = "figure"
	KindCaption Kind = "caption"

	KindBlockQuote  Kind = "block_quote"
	KindAttribution Kind = "attribution"
	KindLineBlock   Kind = "line_block"
	KindLine        Kind = "line"
	KindTransition  Kind = "transition"
	KindTopic       Kind = "topic"

	KindDocInfo      Kind = "docinfo"
	KindAuthor       Kind = "author"
	KindAuthors      Kind = "authors"
	KindOrganization Kind = "organization"
	KindContact      Kind = "contact"
	KindAddress      Kind = "address"
	KindVersion      Kind = "version"
	KindRevision     Kind = "revision"
	KindStatus       Kind = "status"
	KindDate         Kind = "date"
	KindCopyright    Kind = "copyright"
	KindField        Kind = "field"
	KindFieldName    Kind = "field_name"
	KindFieldBody    Kind = "field_body"

	KindComment       Kind = "comment"
	KindSystemMessage Kind = "system_message"
)

// AllKinds lists every kind declared above, in declaration order. Used by the
// translator to verify dispatch-table coverage.
var AllKinds = []Kind{
	KindDocument, KindSection, KindTitle, KindSubtitle,
	KindParagraph, KindText, KindEmphasis, KindStrong, KindLiteral,
	KindLiteralBlock, KindAbbreviation, KindAcronym, KindReference, KindTarget,
	KindBulletList, KindEnumeratedList, KindListItem,
	KindDefinitionList, KindDefinitionListItem, KindTerm, KindDefinition,
	KindOptionList, KindOptionListItem, KindOptionGroup, KindOption,
	KindOptionString, KindOptionArgument, KindDescription,
	KindTable, KindTGroup, KindColSpec, KindTHead, KindTBody, KindRow, KindEntry,
	KindImage, KindFigure, KindCaption,
	KindBlockQuote, KindAttribution, KindLineBlock, KindLine,
	KindTransition, KindTopic,
	KindDocInfo, KindAuthor, KindAuthors, KindOrganization, KindContact,
	KindAddress, KindVersion, KindRevision, KindStatus, KindDate,
	KindCopyright, KindField, KindFieldName, KindFieldBody,
	KindComment, KindSystemMessage,
}

var knownKinds = func() map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(AllKinds))
	for _, k := range AllKinds {
		m[k] = struct{}{}
	}
	return m
}()

// Known reports whether the kind belongs to the closed set above.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// elementOnly lists kinds whose direct children are always elements, never
// loose text. Whitespace between children of these kinds is formatting noise
// from pretty-printed XML and is dropped during parsing.
var elementOnly = map[Kind]struct{}{
	KindDocument:           {},
	KindSection:            {},
	KindBulletList:         {},
	KindEnumeratedList:     {},
	KindListItem:           {},
	KindDefinitionList:     {},
	KindDefinitionListItem: {},
	KindOptionList:         {},
	KindOptionListItem:     {},
	KindOptionGroup:        {},
	KindOption:             {},
	KindTable:              {},
	KindTGroup:             {},
	KindTHead:              {},
	KindTBody:              {},
	KindRow:                {},
	KindEntry:              {},
	KindFigure:             {},
	KindBlockQuote:         {},
	KindLineBlock:          {},
	KindTopic:              {},
	KindDocInfo:            {},
	KindAuthors:            {},
	KindField:              {},
	KindFieldBody:          {},
	KindDefinition:         {},
	KindDescription:        {},
}

// Node is a single node of the parsed document tree. Text content is stored
// in dedicated KindText leaves; all other kinds carry attributes and children.
type Node struct {
	Kind     Kind
	Attrs    map[string]string
	Children []*Node
	Text     string // set for KindText only
}

// NewText creates a text leaf.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewElement creates an element node of the given kind.
func NewElement(kind Kind, attrs map[string]string, children ...*Node) *Node {
	return &Node{Kind: kind, Attrs: attrs, Children: children}
}

// Attr returns the named attribute or an empty string when absent.
func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// FirstID returns the first token of the node's "ids" attribute. Docutils
// stores space-separated id lists; the first one is the canonical anchor.
func (n *Node) FirstID() string {
	ids := strings.Fields(n.Attr("ids"))
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// AsPlainText recursively extracts the text content of the subtree.
func (n *Node) AsPlainText() string {
	var buf strings.Builder
	n.appendPlainText(&buf)
	return strings.TrimSpace(buf.String())
}

func (n *Node) appendPlainText(buf *strings.Builder) {
	if n.Kind == KindText {
		buf.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		child.appendPlainText(buf)
	}
}
