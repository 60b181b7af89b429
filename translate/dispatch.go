package translate

import "rst2html5/doctree"

// Node dispatch. Structurally uniform kinds are described by data and share
// two generic behaviors; irregular kinds get hand-written enter/leave pairs
// in handlers.go. Every kind of the closed doctree set must have an entry
// here - dispatch_test.go enforces coverage.

type handlerFunc func(t *translator, n *doctree.Node) error

type handler struct {
	enter handlerFunc
	leave handlerFunc
	// skip suppresses the node and its whole subtree (comments, targets and
	// other kinds with no output representation).
	skip bool
}

// simpleRule maps a structurally uniform source kind to its output element.
// Attribute renames copy the source attribute under a new name, only when
// present and non-empty.
type simpleRule struct {
	tag     string
	class   string
	renames [][2]string // {source attribute, output attribute}
}

var simpleKinds = map[doctree.Kind]simpleRule{
	doctree.KindParagraph:      {tag: "p"},
	doctree.KindEmphasis:       {tag: "em"},
	doctree.KindStrong:         {tag: "strong"},
	doctree.KindLiteral:        {tag: "code"},
	doctree.KindLiteralBlock:   {tag: "pre"},
	doctree.KindAbbreviation:   {tag: "abbr"},
	doctree.KindAcronym:        {tag: "acronym"},
	doctree.KindBulletList:     {tag: "ul"},
	doctree.KindListItem:       {tag: "li"},
	doctree.KindDefinitionList: {tag: "dl"},
	doctree.KindTerm:           {tag: "dt"},
	doctree.KindDefinition:     {tag: "dd"},
	doctree.KindTable:          {tag: "table"},
	doctree.KindTBody:          {tag: "tbody"},
	doctree.KindRow:            {tag: "tr"},
	doctree.KindFigure:         {tag: "figure"},
	doctree.KindCaption:        {tag: "figcaption"},
	doctree.KindTransition:     {tag: "hr"},
	doctree.KindImage:          {tag: "img", renames: [][2]string{{"uri", "src"}, {"alt", "alt"}}},
	doctree.KindOptionList:     {tag: "table", class: "option-list"},
	doctree.KindOptionListItem: {tag: "tr"},
	doctree.KindOption:         {tag: "span", class: "option"},
}

// classedKinds render as generic containers classed after their kind name.
var classedKinds = map[doctree.Kind]struct{}{
	doctree.KindTopic: {},
}

// transparentKinds produce no output of their own; their children attach to
// whatever is current. Grouping-only constructs of the source model.
var transparentKinds = map[doctree.Kind]struct{}{
	doctree.KindDefinitionListItem: {},
	doctree.KindTGroup:             {},
	doctree.KindAuthors:            {},
	doctree.KindOptionString:       {},
}

// silentKinds are dropped together with their subtrees.
var silentKinds = map[doctree.Kind]struct{}{
	doctree.KindTarget:        {},
	doctree.KindComment:       {},
	doctree.KindColSpec:       {},
	doctree.KindSystemMessage: {},
}

func enterSimple(rule simpleRule) handlerFunc {
	return func(t *translator, n *doctree.Node) error {
		el := t.push(rule.tag)
		if rule.class != "" {
			el.CreateAttr("class", rule.class)
		}
		for _, rename := range rule.renames {
			if v := n.Attr(rename[0]); v != "" {
				el.CreateAttr(rename[1], v)
			}
		}
		return nil
	}
}

func enterClassed(kind doctree.Kind) handlerFunc {
	return func(t *translator, _ *doctree.Node) error {
		t.push("div").CreateAttr("class", string(kind))
		return nil
	}
}

func leavePop(t *translator, _ *doctree.Node) error {
	t.pop()
	return nil
}

var handlers = buildHandlers()

func buildHandlers() map[doctree.Kind]handler {
	m := make(map[doctree.Kind]handler, len(doctree.AllKinds))

	for kind, rule := range simpleKinds {
		m[kind] = handler{enter: enterSimple(rule), leave: leavePop}
	}
	for kind := range classedKinds {
		m[kind] = handler{enter: enterClassed(kind), leave: leavePop}
	}
	for kind := range transparentKinds {
		m[kind] = handler{}
	}
	for kind := range silentKinds {
		m[kind] = handler{skip: true}
	}

	m[doctree.KindText] = handler{enter: enterText}

	m[doctree.KindDocument] = handler{enter: enterDocument}
	m[doctree.KindSection] = handler{enter: enterSection, leave: leaveSection}
	m[doctree.KindTitle] = handler{enter: enterTitle, leave: leavePop}
	m[doctree.KindSubtitle] = handler{enter: enterSubtitle, leave: leavePop}

	m[doctree.KindDocInfo] = handler{enter: enterDocInfo}
	for kind, field := range docinfoFields {
		m[kind] = handler{enter: enterDocInfoField(field), leave: leaveDocInfoField(field)}
	}
	m[doctree.KindDate] = handler{enter: enterDate, leave: leaveDate}
	m[doctree.KindField] = handler{enter: enterField, leave: leaveField}
	m[doctree.KindFieldName] = handler{enter: enterFieldName, leave: leavePop}
	m[doctree.KindFieldBody] = handler{enter: enterFieldBody, leave: leaveFieldBody}

	m[doctree.KindTHead] = handler{enter: enterTHead, leave: leaveTHead}
	m[doctree.KindEntry] = handler{enter: enterEntry, leave: leavePop}

	m[doctree.KindBlockQuote] = handler{enter: enterBlockQuote, leave: leaveBlockQuote}
	m[doctree.KindAttribution] = handler{enter: enterAttribution, leave: leavePop}

	m[doctree.KindEnumeratedList] = handler{enter: enterEnumeratedList, leave: leavePop}

	m[doctree.KindOptionGroup] = handler{enter: enterOptionGroup, leave: leaveOptionGroup}
	m[doctree.KindOptionArgument] = handler{enter: enterOptionArgument, leave: leavePop}
	m[doctree.KindDescription] = handler{enter: enterDescription, leave: leavePop}

	m[doctree.KindLineBlock] = handler{enter: enterLineBlock, leave: leaveLineBlock}
	m[doctree.KindLine] = handler{enter: enterLine, leave: leaveLine}

	m[doctree.KindReference] = handler{enter: enterReference, leave: leavePop}

	return m
}
