package doctree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// XML parsing for the docutils document serialization. We keep parsing
// deliberately uniform - every element becomes a node tagged by its element
// name, attributes are copied verbatim - so the translator's dispatch table
// is the single place that knows what each kind means.

// ParseXML reads a docutils document XML stream and builds the node tree.
// The root element must be <document>.
func ParseXML(r io.Reader, log *zap.Logger) (*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read document XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if root.Tag != string(KindDocument) {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	return parseElement(root, log), nil
}

func parseElement(el *etree.Element, log *zap.Logger) *Node {
	kind := Kind(el.Tag)
	if !kind.Known() {
		log.Debug("Unknown element kind in document tree", zap.String("tag", el.Tag))
	}

	node := &Node{Kind: kind}
	if len(el.Attr) > 0 {
		node.Attrs = make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			node.Attrs[a.Key] = a.Value
		}
	}

	_, skipSpace := elementOnly[kind]
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			node.Children = append(node.Children, parseElement(t, log))
		case *etree.CharData:
			if skipSpace && strings.TrimSpace(t.Data) == "" {
				continue
			}
			node.Children = append(node.Children, NewText(t.Data))
		}
	}
	return node
}
