package doctree

import (
	"sort"
	"strconv"
	"strings"
)

// String returns a pseudo-XML rendering of the subtree, one node per line with
// two-space indentation. It exists solely for manual inspection during
// debugging and mirrors what docutils prints for its document trees.
func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	var buf strings.Builder
	n.dump(&buf, 0)
	return buf.String()
}

func (n *Node) dump(buf *strings.Builder, depth int) {
	for range depth {
		buf.WriteString("  ")
	}
	if n.Kind == KindText {
		buf.WriteString(strconv.Quote(n.Text))
		buf.WriteByte('\n')
		return
	}

	buf.WriteByte('<')
	buf.WriteString(string(n.Kind))
	for _, name := range sortedAttrNames(n.Attrs) {
		buf.WriteByte(' ')
		buf.WriteString(name)
		buf.WriteByte('=')
		buf.WriteString(strconv.Quote(n.Attrs[name]))
	}
	buf.WriteString(">\n")

	for _, child := range n.Children {
		child.dump(buf, depth+1)
	}
}

func sortedAttrNames(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
