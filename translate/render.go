package translate

import (
	"bytes"
	"fmt"
	"io"
)

const doctype = "<!doctype html>\n"

// WriteHTML serializes the finished document, doctype first, indented for
// readability.
func (r *Result) WriteHTML(w io.Writer) error {
	if _, err := io.WriteString(w, doctype); err != nil {
		return fmt.Errorf("writing doctype: %w", err)
	}
	r.doc.Indent(2)
	if _, err := r.doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// String renders the document to a string, for logging and tests.
func (r *Result) String() string {
	var buf bytes.Buffer
	if err := r.WriteHTML(&buf); err != nil {
		return ""
	}
	return buf.String()
}
