package translate

import (
	"github.com/araddon/dateparse"
)

// isoTimestamp is the machine-readable form emitted into time elements and
// the metadata summary.
const isoTimestamp = "2006-01-02T15:04:05"

// parseDateString attempts to read a free-form date field and render it in
// ISO-8601 form. Date fields are author-written text, so failure is expected
// and left to the caller to handle.
func parseDateString(raw string) (string, error) {
	ts, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", err
	}
	return ts.Format(isoTimestamp), nil
}
