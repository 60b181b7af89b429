package translate

import "strings"

// Address cloaking obscures email addresses from naive harvesters while
// keeping the links functional in browsers.

// CloakMailto rewrites the address part of a mailto URI using percent
// encoding for the @ separator.
func CloakMailto(uri string) string {
	return strings.ReplaceAll(uri, "@", "%40")
}

// CloakEmail rewrites visible address text with character references, the
// separators additionally wrapped so the address does not reassemble under
// plain text extraction.
func CloakEmail(addr string) string {
	addr = strings.ReplaceAll(addr, "@", "<span>&#64;</span>")
	return strings.ReplaceAll(addr, ".", "<span>&#46;</span>")
}
