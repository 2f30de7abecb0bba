// Package version handles build version tags. A tag is a string in the
// canonical form "v<value>"; all comparisons happen on normalized tags.
package version

import "strings"

// Normalize returns the canonical "v<value>" form of a tag. Empty input
// stays empty so absent tags remain distinguishable.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	return "v" + strings.TrimPrefix(tag, "v")
}

// Equal reports whether two tags identify the same build, comparing
// their normalized forms.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
