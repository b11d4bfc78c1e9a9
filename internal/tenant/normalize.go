// Package tenant resolves caller-supplied business identifiers and loads
// per-tenant knowledge and display metadata.
package tenant

import "strings"

// DefaultID is the identifier substituted when normalization empties the input.
const DefaultID = "default"

// NormalizeID canonicalizes a caller-supplied business identifier into a
// filesystem- and storage-safe key. It lower-cases the input, trims
// surrounding whitespace, and keeps only alphanumerics, hyphen, and
// underscore. The mapping is total and lossy: distinct inputs such as
// "A!B" and "ab" collide to the same key, which is accepted behavior.
func NormalizeID(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultID
	}
	return b.String()
}
