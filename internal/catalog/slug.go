package catalog

import "strings"

// Slugify derives a URL-safe kit id from its display name: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens stripped. The result is deterministic for
// a given name.
func Slugify(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}
