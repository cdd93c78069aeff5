package slug

import "strings"

// Make derives a URL-safe slug: lowercase, runs of non-alphanumerics collapsed
// into a single hyphen, leading/trailing hyphens trimmed.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
