package slugify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text (NFD) and drops the combining marks, so that
// "Olá" becomes "Ola". Recomposition keeps any non-latin runes intact.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns arbitrary text into a URL-safe identifier: lowercase,
// diacritics stripped, whitespace collapsed to single hyphens, everything
// outside [a-z0-9_-] removed, no leading or trailing hyphen. It never fails;
// input with no usable characters yields the empty string.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))

	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
