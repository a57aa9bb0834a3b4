// Package slug converts free text into URL-safe identifiers. Word keys
// and tag url names are always derived through Make so that uniqueness
// checks and lookups compare the same normalized form.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes characters and strips the combining marks,
// so "café" becomes "cafe".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make returns the URL slug for text: lowercase ASCII letters and
// digits, with every other run of characters collapsed to a single dash
func Make(text string) string {
	folded, _, err := transform.String(foldDiacritics, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastDash := true // suppress a leading dash
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
