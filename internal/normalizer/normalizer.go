package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var reSpaces = regexp.MustCompile(`\s+`)

// isMn reports whether a rune is a combining diacritic mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// StripDiacritics decomposes the string (NFD) and discards combining marks,
// so "Valparaíso" becomes "Valparaiso" and "Ñuble" becomes "Nuble".
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Malformed UTF-8 input; transliterate instead of dropping it.
		return unidecode.Unidecode(s)
	}
	return out
}

// foldASCII transliterates any rune that survived diacritic stripping
// (characters with no canonical decomposition, e.g. "ø" or "đ").
func foldASCII(s string) string {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return unidecode.Unidecode(s)
		}
	}
	return s
}

// NormalizeKey canonicalizes free-form text into a lookup key: diacritics
// stripped, ASCII-folded, lowercased, whitespace runs collapsed to single
// spaces, leading/trailing whitespace trimmed. Empty input yields "".
// The operation is pure and idempotent.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}
	out := foldASCII(StripDiacritics(s))
	out = strings.ToLower(out)
	return strings.TrimSpace(reSpaces.ReplaceAllString(out, " "))
}
