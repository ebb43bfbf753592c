package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// clean lower-cases text and collapses punctuation and whitespace runs into
// single spaces. Diacritics are kept.
func clean(text string) string {
	text = strings.ToLower(text)
	return strings.Join(strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	}), " ")
}

// fold is clean with Vietnamese diacritics removed, so "Hồ Chí Minh" and
// "ho chi minh" compare equal.
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, clean(text))
	if err != nil {
		return clean(text)
	}
	return strings.ReplaceAll(out, "đ", "d")
}

// hasPhrase reports whether phrase occurs in text on word boundaries. Both
// arguments must already be cleaned or folded.
func hasPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

func hasAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if hasPhrase(text, p) {
			return true
		}
	}
	return false
}

// queryText compares catalog text in the query's own accent discipline: an
// unaccented query matches folded text, an accented one matches with
// diacritics, so "phố" (street) does not pull in "phở".
type queryText struct {
	text     string
	unaccent bool
}

func newQueryText(query string) queryText {
	cleaned := clean(query)
	folded := fold(query)
	return queryText{text: cleaned, unaccent: cleaned == folded}
}

func (q queryText) form(s string) string {
	if q.unaccent {
		return fold(s)
	}
	return clean(s)
}
