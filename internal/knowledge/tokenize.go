package knowledge

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stopwords = map[string]bool{
	"a": true, "al": true, "con": true, "de": true, "del": true, "el": true,
	"en": true, "es": true, "la": true, "las": true, "lo": true, "los": true,
	"mi": true, "o": true, "para": true, "por": true, "que": true, "se": true,
	"su": true, "un": true, "una": true, "y": true, "como": true, "me": true,
}

// fold lowercases s and strips diacritics, so "Cómo" and "como" compare equal
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// tokenize splits s into folded terms, dropping stopwords
func tokenize(s string) []string {
	fields := strings.FieldsFunc(fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := fields[:0]
	for _, f := range fields {
		if stopwords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}
