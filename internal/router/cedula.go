package router

import (
	"regexp"
	"strings"
)

const cedulaPrefix = "V-"

// cedulaPatterns are tried in order; the first match wins. Each captures the digits.
var cedulaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`V-(\d{7,8})`),
	regexp.MustCompile(`v-(\d{7,8})`),
	regexp.MustCompile(`(?i)c[eé]dula\s*(\d{7,8})`),
}

var cedulaTokenRe = regexp.MustCompile(`^V-\d{7,8}$`)

// CedulaExtractor pulls a Venezuelan national-ID token out of free text
type CedulaExtractor struct{}

// Extract returns the first cédula found in text in V-XXXXXXXX form
func (CedulaExtractor) Extract(text string) (string, bool) {
	for _, re := range cedulaPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return NormalizeCedula(m[1]), true
	}
	return "", false
}

// NormalizeCedula upper-cases id and guarantees exactly one V- prefix
func NormalizeCedula(id string) string {
	id = strings.ToUpper(strings.TrimSpace(id))
	for strings.HasPrefix(id, cedulaPrefix) {
		id = strings.TrimPrefix(id, cedulaPrefix)
	}
	return cedulaPrefix + id
}

// IsCedula reports whether s is already a well-formed token
func IsCedula(s string) bool {
	return cedulaTokenRe.MatchString(s)
}
