package domain

import (
	"strings"
	"unicode"
)

type CatalogEntry struct {
	Name    string
	BaseURL string
}

// Catalog keeps entries in page order. Names are not guaranteed unique.
type Catalog []CatalogEntry

func (c Catalog) Empty() bool {
	return len(c) == 0
}

type ResolvedCourse struct {
	DisplayName string
	BaseURL     string
}

// NormalizeName builds the comparison key for course names and user queries.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// StripPunctuation removes ASCII punctuation. It is deliberately not part of
// NormalizeName: matching stays punctuation-sensitive.
func StripPunctuation(raw string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			return -1
		}
		return r
	}, raw)
}
