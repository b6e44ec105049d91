package pokemon

import (
	"strings"
	"unicode"

	"pokedex/pkg/models"
)

const englishCode = "en"

// firstEnglish returns the first entry in provider order whose language is "en".
func firstEnglish(entries []models.FlavorText) (string, bool) {
	for _, e := range entries {
		if e.Language.Name == englishCode {
			return e.FlavorText, true
		}
	}
	return "", false
}

// sanitize replaces each control, format, surrogate or private-use rune
// with one ASCII space. Runs of spaces are left as they are.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.C) {
			return ' '
		}
		return r
	}, s)
}
