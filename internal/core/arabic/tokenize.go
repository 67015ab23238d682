package arabic

import (
	"strings"
	"unicode"
)

// Tokenize splits normalized text into word tokens.
// A token is a maximal run of letters or digits; punctuation and symbols split.
// Call Normalize first for stable vocabularies, Tokenize does not normalize
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
