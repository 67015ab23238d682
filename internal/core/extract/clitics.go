package extract

import (
	"strings"
	"unicode/utf8"

	"tareeq/internal/core/lexicon"
)

// Lexicon terms are stored bare, but report tokens arrive with proclitics
// attached: a conjunction (w- or f-), a one-letter preposition (b- l- k-),
// and the definite article al-. forms generates the candidate lookups for a
// token, exact surface first, then progressively stripped. Stripping stops
// when the remainder would be too short to be a real stem

func forms(tok string) []string {
	out := make([]string, 1, 4)
	out[0] = tok

	s := tok
	if r, rest := splitFirst(s); (r == 'و' || r == 'ف') && utf8.RuneCountInString(rest) >= 3 {
		s = rest
		out = append(out, s)
	}
	if r, rest := splitFirst(s); (r == 'ب' || r == 'ل' || r == 'ك') && utf8.RuneCountInString(rest) >= 3 {
		s = rest
		out = append(out, s)
	}
	if rest := strings.TrimPrefix(s, "ال"); rest != s && utf8.RuneCountInString(rest) >= 2 {
		out = append(out, rest)
	}
	return out
}

func splitFirst(s string) (rune, string) {
	r, size := utf8.DecodeRuneInString(s)
	return r, s[size:]
}

// matchSet reports whether any clitic-stripped form of tok is in set
func matchSet(set map[string]struct{}, tok string) bool {
	for _, f := range forms(tok) {
		if _, ok := set[f]; ok {
			return true
		}
	}
	return false
}

// matchTerm returns the event category for tok, trying stripped forms in order
func matchTerm(terms map[string]lexicon.Category, tok string) (lexicon.Category, bool) {
	for _, f := range forms(tok) {
		if cat, ok := terms[f]; ok {
			return cat, true
		}
	}
	return lexicon.Category{}, false
}
