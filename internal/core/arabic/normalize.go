// Package arabic provides a deterministic normalizer for Arabic report text
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove combining marks (strips tashkeel) and format chars
// 4 Strip tatweel
// 5 Orthographic folds alef hamza forms to bare alef, alef maksura to yeh, teh marbuta to heh
// 6 Collapse whitespace to single spaces and trim
package arabic

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	tatweel     = 'ـ'
	alefMadda   = 'آ'
	alefHamzaA  = 'أ'
	alefHamzaB  = 'إ'
	alef        = 'ا'
	tehMarbuta  = 'ة'
	heh         = 'ه'
	alefMaksura = 'ى'
	yeh         = 'ي'
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks incl Arabic diacritics
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ RLM etc
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-3 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 4-5 tatweel strip and orthographic folds
	ns = foldLetters(ns)

	// 6 collapse whitespace and trim
	ns = collapseSpaces(ns)

	return ns
}

// foldLetters unifies hamza-carrying alef forms, alef maksura and teh marbuta,
// and drops tatweel. The folds follow common Arabic search normalization so
// that spelling variants of the same word compare equal
func foldLetters(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case tatweel:
			// drop
		case alefMadda, alefHamzaA, alefHamzaB:
			b.WriteRune(alef)
		case alefMaksura:
			b.WriteRune(yeh)
		case tehMarbuta:
			b.WriteRune(heh)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
