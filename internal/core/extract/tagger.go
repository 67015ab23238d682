// Package extract maps normalized Arabic report text to structured fields:
// location and time mentions, event class, and a relevance verdict
package extract

import (
	"strings"
	"unicode"

	"tareeq/internal/core/lexicon"
)

// EntityKind labels a tagged span
type EntityKind string

const (
	// EntityLocation marks a place mention (roundabout, street, junction ...)
	EntityLocation EntityKind = "location"
	// EntityTime marks a time expression (now, an hour ago, at 8 ...)
	EntityTime EntityKind = "time"
)

// Span is a tagged run of tokens; Start and End are token indices [Start,End)
type Span struct {
	Kind  EntityKind
	Text  string
	Start int
	End   int
}

// Tagger finds location and time spans in tokenized normalized text.
// It is a gazetteer tagger driven by the lexicon marker sets, not a
// statistical model; callers must pass tokens of already-normalized text
type Tagger struct {
	lex *lexicon.Pack
}

// NewTagger constructs a Tagger over the given lexicon
func NewTagger(lex *lexicon.Pack) *Tagger {
	return &Tagger{lex: lex}
}

// maximum tokens appended after a location marker or preposition
const locationTail = 2

// Tag scans tokens left to right and returns spans in token order.
// A token consumed by one span is not reconsidered for another
func (tg *Tagger) Tag(tokens []string) []Span {
	if len(tokens) == 0 {
		return nil
	}

	var spans []Span
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		// standalone time words
		if matchSet(tg.lex.TimeMarkers, tok) {
			spans = append(spans, Span{
				Kind:  EntityTime,
				Text:  tok,
				Start: i,
				End:   i + 1,
			})
			i++
			continue
		}

		// leading time word + unit or number, e.g. "منذ ساعه" / "الساعه 8"
		if matchSet(tg.lex.TimeLeading, tok) && i+1 < len(tokens) {
			next := tokens[i+1]
			if tg.isTimeUnit(next) {
				end := i + 2
				// absorb a trailing day-part marker, e.g. "الساعه 8 مساء"
				if end < len(tokens) && matchSet(tg.lex.TimeMarkers, tokens[end]) {
					end++
				}
				spans = append(spans, Span{
					Kind:  EntityTime,
					Text:  strings.Join(tokens[i:end], " "),
					Start: i,
					End:   end,
				})
				i = end
				continue
			}
		}

		// location marker heads its own span, e.g. "دوار المنارة".
		// A bare marker with no name after it ("the road is clear") is a
		// common noun, not a place mention
		if matchSet(tg.lex.LocationMarkers, tok) {
			end := tg.extendLocation(tokens, i+1)
			if end > i+1 {
				spans = append(spans, Span{
					Kind:  EntityLocation,
					Text:  strings.Join(tokens[i:end], " "),
					Start: i,
					End:   end,
				})
				i = end
				continue
			}
			i++
			continue
		}

		// preposition introduces a location but is not part of it,
		// e.g. "قرب المستشفى" tags "المستشفى"
		if matchSet(tg.lex.LocationPreps, tok) && i+1 < len(tokens) {
			next := tokens[i+1]
			// let a following marker token head its own span instead
			if !matchSet(tg.lex.LocationMarkers, next) && tg.isPlain(next) {
				end := tg.extendLocation(tokens, i+2)
				spans = append(spans, Span{
					Kind:  EntityLocation,
					Text:  strings.Join(tokens[i+1:end], " "),
					Start: i + 1,
					End:   end,
				})
				i = end
				continue
			}
		}

		i++
	}
	return spans
}

// extendLocation consumes up to locationTail plain tokens starting at j
// and returns the exclusive end index
func (tg *Tagger) extendLocation(tokens []string, j int) int {
	end := j
	for end < len(tokens) && end < j+locationTail && tg.isPlain(tokens[end]) {
		end++
	}
	return end
}

// isPlain reports whether tok is free to join a location span: it must not
// belong to any lexicon class (digits are fine, road numbers are common)
func (tg *Tagger) isPlain(tok string) bool {
	if tok == "" {
		return false
	}
	if _, ok := matchTerm(tg.lex.EventTerms, tok); ok {
		return false
	}
	if matchSet(tg.lex.LocationMarkers, tok) ||
		matchSet(tg.lex.LocationPreps, tok) ||
		matchSet(tg.lex.LocationStop, tok) ||
		matchSet(tg.lex.TimeMarkers, tok) ||
		matchSet(tg.lex.TimeLeading, tok) {
		return false
	}
	return true
}

// isTimeUnit reports whether tok can follow a leading time word
func (tg *Tagger) isTimeUnit(tok string) bool {
	return matchSet(tg.lex.TimeUnits, tok) || isNumeric(tok)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
