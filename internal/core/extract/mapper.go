package extract

import (
	"tareeq/internal/core/arabic"
	"tareeq/internal/core/lexicon"
)

// EventOther classifies reports that are road-related but match no
// specific event term
const EventOther = "other"

// Info is the structured result of mapping one raw report text.
// Location, Time and EventType are empty strings when absent; when
// Relevant is false they are always empty (Normalized is still set
// so callers can log what was discarded)
type Info struct {
	Normalized string
	Location   string
	Time       string
	EventType  string
	Relevant   bool
}

// Mapper turns raw report text into Info. It is pure and deterministic:
// the same input always yields the same output, so re-running a crashed
// batch produces identical rows
type Mapper struct {
	norm *arabic.Normalizer
	lex  *lexicon.Pack
	tag  *Tagger
}

// NewMapper constructs a Mapper over the given lexicon
func NewMapper(lex *lexicon.Pack) *Mapper {
	return &Mapper{
		norm: arabic.New(),
		lex:  lex,
		tag:  NewTagger(lex),
	}
}

// Map normalizes, tokenizes and tags text, then applies the relevance and
// event-class rules. A text is relevant when it contains a road keyword,
// an event term, or a tagged location; otherwise it is discarded upstream
func (m *Mapper) Map(text string) Info {
	normalized := m.norm.Normalize(text)
	if normalized == "" {
		return Info{}
	}

	tokens := arabic.Tokenize(normalized)
	if len(tokens) == 0 {
		return Info{}
	}

	spans := m.tag.Tag(tokens)

	var location, timeText string
	for _, sp := range spans {
		switch sp.Kind {
		case EntityLocation:
			if location == "" {
				location = sp.Text
			}
		case EntityTime:
			if timeText == "" {
				timeText = sp.Text
			}
		}
	}

	// event class: the highest-priority category any token belongs to
	var event lexicon.Category
	var hasEvent, hasKeyword bool
	for _, tok := range tokens {
		if cat, ok := matchTerm(m.lex.EventTerms, tok); ok {
			if !hasEvent || cat.Priority > event.Priority {
				event = cat
			}
			hasEvent = true
		}
		if matchSet(m.lex.RelevanceSet, tok) {
			hasKeyword = true
		}
	}

	relevant := hasEvent || hasKeyword || location != ""
	if !relevant {
		return Info{Normalized: normalized}
	}

	eventType := EventOther
	if hasEvent {
		eventType = event.Name
	}

	return Info{
		Normalized: normalized,
		Location:   location,
		Time:       timeText,
		EventType:  eventType,
		Relevant:   true,
	}
}
