// Package lexicon loads and compiles the road-report vocabulary from the
// embedded rules.json. It prepares term sets for the extractor: event
// categories with priorities, relevance keywords, and the location and time
// marker gazetteers
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed rules.json
var embedded []byte

type rawCategory struct {
	Name     string   `json:"name"`
	Priority int      `json:"priority"`
	Terms    []string `json:"terms"`
}

type rawLocations struct {
	Markers      []string `json:"markers"`
	Prepositions []string `json:"prepositions"`
	Stopwords    []string `json:"stopwords"`
}

type rawTimes struct {
	Markers []string `json:"markers"`
	Leading []string `json:"leading"`
	Units   []string `json:"units"`
}

type rawPack struct {
	Version           int            `json:"version"`
	Meta              map[string]any `json:"meta"`
	EventCategories   []rawCategory  `json:"event_categories"`
	RelevanceKeywords []string       `json:"relevance_keywords"`
	Locations         rawLocations   `json:"locations"`
	Times             rawTimes       `json:"times"`
}

// Category is one event class with its resolution priority.
// Higher priority wins when a text matches terms from several classes
type Category struct {
	Name     string
	Priority int
}

// Pack represents the compiled lexicon used by the extractor.
// All term sets hold normalized tokens; callers must normalize input first
type Pack struct {
	Version int
	Meta    map[string]any

	// Categories ordered by descending priority
	Categories []Category

	// EventTerms maps a normalized token to its category
	EventTerms map[string]Category

	// RelevanceSet contains tokens that mark a text as road-related on
	// their own (event terms are also relevant but are kept separate)
	RelevanceSet map[string]struct{}

	// LocationMarkers are tokens that begin a location span (e.g. road,
	// roundabout, junction); LocationPreps are prepositions whose following
	// tokens name a location; LocationStop are status adjectives that never
	// join a span ("clear", "open"), so "the road is clear" names no place
	LocationMarkers map[string]struct{}
	LocationPreps   map[string]struct{}
	LocationStop    map[string]struct{}

	// TimeMarkers stand alone as time expressions; TimeLeading start a
	// two-token span when followed by a TimeUnit or a number
	TimeMarkers map[string]struct{}
	TimeLeading map[string]struct{}
	TimeUnits   map[string]struct{}
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported rules.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:         rp.Version,
		Meta:            rp.Meta,
		EventTerms:      make(map[string]Category, 64),
		RelevanceSet:    make(map[string]struct{}, 32),
		LocationMarkers: make(map[string]struct{}, 32),
		LocationPreps:   make(map[string]struct{}, 16),
		LocationStop:    make(map[string]struct{}, 16),
		TimeMarkers:     make(map[string]struct{}, 16),
		TimeLeading:     make(map[string]struct{}, 8),
		TimeUnits:       make(map[string]struct{}, 16),
	}

	for _, c := range rp.EventCategories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("lexicon: category with empty name")
		}
		cat := Category{Name: name, Priority: c.Priority}
		p.Categories = append(p.Categories, cat)
		for _, t := range c.Terms {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if prev, ok := p.EventTerms[t]; ok && prev.Name != name {
				return nil, fmt.Errorf("lexicon: term %q in both %q and %q", t, prev.Name, name)
			}
			p.EventTerms[t] = cat
		}
	}

	// Highest priority first; deterministic within equal priorities
	sort.Slice(p.Categories, func(i, j int) bool {
		if p.Categories[i].Priority != p.Categories[j].Priority {
			return p.Categories[i].Priority > p.Categories[j].Priority
		}
		return p.Categories[i].Name < p.Categories[j].Name
	})

	fill := func(dst map[string]struct{}, src []string) {
		for _, s := range src {
			s = strings.TrimSpace(s)
			if s != "" {
				dst[s] = struct{}{}
			}
		}
	}
	fill(p.RelevanceSet, rp.RelevanceKeywords)
	fill(p.LocationMarkers, rp.Locations.Markers)
	fill(p.LocationPreps, rp.Locations.Prepositions)
	fill(p.LocationStop, rp.Locations.Stopwords)
	fill(p.TimeMarkers, rp.Times.Markers)
	fill(p.TimeLeading, rp.Times.Leading)
	fill(p.TimeUnits, rp.Times.Units)

	return p, nil
}

// MustLoad is Load that panics on error, for wiring at process start
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}
