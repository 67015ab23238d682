// Package verify promotes report groups to confirmed incidents.
// A group is confirmed when enough independent reports corroborate it;
// the incident's fields are synthesized from the members by frequency
// with chronological tie-breaks. This stage is pure: no I/O, and the
// same groups always yield the same incidents
package verify

import (
	"sort"
	"time"
)

// Member is one report inside a candidate group. Location, Time and
// Event are empty when the extractor found nothing for that field
type Member struct {
	Normalized string
	Location   string
	Time       string
	Event      string
	At         time.Time
}

// Incident is the synthesized record for a confirmed group
type Incident struct {
	RepresentativeText string
	Location           string
	Time               string
	Event              string
	Count              int
	FirstAt            time.Time
	LastAt             time.Time
}

// Policy holds the confirmation rule
type Policy struct {
	// MinConfirmations is the minimum group size to confirm, inclusive
	MinConfirmations int
}

// Confirm filters groups by size and synthesizes one Incident per
// confirmed group. Groups below the bar are dropped without trace;
// callers still mark their reports processed, which is the documented
// retention policy (late corroboration starts a fresh incident)
func (p Policy) Confirm(groups [][]Member) []Incident {
	var out []Incident
	for _, g := range groups {
		if len(g) < p.MinConfirmations {
			continue
		}
		out = append(out, synthesize(g))
	}
	return out
}

// synthesize builds the incident record from members ordered by
// timestamp ascending. Each nullable field takes the most frequent
// non-empty value; on a frequency tie the value seen earliest wins
func synthesize(g []Member) Incident {
	members := make([]Member, len(g))
	copy(members, g)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].At.Before(members[j].At)
	})

	inc := Incident{
		RepresentativeText: members[0].Normalized,
		Count:              len(members),
		FirstAt:            members[0].At,
		LastAt:             members[len(members)-1].At,
	}
	inc.Location = mostFrequent(members, func(m Member) string { return m.Location })
	inc.Time = mostFrequent(members, func(m Member) string { return m.Time })
	inc.Event = mostFrequent(members, func(m Member) string { return m.Event })
	return inc
}

func mostFrequent(members []Member, field func(Member) string) string {
	type tally struct {
		count int
		first int
	}
	counts := make(map[string]*tally, len(members))
	for i, m := range members {
		v := field(m)
		if v == "" {
			continue
		}
		t, ok := counts[v]
		if !ok {
			counts[v] = &tally{count: 1, first: i}
			continue
		}
		t.count++
	}

	var best string
	var bestT tally
	for v, t := range counts {
		if best == "" ||
			t.count > bestT.count ||
			(t.count == bestT.count && t.first < bestT.first) {
			best = v
			bestT = *t
		}
	}
	return best
}
