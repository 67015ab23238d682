package verify

import (
	"reflect"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

func TestConfirm_ThresholdBoundary(t *testing.T) {
	p := Policy{MinConfirmations: 2}

	pair := []Member{
		{Normalized: "a", At: t0},
		{Normalized: "b", At: t0.Add(time.Hour)},
	}
	single := []Member{{Normalized: "c", At: t0}}

	out := p.Confirm([][]Member{pair, single})
	if len(out) != 1 {
		t.Fatalf("expected 1 incident, got %d", len(out))
	}
	if out[0].Count != 2 {
		t.Fatalf("Count = %d, want 2", out[0].Count)
	}

	// exactly at the bar confirms; one below does not
	if got := p.Confirm([][]Member{single}); got != nil {
		t.Fatalf("singleton confirmed: %+v", got)
	}
}

func TestConfirm_Empty(t *testing.T) {
	p := Policy{MinConfirmations: 2}
	if got := p.Confirm(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestSynthesize_Fields(t *testing.T) {
	g := []Member{
		{
			Normalized: "حادث علي شارع الملك",
			Location:   "شارع الملك",
			Event:      "accident",
			At:         t0.Add(30 * time.Minute),
		},
		{
			Normalized: "حادث سير علي شارع الملك",
			Location:   "شارع الملك",
			Time:       "قبل قليل",
			Event:      "accident",
			At:         t0,
		},
		{
			Normalized: "اصطدام مركبتين قرب شارع الملك",
			Location:   "دوار المناره",
			Event:      "accident",
			At:         t0.Add(time.Hour),
		},
	}

	inc := synthesize(g)

	// earliest member supplies the representative text
	if inc.RepresentativeText != "حادث سير علي شارع الملك" {
		t.Fatalf("RepresentativeText = %q", inc.RepresentativeText)
	}
	// two of three agree on the street
	if inc.Location != "شارع الملك" {
		t.Fatalf("Location = %q", inc.Location)
	}
	// only one member carried a time, nulls do not vote
	if inc.Time != "قبل قليل" {
		t.Fatalf("Time = %q", inc.Time)
	}
	if inc.Event != "accident" {
		t.Fatalf("Event = %q", inc.Event)
	}
	if inc.Count != 3 {
		t.Fatalf("Count = %d", inc.Count)
	}
	if !inc.FirstAt.Equal(t0) || !inc.LastAt.Equal(t0.Add(time.Hour)) {
		t.Fatalf("FirstAt/LastAt = %v/%v", inc.FirstAt, inc.LastAt)
	}
}

// frequency ties resolve to the value seen earliest in timestamp order
func TestSynthesize_TieBreak(t *testing.T) {
	g := []Member{
		{Normalized: "x", Location: "دوار المناره", At: t0.Add(time.Minute)},
		{Normalized: "y", Location: "شارع القدس", At: t0},
	}
	inc := synthesize(g)
	if inc.Location != "شارع القدس" {
		t.Fatalf("Location = %q, want earliest value on tie", inc.Location)
	}
}

// all-empty fields stay empty rather than inventing a value
func TestSynthesize_AllNull(t *testing.T) {
	g := []Member{
		{Normalized: "a", At: t0},
		{Normalized: "b", At: t0.Add(time.Minute)},
	}
	inc := synthesize(g)
	if inc.Location != "" || inc.Time != "" || inc.Event != "" {
		t.Fatalf("expected empty fields, got %+v", inc)
	}
}

// synthesis depends on timestamps, not on member arrival order
func TestSynthesize_ArrivalOrderIrrelevant(t *testing.T) {
	a := Member{Normalized: "first", Location: "A", At: t0}
	b := Member{Normalized: "second", Location: "B", At: t0.Add(time.Hour)}

	x := synthesize([]Member{a, b})
	y := synthesize([]Member{b, a})
	if !reflect.DeepEqual(x, y) {
		t.Fatalf("synthesis differs by arrival order: %+v vs %+v", x, y)
	}
	if x.RepresentativeText != "first" {
		t.Fatalf("RepresentativeText = %q, want earliest", x.RepresentativeText)
	}
}
