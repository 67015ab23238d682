package extract

import (
	"testing"

	"tareeq/internal/core/lexicon"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	lex, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon.Load(): %v", err)
	}
	return NewMapper(lex)
}

func TestMap_Table(t *testing.T) {
	m := newTestMapper(t)

	tests := []struct {
		name     string
		in       string
		relevant bool
		event    string
		location string
		timeText string
	}{
		{
			name:     "accident with location and time",
			in:       "حادث سير مروع قرب دوار المنارة قبل قليل",
			relevant: true,
			event:    "accident",
			location: "دوار المناره",
			timeText: "قبل قليل",
		},
		{
			name:     "traffic jam with definite article",
			in:       "الأزمة خانقة على شارع القدس الآن",
			relevant: true,
			event:    "traffic",
			location: "شارع القدس",
			timeText: "الان",
		},
		{
			name:     "closure checkpoint",
			in:       "حاجز مفاجئ عند مدخل البلدة",
			relevant: true,
			event:    "closure",
			location: "حاجز مفاجئ",
		},
		{
			name:     "relevant via location only",
			in:       "شو صاير عند دوار المنارة",
			relevant: true,
			event:    "other",
			location: "دوار المناره",
		},
		{
			name:     "relevant via traffic-ban keywords",
			in:       "منع مرور المركبات",
			relevant: true,
			event:    "other",
		},
		{
			name:     "relevant via slow-traffic keyword",
			in:       "حركة السير بطيئة",
			relevant: true,
			event:    "other",
		},
		{
			name:     "relevant via inspection keyword",
			in:       "تفتيش دقيق للسيارات",
			relevant: true,
			event:    "other",
		},
		{
			name:     "stuck drivers with elapsed time",
			in:       "عالقين منذ ساعة",
			relevant: true,
			event:    "other",
			timeText: "منذ ساعه",
		},
		{
			name:     "road is clear is not a report",
			in:       "الطريق سالك",
			relevant: false,
		},
		{
			name:     "irrelevant chatter",
			in:       "صباح الخير جميعا كيف حالكم",
			relevant: false,
		},
		{
			name:     "empty input",
			in:       "",
			relevant: false,
		},
		{
			name:     "whitespace only",
			in:       "   \t\n  ",
			relevant: false,
		},
		{
			name:     "numeric road name",
			in:       "ازدحام شديد على شارع 60",
			relevant: true,
			event:    "traffic",
			location: "شارع 60",
		},
		{
			name:     "clock time with day part",
			in:       "انقلاب شاحنة على طريق نابلس الساعة 8 مساء",
			relevant: true,
			event:    "accident",
			location: "طريق نابلس",
			timeText: "الساعه 8 مساء",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := m.Map(tc.in)
			if got.Relevant != tc.relevant {
				t.Fatalf("Map(%q).Relevant = %v, want %v", tc.in, got.Relevant, tc.relevant)
			}
			if !tc.relevant {
				if got.EventType != "" || got.Location != "" || got.Time != "" {
					t.Fatalf("irrelevant input produced fields: %+v", got)
				}
				return
			}
			if got.EventType != tc.event {
				t.Fatalf("EventType = %q, want %q", got.EventType, tc.event)
			}
			if got.Location != tc.location {
				t.Fatalf("Location = %q, want %q", got.Location, tc.location)
			}
			if got.Time != tc.timeText {
				t.Fatalf("Time = %q, want %q", got.Time, tc.timeText)
			}
		})
	}
}

// accident outranks traffic outranks closure when several terms co-occur
func TestMap_EventPriority(t *testing.T) {
	m := newTestMapper(t)

	tests := []struct {
		in    string
		event string
	}{
		{"ازمه خانقه بسبب حادث على الدوار", "accident"},
		{"اغلاق الشارع سبب ازدحام كبير", "traffic"},
		{"الطريق مغلق بالكامل", "closure"},
	}
	for _, tc := range tests {
		got := m.Map(tc.in)
		if !got.Relevant {
			t.Fatalf("Map(%q) not relevant", tc.in)
		}
		if got.EventType != tc.event {
			t.Fatalf("Map(%q).EventType = %q, want %q", tc.in, got.EventType, tc.event)
		}
	}
}

// mapping the same text twice yields identical results
func TestMap_Deterministic(t *testing.T) {
	m := newTestMapper(t)
	in := "حادث كبير قرب دوار المنارة الآن"
	a := m.Map(in)
	b := m.Map(in)
	if a != b {
		t.Fatalf("Map not deterministic: %+v vs %+v", a, b)
	}
}

func TestForms(t *testing.T) {
	tests := []struct {
		in   string
		want string // a form that must be generated
	}{
		{"الحادث", "حادث"},
		{"والطريق", "طريق"},
		{"بالدوار", "دوار"},
		{"ازمه", "ازمه"},
	}
	for _, tc := range tests {
		found := false
		for _, f := range forms(tc.in) {
			if f == tc.want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("forms(%q) = %v, missing %q", tc.in, forms(tc.in), tc.want)
		}
	}
}
