package arabic

import (
	"reflect"
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity plain arabic",
			in:   "حادث في الدوار",
			out:  "حادث في الدوار",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff}) + "حادث" + string([]byte{0x80}),
			out:  "حادث",
		},
		{
			name: "strip tashkeel",
			in:   "حَادِثٌ مُرَوِّعٌ",
			out:  "حادث مروع",
		},
		{
			name: "strip tatweel",
			in:   "حـــادث",
			out:  "حادث",
		},
		{
			name: "alef hamza folds",
			in:   "أزمة إغلاق آسف",
			out:  "ازمه اغلاق اسف",
		},
		{
			name: "alef maksura to yeh",
			in:   "مصطفى مشى",
			out:  "مصطفي مشي",
		},
		{
			name: "teh marbuta to heh",
			in:   "ازدحام شديد في المنطقة",
			out:  "ازدحام شديد في المنطقه",
		},
		{
			name: "remove zero-widths",
			in:   "حا​دث‍",
			out:  "حادث",
		},
		{
			name: "collapse whitespace",
			in:   "حادث\t\tكبير\nقرب   الدوار",
			out:  "حادث كبير قرب الدوار",
		},
		{
			name: "mixed latin untouched by folds",
			in:   "accident at KM 12",
			out:  "accident at KM 12",
		},
		{
			name: "idempotent",
			in:   n.Normalize("  أَزْمَة خَانِقَة  "),
			out:  "ازمه خانقه",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// Idempotence check: normalize again should be identical
			got2 := n.Normalize(got)
			if got2 != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, got2)
			}
		})
	}
}

// Variants of the same word must normalize to the same form
func TestNormalize_VariantsConverge(t *testing.T) {
	n := New()
	variants := []string{"أزمة", "ازمة", "أزمه", "ازمه", "أَزْمَة"}
	want := n.Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := n.Normalize(v); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestFoldLetters(t *testing.T) {
	in := "إلى المدرسة أو الجامعـــة"
	want := "الي المدرسه او الجامعه"
	got := foldLetters(in)
	if got != want {
		t.Fatalf("foldLetters(%q) = %q, want %q", in, got, want)
	}
}

func TestCollapseSpaces(t *testing.T) {
	in := " \t a \n b   c \r\n "
	want := "a b c"
	got := collapseSpaces(in)
	if got != want {
		t.Fatalf("collapseSpaces(%q) = %q, want %q", in, got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []string
	}{
		{"empty", "", nil},
		{"plain", "حادث قرب الدوار", []string{"حادث", "قرب", "الدوار"}},
		{"punct splits", "حادث، قرب-الدوار!", []string{"حادث", "قرب", "الدوار"}},
		{"digits kept", "شارع 60 مغلق", []string{"شارع", "60", "مغلق"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.out) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.out)
			}
		})
	}
}
