package similarity

import (
	"testing"

	"github.com/smartinez/hipolito/internal/textnorm"
)

func set(tokens ...string) map[string]struct{} {
	return textnorm.TokenSet(tokens)
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]struct{}
		want float64
	}{
		{"identical", set("perro", "dragon"), set("perro", "dragon"), 1},
		{"disjoint", set("perro"), set("gato"), 0},
		{"half", set("perro", "dragon"), set("perro", "gato"), 1.0 / 3.0},
		{"both empty", set(), set(), 0},
		{"one empty", set("perro"), set(), 0},
	}

	for _, tt := range tests {
		got := Jaccard(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("%s: Jaccard = %v, want %v", tt.name, got, tt.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("%s: Jaccard out of [0,1]: %v", tt.name, got)
		}
	}
}

func TestJaccardSelfIdentity(t *testing.T) {
	a := set("hipolito", "perro", "dragon")
	if got := Jaccard(a, a); got != 1 {
		t.Errorf("Jaccard(a,a) = %v, want 1", got)
	}
}

func TestSentences(t *testing.T) {
	stop := textnorm.SpanishStopwords()
	score := Sentences("¿Quién es Hipólito?", "quien es hipolito", stop)
	if score != 1 {
		t.Errorf("Sentences identical after normalization = %v, want 1", score)
	}

	score = Sentences("¿Cómo se llama el perro?", "¿Dónde viven los gatos?", stop)
	if score != 0 {
		t.Errorf("Sentences disjoint = %v, want 0", score)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"hipolito", "hipolito", 0},
		{"hipolito", "hipolto", 1},
		{"kitten", "sitting", 3},
		{"iscarotes", "iscarote", 1},
		{"dragón", "dragon", 1},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// symmetry
		if got := Levenshtein(tt.b, tt.a); got != tt.want {
			t.Errorf("Levenshtein(%q,%q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestLevenshteinTriangleInequality(t *testing.T) {
	words := []string{"hipolito", "hipolto", "ipolito", "sara", "benjamin", ""}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				ab := Levenshtein(a, b)
				bc := Levenshtein(b, c)
				ac := Levenshtein(a, c)
				if ac > ab+bc {
					t.Errorf("triangle inequality violated: d(%q,%q)=%d > d(%q,%q)+d(%q,%q)=%d",
						a, c, ac, a, b, b, c, ab+bc)
				}
			}
		}
	}
}

func TestIsTypoMatch(t *testing.T) {
	tests := []struct {
		word, term string
		want       bool
	}{
		{"hipolto", "hipolito", true},
		{"ipolito", "hipolito", true},
		{"gato", "hipolito", false},
		{"no", "nos", false},  // too short to correct
		{"sol", "sal", false}, // exactly MinTypoLength, still guarded
		{"saara", "sara", true},
	}

	for _, tt := range tests {
		if got := IsTypoMatch(tt.word, tt.term); got != tt.want {
			t.Errorf("IsTypoMatch(%q,%q) = %v, want %v", tt.word, tt.term, got, tt.want)
		}
	}
}
