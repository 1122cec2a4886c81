package textnorm

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"¿Cómo se llama el perro-dragón?", "¿como se llama el perro dragon?"},
		{"HIPÓLITO", "hipolito"},
		{"  muchos    espacios  ", "muchos espacios"},
		{"¡Hola!", "¡hola!"},
		{"niño pequeño", "niño pequeño"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"¿Qué es un perro-dragón?",
		"HOLA!!! cómo estás",
		"Sara & Benjamín... (hermanos)",
		"",
		strings.Repeat("¿á é í ó ú? ", 50),
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeCharset(t *testing.T) {
	out := Normalize("¿Qué pasó?!! @#$%^ HIPÓLITO-123 ñandú")
	for _, r := range out {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
			r == ' ' || r == '¿' || r == '?' || r == '¡' || r == '!' || r == 'ñ'
		if !ok {
			t.Errorf("Normalize output contains unexpected rune %q in %q", r, out)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("¿Cómo se llama el perro-dragón?")
	want := []string{"como", "se", "llama", "el", "perro", "dragon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}

	if got := Tokenize("   "); len(got) != 0 {
		t.Errorf("Tokenize(whitespace) = %v, want empty", got)
	}
}

func TestRemoveStopwords(t *testing.T) {
	stop := SpanishStopwords()
	got := RemoveStopwords([]string{"como", "se", "llama", "el", "perro", "dragon"}, stop)
	want := []string{"llama", "perro", "dragon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveStopwords = %v, want %v", got, want)
	}

	// nil set keeps everything
	tokens := []string{"el", "perro"}
	if got := RemoveStopwords(tokens, nil); !reflect.DeepEqual(got, tokens) {
		t.Errorf("RemoveStopwords(nil set) = %v, want %v", got, tokens)
	}
}

func TestKeywordsCustomStopwords(t *testing.T) {
	stop := NewStopwords("perro")
	got := Keywords("el perro dragón", stop)
	want := []string{"el", "dragon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet([]string{"a", "b", "a"})
	if len(set) != 2 {
		t.Errorf("TokenSet size = %d, want 2", len(set))
	}
	if _, ok := set["a"]; !ok {
		t.Error("TokenSet missing element")
	}
}
