package resolver

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/smartinez/hipolito/internal/intent"
	"github.com/smartinez/hipolito/internal/knowledge"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	base, err := knowledge.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	return New(base, WithRand(rand.New(rand.NewSource(1))))
}

func TestResolveCharacterQuestion(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("¿Cómo se llama el perro-dragón?", knowledge.LevelIntermediate)
	if res.Intent != intent.TagCharacter {
		t.Errorf("Intent = %q, want %q", res.Intent, intent.TagCharacter)
	}
	if res.Source != SourceTopical {
		t.Errorf("Source = %q, want %q", res.Source, SourceTopical)
	}
	if res.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", res.Confidence)
	}
	if !strings.Contains(res.Text, "Hipólito") {
		t.Errorf("Text = %q, should mention Hipólito", res.Text)
	}
}

func TestResolveNamedCharacter(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("contame sobre Sara", knowledge.LevelIntermediate)
	if res.Source != SourceTopical {
		t.Errorf("Source = %q, want %q", res.Source, SourceTopical)
	}
	if !strings.Contains(res.Text, "Sara") || strings.Contains(res.Text, "protagonista") {
		t.Errorf("Text = %q, want the Sara-specific fact", res.Text)
	}
}

func TestResolvePlaceQuestion(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("¿Dónde queda la biblioteca?", knowledge.LevelIntermediate)
	if res.Source != SourceTopical || res.Confidence != 0.9 {
		t.Errorf("Source=%q Confidence=%v, want topical 0.9", res.Source, res.Confidence)
	}
	if !strings.Contains(res.Text, "biblioteca") {
		t.Errorf("Text = %q, should mention the library", res.Text)
	}
}

func TestResolveFixedAnswerLevels(t *testing.T) {
	r := newTestResolver(t)

	// A plot question that reaches the fixed-answer stage.
	question := "¿Qué pasó con el libro?"

	basic := r.Resolve(question, knowledge.LevelBasic)
	if basic.Source != SourceSpecific {
		t.Fatalf("Source = %q, want %q", basic.Source, SourceSpecific)
	}
	advanced := r.Resolve(question, knowledge.LevelAdvanced)
	if basic.Text == advanced.Text {
		t.Error("basic and advanced variants should differ for this question")
	}
	if basic.Confidence <= knowledge.FixedAnswerThreshold || basic.Confidence > 1 {
		t.Errorf("Confidence = %v, want within (0.3, 1]", basic.Confidence)
	}
}

func TestResolveVocabulary(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("merienda", knowledge.LevelIntermediate)
	if res.Source != SourceVocabulary {
		t.Fatalf("Source = %q, want %q", res.Source, SourceVocabulary)
	}
	if res.Confidence < 0.6 || res.Confidence > 0.8 {
		t.Errorf("Confidence = %v, want within [0.6, 0.8]", res.Confidence)
	}
	if res.Text == "" {
		t.Error("empty vocabulary answer")
	}
}

func TestResolveIntentTemplates(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		text string
		tag  intent.Tag
	}{
		{"hola", intent.TagGreeting},
		{"chau", intent.TagFarewell},
		{"ayuda", intent.TagHelp},
	}

	for _, tt := range tests {
		res := r.Resolve(tt.text, knowledge.LevelIntermediate)
		if res.Source != SourceIntent {
			t.Errorf("Resolve(%q).Source = %q, want %q", tt.text, res.Source, SourceIntent)
		}
		if res.Intent != tt.tag {
			t.Errorf("Resolve(%q).Intent = %q, want %q", tt.text, res.Intent, tt.tag)
		}
		if res.Confidence < 0.5 || res.Confidence > 0.7 {
			t.Errorf("Resolve(%q).Confidence = %v, want within [0.5, 0.7]", tt.text, res.Confidence)
		}
	}
}

func TestResolveGenericFallback(t *testing.T) {
	r := newTestResolver(t)

	inputs := []string{
		"",
		"     ",
		"zzz qqq www",
		strings.Repeat("x", 5000),
	}

	for _, in := range inputs {
		res := r.Resolve(in, knowledge.LevelIntermediate)
		if res.Text == "" {
			t.Errorf("Resolve(%q) returned empty text", truncate(in))
		}
		if res.Source != SourceGeneric {
			t.Errorf("Resolve(%q).Source = %q, want %q", truncate(in), res.Source, SourceGeneric)
		}
		if res.Confidence != 0.3 {
			t.Errorf("Resolve(%q).Confidence = %v, want 0.3", truncate(in), res.Confidence)
		}
	}
}

func TestResolveNeverEmptyAndBounded(t *testing.T) {
	r := newTestResolver(t)

	inputs := []string{
		"", " ", "hola", "¿quién?", "grimorio", "asdfghjkl",
		"¿Cómo se llama el perro-dragón?", "no sé", "1234567890",
		strings.Repeat("¿qué? ", 1000),
	}
	for _, in := range inputs {
		for _, level := range []knowledge.Level{knowledge.LevelBasic, knowledge.LevelIntermediate, knowledge.LevelAdvanced} {
			res := r.Resolve(in, level)
			if res.Text == "" {
				t.Errorf("Resolve(%q, %q) returned empty text", truncate(in), level)
			}
			if res.Confidence < 0 || res.Confidence > 1 {
				t.Errorf("Resolve(%q, %q).Confidence = %v out of [0,1]", truncate(in), level, res.Confidence)
			}
		}
	}
}

func TestResolveDeterministicWithSeed(t *testing.T) {
	base, err := knowledge.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}

	a := New(base, WithRand(rand.New(rand.NewSource(42))))
	b := New(base, WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 10; i++ {
		ra := a.Resolve("mensaje sin sentido qqq", knowledge.LevelIntermediate)
		rb := b.Resolve("mensaje sin sentido qqq", knowledge.LevelIntermediate)
		if ra.Text != rb.Text {
			t.Fatalf("same seed produced different generic replies: %q vs %q", ra.Text, rb.Text)
		}
	}
}

func TestSuggestions(t *testing.T) {
	r := newTestResolver(t)
	got := r.Suggestions()
	if len(got) != 3 {
		t.Fatalf("Suggestions() returned %d items, want 3", len(got))
	}
	seen := map[string]bool{}
	for _, s := range got {
		if s == "" || seen[s] {
			t.Errorf("Suggestions() has empty or duplicate entry: %q", s)
		}
		seen[s] = true
	}
}

func truncate(s string) string {
	if len(s) > 32 {
		return s[:32] + "…"
	}
	return s
}
