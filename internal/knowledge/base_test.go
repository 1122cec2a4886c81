package knowledge

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadDefault(t *testing.T) {
	base, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if len(base.VocabularyTerms()) == 0 {
		t.Fatal("LoadDefault() returned empty vocabulary")
	}
	if len(base.FixedAnswers()) == 0 {
		t.Fatal("LoadDefault() returned no fixed answers")
	}
}

func TestLoadMissingFilesFallsBack(t *testing.T) {
	base, err := Load(fstest.MapFS{})
	if err == nil {
		t.Fatal("Load(empty fs) expected error")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %T, want *LoadError", err)
	}
	// Fallback base must still answer.
	if got := base.FindVocabulary("hipolito"); got == nil {
		t.Error("fallback base cannot find hipólito")
	}
}

func TestLoadInvalidDocumentFallsBack(t *testing.T) {
	fsys := fstest.MapFS{
		"vocabulario.json":          {Data: []byte(`{"vocabularioComplejo": {}}`)}, // fails minProperties
		"preguntas-respuestas.json": {Data: []byte(`{"preguntasEspecificas": {"a": {"pregunta": "x", "respuestaCompleta": "y"}}}`)},
	}
	base, err := Load(fsys)
	if err == nil {
		t.Fatal("Load(invalid vocabulary) expected error")
	}
	if base == nil || len(base.FixedAnswers()) == 0 {
		t.Fatal("expected non-empty fallback base")
	}
}

func TestFindVocabulary(t *testing.T) {
	base, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}

	tests := []struct {
		word     string
		wantTerm string
	}{
		{"hipólito", "hipólito"},
		{"hipolito", "hipólito"}, // accent-insensitive
		{"hipolto", "hipólito"},  // typo within distance 2
		{"grimorio", "grimorio"},
		{"iscarote", "iscarotes"}, // substring containment
	}

	for _, tt := range tests {
		got := base.FindVocabulary(tt.word)
		if got == nil {
			t.Errorf("FindVocabulary(%q) = nil, want %q", tt.word, tt.wantTerm)
			continue
		}
		if got.Term != tt.wantTerm {
			t.Errorf("FindVocabulary(%q).Term = %q, want %q", tt.word, got.Term, tt.wantTerm)
		}
		if got.Best() == "" {
			t.Errorf("FindVocabulary(%q) has empty definition", tt.word)
		}
	}

	if got := base.FindVocabulary("astronauta"); got != nil {
		t.Errorf("FindVocabulary(unknown) = %v, want nil", got)
	}
	if got := base.FindVocabulary(""); got != nil {
		t.Errorf("FindVocabulary(empty) = %v, want nil", got)
	}
}

func TestFindFixedAnswer(t *testing.T) {
	base, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}

	answer, score := base.FindFixedAnswer("¿Quién es Hipólito?")
	if answer == nil {
		t.Fatal("FindFixedAnswer returned nil for a stored question")
	}
	if answer.Key != "quien_es_hipolito" {
		t.Errorf("FindFixedAnswer key = %q, want quien_es_hipolito", answer.Key)
	}
	if score <= FixedAnswerThreshold || score > 1 {
		t.Errorf("FindFixedAnswer score = %v, want (%v, 1]", score, FixedAnswerThreshold)
	}

	if answer, _ := base.FindFixedAnswer("me gustan los helados de frutilla"); answer != nil {
		t.Errorf("FindFixedAnswer for unrelated text = %q, want nil", answer.Key)
	}
}

func TestForLevel(t *testing.T) {
	a := &FixedAnswer{Complete: "completa", Basic: "basica", Advanced: "avanzada"}
	if got := a.ForLevel(LevelBasic); got != "basica" {
		t.Errorf("ForLevel(basico) = %q", got)
	}
	if got := a.ForLevel(LevelAdvanced); got != "avanzada" {
		t.Errorf("ForLevel(avanzado) = %q", got)
	}
	if got := a.ForLevel(LevelIntermediate); got != "completa" {
		t.Errorf("ForLevel(intermedio) = %q", got)
	}

	// Missing variants fall back to the complete answer.
	b := &FixedAnswer{Complete: "completa"}
	if got := b.ForLevel(LevelBasic); got != "completa" {
		t.Errorf("ForLevel fallback = %q, want completa", got)
	}
}

func TestCharacterFacts(t *testing.T) {
	fact, ok := CharacterFact("hipolito")
	if !ok || !strings.Contains(fact, "Hipólito") {
		t.Errorf("CharacterFact(hipolito) = %q, %v", fact, ok)
	}
	// Prefix matching: "iscarotes" keyword hits the "iscarot" stem.
	if _, ok := CharacterFact("iscarotes"); !ok {
		t.Error("CharacterFact(iscarotes) should match via prefix")
	}
	if _, ok := CharacterFact("gandalf"); ok {
		t.Error("CharacterFact(gandalf) should not match")
	}
	if !strings.Contains(CharacterSummary(), "Hipólito") {
		t.Error("CharacterSummary missing protagonist")
	}
}
