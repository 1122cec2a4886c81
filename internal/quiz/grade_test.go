package quiz

import "testing"

func TestIsDontKnow(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain no se", "no sé", true},
		{"unaccented", "no se", true},
		{"joined", "nose", true},
		{"bare no", "no", true},
		{"forgot", "se me olvidó", true},
		{"no memory", "no me acuerdo", true},
		{"skip word", "paso", true},
		{"embedded long variation", "la verdad no tengo idea de eso", true},
		{"answer containing no", "un nombre muy bonito", false},
		{"real answer", "hipólito", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDontKnow(tt.text); got != tt.want {
				t.Errorf("IsDontKnow(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	questions := DefaultQuestions()
	byID := make(map[int]*Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	tests := []struct {
		name string
		id   int
		text string
		want bool
	}{
		{"exact name", 1, "hipólito", true},
		{"name without accent", 1, "hipolito", true},
		{"name inside sentence", 1, "se llama Hipólito", true},
		{"wrong name", 1, "firulais", false},
		{"both siblings", 2, "Sara y Benjamín", true},
		{"reversed order", 2, "benjamin y sara", true},
		{"one feature is enough", 3, "tiene alas", true},
		{"feature in sentence", 3, "tiene unas alas blancas muy bonitas", true},
		{"library", 4, "en la biblioteca", true},
		{"the book ate answer", 6, "hipólito se lo comió", true},
		{"butterflies", 7, "las mariposas azules", true},
		{"rain", 8, "estaba lloviendo", true},
		{"empty never matches", 5, "", false},
		{"unrelated text", 5, "me gusta el helado", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := byID[tt.id]
			if !ok {
				t.Fatalf("no question with id %d", tt.id)
			}
			if got := Evaluate(q, tt.text); got != tt.want {
				t.Errorf("Evaluate(q%d, %q) = %v, want %v", tt.id, tt.text, got, tt.want)
			}
		})
	}
}

func TestAnswerMatchesSignificantWords(t *testing.T) {
	// "pista de aterrizaje" has two significant words; naming both in
	// a longer sentence should pass the 80% rule.
	q := &Question{Acceptable: []string{"pista de aterrizaje"}}
	if !Evaluate(q, "la usan como pista para el aterrizaje de hipólito") {
		t.Error("expected significant-word match to succeed")
	}
	if Evaluate(q, "la usan como jardín") {
		t.Error("expected unrelated answer to fail")
	}
}

func TestStripCelebration(t *testing.T) {
	got := stripCelebration("¡Exacto! Se llama Hipólito 🐉")
	want := "Se llama Hipólito 🐉"
	if got != want {
		t.Errorf("stripCelebration = %q, want %q", got, want)
	}
}
