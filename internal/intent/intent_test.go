package intent

import "testing"

func TestClassify(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		text string
		want Tag
	}{
		{"¿Cómo se llama el perro-dragón?", TagCharacter},
		{"¿Quiénes son los personajes?", TagCharacter},
		{"quienes son los personages", TagCharacter}, // misspelling baked in
		{"¿Dónde viven los perros-dragón?", TagPlace},
		{"que significa grimorio", TagDefinition},
		{"¿Cómo termina la aventura?", TagPlot},
		{"hola", TagGreeting},
		{"buenos días", TagGreeting},
		{"chau, me voy", TagFarewell},
		{"sí claro", TagAffirmation},
		{"no entiendo", TagDefinition}, // definition-request wording wins over negation
		{"tampoco", TagNegation},
		{"ayuda por favor", TagHelp},
		{"xyzzy florp", TagUnknown},
		{"", TagUnknown},
		{"    ", TagUnknown},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestTopicalPriorityOverGreeting(t *testing.T) {
	c := NewDefault()

	// A greeting that names a character resolves to the character topic.
	if got := c.Classify("hola, ¿quién es Hipólito?"); got != TagCharacter {
		t.Errorf("Classify greeting+character = %q, want %q", got, TagCharacter)
	}
	// Place beats greeting as well.
	if got := c.Classify("buenas, ¿dónde queda Córdoba?"); got != TagPlace {
		t.Errorf("Classify greeting+place = %q, want %q", got, TagPlace)
	}
}

func TestIsTopical(t *testing.T) {
	topical := []Tag{TagCharacter, TagPlace, TagDefinition, TagPlot}
	for _, tag := range topical {
		if !tag.IsTopical() {
			t.Errorf("%q should be topical", tag)
		}
	}
	other := []Tag{TagGreeting, TagFarewell, TagAffirmation, TagNegation, TagHelp, TagUnknown}
	for _, tag := range other {
		if tag.IsTopical() {
			t.Errorf("%q should not be topical", tag)
		}
	}
}

func TestCustomRuleOrder(t *testing.T) {
	// Reverse priority: greeting first. Confirms order is honored.
	rules := DefaultRules()
	reversed := make([]Rule, 0, len(rules))
	for i := len(rules) - 1; i >= 0; i-- {
		reversed = append(reversed, rules[i])
	}
	c := New(reversed)
	if got := c.Classify("hola, ¿quién es Hipólito?"); got != TagGreeting {
		t.Errorf("reversed rules: Classify = %q, want %q", got, TagGreeting)
	}
}
