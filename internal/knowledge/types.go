package knowledge

// Level selects which pre-written answer variant a fixed answer returns.
type Level string

const (
	LevelBasic        Level = "basico"
	LevelIntermediate Level = "intermedio"
	LevelAdvanced     Level = "avanzado"
)

// VocabularyEntry is one term from the story glossary.
type VocabularyEntry struct {
	Term       string   `json:"-"`
	Definition string   `json:"definicion"`
	Simple     string   `json:"definicionSimple"`
	Related    []string `json:"relacionados,omitempty"`
}

// Best returns the preferred definition text: the simple one for young
// readers when present, otherwise the full definition.
func (v *VocabularyEntry) Best() string {
	if v.Simple != "" {
		return v.Simple
	}
	return v.Definition
}

// FixedAnswer is a pre-authored canonical question with per-level
// response variants.
type FixedAnswer struct {
	Key        string   `json:"-"`
	Question   string   `json:"pregunta"`
	Complete   string   `json:"respuestaCompleta"`
	Basic      string   `json:"respuestaBasica,omitempty"`
	Advanced   string   `json:"respuestaAvanzada,omitempty"`
	Concepts   []string `json:"conceptosClaves,omitempty"`
	Vocabulary []string `json:"vocabulario,omitempty"`
}

// ForLevel returns the variant for the given comprehension level,
// falling back to the complete answer when the variant is absent.
func (f *FixedAnswer) ForLevel(level Level) string {
	switch level {
	case LevelBasic:
		if f.Basic != "" {
			return f.Basic
		}
	case LevelAdvanced:
		if f.Advanced != "" {
			return f.Advanced
		}
	}
	return f.Complete
}

// vocabularyDoc mirrors the vocabulario.json wire shape.
type vocabularyDoc struct {
	Terms map[string]*VocabularyEntry `json:"vocabularioComplejo"`
}

// fixedAnswerDoc mirrors the preguntas-respuestas.json wire shape.
type fixedAnswerDoc struct {
	Questions map[string]*FixedAnswer `json:"preguntasEspecificas"`
}
