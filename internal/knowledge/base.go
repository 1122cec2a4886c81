// Package knowledge holds the static story data the chatbot draws on:
// a glossary of tricky words, pre-authored question/answer pairs, and
// character/place facts. Read-only after load.
package knowledge

import (
	"strings"

	"github.com/smartinez/hipolito/internal/similarity"
	"github.com/smartinez/hipolito/internal/textnorm"
)

// FixedAnswerThreshold is the minimum Jaccard similarity for a stored
// canonical question to count as a match.
const FixedAnswerThreshold = 0.3

// Base is the loaded, immutable knowledge store.
type Base struct {
	vocab      map[string]*VocabularyEntry
	vocabTerms []string // sorted, for deterministic fallback scans
	answers    []*FixedAnswer
	stopwords  textnorm.Stopwords
}

// stop returns the stopword set, defaulting to Spanish.
func (b *Base) stop() textnorm.Stopwords {
	if b.stopwords == nil {
		b.stopwords = textnorm.SpanishStopwords()
	}
	return b.stopwords
}

// FindVocabulary looks up a single word: exact key match first, then
// substring containment in either direction, then Levenshtein fallback
// for typos. Lookup keys are compared in normalized form.
func (b *Base) FindVocabulary(word string) *VocabularyEntry {
	word = textnorm.Normalize(word)
	if word == "" {
		return nil
	}

	for _, term := range b.vocabTerms {
		if textnorm.Normalize(term) == word {
			return b.vocab[term]
		}
	}

	for _, term := range b.vocabTerms {
		normTerm := textnorm.Normalize(term)
		if strings.Contains(normTerm, word) || strings.Contains(word, normTerm) {
			return b.vocab[term]
		}
	}

	for _, term := range b.vocabTerms {
		if similarity.IsTypoMatch(word, textnorm.Normalize(term)) {
			return b.vocab[term]
		}
	}

	return nil
}

// FindFixedAnswer scores the user question against every stored
// canonical question and returns the best match above the threshold,
// or (nil, 0) when nothing qualifies. The first-seen entry wins ties.
func (b *Base) FindFixedAnswer(userQuestion string) (*FixedAnswer, float64) {
	var best *FixedAnswer
	var bestScore float64

	for _, a := range b.answers {
		score := similarity.Sentences(userQuestion, a.Question, b.stop())
		if score > bestScore && score > FixedAnswerThreshold {
			bestScore = score
			best = a
		}
	}

	return best, bestScore
}

// VocabularyTerms returns the sorted term list.
func (b *Base) VocabularyTerms() []string {
	return b.vocabTerms
}

// FixedAnswers returns the stored answers in stable order.
func (b *Base) FixedAnswers() []*FixedAnswer {
	return b.answers
}

// Fallback returns the minimal built-in dataset used when the external
// documents cannot be loaded. Small, but enough to hold a conversation.
func Fallback() *Base {
	vocab := map[string]*VocabularyEntry{
		"hipólito": {
			Definition: "Un perro-dragón mágico, el personaje principal del cuento",
			Simple:     "Un animal fantástico que es mitad perro y mitad dragón",
		},
		"iscarotes": {
			Definition: "Los malos de la historia que no son buenos con los perros-dragón",
			Simple:     "Los malos del cuento",
		},
		"siete islas": {
			Definition: "El lugar mágico donde viven los perros-dragón",
			Simple:     "Islas mágicas",
		},
	}

	answers := map[string]*FixedAnswer{
		"quien_es_hipolito": {
			Question: "¿Quién es Hipólito?",
			Complete: "Hipólito es un perro-dragón muy especial. Tiene alas blancas con destellos dorados y es el protagonista de nuestra historia. Es amigable y cariñoso.",
			Basic:    "Hipólito es un perro-dragón mágico, el personaje principal del cuento.",
			Advanced: "Hipólito es un perro-dragón con alas blancas y destellos dorados, originario de las Siete Islas, que ahora vive con Sara y Benjamín en Córdoba.",
		},
		"personajes_principales": {
			Question: "¿Cómo se llaman los personajes?",
			Complete: "Los personajes principales son:\n🐉 Hipólito - El perro-dragón protagonista\n👧 Sara - Una niña observadora\n👦 Benjamín - El hermano de Sara\n👹 Los Iscarotes - Los villanos",
			Basic:    "Los personajes son Hipólito, Sara, Benjamín y los Iscarotes.",
			Advanced: "Los protagonistas son Hipólito (un perro-dragón), Sara y Benjamín (hermanos que lo adoptan), y los Iscarotes como antagonistas.",
		},
	}

	return newBase(vocab, answers)
}
