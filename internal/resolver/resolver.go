// Package resolver turns raw user text into a single best answer with a
// confidence score, running lookup stages in a fixed priority order:
// topical facts, fixed answers, vocabulary, intent templates, generic
// fallback. It never returns an empty response.
package resolver

import (
	"math/rand"

	"github.com/smartinez/hipolito/internal/intent"
	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/textnorm"
)

// Source tags where an answer came from.
type Source string

const (
	SourceTopical    Source = "topical"
	SourceSpecific   Source = "specific"
	SourceVocabulary Source = "vocabulary"
	SourceIntent     Source = "intent"
	SourceGeneric    Source = "generic"
)

// Result is the outcome of one resolution turn.
type Result struct {
	Text       string
	Confidence float64
	Source     Source
	Intent     intent.Tag
	Keywords   []string
}

// Resolver owns one conversation's answer pipeline. Construct one per
// conversation; it is not safe for concurrent use.
type Resolver struct {
	base       *knowledge.Base
	classifier *intent.Classifier
	stopwords  textnorm.Stopwords
	rng        *rand.Rand
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRand injects the randomness source used for generic fallback
// selection and suggestion shuffling, so tests can pin determinism.
func WithRand(rng *rand.Rand) Option {
	return func(r *Resolver) { r.rng = rng }
}

// WithClassifier overrides the default intent rule set.
func WithClassifier(c *intent.Classifier) Option {
	return func(r *Resolver) { r.classifier = c }
}

// WithStopwords overrides the default Spanish stopword set.
func WithStopwords(s textnorm.Stopwords) Option {
	return func(r *Resolver) { r.stopwords = s }
}

// New creates a Resolver over the given knowledge base.
func New(base *knowledge.Base, opts ...Option) *Resolver {
	r := &Resolver{
		base:       base,
		classifier: intent.NewDefault(),
		stopwords:  textnorm.SpanishStopwords(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return r
}

// Resolve produces the best answer for raw user text at the given
// comprehension level. Stages short-circuit on first success; the
// generic fallback guarantees a non-empty reply with confidence 0.3.
func (r *Resolver) Resolve(text string, level knowledge.Level) Result {
	keywords := textnorm.Keywords(text, r.stopwords)
	tag := r.classifier.Classify(text)

	// Topical intents answer from character/place facts directly:
	// richer than single-sentence canned answers, so they go first.
	switch tag {
	case intent.TagCharacter:
		return Result{
			Text:       r.characterAnswer(keywords),
			Confidence: 0.9,
			Source:     SourceTopical,
			Intent:     tag,
			Keywords:   keywords,
		}
	case intent.TagPlace:
		return Result{
			Text:       r.placeAnswer(keywords),
			Confidence: 0.9,
			Source:     SourceTopical,
			Intent:     tag,
			Keywords:   keywords,
		}
	}

	if answer, score := r.base.FindFixedAnswer(text); answer != nil {
		return Result{
			Text:       answer.ForLevel(level),
			Confidence: score,
			Source:     SourceSpecific,
			Intent:     tag,
			Keywords:   keywords,
		}
	}

	for _, kw := range keywords {
		if entry := r.base.FindVocabulary(kw); entry != nil {
			confidence := 0.6
			if textnorm.Normalize(entry.Term) == kw {
				confidence = 0.8
			}
			return Result{
				Text:       entry.Best(),
				Confidence: confidence,
				Source:     SourceVocabulary,
				Intent:     tag,
				Keywords:   keywords,
			}
		}
	}

	if reply, confidence, ok := r.intentAnswer(tag); ok {
		return Result{
			Text:       reply,
			Confidence: confidence,
			Source:     SourceIntent,
			Intent:     tag,
			Keywords:   keywords,
		}
	}

	return Result{
		Text:       genericReplies[r.rng.Intn(len(genericReplies))],
		Confidence: 0.3,
		Source:     SourceGeneric,
		Intent:     tag,
		Keywords:   keywords,
	}
}

// characterAnswer answers a character question: a specific character
// fact when one is named, otherwise the full character summary.
func (r *Resolver) characterAnswer(keywords []string) string {
	for _, kw := range keywords {
		if fact, ok := knowledge.CharacterFact(kw); ok {
			return fact
		}
	}
	return knowledge.CharacterSummary()
}

// placeAnswer mirrors characterAnswer for places.
func (r *Resolver) placeAnswer(keywords []string) string {
	for _, kw := range keywords {
		if fact, ok := knowledge.PlaceFact(kw); ok {
			return fact
		}
	}
	return knowledge.PlaceSummary()
}

// intentAnswer returns the canned reply for a conversational intent.
func (r *Resolver) intentAnswer(tag intent.Tag) (string, float64, bool) {
	switch tag {
	case intent.TagGreeting:
		return "¡Hola! Soy tu ayudante para el cuento de Hipólito. ¿Qué quieres saber? 🐉", 0.7, true
	case intent.TagFarewell:
		return "¡Adiós! Espero haberte ayudado con la historia de Hipólito. 👋", 0.7, true
	case intent.TagHelp:
		return "Puedes preguntarme:\n• ¿Cómo se llaman los personajes?\n• ¿Dónde pasa la historia?\n• ¿Qué significa una palabra?\n\n¿Qué quieres saber?", 0.7, true
	case intent.TagAffirmation:
		return "¡Genial! ¿Hay algo más del cuento que quieras saber?", 0.7, true
	case intent.TagNegation:
		return "No te preocupes, puedo explicártelo más fácil. ¿Qué no entendiste?", 0.7, true
	case intent.TagDefinition:
		return "¿Qué palabra quieres que te explique? Puedo contarte qué significa grimorio, iscarotes y muchas más.", 0.6, true
	case intent.TagPlot:
		return "La historia de Hipólito tiene muchas aventuras. ¿Te gustaría saber sobre alguna parte específica?", 0.7, true
	}
	return "", 0, false
}

var genericReplies = []string{
	"No entendí bien. ¿Puedes preguntarme de otra forma?",
	"Esa pregunta está difícil. ¿Me preguntas sobre los personajes?",
	"Puedes preguntarme sobre Hipólito, Sara, Benjamín o los lugares del cuento.",
	"No sé esa respuesta, pero puedo ayudarte con otras cosas del cuento.",
}

var suggestions = []string{
	"¿Por qué se llama Hipólito?",
	"¿Qué es un perro-dragón?",
	"¿Quiénes son los Iscarotes?",
	"¿Dónde están las Siete Islas?",
	"¿Qué significa grimorio?",
	"¿Por qué Hipólito gruñe al hombre misterioso?",
}

// Suggestions returns three shuffled question prompts for the UI.
func (r *Resolver) Suggestions() []string {
	shuffled := make([]string, len(suggestions))
	copy(shuffled, suggestions)
	r.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:3]
}
