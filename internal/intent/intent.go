// Package intent classifies normalized user text into coarse intent tags
// via an ordered table of (tag, pattern) rules. The first matching rule
// wins; rule order is part of the contract.
package intent

import (
	"regexp"

	"github.com/smartinez/hipolito/internal/textnorm"
)

// Tag identifies the apparent purpose of a user utterance.
type Tag string

const (
	TagCharacter   Tag = "pregunta_personaje"
	TagPlace       Tag = "pregunta_lugar"
	TagDefinition  Tag = "pregunta_definicion"
	TagPlot        Tag = "pregunta_historia"
	TagGreeting    Tag = "saludo"
	TagFarewell    Tag = "despedida"
	TagAffirmation Tag = "afirmacion"
	TagNegation    Tag = "negacion"
	TagHelp        Tag = "ayuda"
	TagUnknown     Tag = "desconocida"
)

// IsTopical reports whether the tag names a story topic (characters,
// places, definitions, plot) rather than a conversational gesture.
func (t Tag) IsTopical() bool {
	switch t {
	case TagCharacter, TagPlace, TagDefinition, TagPlot:
		return true
	}
	return false
}

// Rule pairs a tag with its trigger pattern. Patterns run against
// normalized text and include common child misspellings directly
// (no fuzzy matching at this stage).
type Rule struct {
	Tag     Tag
	Pattern *regexp.Regexp
}

// Classifier evaluates rules in order and returns the first match.
type Classifier struct {
	rules []Rule
}

// New creates a classifier with the given ordered rules.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault creates a classifier with the default Spanish rule set.
func NewDefault() *Classifier {
	return New(DefaultRules())
}

// Classify normalizes text and returns the tag of the first rule whose
// pattern matches, or TagUnknown if none do.
func (c *Classifier) Classify(text string) Tag {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return TagUnknown
	}
	for _, r := range c.rules {
		if r.Pattern.MatchString(normalized) {
			return r.Tag
		}
	}
	return TagUnknown
}

// DefaultRules returns the story rule table. Topical rules come first:
// a greeting that also names a character resolves to the character
// topic, because topical answers are richer than canned greetings.
func DefaultRules() []Rule {
	return []Rule{
		{TagCharacter, regexp.MustCompile(`personaj|personag|quien|quienes|como se llam|como se yam|cono se llam|nombres|sara|benjamin|hipolito|iscarot|protagonis|protagoin|\bmalos?\b|\bbuenos?\b|principal|prinsipal|caracter|actor`)},
		{TagPlace, regexp.MustCompile(`donde|lugar|isla|cordoba|siete isla|vive|biblioteca|pais|ciudad|argentina|\bcasa\b`)},
		{TagDefinition, regexp.MustCompile(`que es|que significa|que quiere decir|definicion|significado|explica|no entiendo|no se que es|que cosa es`)},
		{TagPlot, regexp.MustCompile(`que pasa|que paso|como termina|final|historia|cuento|aventura|empieza|comienza|trata|sobre que es`)},
		{TagGreeting, regexp.MustCompile(`\bhola\b|\bbuenas\b|saludos|\bhey\b|\bola\b|buenos dias|buenas tardes|\bhi\b`)},
		{TagFarewell, regexp.MustCompile(`\bchau\b|\badios\b|hasta luego|nos vemos|\bbay\b|\bchao\b|me voy|\bbye\b`)},
		{TagAffirmation, regexp.MustCompile(`\bsi\b|\bclaro\b|\bexacto\b|\bcorrecto\b|\bentiendo\b|\bok\b|\bvale\b|esta bien|\bperfecto\b|\bbien\b`)},
		{TagNegation, regexp.MustCompile(`\bno\b|\bnunca\b|\bnada\b|\btampoco\b|\bmal\b|\bincorrecto\b`)},
		{TagHelp, regexp.MustCompile(`ayuda|explicame|no se que hacer|como funciona|que puedo preguntar|como usar|como preguntar`)},
	}
}
