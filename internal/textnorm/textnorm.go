// Package textnorm prepares raw user text for matching: lowercasing,
// accent stripping, punctuation collapsing and stopword removal.
// Every function is pure; normalization is idempotent.
package textnorm

import (
	"strings"
	"unicode"
)

// accentMap folds the Spanish accented vowels and diaeresis forms that
// appear in children's input. ñ is deliberately preserved.
var accentMap = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u',
	'Á': 'a', 'É': 'e', 'Í': 'i', 'Ó': 'o', 'Ú': 'u', 'Ü': 'u',
}

// Normalize lowercases text, strips accents, reduces punctuation and
// symbols to spaces (keeping ¿?¡! which carry question/exclamation
// meaning in Spanish) and collapses runs of whitespace.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if folded, ok := accentMap[r]; ok {
			r = folded
		}
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '¿' || r == '?' || r == '¡' || r == '!':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text on whitespace, dropping the
// question/exclamation marks and any empty tokens.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	stripped := strings.Map(func(r rune) rune {
		if r == '¿' || r == '?' || r == '¡' || r == '!' {
			return ' '
		}
		return r
	}, normalized)

	return strings.Fields(stripped)
}

// Stopwords is an injectable stopword set.
type Stopwords map[string]struct{}

// NewStopwords builds a set from a word list.
func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a stopword.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// SpanishStopwords returns the default connector-word list: articles,
// prepositions, conjunctions, pronouns and question particles.
func SpanishStopwords() Stopwords {
	return NewStopwords(
		"que", "es", "como", "donde", "cuando", "porque", "quien", "cual", "cuanto",
		"el", "la", "los", "las", "un", "una", "de", "del", "en", "con", "por", "para",
		"y", "o", "pero", "si", "no", "me", "te", "se", "le", "lo", "mi", "tu", "su",
	)
}

// RemoveStopwords filters tokens against the given stopword set.
// A nil set removes nothing.
func RemoveStopwords(tokens []string, stop Stopwords) []string {
	if stop == nil {
		return tokens
	}
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !stop.Contains(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Keywords tokenizes text and removes stopwords in one step.
func Keywords(text string, stop Stopwords) []string {
	return RemoveStopwords(Tokenize(text), stop)
}

// TokenSet converts a token slice into a set for similarity scoring.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
