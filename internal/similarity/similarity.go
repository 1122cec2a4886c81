// Package similarity provides the two scoring primitives the matching
// engine relies on: token-set Jaccard similarity for whole sentences and
// Levenshtein edit distance for single-word typo tolerance.
package similarity

import (
	"github.com/smartinez/hipolito/internal/textnorm"
)

// MaxTypoDistance is the edit distance accepted when matching a
// misspelled word against a known term.
const MaxTypoDistance = 2

// MinTypoLength guards short words against over-correction: words of
// this length or less are never fuzzy-matched.
const MinTypoLength = 3

// Jaccard returns |a ∩ b| / |a ∪ b| for two token sets.
// Both sets empty is defined as 0, not NaN.
func Jaccard(a, b map[string]struct{}) float64 {
	union := len(b)
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Sentences scores two raw sentences by normalizing, tokenizing and
// removing stopwords before computing Jaccard similarity.
func Sentences(a, b string, stop textnorm.Stopwords) float64 {
	setA := textnorm.TokenSet(textnorm.Keywords(a, stop))
	setB := textnorm.TokenSet(textnorm.Keywords(b, stop))
	return Jaccard(setA, setB)
}

// Levenshtein computes the standard edit distance between two strings
// via dynamic programming over runes.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
		}
	}

	return d[len(ra)][len(rb)]
}

// IsTypoMatch reports whether word is plausibly a misspelling of term:
// within MaxTypoDistance edits and longer than MinTypoLength runes.
func IsTypoMatch(word, term string) bool {
	if len([]rune(word)) <= MinTypoLength {
		return false
	}
	return Levenshtein(word, term) <= MaxTypoDistance
}
