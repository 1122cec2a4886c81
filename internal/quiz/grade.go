package quiz

import (
	"strings"

	"github.com/smartinez/hipolito/internal/textnorm"
)

// dontKnowVariations are the equivalent phrasings of "I don't know".
// Matching is accent- and case-insensitive.
var dontKnowVariations = []string{
	"nose", "no se", "no sé", "no",
	"no me acuerdo", "no recuerdo", "no lo recuerdo",
	"no me acuerdo bien", "no me acuerdo muy bien",
	"no lo sé", "no lo se", "nada", "no idea",
	"no tengo idea", "ni idea", "no sabe",
	"olvide", "olvidé", "se me olvido", "se me olvidó",
	"no entiendo", "no comprendo", "no estoy seguro",
	"no estoy segura", "mmm no", "ehh no", "este no",
	"paso", "siguiente", "skip",
}

// IsDontKnow reports whether the student is saying they don't know the
// answer. Short variations ("no", "paso") require an exact match so a
// real answer that merely contains them is not mistaken for a skip.
func IsDontKnow(text string) bool {
	cleaned := textnorm.Normalize(stripMarks(text))
	if cleaned == "" {
		return false
	}
	for _, v := range dontKnowVariations {
		variation := textnorm.Normalize(v)
		if cleaned == variation {
			return true
		}
		if len(variation) > 4 && (strings.Contains(cleaned, variation) || strings.HasPrefix(cleaned, variation)) {
			return true
		}
	}
	return false
}

// Evaluate grades the student text against the question's acceptable
// answers. For RequiresMultiple questions one matching fact is enough;
// the same rule applies to single-answer questions, so either way the
// answer is correct when any acceptable string matches.
func Evaluate(q *Question, studentText string) bool {
	student := textnorm.Normalize(stripMarks(studentText))
	if student == "" {
		return false
	}
	for _, acceptable := range q.Acceptable {
		if answerMatches(student, textnorm.Normalize(stripMarks(acceptable))) {
			return true
		}
	}
	return false
}

// answerMatches applies the acceptance rules for a single acceptable
// answer: exact match, full containment, or enough of the answer's
// significant words present (80% when it has at most two, 60% when it
// has more).
func answerMatches(student, acceptable string) bool {
	if student == acceptable {
		return true
	}
	if strings.Contains(student, acceptable) {
		return true
	}

	significant := make([]string, 0, 4)
	for _, w := range strings.Fields(acceptable) {
		if len([]rune(w)) >= 3 {
			significant = append(significant, w)
		}
	}
	if len(significant) == 0 {
		return false
	}

	found := 0
	for _, w := range significant {
		if strings.Contains(student, w) {
			found++
		}
	}
	ratio := float64(found) / float64(len(significant))

	if len(significant) <= 2 {
		return ratio >= 0.8
	}
	return ratio >= 0.6
}

// stripMarks removes the question/exclamation marks Normalize keeps, so
// answer grading compares bare words.
func stripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '¿', '?', '¡', '!', '.', ',':
			return -1
		}
		return r
	}, s)
}
