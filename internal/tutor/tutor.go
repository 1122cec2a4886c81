// Package tutor is the Hipólito storyteller persona. It answers chat
// turns from the rule-based resolver and, when the rules only produce a
// generic fallback, optionally asks an LLM for a richer in-character
// reply. The LLM is strictly best-effort: any provider failure falls
// back to the rule answer, so a turn never errors out.
package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/llm"
	"github.com/smartinez/hipolito/internal/resolver"
)

// maxHistoryTurns bounds the chat context sent to the LLM.
const maxHistoryTurns = 6

const personaPrompt = `Eres Hipólito, un perro-dragón mágico de un cuento infantil. Tienes alas blancas con destellos dorados, patas grandes para aterrizar y una cicatriz misteriosa de tres puntas. Vives con los hermanos Sara y Benjamín, que te adoptaron un día de lluvia. Vienes de la Antigua República de las Siete Pequeñas Islas.

Hablas con niños pequeños: responde siempre en español, con frases cortas, cariñosas y alegres, sin contenido que asuste. Nunca inventes hechos nuevos sobre la historia. Si no sabes algo, dilo con dulzura e invita a preguntar otra cosa del cuento.`

// Source says which layer produced a reply.
type Source string

const (
	SourceRules     Source = "rules"
	SourceGenerated Source = "generated"
)

// Reply is one storyteller answer.
type Reply struct {
	Text       string
	Confidence float64
	Source     Source

	// Rule carries the resolver result that backed this turn, also
	// when the final text came from the LLM.
	Rule resolver.Result
}

// Turn is one exchange kept in the rolling chat history.
type Turn struct {
	Student string
	Tutor   string
	At      time.Time
}

// Tutor answers chat turns in the Hipólito persona.
type Tutor struct {
	resolver *resolver.Resolver
	provider llm.Provider
	level    knowledge.Level
	history  []Turn
	now      func() time.Time
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithProvider enables LLM enrichment for low-confidence turns.
func WithProvider(p llm.Provider) Option {
	return func(t *Tutor) { t.provider = p }
}

// WithClock injects the history timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Tutor) { t.now = now }
}

// New creates a Tutor over the given resolver at the given
// comprehension level.
func New(r *resolver.Resolver, level knowledge.Level, opts ...Option) *Tutor {
	t := &Tutor{resolver: r, level: level}
	for _, opt := range opts {
		opt(t)
	}
	if t.now == nil {
		t.now = time.Now
	}
	return t
}

// Level returns the active comprehension level.
func (t *Tutor) Level() knowledge.Level {
	return t.level
}

// SetLevel switches the comprehension level for subsequent turns.
func (t *Tutor) SetLevel(level knowledge.Level) {
	t.level = level
}

// Ask answers one student message. It never fails and never returns an
// empty reply.
func (t *Tutor) Ask(ctx context.Context, text string) Reply {
	rule := t.resolver.Resolve(text, t.level)

	reply := Reply{
		Text:       rule.Text,
		Confidence: rule.Confidence,
		Source:     SourceRules,
		Rule:       rule,
	}

	// Only bother the model when the rules had nothing specific.
	if t.provider != nil && rule.Source == resolver.SourceGeneric {
		if generated, ok := t.generate(ctx, text); ok {
			reply.Text = generated
			reply.Source = SourceGenerated
		}
	}

	t.record(text, reply.Text)
	return reply
}

// generate asks the LLM for an in-character reply. Returns ok=false on
// any failure or unusable output.
func (t *Tutor) generate(ctx context.Context, text string) (string, bool) {
	messages := t.historyMessages()
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	ctx = llm.WithPurpose(ctx, "story-reply")
	resp, err := t.provider.Generate(ctx, llm.Request{
		System:      personaPrompt,
		Messages:    messages,
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", false
	}

	generated := decodeText(resp.Content)
	if strings.TrimSpace(generated) == "" {
		return "", false
	}
	return generated, true
}

// historyMessages converts the recent history into LLM messages.
func (t *Tutor) historyMessages() []llm.Message {
	start := 0
	if len(t.history) > maxHistoryTurns {
		start = len(t.history) - maxHistoryTurns
	}

	var messages []llm.Message
	for _, turn := range t.history[start:] {
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: turn.Student},
			llm.Message{Role: llm.RoleAssistant, Content: turn.Tutor},
		)
	}
	return messages
}

func (t *Tutor) record(student, tutor string) {
	t.history = append(t.history, Turn{Student: student, Tutor: tutor, At: t.now()})
	// Trim so a long session can't grow without bound.
	if len(t.history) > maxHistoryTurns*4 {
		t.history = t.history[len(t.history)-maxHistoryTurns*4:]
	}
}

// History returns the rolling chat history.
func (t *Tutor) History() []Turn {
	return t.history
}

// Suggestions returns conversation starters for the chat UI.
func (t *Tutor) Suggestions() []string {
	return t.resolver.Suggestions()
}

// decodeText unwraps provider content: plain-text providers return the
// text as a JSON string, others may return it raw.
func decodeText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}
