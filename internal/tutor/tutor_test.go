package tutor

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/llm"
	"github.com/smartinez/hipolito/internal/resolver"
)

func newTestTutor(t *testing.T, opts ...Option) *Tutor {
	t.Helper()
	base, err := knowledge.LoadDefault()
	if err != nil {
		t.Fatalf("loading knowledge base: %v", err)
	}
	r := resolver.New(base, resolver.WithRand(rand.New(rand.NewSource(1))))
	return New(r, knowledge.LevelBasic, opts...)
}

func TestAskUsesRulesForKnownQuestions(t *testing.T) {
	tut := newTestTutor(t)

	reply := tut.Ask(context.Background(), "¿Quién es Hipólito?")
	if reply.Source != SourceRules {
		t.Fatalf("source = %q, want %q", reply.Source, SourceRules)
	}
	if !strings.Contains(strings.ToLower(reply.Text), "hipólito") {
		t.Errorf("reply should mention Hipólito: %q", reply.Text)
	}
	if reply.Confidence < 0.5 {
		t.Errorf("confidence = %v, want high for a known question", reply.Confidence)
	}
}

func TestAskWithoutProviderFallsBackToRules(t *testing.T) {
	tut := newTestTutor(t)

	reply := tut.Ask(context.Background(), "xyzzy plugh")
	if reply.Source != SourceRules {
		t.Fatalf("source = %q, want %q", reply.Source, SourceRules)
	}
	if reply.Text == "" {
		t.Error("reply must never be empty")
	}
	if reply.Confidence != 0.3 {
		t.Errorf("confidence = %v, want generic 0.3", reply.Confidence)
	}
}

func TestAskUsesProviderForGenericTurns(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"¡Guau! Esa pregunta me hace mover la cola. 🐉"`),
	})
	tut := newTestTutor(t, WithProvider(mock))

	reply := tut.Ask(context.Background(), "xyzzy plugh")
	if reply.Source != SourceGenerated {
		t.Fatalf("source = %q, want %q", reply.Source, SourceGenerated)
	}
	if !strings.Contains(reply.Text, "mover la cola") {
		t.Errorf("reply = %q, want generated text", reply.Text)
	}
	if reply.Rule.Text == "" {
		t.Error("rule result should be preserved alongside the generated text")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestAskSkipsProviderForConfidentTurns(t *testing.T) {
	mock := llm.NewMockProvider()
	tut := newTestTutor(t, WithProvider(mock))

	tut.Ask(context.Background(), "¿Quién es Hipólito?")
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for a rule-answered turn, want 0", mock.CallCount())
	}
}

func TestAskRecoversFromProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	tut := newTestTutor(t, WithProvider(mock))

	reply := tut.Ask(context.Background(), "xyzzy plugh")
	if reply.Source != SourceRules {
		t.Fatalf("source = %q, want rules fallback after provider error", reply.Source)
	}
	if reply.Text == "" {
		t.Error("reply must never be empty after provider failure")
	}
}

func TestAskRejectsEmptyGeneration(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"   "`),
	})
	tut := newTestTutor(t, WithProvider(mock))

	reply := tut.Ask(context.Background(), "xyzzy plugh")
	if reply.Source != SourceRules {
		t.Fatalf("source = %q, want rules fallback for blank generation", reply.Source)
	}
}

func TestHistoryIsSentToProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"primera"`)},
		llm.MockResponse{Content: json.RawMessage(`"segunda"`)},
	)
	tut := newTestTutor(t, WithProvider(mock))

	tut.Ask(context.Background(), "xyzzy uno")
	tut.Ask(context.Background(), "xyzzy dos")

	if len(mock.Calls) != 2 {
		t.Fatalf("provider called %d times, want 2", len(mock.Calls))
	}
	second := mock.Calls[1]
	// One prior turn plus the new message: 2 history + 1 user.
	if len(second.Messages) != 3 {
		t.Fatalf("second call has %d messages, want 3", len(second.Messages))
	}
	if second.Messages[0].Content != "xyzzy uno" {
		t.Errorf("first history message = %q, want original student text", second.Messages[0].Content)
	}
	if second.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("second history message role = %q, want assistant", second.Messages[1].Role)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	tut := newTestTutor(t)
	for i := 0; i < 100; i++ {
		tut.Ask(context.Background(), "¿Quién es Hipólito?")
	}
	if got := len(tut.History()); got > maxHistoryTurns*4 {
		t.Errorf("history has %d turns, want at most %d", got, maxHistoryTurns*4)
	}
}

func TestSetLevelChangesAnswers(t *testing.T) {
	tut := newTestTutor(t)

	basic := tut.Ask(context.Background(), "¿Quién es Hipólito?")
	tut.SetLevel(knowledge.LevelAdvanced)
	advanced := tut.Ask(context.Background(), "¿Quién es Hipólito?")

	// Only compare when both turns resolved the same specific answer.
	if basic.Rule.Source == resolver.SourceSpecific && advanced.Rule.Source == resolver.SourceSpecific {
		if basic.Text == advanced.Text {
			t.Error("expected level change to alter the answer wording")
		}
	}
	if tut.Level() != knowledge.LevelAdvanced {
		t.Errorf("level = %q, want advanced", tut.Level())
	}
}

func TestSuggestions(t *testing.T) {
	tut := newTestTutor(t)
	s := tut.Suggestions()
	if len(s) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	for _, item := range s {
		if strings.TrimSpace(item) == "" {
			t.Error("suggestions must not be blank")
		}
	}
}
