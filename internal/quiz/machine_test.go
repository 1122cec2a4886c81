package quiz

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestMachine(seed int64) *Machine {
	return NewMachine(DefaultQuestions(),
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return time.Unix(0, 0) }),
	)
}

func TestStartShufflesPermutation(t *testing.T) {
	m := newTestMachine(7)
	welcome := m.Start()
	if !strings.Contains(welcome, "profesora virtual") {
		t.Errorf("welcome = %q, want introduction", welcome)
	}
	if m.State() != StateAwaitingConfirmation {
		t.Errorf("state = %q, want %q", m.State(), StateAwaitingConfirmation)
	}
	if m.SessionID() == "" {
		t.Error("expected a session id after Start")
	}

	order := m.Order()
	if len(order) != len(DefaultQuestions()) {
		t.Fatalf("order has %d questions, want %d", len(order), len(DefaultQuestions()))
	}
	seen := make(map[int]bool, len(order))
	for _, q := range order {
		if seen[q.ID] {
			t.Errorf("question %d appears twice in shuffled order", q.ID)
		}
		seen[q.ID] = true
	}
	for _, q := range DefaultQuestions() {
		if !seen[q.ID] {
			t.Errorf("question %d missing from shuffled order", q.ID)
		}
	}
}

func TestSameSeedSameOrder(t *testing.T) {
	a := newTestMachine(42)
	b := newTestMachine(42)
	a.Start()
	b.Start()
	for i := range a.Order() {
		if a.Order()[i].ID != b.Order()[i].ID {
			t.Fatalf("order diverges at %d: %d vs %d", i, a.Order()[i].ID, b.Order()[i].ID)
		}
	}
}

func TestConfirmationAsksFirstQuestion(t *testing.T) {
	m := newTestMachine(1)
	m.Start()
	resp := m.Submit("sí")
	if m.State() != StateAsking {
		t.Fatalf("state = %q, want %q", m.State(), StateAsking)
	}
	if resp.Grade != nil {
		t.Error("confirmation turn should not carry a grade")
	}
	if !strings.Contains(resp.Text, m.Order()[0].Prompt) {
		t.Errorf("reply does not contain first question: %q", resp.Text)
	}
}

func TestCorrectAnswerAdvancesAndCounts(t *testing.T) {
	m := newTestMachine(3)
	m.Start()
	m.Submit("listo")

	q := m.Order()[0]
	resp := m.Submit(q.Acceptable[0])
	if resp.Grade == nil || !resp.Grade.Correct {
		t.Fatal("expected a correct grade")
	}
	if !strings.Contains(resp.Text, q.Explanation) {
		t.Error("reply should include the explanation")
	}
	answered, total, correct, skipped := m.Progress()
	if answered != 1 || correct != 1 || skipped != 0 {
		t.Errorf("progress = (%d,%d,%d,%d), want answered=1 correct=1 skipped=0", answered, total, correct, skipped)
	}
	if total != 10 {
		t.Errorf("total = %d, want 10", total)
	}
}

func TestDontKnowSkipsWithoutPenalty(t *testing.T) {
	m := newTestMachine(5)
	m.Start()
	m.Submit("dale")

	resp := m.Submit("no me acuerdo")
	if resp.Grade == nil || !resp.Grade.Skipped {
		t.Fatal("expected a skipped grade")
	}
	if resp.Grade.Correct {
		t.Error("skip must not count as correct")
	}
	if !strings.Contains(resp.Text, "No pasa nada") {
		t.Errorf("skip reply should be supportive, got %q", resp.Text)
	}
	_, _, correct, skipped := m.Progress()
	if correct != 0 || skipped != 1 {
		t.Errorf("correct=%d skipped=%d, want 0 and 1", correct, skipped)
	}
}

func TestWrongAnswerTeachesWithoutPenalty(t *testing.T) {
	m := newTestMachine(9)
	m.Start()
	m.Submit("ok")

	resp := m.Submit("zzz respuesta inventada zzz")
	if resp.Grade == nil || resp.Grade.Correct || resp.Grade.Skipped {
		t.Fatal("expected a plain incorrect grade")
	}
	if !strings.Contains(resp.Text, "te ayudo con la respuesta correcta") {
		t.Errorf("wrong-answer reply should teach, got %q", resp.Text)
	}
}

func TestFullSessionReachesFreeConversation(t *testing.T) {
	m := newTestMachine(11)
	m.Start()
	m.Submit("sí, lista")

	var last Response
	for i := 0; i < len(m.Order()); i++ {
		last = m.Submit("no sé")
	}
	if !last.SessionComplete {
		t.Error("final submission should mark the session complete")
	}
	if m.State() != StateFreeConversation {
		t.Fatalf("state = %q, want %q", m.State(), StateFreeConversation)
	}
	if !strings.Contains(last.Text, "Terminamos") {
		t.Errorf("summary missing from final reply: %q", last.Text)
	}
	if strings.ContainsAny(last.Text, "0123456789") {
		t.Errorf("summary must not show a numeric score: %q", last.Text)
	}

	answered, total, _, skipped := m.Progress()
	if answered != total {
		t.Errorf("answered = %d, want %d", answered, total)
	}
	if skipped != total {
		t.Errorf("skipped = %d, want %d", skipped, total)
	}
}

func TestCursorNeverExceedsTotal(t *testing.T) {
	m := newTestMachine(13)
	m.Start()
	m.Submit("sí")
	for i := 0; i < 25; i++ {
		m.Submit("cualquier cosa")
	}
	answered, total, _, _ := m.Progress()
	if answered != total {
		t.Errorf("cursor = %d, want clamped at %d", answered, total)
	}
}

func TestFreeConversationTopics(t *testing.T) {
	m := newTestMachine(17)
	m.Start()
	m.Submit("sí")
	for i := 0; i < len(m.Order()); i++ {
		m.Submit("no sé")
	}

	tests := []struct {
		text string
		want string
	}{
		{"¿cómo se llama el cuento?", "perro-dragón"},
		{"¿quién es el autor?", "autor"},
		{"cuéntame de hipólito", "alas blancas"},
		{"háblame de sara", "hermanos"},
		{"¿cómo termina?", "adoptar"},
		{"gracias", "De nada"},
		{"algo sin relación alguna", "profesora virtual"},
	}
	for _, tt := range tests {
		resp := m.Submit(tt.text)
		if !strings.Contains(resp.Text, tt.want) {
			t.Errorf("Submit(%q) = %q, want it to mention %q", tt.text, resp.Text, tt.want)
		}
	}
}

func TestEmptyInputIsSafe(t *testing.T) {
	m := newTestMachine(19)
	m.Start()
	m.Submit("")
	resp := m.Submit("")
	if resp.Text == "" {
		t.Error("reply must never be empty")
	}
	if resp.Grade == nil || resp.Grade.Correct {
		t.Error("empty answer should grade as not correct")
	}
}

func TestResetStartsFresh(t *testing.T) {
	m := newTestMachine(23)
	m.Start()
	m.Submit("sí")
	m.Submit(m.Order()[0].Acceptable[0])

	firstSession := m.SessionID()
	m.Reset()
	if m.State() != StateAwaitingConfirmation {
		t.Errorf("state after reset = %q, want %q", m.State(), StateAwaitingConfirmation)
	}
	answered, _, correct, skipped := m.Progress()
	if answered != 0 || correct != 0 || skipped != 0 {
		t.Errorf("counters after reset = (%d,%d,%d), want zeros", answered, correct, skipped)
	}
	if m.SessionID() == firstSession {
		t.Error("reset should mint a new session id")
	}
	if len(m.Log()) != 1 {
		t.Errorf("log after reset has %d turns, want just the welcome", len(m.Log()))
	}
}

func TestRecentLogTrims(t *testing.T) {
	m := newTestMachine(29)
	m.Start()
	m.Submit("sí")
	m.Submit("hipólito")
	if got := len(m.RecentLog(2)); got != 2 {
		t.Errorf("RecentLog(2) returned %d turns", got)
	}
	if got := len(m.RecentLog(100)); got != len(m.Log()) {
		t.Errorf("RecentLog(100) returned %d turns, want full log", got)
	}
}

func TestEmptyQuestionSetIsSafe(t *testing.T) {
	m := NewMachine(nil,
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return time.Unix(0, 0) }),
	)
	m.Start()

	resp := m.Submit("listo")
	if resp.Text == "" {
		t.Fatal("expected an in-character reply for an empty question set")
	}
	if !resp.SessionComplete {
		t.Error("expected session complete with no questions to ask")
	}
	if m.State() != StateFreeConversation {
		t.Errorf("state = %q, want %q", m.State(), StateFreeConversation)
	}

	// Further turns stay in free conversation.
	if follow := m.Submit("me gustó el final"); follow.Text == "" {
		t.Error("expected a free-conversation reply")
	}
}

func TestOrderAndLogReturnCopies(t *testing.T) {
	m := newTestMachine(31)
	m.Start()
	m.Submit("sí")

	order := m.Order()
	order[0].Prompt = "tampered"
	if m.Order()[0].Prompt == "tampered" {
		t.Error("Order exposes internal state")
	}

	log := m.Log()
	log[0].Teacher = "tampered"
	if m.Log()[0].Teacher == "tampered" {
		t.Error("Log exposes internal state")
	}

	recent := m.RecentLog(1)
	recent[0].Teacher = "tampered"
	last := m.Log()[len(m.Log())-1]
	if last.Teacher == "tampered" {
		t.Error("RecentLog exposes internal state")
	}
}
