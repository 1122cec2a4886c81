package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []ChatEventData{
		{SessionID: "s1", StudentText: "hola", ReplyText: "¡Hola!", Source: "intent", Intent: "saludo", Confidence: 0.7, Level: "basico"},
		{SessionID: "s1", StudentText: "¿quién es hipólito?", ReplyText: "Hipólito es un perro-dragón.", Source: "topical", Intent: "pregunta_personaje", Confidence: 0.9, Level: "basico"},
	}
	for _, e := range events {
		if err := repo.AppendChatEvent(ctx, e); err != nil {
			t.Fatalf("append chat event: %v", err)
		}
	}

	stored, err := s.Client().ChatEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query chat events: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d events, want 2", len(stored))
	}
	seqs := map[int64]bool{}
	for _, e := range stored {
		if seqs[e.Sequence] {
			t.Errorf("duplicate sequence %d", e.Sequence)
		}
		seqs[e.Sequence] = true
	}
}

func TestQuizStatsByCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	answers := []QuizAnswerEventData{
		{SessionID: "q1", QuestionID: 1, Prompt: "¿Cómo se llama?", StudentAnswer: "hipólito", Correct: true, Category: "personajes", Difficulty: "fácil"},
		{SessionID: "q1", QuestionID: 2, Prompt: "¿Quiénes son los hermanos?", StudentAnswer: "no sé", Skipped: true, Category: "personajes", Difficulty: "fácil"},
		{SessionID: "q1", QuestionID: 5, Prompt: "¿De dónde viene?", StudentAnswer: "las siete islas", Correct: true, Category: "lugares", Difficulty: "medio"},
	}
	for _, a := range answers {
		if err := repo.AppendQuizAnswer(ctx, a); err != nil {
			t.Fatalf("append quiz answer: %v", err)
		}
	}

	stats, err := repo.QuizStatsByCategory(ctx)
	if err != nil {
		t.Fatalf("quiz stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d categories, want 2", len(stats))
	}
	// Sorted alphabetically: lugares, personajes.
	if stats[0].Category != "lugares" || stats[0].Correct != 1 {
		t.Errorf("lugares stats = %+v", stats[0])
	}
	if stats[1].Category != "personajes" || stats[1].Answered != 2 || stats[1].Correct != 1 || stats[1].Skipped != 1 {
		t.Errorf("personajes stats = %+v", stats[1])
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []SessionEventData{
		{SessionID: "a", Mode: "chat", Action: "start", Level: "basico"},
		{SessionID: "a", Mode: "chat", Action: "end", Turns: 5, DurationSecs: 120, Level: "basico"},
		{SessionID: "b", Mode: "quiz", Action: "start"},
		{SessionID: "b", Mode: "quiz", Action: "end", Turns: 10, CorrectAnswers: 7, SkippedAnswers: 2, DurationSecs: 300},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append session event: %v", err)
		}
	}

	summaries, err := repo.SessionSummaries(ctx)
	if err != nil {
		t.Fatalf("session summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d modes, want 2", len(summaries))
	}
	if summaries[0].Mode != "chat" || summaries[0].Sessions != 1 || summaries[0].Turns != 5 {
		t.Errorf("chat summary = %+v", summaries[0])
	}
	if summaries[1].Mode != "quiz" || summaries[1].TotalSecs != 300 {
		t.Errorf("quiz summary = %+v", summaries[1])
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	data := LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "story-reply",
		InputTokens:  30,
		OutputTokens: 12,
		LatencyMs:    45,
		Success:      true,
		RequestBody:  "[user]\n¿Puedes volar?",
		ResponseBody: `"¡Casi! Estoy practicando."`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "story-reply" || events[0].InputTokens != 30 {
		t.Errorf("event = %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.ResponseBody != data.ResponseBody {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-3-5-haiku-latest", Purpose: "story-reply", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude-3-5-haiku-latest", Purpose: "story-reply", InputTokens: 150, OutputTokens: 70, LatencyMs: 400, Success: true},
	}
	for _, r := range requests {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Calls != 2 || byPurpose[0].InputTokens != 250 {
		t.Errorf("usage by purpose = %+v", byPurpose)
	}
	if byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].OutputTokens != 120 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	want := &Snapshot{
		Sequence:  42,
		Timestamp: time.Now(),
		Data:      SnapshotData{Version: 1, Level: "intermedio", QuizSessions: 3, ChatTurns: 25},
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.Sequence != 42 || got.Data.Level != "intermedio" || got.Data.QuizSessions != 3 {
		t.Errorf("snapshot = %+v", got)
	}
}
