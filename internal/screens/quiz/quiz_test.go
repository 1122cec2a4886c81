package quiz

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/quiz"
	"github.com/smartinez/hipolito/internal/screen"
	"github.com/smartinez/hipolito/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents    []store.QuizAnswerEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendChatEvent(_ context.Context, _ store.ChatEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, data store.QuizAnswerEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QuizStatsByCategory(_ context.Context) ([]store.QuizCategoryStats, error) {
	return nil, nil
}
func (m *mockEventRepo) SessionSummaries(_ context.Context) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen() (*QuizScreen, *mockEventRepo, *mockSnapshotRepo) {
	m := quiz.NewMachine(quiz.DefaultQuestions(), quiz.WithRand(rand.New(rand.NewSource(1))))
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	return New(m, eventRepo, snapRepo, knowledge.LevelBasic), eventRepo, snapRepo
}

// submit types text into the screen and presses enter, returning the
// updated screen and any command.
func submit(s screen.Screen, text string) (screen.Screen, tea.Cmd) {
	qs := s.(*QuizScreen)
	qs.input.Model.SetValue(text)
	return qs.Update(specialKey(tea.KeyEnter))
}

func TestQuizScreen_Title(t *testing.T) {
	s, _, _ := testQuizScreen()
	if s.Title() != "Cuestionario" {
		t.Errorf("Title = %q, want %q", s.Title(), "Cuestionario")
	}
}

func TestQuizScreen_WelcomeShown(t *testing.T) {
	s, _, _ := testQuizScreen()
	if len(s.transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(s.transcript))
	}
	if s.transcript[0].student {
		t.Error("welcome should not be a student entry")
	}
}

func TestQuizScreen_EmptyInputIgnored(t *testing.T) {
	s, _, _ := testQuizScreen()

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if len(qs.transcript) != 1 {
		t.Errorf("transcript length = %d, want 1", len(qs.transcript))
	}
}

func TestQuizScreen_ConfirmationNotLogged(t *testing.T) {
	s, eventRepo, _ := testQuizScreen()

	scr, cmd := submit(s, "sí")
	qs := scr.(*QuizScreen)

	// Readiness confirmation carries no grade, nothing to persist.
	if cmd != nil {
		t.Error("expected no logging command for the confirmation turn")
	}
	if len(eventRepo.quizEvents) != 0 {
		t.Errorf("quiz events = %d, want 0", len(eventRepo.quizEvents))
	}
	if len(qs.transcript) != 3 {
		t.Errorf("transcript length = %d, want 3", len(qs.transcript))
	}
}

func TestQuizScreen_SkippedAnswerLogged(t *testing.T) {
	s, eventRepo, _ := testQuizScreen()
	first := s.machine.Order()[0]

	scr, _ := submit(s, "sí")
	_, cmd := submit(scr, "no sé")

	if cmd == nil {
		t.Fatal("expected a logging command for a graded answer")
	}
	cmd()
	if len(eventRepo.quizEvents) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(eventRepo.quizEvents))
	}
	ev := eventRepo.quizEvents[0]
	if ev.QuestionID != first.ID {
		t.Errorf("event question = %d, want %d", ev.QuestionID, first.ID)
	}
	if !ev.Skipped || ev.Correct {
		t.Errorf("event grade = correct=%v skipped=%v, want skipped", ev.Correct, ev.Skipped)
	}
	if ev.StudentAnswer != "no sé" {
		t.Errorf("event answer = %q, want %q", ev.StudentAnswer, "no sé")
	}
}

func TestQuizScreen_CompletionMarksEnded(t *testing.T) {
	s, _, _ := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = submit(scr, "sí")
	_, total, _, _ := s.machine.Progress()
	for i := 0; i < total; i++ {
		scr, _ = submit(scr, "no sé")
	}

	qs := scr.(*QuizScreen)
	if !qs.ended {
		t.Error("expected session marked ended after the last question")
	}
}

func TestQuizScreen_CloseRecordsSession(t *testing.T) {
	s, eventRepo, snapRepo := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = submit(scr, "sí")
	_, total, _, _ := s.machine.Progress()
	for i := 0; i < total; i++ {
		scr, _ = submit(scr, "no sé")
	}
	qs := scr.(*QuizScreen)

	qs.Close()

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	ev := eventRepo.sessionEvents[0]
	if ev.Mode != "quiz" || ev.Action != "end" {
		t.Errorf("session event = %+v", ev)
	}
	if ev.SkippedAnswers != total {
		t.Errorf("skipped = %d, want %d", ev.SkippedAnswers, total)
	}

	if len(snapRepo.snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
	if snapRepo.snapshots[0].Data.QuizSessions != 1 {
		t.Errorf("snapshot quiz sessions = %d, want 1", snapRepo.snapshots[0].Data.QuizSessions)
	}
}

func TestQuizScreen_CloseIncompleteSkipsSnapshot(t *testing.T) {
	s, eventRepo, snapRepo := testQuizScreen()

	scr, _ := submit(s, "sí")
	qs := scr.(*QuizScreen)

	qs.Close()

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	if len(snapRepo.snapshots) != 0 {
		t.Errorf("snapshots = %d, want 0", len(snapRepo.snapshots))
	}
}

func TestQuizScreen_View(t *testing.T) {
	s, _, _ := testQuizScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
