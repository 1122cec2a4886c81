package chat

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/resolver"
	"github.com/smartinez/hipolito/internal/screen"
	"github.com/smartinez/hipolito/internal/store"
	"github.com/smartinez/hipolito/internal/tutor"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	chatEvents    []store.ChatEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendChatEvent(_ context.Context, data store.ChatEventData) error {
	m.chatEvents = append(m.chatEvents, data)
	return nil
}
func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, _ store.QuizAnswerEventData) error {
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

func testChatScreen(t *testing.T) (*ChatScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	base, err := knowledge.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	res := resolver.New(base, resolver.WithRand(rand.New(rand.NewSource(1))))
	tut := tutor.New(res, knowledge.LevelBasic)

	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	return New(tut, eventRepo, snapRepo), eventRepo, snapRepo
}

func TestChatScreen_Title(t *testing.T) {
	s, _, _ := testChatScreen(t)
	if s.Title() != "Charla" {
		t.Errorf("Title = %q, want %q", s.Title(), "Charla")
	}
}

func TestChatScreen_GreetingShown(t *testing.T) {
	s, _, _ := testChatScreen(t)
	if len(s.transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(s.transcript))
	}
	if s.transcript[0].student {
		t.Error("greeting should not be a student entry")
	}
}

func TestChatScreen_EmptyInputIgnored(t *testing.T) {
	s, _, _ := testChatScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*ChatScreen)

	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if len(ss.transcript) != 1 {
		t.Errorf("transcript length = %d, want 1", len(ss.transcript))
	}
}

func TestChatScreen_Submit(t *testing.T) {
	s, _, _ := testChatScreen(t)
	s.input.Model.SetValue("¿quién es hipólito?")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*ChatScreen)

	if cmd == nil {
		t.Fatal("expected a command after submit")
	}
	if !ss.waiting {
		t.Error("expected waiting state after submit")
	}
	if ss.turns != 1 {
		t.Errorf("turns = %d, want 1", ss.turns)
	}
	last := ss.transcript[len(ss.transcript)-1]
	if !last.student || last.text != "¿quién es hipólito?" {
		t.Errorf("last entry = %+v, want student question", last)
	}
	if ss.input.Value() != "" {
		t.Error("expected input cleared after submit")
	}
}

func TestChatScreen_ReplyLogged(t *testing.T) {
	s, eventRepo, _ := testChatScreen(t)
	s.input.Model.SetValue("hola")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	reply := tutor.Reply{
		Text:       "¡Guau!",
		Confidence: 0.8,
		Source:     tutor.SourceRules,
		Rule:       resolver.Result{Source: resolver.SourceIntent},
	}
	scr, cmd := scr.Update(replyMsg{Reply: reply})
	ss := scr.(*ChatScreen)

	if ss.waiting {
		t.Error("expected waiting cleared after reply")
	}
	last := ss.transcript[len(ss.transcript)-1]
	if last.student || last.text != "¡Guau!" {
		t.Errorf("last entry = %+v, want reply", last)
	}

	if cmd == nil {
		t.Fatal("expected logging command after reply")
	}
	cmd()
	if len(eventRepo.chatEvents) != 1 {
		t.Fatalf("chat events = %d, want 1", len(eventRepo.chatEvents))
	}
	ev := eventRepo.chatEvents[0]
	if ev.StudentText != "hola" || ev.ReplyText != "¡Guau!" {
		t.Errorf("logged event = %+v", ev)
	}
	if ev.Source != "intent" {
		t.Errorf("event source = %q, want %q", ev.Source, "intent")
	}
}

func TestChatScreen_CloseRecordsSession(t *testing.T) {
	s, eventRepo, snapRepo := testChatScreen(t)
	s.turns = 3

	s.Close()

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	ev := eventRepo.sessionEvents[0]
	if ev.Mode != "chat" || ev.Action != "end" || ev.Turns != 3 {
		t.Errorf("session event = %+v", ev)
	}

	if len(snapRepo.snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
	if snapRepo.snapshots[0].Data.ChatTurns != 3 {
		t.Errorf("snapshot chat turns = %d, want 3", snapRepo.snapshots[0].Data.ChatTurns)
	}
}

func TestChatScreen_CloseWithoutTurnsSkipsSnapshot(t *testing.T) {
	s, _, snapRepo := testChatScreen(t)

	s.Close()

	if len(snapRepo.snapshots) != 0 {
		t.Errorf("snapshots = %d, want 0", len(snapRepo.snapshots))
	}
}

func TestChatScreen_View(t *testing.T) {
	s, _, _ := testChatScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
