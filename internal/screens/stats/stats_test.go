package stats

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/smartinez/hipolito/internal/router"
	"github.com/smartinez/hipolito/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	categories []store.QuizCategoryStats
	sessions   []store.SessionSummary
	err        error
}

func (m *mockEventRepo) AppendChatEvent(_ context.Context, _ store.ChatEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, _ store.QuizAnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QuizStatsByCategory(_ context.Context) ([]store.QuizCategoryStats, error) {
	return m.categories, m.err
}
func (m *mockEventRepo) SessionSummaries(_ context.Context) ([]store.SessionSummary, error) {
	return m.sessions, m.err
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

func TestStatsScreen_Title(t *testing.T) {
	s := New(&mockEventRepo{})
	if s.Title() != "Estadísticas" {
		t.Errorf("Title = %q, want %q", s.Title(), "Estadísticas")
	}
}

func TestStatsScreen_View_Loading(t *testing.T) {
	s := New(&mockEventRepo{})
	view := s.View(80, 24)
	if !strings.Contains(view, "Cargando") {
		t.Errorf("expected loading indicator, got %q", view)
	}
}

func TestStatsScreen_LoadAndRender(t *testing.T) {
	repo := &mockEventRepo{
		categories: []store.QuizCategoryStats{
			{Category: "personajes", Answered: 4, Correct: 3, Skipped: 1},
		},
		sessions: []store.SessionSummary{
			{Mode: "quiz", Sessions: 2, Turns: 20, TotalSecs: 300},
		},
	}
	s := New(repo)

	msg := s.Init()()
	scr, _ := s.Update(msg)
	view := scr.View(80, 24)

	if !strings.Contains(view, "personajes") {
		t.Errorf("expected category row, got %q", view)
	}
	if !strings.Contains(view, "Cuestionarios") {
		t.Errorf("expected session row, got %q", view)
	}
}

func TestStatsScreen_View_Empty(t *testing.T) {
	s := New(&mockEventRepo{})

	msg := s.Init()()
	scr, _ := s.Update(msg)
	view := scr.View(80, 24)

	if !strings.Contains(view, "Todavía no hay datos") {
		t.Errorf("expected empty state, got %q", view)
	}
}

func TestStatsScreen_View_Error(t *testing.T) {
	s := New(&mockEventRepo{err: errors.New("db locked")})

	msg := s.Init()()
	scr, _ := s.Update(msg)
	view := scr.View(80, 24)

	if !strings.Contains(view, "db locked") {
		t.Errorf("expected error message, got %q", view)
	}
}

func TestStatsScreen_EscPops(t *testing.T) {
	s := New(&mockEventRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command for esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name string
		cat  store.QuizCategoryStats
		want float64
	}{
		{"all correct", store.QuizCategoryStats{Answered: 4, Correct: 4}, 1},
		{"skips ignored", store.QuizCategoryStats{Answered: 4, Correct: 2, Skipped: 2}, 1},
		{"only skips", store.QuizCategoryStats{Answered: 3, Skipped: 3}, 0},
		{"no answers", store.QuizCategoryStats{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accuracy(tt.cat); got != tt.want {
				t.Errorf("accuracy(%+v) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}
