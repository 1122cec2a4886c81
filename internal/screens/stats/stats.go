package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/smartinez/hipolito/internal/router"
	"github.com/smartinez/hipolito/internal/screen"
	"github.com/smartinez/hipolito/internal/store"
	"github.com/smartinez/hipolito/internal/ui/components"
	"github.com/smartinez/hipolito/internal/ui/layout"
	"github.com/smartinez/hipolito/internal/ui/theme"
)

type statsLoadedMsg struct {
	Categories []store.QuizCategoryStats
	Sessions   []store.SessionSummary
	Err        error
}

// StatsScreen displays quiz accuracy per category and lifetime usage.
type StatsScreen struct {
	eventRepo  store.EventRepo
	categories []store.QuizCategoryStats
	sessions   []store.SessionSummary
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		cats, err := s.eventRepo.QuizStatsByCategory(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		sessions, err := s.eventRepo.SessionSummaries(ctx)
		if err != nil {
			return statsLoadedMsg{Categories: cats}
		}

		return statsLoadedMsg{Categories: cats, Sessions: sessions}
	}
}

func (s *StatsScreen) Title() string {
	return "Estadísticas"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.categories = msg.Categories
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando estadísticas...")
	}
	if len(s.categories) == 0 && len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Todavía no hay datos. ¡Habla con Hipólito o juega un cuestionario!")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text)

	if len(s.sessions) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			header.Render("Sesiones")))
		b.WriteString("\n\n")
		for _, sess := range s.sessions {
			mode := "Charlas"
			if sess.Mode == "quiz" {
				mode = "Cuestionarios"
			}
			mins := sess.TotalSecs / 60
			line := fmt.Sprintf("%s: %d sesiones, %d turnos, %d min en total",
				mode, sess.Sessions, sess.Turns, mins)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.categories) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			header.Render("Preguntas por tema")))
		b.WriteString("\n\n")
		for _, cat := range s.categories {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-12s", cat.Category), accuracy(cat), true, 30)
			line := fmt.Sprintf("%s  %d respondidas", bar.View(), cat.Answered)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Italic(true).Render("Las preguntas saltadas no cuentan en contra.")))
		b.WriteString("\n")
	}

	return b.String()
}

// accuracy computes the correct share of attempted answers. Skipped
// answers never count against the child.
func accuracy(cat store.QuizCategoryStats) float64 {
	attempted := cat.Answered - cat.Skipped
	if attempted <= 0 {
		return 0
	}
	return float64(cat.Correct) / float64(attempted)
}
