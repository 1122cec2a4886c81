package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/quiz"
	"github.com/smartinez/hipolito/internal/router"
	"github.com/smartinez/hipolito/internal/screen"
	chatscreen "github.com/smartinez/hipolito/internal/screens/chat"
	quizscreen "github.com/smartinez/hipolito/internal/screens/quiz"
	"github.com/smartinez/hipolito/internal/screens/stats"
	"github.com/smartinez/hipolito/internal/store"
	"github.com/smartinez/hipolito/internal/tutor"
	"github.com/smartinez/hipolito/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	chatTurns     int
	quizSessions  int
	level         knowledge.Level
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tut *tutor.Tutor, questions []quiz.Question, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	// Load snapshot for the reading stats shown on the cabinet.
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	var chatTurns, quizSessions int
	if snap != nil {
		chatTurns = snap.Data.ChatTurns
		quizSessions = snap.Data.QuizSessions
	}

	mascotVariant := MascotIdle
	switch {
	case snap != nil && quizSessions > 0 && time.Since(snap.Timestamp) < 24*time.Hour:
		mascotVariant = MascotCelebrating
	case chatTurns > 0:
		mascotVariant = MascotFlying
	}

	menuLabels := []string{"HABLAR CON HIPÓLITO", "CUESTIONARIO", "MIS ESTADÍSTICAS", "SALIR"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(tut, eventRepo, snapRepo)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(quiz.NewMachine(questions), eventRepo, snapRepo, tut.Level()),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		chatTurns:     chatTurns,
		quizSessions:  quizSessions,
		level:         tut.Level(),
		mascotVariant: mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.chatTurns, h.quizSessions, string(h.level), cw, compact))

	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
