// Package quiz implements the teacher-mode screen where the child plays
// professor and answers questions about the story.
package quiz

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smartinez/hipolito/internal/knowledge"
	"github.com/smartinez/hipolito/internal/quiz"
	"github.com/smartinez/hipolito/internal/screen"
	"github.com/smartinez/hipolito/internal/store"
	"github.com/smartinez/hipolito/internal/ui/components"
	"github.com/smartinez/hipolito/internal/ui/layout"
	"github.com/smartinez/hipolito/internal/ui/theme"
)

type entry struct {
	student bool
	text    string
}

// QuizScreen drives one quiz session against the machine.
type QuizScreen struct {
	machine    *quiz.Machine
	eventRepo  store.EventRepo
	snapRepo   store.SnapshotRepo
	level      knowledge.Level
	input      components.TextInput
	transcript []entry
	startedAt  time.Time
	ended      bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a QuizScreen and starts a fresh session.
func New(m *quiz.Machine, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, level knowledge.Level) *QuizScreen {
	s := &QuizScreen{
		machine:   m,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		level:     level,
		input:     components.NewTextInput("Escribe tu respuesta...", false, 200),
		startedAt: time.Now(),
	}
	s.transcript = append(s.transcript, entry{text: m.Start()})
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	start := func() tea.Msg {
		if s.eventRepo != nil {
			s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: s.machine.SessionID(),
				Mode:      "quiz",
				Action:    "start",
				Level:     string(s.level),
			})
		}
		return nil
	}
	return tea.Batch(s.input.Init(), start)
}

func (s *QuizScreen) Title() string {
	return "Cuestionario"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Volver"},
	}
}

// Close records the session end and bumps the progress snapshot if the
// session ran to completion.
func (s *QuizScreen) Close() {
	if s.eventRepo == nil {
		return
	}
	answered, _, correct, skipped := s.machine.Progress()
	s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:      s.machine.SessionID(),
		Mode:           "quiz",
		Action:         "end",
		Turns:          answered,
		CorrectAnswers: correct,
		SkippedAnswers: skipped,
		DurationSecs:   int(time.Since(s.startedAt).Seconds()),
		Level:          string(s.level),
	})
	if s.ended {
		s.bumpSnapshot()
	}
}

func (s *QuizScreen) bumpSnapshot() {
	if s.snapRepo == nil {
		return
	}
	ctx := context.Background()
	data := store.SnapshotData{Version: 1, Level: string(s.level)}
	if latest, err := s.snapRepo.Latest(ctx); err == nil && latest != nil {
		data = latest.Data
	}
	data.QuizSessions++
	s.snapRepo.Save(ctx, &store.Snapshot{Timestamp: time.Now(), Data: data})
	s.snapRepo.Prune(ctx, 20)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return s, nil
		}
		s.transcript = append(s.transcript, entry{student: true, text: text})
		s.input.Model.SetValue("")

		resp := s.machine.Submit(text)
		s.transcript = append(s.transcript, entry{text: resp.Text})
		if resp.SessionComplete {
			s.ended = true
		}
		return s, s.logAnswer(text, resp)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// logAnswer persists the graded answer. A failed write only loses the
// stats row, the session keeps going.
func (s *QuizScreen) logAnswer(student string, resp quiz.Response) tea.Cmd {
	if s.eventRepo == nil || resp.Grade == nil {
		return nil
	}
	q := resp.Grade.Question
	data := store.QuizAnswerEventData{
		SessionID:     s.machine.SessionID(),
		QuestionID:    q.ID,
		Prompt:        q.Prompt,
		StudentAnswer: student,
		Correct:       resp.Grade.Correct,
		Skipped:       resp.Grade.Skipped,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
	}
	return func() tea.Msg {
		s.eventRepo.AppendQuizAnswer(context.Background(), data)
		return nil
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := width - 4
	if cw < 20 {
		cw = 20
	}

	teacherStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 1).
		Width(cw * 3 / 4)

	studentStyle := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Padding(0, 1).
		Width(cw * 3 / 4)

	var lines []string
	lines = append(lines, s.renderProgress(cw), "")
	for _, e := range s.transcript {
		if e.student {
			bubble := studentStyle.Render("Tú: " + e.text)
			lines = append(lines, lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).Render(bubble))
		} else {
			lines = append(lines, teacherStyle.Render("🐉 "+e.text))
		}
		lines = append(lines, "")
	}

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Width(cw).
		Padding(0, 1).
		Render(s.input.View())

	transcript := strings.Join(lines, "\n")
	avail := height - lipgloss.Height(inputBox) - 2
	if avail < 1 {
		avail = 1
	}
	tLines := strings.Split(transcript, "\n")
	if len(tLines) > avail {
		tLines = tLines[len(tLines)-avail:]
	}
	transcript = strings.Join(tLines, "\n")

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(transcript + "\n" + inputBox)
}

// renderProgress draws a dot per question, filled once answered. No
// scores shown, the session stays celebratory.
func (s *QuizScreen) renderProgress(width int) string {
	answered, total, _, _ := s.machine.Progress()
	if total == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i < answered {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
		if i < total-1 {
			b.WriteString(" ")
		}
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}
