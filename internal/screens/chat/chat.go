// Package chat implements the free-conversation screen where the child
// talks with Hipólito.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/smartinez/hipolito/internal/screen"
	"github.com/smartinez/hipolito/internal/store"
	"github.com/smartinez/hipolito/internal/tutor"
	"github.com/smartinez/hipolito/internal/ui/components"
	"github.com/smartinez/hipolito/internal/ui/layout"
	"github.com/smartinez/hipolito/internal/ui/theme"
)

const greeting = "¡Guau guau! 🐉 ¡Hola! Soy Hipólito, tu perro-dragón. Pregúntame lo que quieras sobre mi historia."

// entry is one line of the transcript.
type entry struct {
	student bool
	text    string
}

// ChatScreen is the conversation screen.
type ChatScreen struct {
	tut         *tutor.Tutor
	eventRepo   store.EventRepo
	snapRepo    store.SnapshotRepo
	input       components.TextInput
	transcript  []entry
	suggestions []string
	sessionID   string
	startedAt   time.Time
	turns       int
	waiting     bool
	spinner     int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Closer = (*ChatScreen)(nil)

// New creates a ChatScreen over the given tutor.
func New(tut *tutor.Tutor, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *ChatScreen {
	return &ChatScreen{
		tut:         tut,
		eventRepo:   eventRepo,
		snapRepo:    snapRepo,
		input:       components.NewTextInput("Escribe tu pregunta...", false, 200),
		transcript:  []entry{{text: greeting}},
		suggestions: tut.Suggestions(),
		sessionID:   uuid.NewString(),
		startedAt:   time.Now(),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	start := func() tea.Msg {
		if s.eventRepo != nil {
			s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: s.sessionID,
				Mode:      "chat",
				Action:    "start",
				Level:     string(s.tut.Level()),
			})
		}
		return nil
	}
	return tea.Batch(s.input.Init(), start)
}

func (s *ChatScreen) Title() string {
	return "Charla"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enviar"},
		{Key: "Esc", Description: "Volver"},
	}
}

// Close records the session end. Called by the app when the screen is
// popped; failures only cost the stats entry.
func (s *ChatScreen) Close() {
	if s.eventRepo != nil {
		s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:    s.sessionID,
			Mode:         "chat",
			Action:       "end",
			Turns:        s.turns,
			DurationSecs: int(time.Since(s.startedAt).Seconds()),
			Level:        string(s.tut.Level()),
		})
	}
	if s.snapRepo != nil && s.turns > 0 {
		ctx := context.Background()
		data := store.SnapshotData{Version: 1, Level: string(s.tut.Level())}
		if latest, err := s.snapRepo.Latest(ctx); err == nil && latest != nil {
			data = latest.Data
		}
		data.ChatTurns += s.turns
		s.snapRepo.Save(ctx, &store.Snapshot{Timestamp: time.Now(), Data: data})
		s.snapRepo.Prune(ctx, 20)
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		s.transcript = append(s.transcript, entry{text: msg.Reply.Text})
		return s, s.logTurn(msg.Reply)

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.waiting {
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s, nil
			}
			s.transcript = append(s.transcript, entry{student: true, text: text})
			s.input.Model.SetValue("")
			s.waiting = true
			s.turns++
			return s, tea.Batch(s.ask(text), spinnerTick())
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// ask resolves the reply off the update loop so a slow LLM fallback
// doesn't freeze the UI.
func (s *ChatScreen) ask(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return replyMsg{Reply: s.tut.Ask(ctx, text)}
	}
}

// logTurn appends the chat event. Persistence failures are swallowed:
// losing a stats row must not break the conversation.
func (s *ChatScreen) logTurn(reply tutor.Reply) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	student := ""
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].student {
			student = s.transcript[i].text
			break
		}
	}
	return func() tea.Msg {
		s.eventRepo.AppendChatEvent(context.Background(), store.ChatEventData{
			SessionID:   s.sessionID,
			StudentText: student,
			ReplyText:   reply.Text,
			Source:      chatSource(reply),
			Intent:      string(reply.Rule.Intent),
			Confidence:  reply.Confidence,
			Level:       string(s.tut.Level()),
		})
		return nil
	}
}

func chatSource(reply tutor.Reply) string {
	if reply.Source == tutor.SourceGenerated {
		return "generated"
	}
	return string(reply.Rule.Source)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ChatScreen) View(width, height int) string {
	cw := width - 4
	if cw < 20 {
		cw = 20
	}

	tutorStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 1).
		Width(cw * 3 / 4)

	studentStyle := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Padding(0, 1).
		Width(cw * 3 / 4)

	var lines []string
	for _, e := range s.transcript {
		if e.student {
			bubble := studentStyle.Render("Tú: " + e.text)
			lines = append(lines, lipgloss.NewStyle().Width(cw).Align(lipgloss.Right).Render(bubble))
		} else {
			lines = append(lines, tutorStyle.Render("🐉 "+e.text))
		}
		lines = append(lines, "")
	}

	if s.waiting {
		frame := spinnerFrames[s.spinner%len(spinnerFrames)]
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%s Hipólito está pensando...", frame)))
	}

	// Show conversation starters until the child has asked something.
	if s.turns == 0 && len(s.suggestions) > 0 {
		lines = append(lines, theme.Hint.Render("Ideas para empezar:"))
		for _, sg := range s.suggestions {
			lines = append(lines, theme.Hint.Render("  • "+sg))
		}
		lines = append(lines, "")
	}

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Padding(0, 1).
		Render(s.input.View())

	transcript := strings.Join(lines, "\n")

	// Keep the tail of the conversation visible above the input.
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
