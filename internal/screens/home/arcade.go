package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smartinez/hipolito/internal/ui/components"
	"github.com/smartinez/hipolito/internal/ui/theme"
)

// Block-letter title for the storybook cabinet.
const arcadeTitleFull = ` ██╗  ██╗██╗██████╗  ██████╗ ██╗     ██╗████████╗ ██████╗
 ██║  ██║██║██╔══██╗██╔═══██╗██║     ██║╚══██╔══╝██╔═══██╗
 ███████║██║██████╔╝██║   ██║██║     ██║   ██║   ██║   ██║
 ██╔══██║██║██╔═══╝ ██║   ██║██║     ██║   ██║   ██║   ██║
 ██║  ██║██║██║     ╚██████╔╝███████╗██║   ██║   ╚██████╔╝
 ╚═╝  ╚═╝╚═╝╚═╝      ╚═════╝ ╚══════╝╚═╝   ╚═╝    ╚═════╝`

const arcadeTitleCompact = "H · I · P · Ó · L · I · T · O"

const arcadeSubtitle = "mi perro-dragón"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(arcadeSubtitle)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + sub)
}

// renderStatsBar renders the reading stats in a bordered box matching content width.
func renderStatsBar(chatTurns, quizSessions int, level string, cw int, compact bool) string {
	chatStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	quizStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			chatStyle.Render(fmt.Sprintf("💬%d", chatTurns)),
			quizStyle.Render(fmt.Sprintf("🎓%d", quizSessions)),
			levelStyle.Render(level),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			chatStyle.Render(fmt.Sprintf("💬 %d CHARLAS", chatTurns)),
			quizStyle.Render(fmt.Sprintf("🎓 %d CUESTIONARIOS", quizSessions)),
			levelStyle.Render(fmt.Sprintf("📖 %s", strings.ToUpper(level))),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a card matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.ArcadeCard(RenderMascot(variant), cw-4))
}
