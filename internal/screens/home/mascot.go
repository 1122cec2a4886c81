package home

import (
	"charm.land/lipgloss/v2"

	"github.com/smartinez/hipolito/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, after a finished quiz
	MascotFlying                           // Cyan, wings out
)

const mascotIdle = `   /\ /\
  ( ◉ ◉ )
 <(  ▽  )>
   ~~º~~`

const mascotCelebrating = `   /\ /\
  ( ★ ★ )
 <(  ▿  )>
  \~~º~~/`

const mascotFlying = ` \ /\ /\ /
  ( ◉ ◉ )
===  ▽  ===
   ~~º~~`

// RenderMascot returns the dragon ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotFlying:
		art = mascotFlying
		fg = theme.ArcadeCyan
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
