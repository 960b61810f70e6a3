package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/game"
)

// Terminal cells are about twice as tall as wide, so one cell row covers two arena rows
const cellAspect = 2

var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleAvatar   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePanic    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

const (
	runeParticle = '●'
	runeAvatar   = '█'
)

// viewRows is the number of terminal rows the arena occupies
func viewRows(arena core.Arena) int {
	return (arena.Height + cellAspect - 1) / cellAspect
}

// draw renders the arena inside a border with the status line below it
func draw(screen tcell.Screen, s *game.Session) {
	screen.Clear()

	sim := s.Simulation()
	arena := sim.Arena()
	rows := viewRows(arena)

	drawBorder(screen, arena.Width, rows)

	store := sim.Store()
	for i := 0; i < store.Len(); i++ {
		drawDisc(screen, store.At(i), rows, runeParticle, styleParticle)
	}

	avatarStyle := styleAvatar
	if s.PanicActive() {
		avatarStyle = stylePanic
	}
	drawDisc(screen, s.Avatar(), rows, runeAvatar, avatarStyle)

	drawText(screen, 0, rows+2, status(s), styleStatus)
	screen.Show()
}

func drawBorder(screen tcell.Screen, width, rows int) {
	for x := 1; x <= width; x++ {
		screen.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		screen.SetContent(x, rows+1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y <= rows; y++ {
		screen.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		screen.SetContent(width+1, y, tcell.RuneVLine, nil, styleBorder)
	}
	screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	screen.SetContent(width+1, 0, tcell.RuneURCorner, nil, styleBorder)
	screen.SetContent(0, rows+1, tcell.RuneLLCorner, nil, styleBorder)
	screen.SetContent(width+1, rows+1, tcell.RuneLRCorner, nil, styleBorder)
}

// drawDisc fills every cell whose centre lies within the particle radius
func drawDisc(screen tcell.Screen, p core.Particle, rows int, ch rune, style tcell.Style) {
	r := p.R()
	minX, maxX := int(p.X-r), int(p.X+r)
	minY, maxY := int(p.Y-r)/cellAspect, int(p.Y+r)/cellAspect

	for cy := max(minY, 0); cy <= min(maxY, rows-1); cy++ {
		for cx := max(minX, 0); cx <= maxX; cx++ {
			dx := float64(cx) + 0.5 - p.X
			dy := float64(cy*cellAspect) + float64(cellAspect)/2 - p.Y
			if dx*dx+dy*dy <= r*r {
				screen.SetContent(cx+1, cy+1, ch, nil, style)
			}
		}
	}
}

// drawPaused overwrites the status line only; tcell screens are safe for concurrent SetContent
func drawPaused(screen tcell.Screen, arena core.Arena) {
	y := viewRows(arena) + 2
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	drawText(screen, 0, y, "PAUSED: press P to resume", stylePanic)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func status(s *game.Session) string {
	store := s.Simulation().Store()
	base := fmt.Sprintf("score %d  particles %d/%d  contacts %d", s.Score(), store.Len(), s.Target(), s.Simulation().Contacts().Len())

	switch {
	case s.Over():
		return fmt.Sprintf("GAME OVER  score %d  press q to quit", s.Score())
	case !s.Started():
		return base + "  press D or Enter to start"
	case s.ClickPending():
		return base + "  CLICK! press B or Space"
	case s.PanicActive():
		return base + "  PANIC: avoid everything"
	default:
		return base
	}
}
