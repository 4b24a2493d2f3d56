package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Kind identifies what occupies a drawn cell.
type Kind int

const (
	KindHead Kind = iota
	KindBody
	KindFood
	KindWall
)

type appearance struct {
	glyph rune
	color core.Color
}

var appearances = map[Kind]appearance{
	KindHead: {glyph: 'O', color: core.ColorBrightGreen},
	KindBody: {glyph: 'o', color: core.ColorGreen},
	KindFood: {glyph: '*', color: core.ColorRed},
	KindWall: {color: core.ColorGray}, // drawn with box characters
}

// hudHeight is the number of lines above the board.
const hudHeight = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.state == nil {
		g.renderOverlay(dst, "Invalid setup", fmt.Sprint(g.err))
		return
	}

	b := g.state.Board()
	frameW, frameH := b.Width()+2, b.Height()+2
	if dst.Width() < frameW || dst.Height() < frameH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", frameW, frameH+hudHeight))
		return
	}

	frame := core.CenterIn(dst.Width(), dst.Height()-hudHeight, frameW, frameH)
	frame.Y += hudHeight
	dst.DrawBox(frame, appearances[KindWall].color)

	// Board y grows upward; screen rows grow downward.
	plot := func(p Position, k Kind) {
		a := appearances[k]
		dst.SetCell(frame.X+1+p.X, frame.Y+b.Height()-p.Y, a.glyph, a.color)
	}

	if food, ok := g.state.Food(); ok {
		plot(food, KindFood)
	}
	for _, seg := range g.state.Snake().body {
		plot(seg, KindBody)
	}
	plot(g.state.Head(), KindHead)

	switch {
	case g.state.Filled():
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", g.state.Score()))
	case g.state.GameOver():
		g.renderOverlay(dst, fmt.Sprintf("Game Over - Score: %d", g.state.Score()), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.title
	if g.state != nil {
		hud = fmt.Sprintf(" %s | Score: %d  Length: %d", g.title, g.state.Score(), g.state.Snake().Len())
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.CenterIn(dst.Width(), dst.Height(), width, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
