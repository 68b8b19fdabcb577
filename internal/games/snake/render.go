package snake

import (
	"fmt"

	platformcore "github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

const hudHeight = 2

// glyph is how one grid cell is drawn: lead in the first column, fill in
// the remaining columns of a wide cell.
type glyph struct {
	lead, fill rune
	color      platformcore.Color
}

var glyphs = map[core.Cell]glyph{
	core.Empty: {'·', ' ', platformcore.ColorGray},
	core.Wall:  {'█', '█', platformcore.ColorGray},
	core.Snake: {'█', '█', platformcore.ColorGreen},
	core.Food:  {'●', ' ', platformcore.ColorRed},
}

var headGlyph = glyph{'█', '█', platformcore.ColorBrightGreen}

// Render draws the HUD and the board into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	cols := g.cfg.Grid.CellColumns()
	w, h := g.grid.Width(), g.grid.Height()
	if w*cols > dst.Width() {
		cols = 1
	}
	if w*cols > dst.Width() || h+hudHeight > dst.Height() {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).Centered(w*cols, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			drawCell(dst, area.X+x*cols, area.Y+y, cols, glyphs[g.grid.At(core.C(x, y))])
		}
	}
	head := g.body.Head()
	drawCell(dst, area.X+head.X*cols, area.Y+head.Y, cols, headGlyph)

	switch g.state {
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case StateGameOver:
		if g.mode == core.Manual {
			g.renderOverlay(dst, "Game Over", "Press R to restart")
		} else {
			g.renderOverlay(dst, "Game Over", "Restarting...")
		}
	}
}

func drawCell(dst *platformcore.Screen, x, y, cols int, gl glyph) {
	dst.SetColor(x, y, gl.lead, gl.color)
	for i := 1; i < cols; i++ {
		dst.SetColor(x+i, y, gl.fill, gl.color)
	}
}

// renderHUD draws the status bar and its separator.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	left := fmt.Sprintf(" Snake  Score: %d  Autopilot: ", g.score)
	mode := g.mode.String()
	dst.DrawTextColor(0, 0, left, platformcore.ColorBrightWhite)

	modeColor := platformcore.ColorBrightWhite
	if g.mode != core.Manual {
		modeColor = platformcore.ColorCyan
	}
	x := len(left)
	dst.DrawTextColor(x, 0, mode, modeColor)
	dst.DrawTextColor(x+len(mode), 0, fmt.Sprintf("  Interval: %s", g.interval), platformcore.ColorBrightWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(box.W-len([]rune(line1)))/2, box.Y+1, line1, platformcore.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
