// Package render draws game snapshots onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	vp     Viewport
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		vp:     NewViewport(w, h),
	}
}

// Resize refits the viewport after a terminal resize
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.vp = NewViewport(w, h)
}

// Viewport returns the current cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.vp
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawLimits(defaultStyle)

	for _, a := range snap.Aliens {
		r.drawSprite(a, defaultStyle)
	}
	if snap.BossVisible {
		r.drawSprite(snap.Boss, defaultStyle)
	}
	for _, p := range snap.Powerups {
		r.drawSprite(p, defaultStyle)
	}
	for _, b := range snap.Bullets {
		r.drawSprite(b, defaultStyle)
	}
	if snap.ShipVisible {
		r.drawSprite(snap.Ship, defaultStyle)
	}

	r.drawStatusBar(snap)

	switch snap.State {
	case engine.StateMenu:
		r.drawMenu(defaultStyle, "SPACE INVADERS", RgbTitle, snap.Selection, engine.SelectStart)
	case engine.StateWin:
		r.drawMenu(defaultStyle, "YOU WIN", RgbWin, snap.Selection, engine.SelectRestart)
	case engine.StateLose:
		r.drawMenu(defaultStyle, "GAME OVER", RgbLose, snap.Selection, engine.SelectRestart)
	}

	r.screen.Show()
}

// drawLimits marks the horizontal play limits
func (r *TerminalRenderer) drawLimits(defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbLimit)
	left := r.vp.Column(parameter.PlayLimitLeft) - 1
	right := r.vp.Column(parameter.PlayLimitRight)

	for y := 0; y < r.vp.FieldRows(); y++ {
		if left >= 0 {
			r.screen.SetContent(left, y, GlyphLimitMarker, nil, style)
		}
		if right < r.vp.Cols {
			r.screen.SetContent(right, y, GlyphLimitMarker, nil, style)
		}
	}
}

// drawSprite fills the cells covered by s
func (r *TerminalRenderer) drawSprite(s engine.Sprite, defaultStyle tcell.Style) {
	x0, y0, x1, y1, ok := r.vp.Cells(s.Box)
	if !ok {
		return
	}

	glyph, color := spriteLook(s.Kind, s.Tier, s.MovingUp)
	style := defaultStyle.Foreground(color)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawStatusBar draws the bottom row: phase, aliens left and active effects
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot) {
	style := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	y := r.vp.Rows - 1

	for x := 0; x < r.vp.Cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := fmt.Sprintf(" %s | aliens %d/%d", stateLabel(snap.State), len(snap.Aliens), parameter.HordeSize)
	if snap.FastMove.Active {
		text += fmt.Sprintf(" | fast move %2.0fs", snap.FastMove.Remaining)
	}
	if snap.FastShot.Active {
		text += fmt.Sprintf(" | fast shot %2.0fs", snap.FastShot.Remaining)
	}

	r.drawText(0, y, text, style)
}

// drawMenu draws a centered title with the primary option and quit
func (r *TerminalRenderer) drawMenu(defaultStyle tcell.Style, title string, titleColor tcell.Color, current, primary engine.MenuSelection) {
	mid := r.vp.FieldRows() / 2

	r.drawCentered(mid-2, title, defaultStyle.Foreground(titleColor).Bold(true))
	r.drawCentered(mid, optionLabel(primary, current == primary), optionStyle(defaultStyle, current == primary))
	r.drawCentered(mid+1, optionLabel(engine.SelectQuit, current == engine.SelectQuit), optionStyle(defaultStyle, current == engine.SelectQuit))
}

func optionLabel(s engine.MenuSelection, current bool) string {
	label := map[engine.MenuSelection]string{
		engine.SelectStart:   "START",
		engine.SelectRestart: "RESTART",
		engine.SelectQuit:    "QUIT",
	}[s]
	if current {
		return "> " + label + " <"
	}
	return "  " + label + "  "
}

func optionStyle(defaultStyle tcell.Style, current bool) tcell.Style {
	if current {
		return defaultStyle.Foreground(RgbMenuCurrent).Reverse(true)
	}
	return defaultStyle.Foreground(RgbMenuText)
}

func stateLabel(s engine.State) string {
	switch s {
	case engine.StateMenu:
		return "MENU"
	case engine.StatePlaying:
		return "PLAYING"
	case engine.StatePaused:
		return "PAUSED"
	case engine.StateWin:
		return "WIN"
	case engine.StateLose:
		return "LOSE"
	}
	return "CLOSED"
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.vp.Cols - len([]rune(text))) / 2
	r.drawText(max(x, 0), y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.vp.Rows {
		return
	}
	for _, ch := range text {
		if x >= r.vp.Cols {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
