package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenHas(screen tcell.Screen, text string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), text) {
			return true
		}
	}
	return false
}

func countGlyph(screen tcell.Screen, glyph rune) int {
	w, h := screen.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == glyph {
				n++
			}
		}
	}
	return n
}

func TestRenderMenu(t *testing.T) {
	screen := newTestScreen(t, 96, 28)
	r := NewTerminalRenderer(screen)
	g, _, _, _ := engine.NewTestGame()

	r.RenderFrame(g.Snapshot())

	if !screenHas(screen, "SPACE INVADERS") {
		t.Error("Expected title")
	}
	if !screenHas(screen, "> START <") {
		t.Error("Expected start highlighted")
	}
	if !screenHas(screen, "  QUIT  ") {
		t.Error("Expected quit option")
	}
	if countGlyph(screen, GlyphAlien) == 0 {
		t.Error("Expected the horde behind the menu")
	}
	if !strings.Contains(rowText(screen, 27), "MENU") {
		t.Errorf("Expected status bar on last row, got %q", rowText(screen, 27))
	}
}

func TestRenderPlayingShipAndStatus(t *testing.T) {
	screen := newTestScreen(t, 96, 28)
	r := NewTerminalRenderer(screen)
	g, _, _, _ := engine.NewTestGame()
	g.Tick(engine.Input{Select: true})
	g.Match.Timers.FastMove.Activate(42)

	r.RenderFrame(g.Snapshot())

	// Ship at (912, 900) maps to column 45, row 22
	if ch, _, _, _ := screen.GetContent(45, 22); ch != GlyphShip {
		t.Errorf("Expected ship glyph at 45,22, got %q", ch)
	}
	if screenHas(screen, "START") {
		t.Error("Expected no menu while playing")
	}

	status := rowText(screen, 27)
	for _, want := range []string{"PLAYING", "aliens 55/55", "fast move 42s"} {
		if !strings.Contains(status, want) {
			t.Errorf("Expected %q in status %q", want, status)
		}
	}
	if strings.Contains(status, "fast shot") {
		t.Error("Expected inactive fast shot hidden")
	}
}

func TestRenderLoseHidesShip(t *testing.T) {
	screen := newTestScreen(t, 96, 28)
	r := NewTerminalRenderer(screen)
	g, _, _, _ := engine.NewTestGame()
	g.Tick(engine.Input{Select: true})
	g.Lose()

	r.RenderFrame(g.Snapshot())

	if countGlyph(screen, GlyphShip) != 0 {
		t.Error("Expected ship hidden after losing")
	}
	if !screenHas(screen, "GAME OVER") || !screenHas(screen, "> RESTART <") {
		t.Error("Expected lose overlay with restart selected")
	}
}

func TestRenderBossOnlyWhilePatrolling(t *testing.T) {
	screen := newTestScreen(t, 96, 28)
	r := NewTerminalRenderer(screen)
	g, _, _, _ := engine.NewTestGame()
	g.Tick(engine.Input{Select: true})
	g.Match.Boss.X = 900

	r.RenderFrame(g.Snapshot())
	if countGlyph(screen, GlyphBoss) != 0 {
		t.Error("Expected dormant boss hidden")
	}

	g.Match.BossActive = true
	r.RenderFrame(g.Snapshot())
	if countGlyph(screen, GlyphBoss) == 0 {
		t.Error("Expected patrolling boss drawn")
	}
}

func TestRenderResize(t *testing.T) {
	screen := newTestScreen(t, 96, 28)
	r := NewTerminalRenderer(screen)

	screen.SetSize(48, 14)
	r.Resize()

	if vp := r.Viewport(); vp.Cols != 48 || vp.Rows != 14 {
		t.Errorf("Expected 48x14 viewport, got %dx%d", vp.Cols, vp.Rows)
	}
}
