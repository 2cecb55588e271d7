// Command invaders-window runs the game in a desktop window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/joho/godotenv"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/audio"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/input"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/system"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/vmath"
)

const textScale = 4

// Window bindings; left and right use IsKeyPressed, the rest IsKeyJustPressed
var windowKeys = map[ebiten.Key]input.Action{
	ebiten.KeyArrowLeft:  input.ActionLeft,
	ebiten.KeyA:          input.ActionLeft,
	ebiten.KeyArrowRight: input.ActionRight,
	ebiten.KeyD:          input.ActionRight,
	ebiten.KeyArrowUp:    input.ActionUp,
	ebiten.KeyW:          input.ActionUp,
	ebiten.KeyArrowDown:  input.ActionDown,
	ebiten.KeyS:          input.ActionDown,
	ebiten.KeySpace:      input.ActionFire,
	ebiten.KeyEnter:      input.ActionSelect,
	ebiten.KeyEscape:     input.ActionPause,
	ebiten.KeyP:          input.ActionPause,
	ebiten.KeyQ:          input.ActionQuit,
}

var (
	colorBackground = color.RGBA{10, 10, 20, 255}
	colorLimit      = color.RGBA{40, 40, 60, 255}
	colorShip       = color.RGBA{80, 255, 80, 255}
	colorBoss       = color.RGBA{255, 60, 60, 255}
	colorTier1      = color.RGBA{230, 100, 255, 255}
	colorTier2      = color.RGBA{80, 220, 255, 255}
	colorTier3      = color.RGBA{120, 255, 120, 255}
	colorShipShot   = color.RGBA{255, 255, 255, 255}
	colorEnemyShot  = color.RGBA{255, 220, 0, 255}
	colorFastMove   = color.RGBA{100, 150, 255, 255}
	colorFastShot   = color.RGBA{255, 165, 0, 255}
)

// windowGame adapts engine.Game to ebiten.Game
type windowGame struct {
	game    *engine.Game
	textBuf *ebiten.Image
}

func (w *windowGame) Update() error {
	var in engine.Input

	for key, action := range windowKeys {
		switch action {
		case input.ActionLeft:
			in.Left = in.Left || ebiten.IsKeyPressed(key)
		case input.ActionRight:
			in.Right = in.Right || ebiten.IsKeyPressed(key)
		case input.ActionFire:
			in.Fire = in.Fire || inpututil.IsKeyJustPressed(key)
		case input.ActionUp:
			in.Up = in.Up || inpututil.IsKeyJustPressed(key)
		case input.ActionDown:
			in.Down = in.Down || inpututil.IsKeyJustPressed(key)
		case input.ActionSelect:
			in.Select = in.Select || inpututil.IsKeyJustPressed(key)
		case input.ActionPause:
			in.Pause = in.Pause || inpututil.IsKeyJustPressed(key)
		case input.ActionQuit:
			if inpututil.IsKeyJustPressed(key) {
				return ebiten.Termination
			}
		}
	}

	w.game.Tick(in)
	if w.game.Closed() {
		return ebiten.Termination
	}
	return nil
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := w.game.Snapshot()

	vector.StrokeLine(screen, parameter.PlayLimitLeft, 0, parameter.PlayLimitLeft, parameter.ScreenHeight, 2, colorLimit, false)
	vector.StrokeLine(screen, parameter.PlayLimitRight, 0, parameter.PlayLimitRight, parameter.ScreenHeight, 2, colorLimit, false)

	for _, a := range snap.Aliens {
		fillSprite(screen, a)
	}
	if snap.BossVisible {
		fillSprite(screen, snap.Boss)
	}
	for _, p := range snap.Powerups {
		fillSprite(screen, p)
	}
	for _, b := range snap.Bullets {
		fillSprite(screen, b)
	}
	if snap.ShipVisible {
		fillSprite(screen, snap.Ship)
	}

	status := fmt.Sprintf("aliens %d/%d", len(snap.Aliens), parameter.HordeSize)
	if snap.FastMove.Active {
		status += fmt.Sprintf("  fast move %.0fs", snap.FastMove.Remaining)
	}
	if snap.FastShot.Active {
		status += fmt.Sprintf("  fast shot %.0fs", snap.FastShot.Remaining)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, parameter.ScreenHeight-24)

	switch snap.State {
	case engine.StateMenu:
		w.drawMenu(screen, "SPACE INVADERS", snap.Selection, engine.SelectStart)
	case engine.StateWin:
		w.drawMenu(screen, "YOU WIN", snap.Selection, engine.SelectRestart)
	case engine.StateLose:
		w.drawMenu(screen, "GAME OVER", snap.Selection, engine.SelectRestart)
	}
}

func (w *windowGame) Layout(_, _ int) (int, int) {
	return parameter.ScreenWidth, parameter.ScreenHeight
}

func fillSprite(screen *ebiten.Image, s engine.Sprite) {
	b := s.Box
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), spriteColor(s), false)
}

func spriteColor(s engine.Sprite) color.Color {
	switch s.Kind {
	case entity.KindPlayerShip:
		return colorShip
	case entity.KindBossShip:
		return colorBoss
	case entity.KindAlien:
		switch s.Tier {
		case entity.Tier1:
			return colorTier1
		case entity.Tier2:
			return colorTier2
		}
		return colorTier3
	case entity.KindBullet:
		if s.MovingUp {
			return colorShipShot
		}
		return colorEnemyShot
	case entity.KindFastMove:
		return colorFastMove
	case entity.KindFastShot:
		return colorFastShot
	}
	return color.White
}

func (w *windowGame) drawMenu(screen *ebiten.Image, title string, current, primary engine.MenuSelection) {
	labels := map[engine.MenuSelection]string{
		engine.SelectStart:   "START",
		engine.SelectRestart: "RESTART",
		engine.SelectQuit:    "QUIT",
	}

	mid := parameter.ScreenHeight / 2
	w.drawLargeText(screen, title, mid-160)
	for i, opt := range []engine.MenuSelection{primary, engine.SelectQuit} {
		label := "  " + labels[opt] + "  "
		if opt == current {
			label = "> " + labels[opt] + " <"
		}
		w.drawLargeText(screen, label, mid+float64(i)*80)
	}
}

// drawLargeText prints centered debug text scaled up through an offscreen buffer
func (w *windowGame) drawLargeText(screen *ebiten.Image, s string, y float64) {
	w.textBuf.Clear()
	ebitenutil.DebugPrint(w.textBuf, s)

	// Debug font cells are 6x16
	width := float64(len(s) * 6 * textScale)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate((parameter.ScreenWidth-width)/2, y)
	screen.DrawImage(w.textBuf, op)
}

func main() {
	_ = godotenv.Load()

	mute := flag.Bool("mute", false, "disable audio")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	audioCfg := audio.LoadAudioConfig()
	if *mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("[main] %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	game := engine.NewGame(engine.NewTimeProvider(), sound, vmath.NewFastRand(*seed))
	system.RegisterAll(game)
	defer game.Shutdown()
	defer func() { log.Printf("[main] session %s", game.Stats.Summary()) }()

	ebiten.SetWindowSize(parameter.ScreenWidth/2, parameter.ScreenHeight/2)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / parameter.FrameUpdateInterval))

	w := &windowGame{
		game:    game,
		textBuf: ebiten.NewImage(parameter.ScreenWidth/textScale, 16),
	}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[main] %v", err)
		os.Exit(1)
	}
}
