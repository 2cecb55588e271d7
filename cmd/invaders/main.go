package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/audio"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/input"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/render"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/system"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/vmath"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], ".env")
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyConfigFile(cfg.Keymap)
	if err != nil {
		log.Printf("[main] %v, using default keys", err)
		keys = input.DefaultKeyTable()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.HideCursor()
	screen.EnableFocus()

	audioCfg := audio.LoadAudioConfig()
	if cfg.Mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("[main] %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	clock := engine.NewTimeProvider()
	log.Printf("[main] seed %d", cfg.Seed)

	game := engine.NewGame(clock, sound, vmath.NewFastRand(cfg.Seed))
	system.RegisterAll(game)
	defer game.Shutdown()
	defer func() { log.Printf("[main] session %s", game.Stats.Summary()) }()

	renderer := render.NewTerminalRenderer(screen)
	tracker := input.NewTracker(keys, clock)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				tracker.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			case *tcell.EventFocus:
				if !ev.Focused {
					tracker.Reset()
				}
			}

		case <-frameTicker.C:
			if tracker.Quit() {
				log.Printf("[main] quit key")
				return
			}

			game.Tick(tracker.Frame())
			if game.Closed() {
				log.Printf("[main] closed from menu")
				return
			}

			renderer.RenderFrame(game.Snapshot())
		}
	}
}
