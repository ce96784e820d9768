// Command reaction-sim plays the reaction game in a terminal: the panel
// stands in for the seven-segment digit, LED and buzzer, and the keyboard
// stands in for the joystick.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"reaction/game"
	"reaction/internal/sim"
	"reaction/sevenseg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reaction-sim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := sim.LoadConfig()
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.LogPath)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "reaction-sim crashed: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	clock := game.SystemClock{}
	panel := sim.NewPanel(screen)
	stick := sim.NewJoystick(clock, game.Calibration10Bit, cfg.Hold)

	buzzer := panel.Buzzer()
	if cfg.Audio {
		tone, err := sim.NewTone(cfg)
		if err != nil {
			// Non-fatal, the lamp still shows the buzzer
			log.Printf("audio disabled: %v", err)
		} else {
			defer tone.Close()
			buzzer = sim.Gang(buzzer, tone)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	ctrl, err := game.NewController(game.Hardware{
		Display:   sevenseg.New(panel.Segments()),
		X:         stick.X(),
		Y:         stick.Y(),
		Button:    stick.Button(),
		Buzzer:    buzzer,
		Indicator: panel.Indicator(),
	}, game.Config{
		Calibration: game.Calibration10Bit,
		Clock:       clock,
		Rand:        rand.New(rand.NewSource(seed)),
		Log:         log.Default(),
		Reporter:    panel,
	})
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	panel.SetStatus(ctrl.Session(), ctrl.Level())
	go handleEvents(screen, stick, panel, cancel)

	for ctx.Err() == nil {
		ctrl.Tick()
		panel.SetStatus(ctrl.Session(), ctrl.Level())
	}

	return nil
}

// handleEvents feeds the keyboard to the joystick until the player quits.
func handleEvents(screen tcell.Screen, stick *sim.Joystick, panel *sim.Panel, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
			stick.HandleKey(ev)
		case *tcell.EventResize:
			screen.Sync()
			panel.Draw()
		}
	}
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The terminal belongs to the panel.
func setupLogging(path string) (*os.File, error) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)

	return f, nil
}
