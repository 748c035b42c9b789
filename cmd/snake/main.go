package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
	"github.com/trytobebee/termsnake/pkg/renderer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "game speed in ticks per second")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening log file:", err)
		os.Exit(1)
	}
	defer closeLog()

	sessionID := uuid.NewString()
	logger.Info().
		Str("session", sessionID).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("fps", cfg.FPS).
		Msg("session started")

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating game:", err)
		os.Exit(1)
	}

	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "Error opening keyboard:", err)
		os.Exit(1)
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(cfg.Width, cfg.Height)
	render.HideCursor()
	defer render.ShowCursor()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	// The loop is the single writer of game state: key events only
	// stage the next command, the ticker applies it.
	pending := game.InputNone
	endLogged := false

	render.Render(g.Snapshot())

	for {
		select {
		case ev := <-inputHandler.Events():
			if input.IsRestart(ev) && g.Snapshot().Status == game.StatusOver {
				g, err = newGame(cfg)
				if err != nil {
					fmt.Fprintln(os.Stderr, "Error creating game:", err)
					return
				}
				pending = game.InputNone
				endLogged = false
				logger.Info().Str("session", sessionID).Msg("game restarted")
				render.Render(g.Snapshot())
				continue
			}
			if cmd := input.ParseCommand(ev); cmd != game.InputNone {
				pending = cmd
			}

		case <-ticker.C:
			prev := g.Snapshot()
			g.Tick(pending)
			pending = game.InputNone
			snap := g.Snapshot()
			render.Render(snap)

			if snap.Score > prev.Score {
				logger.Info().
					Str("session", sessionID).
					Int("score", snap.Score).
					Int("length", snap.Length).
					Msg("food eaten")
			}

			if snap.Status == game.StatusOver && !endLogged {
				endLogged = true
				logger.Info().
					Str("session", sessionID).
					Str("outcome", snap.Outcome.String()).
					Int("score", snap.Score).
					Int("length", snap.Length).
					Msg("game over")
				if snap.Outcome == game.OutcomeQuit {
					return
				}
			}
		}
	}
}

// newGame builds a session from the config, honoring a fixed seed when
// one was supplied.
func newGame(cfg config.Config) (*game.Game, error) {
	if cfg.Seed != 0 {
		return game.NewGameWithSeed(cfg.Width, cfg.Height, cfg.Seed)
	}
	return game.NewGame(cfg.Width, cfg.Height)
}

// newLogger writes structured session logs to the given file. Logging
// to the terminal would fight the renderer, so without a file the
// logger is a no-op.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
