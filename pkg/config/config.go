package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Session defaults.
const (
	DefaultWidth  = 40
	DefaultHeight = 20
	DefaultFPS    = 10
)

// Validation bounds.
const (
	MinWidth  = 3
	MinHeight = 3
	MinFPS    = 1
	MaxFPS    = 60 // one move per tick; faster than this is unplayable in a terminal
)

// Board glyphs. Emoji are double-width, so the empty cell is two spaces.
const (
	CharEmpty = "  "
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🍎"
	CharCrash = "💥"
)

// Config carries everything a session needs at construction time.
// Values come from defaults, then the environment (optionally via a
// .env file), then CLI flags layered on top by the caller.
type Config struct {
	Width  int
	Height int
	FPS    int   // ticks per second driving the game loop
	Seed   int64 // 0 means seed from the clock
	Log    string
}

// Load builds a Config from defaults and environment overrides.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Log:    os.Getenv("SNAKE_LOG"),
	}

	var err error
	if cfg.Width, err = envInt("SNAKE_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envInt("SNAKE_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = envInt("SNAKE_FPS", cfg.FPS); err != nil {
		return Config{}, err
	}
	if seed, ok := os.LookupEnv("SNAKE_SEED"); ok {
		cfg.Seed, err = strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("environment variable SNAKE_SEED must be an integer: %w", err)
		}
	}
	return cfg, nil
}

// Validate reports every violation at once so a misconfigured session
// fails with the full picture before the first tick.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Width < MinWidth {
		result = multierror.Append(result,
			fmt.Errorf("width must be at least %d, got %d", MinWidth, c.Width))
	}
	if c.Height < MinHeight {
		result = multierror.Append(result,
			fmt.Errorf("height must be at least %d, got %d", MinHeight, c.Height))
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		result = multierror.Append(result,
			fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, c.FPS))
	}

	return result.ErrorOrNil()
}

func envInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}
