// Package config loads ls-starmap settings from a .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/theme"
)

// Config is the full application configuration.
type Config struct {
	Seed         string  `env:"STARMAP_SEED"`
	StarCount    int     `env:"STARMAP_STAR_COUNT" envDefault:"32"`
	Theme        string  `env:"STARMAP_THEME" envDefault:"dark"`
	JumpLines    bool    `env:"STARMAP_JUMPLINES" envDefault:"true"`
	JumpDistance float64 `env:"STARMAP_JUMP_DISTANCE" envDefault:"10"`
	ShowClass    bool    `env:"STARMAP_SHOW_CLASS" envDefault:"false"`
	FontPath     string  `env:"STARMAP_FONT"`
	FontSize     float64 `env:"STARMAP_FONT_SIZE" envDefault:"12"`
	PNGPath      string  `env:"STARMAP_PNG"`
	PNGSize      int     `env:"STARMAP_PNG_SIZE" envDefault:"1024"`
	PrintDir     string  `env:"STARMAP_PRINT_DIR" envDefault:"."`
	LogLevel     string  `env:"STARMAP_LOG_LEVEL" envDefault:"info"`
	LogFile      string  `env:"STARMAP_LOG_FILE"`

	// Headless text modes, flags only
	Summary  bool   `env:"-"`
	MiniMap  bool   `env:"-"`
	JSONPath string `env:"-"`
}

// Headless reports whether a mode other than the TUI was requested.
func (c Config) Headless() bool {
	return c.Summary || c.MiniMap || c.JSONPath != "" || c.PNGPath != ""
}

// SeedValue parses the configured seed. ok is false when no seed was set.
func (c Config) SeedValue() (seed uint64, ok bool, err error) {
	if c.Seed == "" {
		return 0, false, nil
	}
	seed, err = starmap.ParseSeed(c.Seed)
	if err != nil {
		return 0, false, fmt.Errorf("seed: %w", err)
	}
	return seed, true, nil
}

// Load reads dotenvPath (if it exists), then the environment, then args.
// An empty dotenvPath skips the .env step.
func Load(dotenvPath string, args []string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("ls-starmap", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	bindFlags(flags, &cfg)
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Usage writes the flag help text to w.
func Usage(w io.Writer) {
	flags := flag.NewFlagSet("ls-starmap", flag.ContinueOnError)
	var cfg Config
	bindFlags(flags, &cfg)
	flags.SetOutput(w)
	fmt.Fprintln(w, "Usage: ls-starmap [flags]")
	flags.PrintDefaults()
}

func bindFlags(set *flag.FlagSet, cfg *Config) {
	set.StringVar(&cfg.Seed, "seed", cfg.Seed, "Hexadecimal seed (e.g. 0x1f); random when empty")
	set.IntVar(&cfg.StarCount, "count", cfg.StarCount, fmt.Sprintf("Visible star count (0-%d)", starmap.MaxStars))
	set.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color preset (dark, light)")
	set.BoolVar(&cfg.JumpLines, "jumplines", cfg.JumpLines, "Draw jump lines")
	set.Float64Var(&cfg.JumpDistance, "jump-distance", cfg.JumpDistance, "Jump line distance in light years (0-100)")
	set.BoolVar(&cfg.ShowClass, "show-class", cfg.ShowClass, "Show star class next to names")
	set.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF/OTF font for posters (default: Go Mono Bold)")
	set.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "Poster font size in points")
	set.StringVar(&cfg.PNGPath, "png", cfg.PNGPath, "Render a PNG poster to this path and exit")
	set.IntVar(&cfg.PNGSize, "size", cfg.PNGSize, "Poster width and height in pixels")
	set.StringVar(&cfg.PrintDir, "print-dir", cfg.PrintDir, "Directory for posters printed from the TUI")
	set.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	set.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	set.BoolVar(&cfg.Summary, "summary", cfg.Summary, "Print text summary instead of TUI")
	set.BoolVar(&cfg.MiniMap, "mini-map", cfg.MiniMap, "Print ASCII mini map")
	set.StringVar(&cfg.JSONPath, "json", cfg.JSONPath, "Export population as JSON to file (use - for stdout)")
}

func (c Config) validate() error {
	if _, _, err := c.SeedValue(); err != nil {
		return err
	}
	if _, err := theme.ByName(c.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if c.StarCount < 0 || c.StarCount > starmap.MaxStars {
		return fmt.Errorf("count %d out of range 0-%d", c.StarCount, starmap.MaxStars)
	}
	if c.JumpDistance < 0 || c.JumpDistance > starmap.MaxJumpDistance {
		return fmt.Errorf("jump distance %v out of range 0-%v", c.JumpDistance, starmap.MaxJumpDistance)
	}
	if c.PNGSize <= 0 {
		return fmt.Errorf("poster size %d must be positive", c.PNGSize)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %v must be positive", c.FontSize)
	}
	return nil
}
