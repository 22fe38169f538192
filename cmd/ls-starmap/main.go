// Command ls-starmap generates seeded starfields and shows them in a
// terminal map or renders them to PNG posters.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-starmap/internal/config"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/render"
	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/theme"
	"github.com/litescript/ls-starmap/internal/ui"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		config.Usage(os.Stderr)
		os.Exit(2)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	// The TUI owns the terminal, so it only logs when a file is given.
	headless := cfg.Headless() || !isTTY
	logger, err := newLogger(cfg, headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	seed, ok, err := cfg.SeedValue()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		_, seed = starmap.GenerateRandom()
	}
	logger.Debug("starting with seed %s", starmap.FormatSeed(seed))

	stateCfg := state.DefaultConfig()
	stateCfg.Settings, err = settingsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stateMgr := state.NewManager(stateCfg, seed)

	if headless {
		if !cfg.Headless() {
			// Piped output without a mode gets the summary table.
			cfg.Summary = true
		}
		if err := runHeadless(cfg, stateMgr, isTTY, logger); err != nil {
			logger.Error("%v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(stateMgr, ui.Options{
		PrintDir:   cfg.PrintDir,
		PosterSize: cfg.PNGSize,
		Logger:     logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config, headless bool) (*logging.Logger, error) {
	level := logging.ParseLevel(cfg.LogLevel)
	switch {
	case cfg.LogFile != "":
		return logging.OpenFile(level, cfg.LogFile)
	case headless:
		return logging.New(level), nil
	default:
		return logging.Discard(), nil
	}
}

func settingsFromConfig(cfg config.Config) (state.Settings, error) {
	palette, err := theme.ByName(cfg.Theme)
	if err != nil {
		return state.Settings{}, err
	}
	return state.Settings{
		StarCount:    cfg.StarCount,
		JumpLines:    cfg.JumpLines,
		JumpDistance: cfg.JumpDistance,
		DisplayClass: cfg.ShowClass,
		Palette:      palette,
		FontPath:     cfg.FontPath,
		FontSize:     cfg.FontSize,
	}, nil
}

// runHeadless writes every requested output for the current population.
func runHeadless(cfg config.Config, stateMgr *state.Manager, isTTY bool, logger *logging.Logger) error {
	snap := stateMgr.Snapshot()
	visible := snap.Visible()

	if cfg.PNGPath != "" {
		opts := ui.PosterOptions(snap.Settings, cfg.PNGSize)
		if cfg.PNGPath == "-" {
			if isTTY {
				return errors.New("refusing to write PNG to a terminal")
			}
			if err := render.WritePNG(os.Stdout, snap.Stars, opts); err != nil {
				return fmt.Errorf("write PNG to stdout: %w", err)
			}
		} else {
			if err := render.SavePNG(cfg.PNGPath, snap.Stars, opts); err != nil {
				return err
			}
			logger.Info("poster written to %s", cfg.PNGPath)
		}
	}

	if cfg.JSONPath != "" {
		if err := writeJSON(cfg.JSONPath, snap.Seed, visible); err != nil {
			return err
		}
	}

	out := io.Writer(os.Stdout)
	if cfg.PNGPath == "-" || cfg.JSONPath == "-" {
		// Keep stdout clean for the binary or JSON stream.
		out = os.Stderr
	}

	if cfg.Summary {
		starmap.WriteSummaryTable(out, snap.Seed, visible)
	}

	if cfg.MiniMap {
		if cfg.Summary {
			fmt.Fprintln(out)
		}
		mm := starmap.DefaultMiniMapConfig()
		if snap.Settings.JumpLines {
			mm.JumpDistance = snap.Settings.JumpDistance
		} else {
			mm.JumpDistance = 0
		}
		starmap.WriteMiniMap(out, visible, mm)
	}
	return nil
}

func writeJSON(path string, seed uint64, stars []starmap.Star) error {
	export := starmap.ExportPopulation(seed, stars)
	if path == "-" {
		if err := export.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()
	if err := export.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	return nil
}
