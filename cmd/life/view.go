package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRandom  bool
	flagSpeed   string
	flagPattern string
	flagConfig  string
	flagLogFile string
)

func init() {
	rootCmd.Flags().BoolVarP(&flagRandom, "random", "r", false, "Start running with random pattern spawning")
	rootCmd.Flags().StringVar(&flagSpeed, "speed", "", "Initial speed: slow, normal, fast")
	rootCmd.Flags().StringVar(&flagPattern, "pattern", "", "Stamp a named pattern at the center on start")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the viewer runs")
}

func runView(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	var pattern life.Pattern
	if flagPattern != "" {
		pattern, err = life.PatternByName(flagPattern)
		if err != nil {
			return fmt.Errorf("%w (run 'life patterns' to see available patterns)", err)
		}
	}

	// Get terminal size; one row is kept for the status bar
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	state := life.NewState(max(height-1, 0), width, cfg.Options(flagSeed))
	if flagPattern != "" {
		rows, cols := pattern.Size()
		state.Stamp(pattern, (state.Grid().Rows()-rows)/2, (state.Grid().Cols()-cols)/2)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		// Continue without storage - the viewer still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Nothing may reach the terminal while the program owns it
	runLogger := log.New(io.Discard)
	if flagLogFile != "" {
		f, fileErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if fileErr != nil {
			logger.Warn("could not open log file", "path", flagLogFile, "error", fileErr)
		} else {
			defer f.Close()
			runLogger = log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "life",
				Level:           log.DebugLevel,
			})
		}
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = width
	runtime.ScreenH = height
	runtime.FrameRate = cfg.Display.FrameRate
	runtime.Seed = flagSeed

	if err := tui.Run(state, tui.Config{
		Runtime: runtime,
		Glyphs:  tui.Glyphs{Live: cfg.LiveRune(), Dead: cfg.DeadRune()},
		Store:   store,
		Logger:  runLogger,
	}); err != nil {
		return err
	}
	return nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.LifeConfig) error {
	if cmd.Flags().Changed("random") {
		cfg.Simulation.RandomMode = flagRandom
	}
	if flagSpeed != "" {
		cfg.Simulation.InitialSpeed = flagSpeed
	}
	if flagFPS > 0 {
		cfg.Display.FrameRate = flagFPS
	}
	return cfg.Validate()
}
