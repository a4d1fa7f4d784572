package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/games/blaster"
	"github.com/vovakirdan/tui-blaster/internal/platform/tui"
)

var (
	flagLogPath string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move (diagonals by holding two keys)
  Space        - Charge and fire
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  ?            - Show all keys
  Q/Esc        - Quit

Terminals do not report key releases. In toggle mode (the default) the
first Space starts charging and the second fires. In hold mode the beam
fires once Space stops auto-repeating.

Examples:
  blaster play
  blaster play --seed 42
  blaster play --fire-mode hold --fps 30
  blaster play --log ./blaster.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Session log file (default ~/.arcade/logs/blaster.log)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every fired beam")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size before the program takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := openSessionLog(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, session will not be logged\n", err)
		logger = log.New(io.Discard)
		closeLog = func() {}
	}
	defer closeLog()
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	game, err := blaster.NewWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	final, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Arena.TickRate,
			Seed:     flagSeed,
		},
		FireMode:  cfg.Input.FireMode,
		HoldTicks: cfg.Input.HoldTicks,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", final.Score)
}

// openSessionLog opens the play log. The terminal belongs to the game while
// it runs, so logs go to a file.
func openSessionLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "logs", "blaster.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blaster",
	})
	return logger, func() { _ = f.Close() }, nil
}
