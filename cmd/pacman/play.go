package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD - Steer
  R           - Restart
  Ctrl+S      - Save a text screenshot
  Ctrl+Y      - Copy the frame to the clipboard
  ?           - More keys
  Q/Ctrl+C    - Quit

Terminals report no key releases, so a key counts as held until it stops
repeating for terminal.hold_window_ms.

Examples:
  pacman play
  pacman play maze
  pacman play --difficulty easy
  pacman play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.arcade/logs/pacman.log)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pacman list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI while the game runs, so logs go to a file.
	logOut, closeLog := openLogFile(flagLogFile)
	defer closeLog()
	logger := newLogger(logOut)

	// Warn early if the board cannot fit
	if err := game.Reset(runtimeConfig()); err != nil {
		return err
	}
	warnSkipped(logger, game)
	d := game.Display()
	needW := int(math.Ceil(d.Width / d.CellWidth))
	needH := int(math.Ceil(d.Height/d.CellHeight)) + 3 // Title, status, help
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	logger.Info("session started", "game", gameID, "tick_rate", d.TickRate, "difficulty", flagDifficulty)
	state, err := tui.Run(game, tui.Options{
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Score: %d (%d pellets left, %d ticks)\n", state.Score, state.PelletsLeft, state.Ticks)
	return nil
}

// openLogFile opens path for appending, or the default log file when path is
// empty. Logging is dropped when the file cannot be opened.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard, func() {}
		}
		path = filepath.Join(home, ".arcade", "logs", "pacman.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	//nolint:errcheck // Best-effort close of the log file
	return f, func() { f.Close() }
}
