package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/window"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Start playing the specified game in a desktop window.

Controls:
  Arrows/WASD - Steer (release to stop)
  Q/Esc       - Quit

Examples:
  pacman window
  pacman window maze --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per canvas pixel")
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'pacman list' to see available games", err)
	}

	logger := newLogger(os.Stderr)

	// Load the map before the window opens so config errors and map
	// warnings land on the terminal.
	if err := game.Reset(runtimeConfig()); err != nil {
		return err
	}
	warnSkipped(logger, game)

	logger.Info("opening window", "game", gameID, "scale", flagScale)

	state, err := window.Run(game, window.Options{
		Runtime: runtimeConfig(),
		Scale:   flagScale,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("window failed", "error", err)
		return err
	}

	logger.Info("session ended", "score", state.Score, "pellets_left", state.PelletsLeft, "ticks", state.Ticks)
	return nil
}
