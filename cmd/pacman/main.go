// pacman runs the maze game in the terminal or in a desktop window.
//
// Usage:
//
//	pacman list              - List available games
//	pacman play [game]       - Play in the terminal (default game: pacman)
//	pacman window [game]     - Play in a desktop window
//	pacman map               - Inspect the configured map
//
// Global flags:
//
//	--fps <rate>          - Simulation tick rate (default: config tick_rate)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

const defaultGame = "pacman"

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man - steer through a maze and collect pellets",
	Long: `A small Pac-Man: steer a circle through a tile maze and collect
pellets. Runs in the terminal or in a desktop window.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  map      - Inspect the configured map

Examples:
  pacman play
  pacman play maze
  pacman window --difficulty hard
  pacman map --config ./my-maze.yaml --render`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(mapCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate:   flagFPS,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// newLogger creates a logger tagged with a fresh run id, so the lines of one
// session can be told apart in a shared log file.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run", uuid.NewString())
}

// gameArg returns the game id from positional args, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}

// warnSkipped logs every unknown map token skipped by the game's last Reset
// and returns how many there were. Games without a tile map log nothing.
func warnSkipped(logger *log.Logger, game registry.Game) int {
	g, ok := game.(*pacman.Game)
	if !ok {
		return 0
	}
	skipped := g.Skipped()
	for _, s := range skipped {
		logger.Warn("unknown map token skipped", "token", s.Token, "row", s.Row, "col", s.Col)
	}
	return len(skipped)
}
