package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	flagRender   bool
	flagDefaults bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Inspect the configured map",
	Long: `Loads the game config, parses its map and prints what it contains.
Unknown tokens are reported as warnings; a map without exactly one player
start (P) is an error.

Examples:
  pacman map
  pacman map --config ./my-maze.yaml --render
  pacman map --defaults > ~/.arcade/configs/pacman.yaml`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().BoolVar(&flagRender, "render", false, "Print the first frame as text")
	mapCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config and exit")
}

func runMap(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(defaultGame))
		return err
	}

	logger := newLogger(os.Stderr)

	cfg, source, err := config.LoadPacman(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPacmanPreset(&cfg, preset)
	logger.Debug("config loaded", "source", source)

	game := pacman.New()
	if err := game.ResetWith(cfg); err != nil {
		return err
	}
	warnSkipped(logger, game)

	w := game.World()
	p := w.Player()
	fmt.Printf("Config:  %s\n", source)
	fmt.Printf("Grid:    %d rows, tile %v px\n", len(cfg.Map), cfg.Board.TileSize)
	fmt.Printf("Walls:   %d\n", len(w.Walls()))
	fmt.Printf("Pellets: %d (%d points)\n", w.Pellets().Len(), w.Pellets().Len()*cfg.Pellets.Points)
	fmt.Printf("Start:   (%v, %v)\n", p.X, p.Y)
	fmt.Printf("Speed:   %v px/tick at %d ticks/s\n", p.Speed(), cfg.Physics.TickRate)

	if !flagRender {
		return nil
	}

	d := game.Display()
	screen := core.NewScreen(int(math.Ceil(d.Width/d.CellWidth)), int(math.Ceil(d.Height/d.CellHeight)))
	game.Step(core.NewCellSurface(screen, d.CellWidth, d.CellHeight))
	fmt.Println()
	fmt.Println(screen.String())
	return nil
}
