package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultMap is the classic 11x13 maze. Tokens are described in
// internal/games/pacman/tiles.go.
var DefaultMap = []string{
	"1---------2",
	"|.........|",
	"|.b.[7].b.|",
	"|...._....|",
	"|.[]...[].|",
	"|....^....|",
	"|.b.[+].b.|",
	"|...._....|",
	"|.[].P.[].|",
	"|....^....|",
	"|.b.[5].b.|",
	"|.........|",
	"3---------4",
}

// DefaultPacmanConfig returns the default maze game configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: PacmanBoard{
			Width:        440,
			Height:       560,
			TileSize:     40,
			TopbarOffset: 40,
		},
		Physics: PacmanPhysics{
			TickRate:        60,
			CollisionMargin: 3,
		},
		Player: PacmanPlayer{
			Radius: 15,
			Speed:  3,
		},
		Pellets: PacmanPellets{
			Radius: 3,
			Points: 10,
		},
		Movement: PacmanMovement{
			Intent: IntentHeld,
		},
		HUD: PacmanHUD{
			FontSize:   18,
			FontFamily: "sans-serif",
			ScoreY:     25,
		},
		Terminal: PacmanTerminal{
			CellWidth:    10,
			CellHeight:   20,
			RefreshRate:  120,
			HoldWindowMS: 550,
		},
		Map: append([]string(nil), DefaultMap...),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman", "maze":
		return defaultPacmanYAML
	default:
		return nil
	}
}
