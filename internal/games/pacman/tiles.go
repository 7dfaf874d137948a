package pacman

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Map loading errors.
var (
	ErrNoPlayerStart        = errors.New("pacman: map has no player start (P)")
	ErrMultiplePlayerStarts = errors.New("pacman: map has more than one player start (P)")
)

// WallShape is the artwork variant of a wall tile.
type WallShape int

const (
	ShapePipeHorizontal WallShape = iota
	ShapePipeVertical
	ShapeCornerTopLeft
	ShapeCornerTopRight
	ShapeCornerBottomLeft
	ShapeCornerBottomRight
	ShapeBlock
	ShapeCapLeft
	ShapeCapRight
	ShapeCapTop
	ShapeCapBottom
	ShapeCross
	ShapeConnectorTop
	ShapeConnectorRight
	ShapeConnectorBottom
	ShapeConnectorLeft
	ShapeConnectorDownwards
)

var shapeNames = map[WallShape]string{
	ShapePipeHorizontal:     "pipeHorizontal",
	ShapePipeVertical:       "pipeVertical",
	ShapeCornerTopLeft:      "pipeCornerTL",
	ShapeCornerTopRight:     "pipeCornerTR",
	ShapeCornerBottomLeft:   "pipeCornerBL",
	ShapeCornerBottomRight:  "pipeCornerBR",
	ShapeBlock:              "block",
	ShapeCapLeft:            "capLeft",
	ShapeCapRight:           "capRight",
	ShapeCapTop:             "capTop",
	ShapeCapBottom:          "capBottom",
	ShapeCross:              "pipeCross",
	ShapeConnectorTop:       "pipeConnectorTop",
	ShapeConnectorRight:     "pipeConnectorRight",
	ShapeConnectorBottom:    "pipeConnectorBottom",
	ShapeConnectorLeft:      "pipeConnectorLeft",
	ShapeConnectorDownwards: "pipeConnectorDownwards",
}

// String returns the artwork name of the shape.
func (s WallShape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Edges returns the sides of the tile the pipe artwork runs into.
// A cap ends the pipe, so it connects only to the side opposite its name.
func (s WallShape) Edges() core.Edge {
	switch s {
	case ShapePipeHorizontal:
		return core.EdgeLeft | core.EdgeRight
	case ShapePipeVertical:
		return core.EdgeTop | core.EdgeBottom
	case ShapeCornerTopLeft:
		return core.EdgeRight | core.EdgeBottom
	case ShapeCornerTopRight:
		return core.EdgeLeft | core.EdgeBottom
	case ShapeCornerBottomLeft:
		return core.EdgeTop | core.EdgeRight
	case ShapeCornerBottomRight:
		return core.EdgeTop | core.EdgeLeft
	case ShapeCapLeft:
		return core.EdgeRight
	case ShapeCapRight:
		return core.EdgeLeft
	case ShapeCapTop:
		return core.EdgeBottom
	case ShapeCapBottom:
		return core.EdgeTop
	case ShapeCross:
		return core.EdgeTop | core.EdgeRight | core.EdgeBottom | core.EdgeLeft
	case ShapeConnectorTop:
		return core.EdgeLeft | core.EdgeRight | core.EdgeTop
	case ShapeConnectorRight:
		return core.EdgeTop | core.EdgeBottom | core.EdgeRight
	case ShapeConnectorBottom, ShapeConnectorDownwards:
		return core.EdgeLeft | core.EdgeRight | core.EdgeBottom
	case ShapeConnectorLeft:
		return core.EdgeTop | core.EdgeBottom | core.EdgeLeft
	default:
		return 0
	}
}

// TileKind is what a map token produces.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
	TilePellet
	TilePlayer
)

// TileSpec is one entry of the token table.
type TileSpec struct {
	Kind  TileKind
	Shape WallShape // Only for TileWall
}

// tokens is the fixed symbol table of the map format.
var tokens = map[string]TileSpec{
	"-": {Kind: TileWall, Shape: ShapePipeHorizontal},
	"|": {Kind: TileWall, Shape: ShapePipeVertical},
	"1": {Kind: TileWall, Shape: ShapeCornerTopLeft},
	"2": {Kind: TileWall, Shape: ShapeCornerTopRight},
	"3": {Kind: TileWall, Shape: ShapeCornerBottomLeft},
	"4": {Kind: TileWall, Shape: ShapeCornerBottomRight},
	"b": {Kind: TileWall, Shape: ShapeBlock},
	"[": {Kind: TileWall, Shape: ShapeCapLeft},
	"]": {Kind: TileWall, Shape: ShapeCapRight},
	"_": {Kind: TileWall, Shape: ShapeCapBottom},
	"^": {Kind: TileWall, Shape: ShapeCapTop},
	"+": {Kind: TileWall, Shape: ShapeCross},
	"5": {Kind: TileWall, Shape: ShapeConnectorTop},
	"6": {Kind: TileWall, Shape: ShapeConnectorRight},
	"7": {Kind: TileWall, Shape: ShapeConnectorBottom},
	"8": {Kind: TileWall, Shape: ShapeConnectorLeft},
	"9": {Kind: TileWall, Shape: ShapeConnectorDownwards},
	".": {Kind: TilePellet},
	"P": {Kind: TilePlayer},
	" ": {Kind: TileEmpty},
}

// Lookup returns the table entry for a token. Unknown tokens report false.
func Lookup(token string) (TileSpec, bool) {
	spec, ok := tokens[token]
	return spec, ok
}

// Grid is a map as rows of single-character tokens.
type Grid [][]string

// ParseRows splits each row string into one token per character.
func ParseRows(rows []string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(row))
		for _, r := range row {
			cells = append(cells, string(r))
		}
		grid[i] = cells
	}
	return grid
}

// Skipped records a token that produced no entity because it is not in the
// token table.
type Skipped struct {
	Row, Col int
	Token    string
}

// String formats the skip for log output.
func (s Skipped) String() string {
	return fmt.Sprintf("%q at row %d col %d", s.Token, s.Row, s.Col)
}

// Level is the result of loading a map: immutable walls plus the spawn points
// of the dynamic entities.
type Level struct {
	Walls   []Wall     // Row-major order
	Pellets []core.Vec // Pellet centers, row-major order
	Start   core.Vec   // Player center
	Skipped []Skipped
	Rows    int
	Cols    int // Widest row
}

// Load converts a token grid into a level. Tile (row, col) has its top-left
// corner at (col*tileSize, row*tileSize+offsetY). Unknown tokens are skipped
// and reported, never fatal. The map must contain exactly one player start.
func Load(grid Grid, tileSize, offsetY float64) (Level, error) {
	var lvl Level
	starts := 0

	lvl.Rows = len(grid)
	for i, row := range grid {
		lvl.Cols = max(lvl.Cols, len(row))
		for j, token := range row {
			x := float64(j) * tileSize
			y := float64(i)*tileSize + offsetY
			center := core.Vec{X: x + tileSize/2, Y: y + tileSize/2}

			spec, ok := Lookup(token)
			if !ok {
				if token != "" {
					lvl.Skipped = append(lvl.Skipped, Skipped{Row: i, Col: j, Token: token})
				}
				continue
			}

			switch spec.Kind {
			case TileWall:
				lvl.Walls = append(lvl.Walls, NewWall(x, y, tileSize, spec.Shape))
			case TilePellet:
				lvl.Pellets = append(lvl.Pellets, center)
			case TilePlayer:
				starts++
				lvl.Start = center
			}
		}
	}

	switch {
	case starts == 0:
		return Level{}, ErrNoPlayerStart
	case starts > 1:
		return Level{}, fmt.Errorf("%w: found %d", ErrMultiplePlayerStarts, starts)
	}
	return lvl, nil
}
