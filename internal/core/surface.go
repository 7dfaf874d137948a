package core

import "math"

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes a text face. Surfaces pick the closest face they have.
type Font struct {
	Size   float64 // Pixel height
	Family string  // e.g. "sans-serif"
}

// Edge is a bitmask of the sides a sprite's artwork connects to.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Has reports whether all sides in o are set.
func (e Edge) Has(o Edge) bool {
	return e&o == o
}

// Sprite is an opaque, immutable visual reference a Surface knows how to draw.
// Surfaces derive the artwork from the sprite's size, edges and color, so no
// image files are involved.
type Sprite struct {
	Name  string
	W, H  float64
	Edges Edge
	Color Color
}

// Surface is the drawing collaborator of the game core. All coordinates are
// canvas pixels; the core issues only these primitive calls.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, c Color)
	FillRect(x, y, w, h float64, c Color)
	DrawImage(img Sprite, x, y float64)
	DrawText(text string, x, y float64, font Font, align Align, c Color)
}

// CellSurface rasterizes canvas-pixel draw calls onto a terminal Screen.
// A cell is painted when its center lies inside the drawn shape.
type CellSurface struct {
	screen *Screen
	cellW  float64 // Canvas pixels per column
	cellH  float64 // Canvas pixels per row
}

// NewCellSurface wraps a screen. cellW and cellH give the canvas size of one
// terminal cell; terminal cells are roughly twice as tall as they are wide.
func NewCellSurface(s *Screen, cellW, cellH float64) *CellSurface {
	return &CellSurface{screen: s, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying screen buffer.
func (s *CellSurface) Screen() *Screen {
	return s.screen
}

// span returns the inclusive cell index range whose centers fall in [lo, hi).
func span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	return first, last
}

func (s *CellSurface) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// ClearRect blanks every cell whose center lies inside the rectangle.
func (s *CellSurface) ClearRect(x, y, w, h float64) {
	c0, c1 := span(x, x+w, s.cellW)
	r0, r1 := span(y, y+h, s.cellH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetColor(col, row, ' ', ColorDefault)
		}
	}
}

// FillRect paints a solid block.
func (s *CellSurface) FillRect(x, y, w, h float64, c Color) {
	c0, c1 := span(x, x+w, s.cellW)
	r0, r1 := span(y, y+h, s.cellH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetColor(col, row, '█', c)
		}
	}
}

// FillCircle paints the cells whose centers are inside the circle. Circles
// too small to cover any cell center are drawn as a dot in the cell that
// holds the center.
func (s *CellSurface) FillCircle(cx, cy, r float64, c Color) {
	c0, c1 := span(cx-r, cx+r, s.cellW)
	r0, r1 := span(cy-r, cy+r, s.cellH)
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := s.cellCenter(col, row)
			if math.Hypot(px-cx, py-cy) <= r {
				s.screen.SetColor(col, row, '█', c)
				painted = true
			}
		}
	}
	if !painted {
		s.screen.SetColor(int(math.Floor(cx/s.cellW)), int(math.Floor(cy/s.cellH)), '•', c)
	}
}

// DrawImage paints a sprite: blocks without connections are solid, pipes
// are shaded so that adjacent pieces read as one wall.
func (s *CellSurface) DrawImage(img Sprite, x, y float64) {
	glyph := '▓'
	if img.Edges == 0 {
		glyph = '█'
	}
	c0, c1 := span(x, x+img.W, s.cellW)
	r0, r1 := span(y, y+img.H, s.cellH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetColor(col, row, glyph, img.Color)
		}
	}
}

// DrawText writes text on the row holding the vertical middle of the glyphs.
// y is the baseline as on a canvas.
func (s *CellSurface) DrawText(text string, x, y float64, font Font, align Align, c Color) {
	row := int(math.Floor((y - font.Size/2) / s.cellH))
	n := float64(len([]rune(text)))
	anchor := x / s.cellW
	var col int
	switch align {
	case AlignCenter:
		col = int(math.Round(anchor - n/2))
	case AlignRight:
		col = int(math.Round(anchor - n))
	default:
		col = int(math.Round(anchor))
	}
	s.screen.DrawText(col, row, text, c)
}

// Op identifies a recorded draw command.
type Op int

const (
	OpClearRect Op = iota
	OpFillCircle
	OpFillRect
	OpDrawImage
	OpDrawText
)

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64
	R      float64
	Color  Color
	Sprite Sprite
	Text   string
	Font   Font
	Align  Align
}

// Recorder is a Surface that records every call in order.
// Used by tests and by hosts that replay frames.
type Recorder struct {
	Commands []Command
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Commands = append(r.Commands, Command{Op: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawImage(img Sprite, x, y float64) {
	r.Commands = append(r.Commands, Command{Op: OpDrawImage, X: x, Y: y, W: img.W, H: img.H, Sprite: img})
}

func (r *Recorder) DrawText(text string, x, y float64, font Font, align Align, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpDrawText, X: x, Y: y, Text: text, Font: font, Align: align, Color: c})
}
