package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// palette maps core.Color to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 255, G: 255, B: 255, A: 255},
	core.ColorRed:     {R: 255, G: 0, B: 0, A: 255},
	core.ColorYellow:  {R: 255, G: 221, B: 0, A: 255},
	core.ColorBlue:    {R: 33, G: 33, B: 222, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
}

// rgba returns the screen color for c, white when unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}

// ImageSurface draws onto an ebiten image in canvas pixels.
type ImageSurface struct {
	dst     *ebiten.Image
	face    font.Face
	sprites map[core.Sprite]*ebiten.Image
}

// NewImageSurface wraps dst. Text uses the 7x13 bitmap face whatever size
// is requested.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		dst:     dst,
		face:    basicfont.Face7x13,
		sprites: make(map[core.Sprite]*ebiten.Image),
	}
}

// ClearRect makes the rectangle fully transparent.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	if sub, ok := s.dst.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), rgba(c), true)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), rgba(c), false)
}

// DrawImage draws a sprite with its top-left corner at (x, y). Sprite images
// are built on first use and cached.
func (s *ImageSurface) DrawImage(img core.Sprite, x, y float64) {
	spr, ok := s.sprites[img]
	if !ok {
		spr = buildSprite(img)
		s.sprites[img] = spr
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(spr, op)
}

// DrawText draws text with y as the baseline.
func (s *ImageSurface) DrawText(str string, x, y float64, _ core.Font, align core.Align, c core.Color) {
	w := font.MeasureString(s.face, str).Ceil()
	px := alignX(x, w, align)
	text.Draw(s.dst, str, s.face, px, int(y), rgba(c))
}

// alignX returns the left edge of a run of text w pixels wide anchored at x.
func alignX(x float64, w int, align core.Align) int {
	switch align {
	case core.AlignCenter:
		return int(x) - w/2
	case core.AlignRight:
		return int(x) - w
	default:
		return int(x)
	}
}

func buildSprite(img core.Sprite) *ebiten.Image {
	w, h := max(int(img.W), 1), max(int(img.H), 1)
	out := ebiten.NewImage(w, h)
	c := rgba(img.Color)
	for _, r := range pipeRects(img.Edges, img.W, img.H) {
		vector.DrawFilledRect(out, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
	return out
}

// pipeRects lays out the artwork of a wall tile: a solid block when it has
// no connections, otherwise a center hub plus one arm per connected edge.
func pipeRects(edges core.Edge, w, h float64) []core.Rect {
	if edges == 0 {
		return []core.Rect{core.NewRect(0, 0, w, h)}
	}

	t := min(w, h) / 2 // Pipe thickness
	hx, hy := (w-t)/2, (h-t)/2
	rects := []core.Rect{core.NewRect(hx, hy, t, t)}
	if edges.Has(core.EdgeTop) {
		rects = append(rects, core.NewRect(hx, 0, t, hy))
	}
	if edges.Has(core.EdgeBottom) {
		rects = append(rects, core.NewRect(hx, hy+t, t, h-hy-t))
	}
	if edges.Has(core.EdgeLeft) {
		rects = append(rects, core.NewRect(0, hy, hx, t))
	}
	if edges.Has(core.EdgeRight) {
		rects = append(rects, core.NewRect(hx+t, hy, w-hx-t, t))
	}
	return rects
}
