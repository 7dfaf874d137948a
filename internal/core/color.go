package core

// Color is a logical draw color. Frontends map it to ANSI codes or RGBA.
type Color uint8

// Colors used by the maze games. Walls are blue, the player yellow, pellets
// and text white. Red is reserved for overlays and tests.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorWhite:   "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
