package core

// Key identifies a physical key as reported by a frontend. The four arrow
// keys use the names below; any other key passes through under its own name
// and is ignored by movement logic.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// KeyEvent is a discrete key-down or key-up notification.
type KeyEvent struct {
	Key  Key
	Down bool
}

// Press returns a key-down event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Down: true}
}

// Release returns a key-up event.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Down: false}
}

// Direction is a movement intent, decoupled from the keys that produce it.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// DirectionOf maps an arrow key to its direction. Other keys map to DirNone.
func DirectionOf(k Key) Direction {
	switch k {
	case KeyArrowUp:
		return DirUp
	case KeyArrowDown:
		return DirDown
	case KeyArrowLeft:
		return DirLeft
	case KeyArrowRight:
		return DirRight
	default:
		return DirNone
	}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
