package sim

import "strings"

// Direction is a normalized player command.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirHelp
)

// String returns the lower-case command name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirHelp:
		return "help"
	default:
		return "none"
	}
}

// ParseDirection maps a command name to a Direction.
// Unrecognized names yield DirNone, which every consumer treats as a no-op.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	case "help", "h":
		return DirHelp
	default:
		return DirNone
	}
}
