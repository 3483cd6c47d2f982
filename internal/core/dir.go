package core

import "strings"

// Dir is one of the four cardinal directions.
// North decreases Y, South increases Y (screen coordinates).
type Dir uint8

const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest
)

// Dirs lists every direction clockwise from North.
var Dirs = [4]Dir{DirNorth, DirEast, DirSouth, DirWest}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "N"
	case DirEast:
		return "E"
	case DirSouth:
		return "S"
	case DirWest:
		return "W"
	default:
		return "?"
	}
}

// ParseDir accepts a direction by initial, compass name or screen name,
// ignoring case.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(s) {
	case "n", "north", "up":
		return DirNorth, true
	case "e", "east", "right":
		return DirEast, true
	case "s", "south", "down":
		return DirSouth, true
	case "w", "west", "left":
		return DirWest, true
	}
	return 0, false
}

// Right returns the direction after a 90° clockwise turn.
func (d Dir) Right() Dir {
	return (d + 1) % 4
}

// Left returns the direction after a 90° counter-clockwise turn.
func (d Dir) Left() Dir {
	return (d + 3) % 4
}

// Opposite returns the direction after a 180° turn.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Bit returns a single-bit mask for the direction, for compact direction sets.
func (d Dir) Bit() uint8 {
	return 1 << d
}
