// Package core provides the core game logic for the Flood-It puzzle.
// This package is UI-agnostic and deterministic under a seeded RNG.
package core

import "errors"

var (
	// ErrInvalidConfiguration reports a board size, color count or cycle
	// that cannot produce a playable session.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBounds reports a grid access outside the board.
	ErrOutOfBounds = errors.New("out of bounds")
)

// RNG is the source of randomness used for palette sampling and board generation.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Dir represents one of the four cardinal directions on the board.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// AllDirs lists the directions in the order neighbors are visited.
var AllDirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (drow, dcol) offset for one step in this direction.
func (d Dir) Delta() (drow, dcol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Cell represents a single square of the board.
type Cell struct {
	Color   Color
	Flooded bool
}
