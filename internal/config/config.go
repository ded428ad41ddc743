// Package config provides YAML-based game configuration loading and
// difficulty presets for Flood-It.
package config

import (
	"errors"
	"fmt"
)

// MaxColors is the number of base colors a board can draw from.
const MaxColors = 6

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FloodConfig contains all configuration for the Flood-It game.
type FloodConfig struct {
	Board   FloodBoard   `yaml:"board"`
	Cycles  FloodCycles  `yaml:"cycles"`
	Display FloodDisplay `yaml:"display"`
}

// FloodBoard defines the board a new game starts with.
type FloodBoard struct {
	Size   int `yaml:"size"`
	Colors int `yaml:"colors"`
}

// FloodCycles defines the values stepped through by "New Size" and "New Colors".
type FloodCycles struct {
	Sizes  []int `yaml:"sizes"`
	Colors []int `yaml:"colors"`
}

// FloodDisplay defines how the board is drawn in the terminal.
type FloodDisplay struct {
	CellWidth    int    `yaml:"cell_width"`    // Terminal columns per cell
	CellGlyph    string `yaml:"cell_glyph"`    // Rune for unflooded cells
	FloodedGlyph string `yaml:"flooded_glyph"` // Rune for flooded cells
	ShowCursor   bool   `yaml:"show_cursor"`
}

// Validate checks that the config describes a playable game.
func (c FloodConfig) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("config: board.size %d: %w", c.Board.Size, ErrInvalid)
	}
	if c.Board.Colors < 1 || c.Board.Colors > MaxColors {
		return fmt.Errorf("config: board.colors %d not in 1..%d: %w", c.Board.Colors, MaxColors, ErrInvalid)
	}
	if len(c.Cycles.Sizes) == 0 {
		return fmt.Errorf("config: cycles.sizes is empty: %w", ErrInvalid)
	}
	for _, s := range c.Cycles.Sizes {
		if s < 1 {
			return fmt.Errorf("config: cycles.sizes entry %d: %w", s, ErrInvalid)
		}
	}
	if len(c.Cycles.Colors) == 0 {
		return fmt.Errorf("config: cycles.colors is empty: %w", ErrInvalid)
	}
	for _, n := range c.Cycles.Colors {
		if n < 1 || n > MaxColors {
			return fmt.Errorf("config: cycles.colors entry %d not in 1..%d: %w", n, MaxColors, ErrInvalid)
		}
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 4 {
		return fmt.Errorf("config: display.cell_width %d not in 1..4: %w", c.Display.CellWidth, ErrInvalid)
	}
	if len([]rune(c.Display.CellGlyph)) != 1 || len([]rune(c.Display.FloodedGlyph)) != 1 {
		return fmt.Errorf("config: display glyphs must be a single character: %w", ErrInvalid)
	}
	return nil
}

// CellRune returns the glyph for an unflooded cell.
func (d FloodDisplay) CellRune() rune {
	return firstRune(d.CellGlyph, '█')
}

// FloodedRune returns the glyph for a flooded cell.
func (d FloodDisplay) FloodedRune() rune {
	return firstRune(d.FloodedGlyph, '█')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
