package config

import (
	_ "embed"
)

//go:embed defaults/flood.yaml
var defaultFloodYAML []byte

// DefaultFloodConfig returns the default Flood-It configuration.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Board: FloodBoard{
			Size:   12,
			Colors: 4,
		},
		Cycles: FloodCycles{
			Sizes:  []int{24, 20, 15, 12, 8},
			Colors: []int{6, 5, 4, 3, 2},
		},
		Display: FloodDisplay{
			CellWidth:    2,
			CellGlyph:    "█",
			FloodedGlyph: "█",
			ShowCursor:   true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flood":
		return defaultFloodYAML
	default:
		return nil
	}
}
