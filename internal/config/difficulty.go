package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board size and color count.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// PresetInfo describes a difficulty preset.
type PresetInfo struct {
	Preset      DifficultyPreset
	Size        int
	Colors      int
	Description string
}

var presets = []PresetInfo{
	{DifficultyEasy, 8, 3, "Small board, three colors"},
	{DifficultyNormal, 12, 4, "Medium board, four colors"},
	{DifficultyHard, 20, 5, "Large board, five colors"},
	{DifficultyExpert, 24, 6, "Full board, all six colors"},
}

// Presets returns all difficulty presets from easiest to hardest.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the preset with the given name.
func Lookup(preset DifficultyPreset) (PresetInfo, bool) {
	for _, p := range presets {
		if p.Preset == preset {
			return p, true
		}
	}
	return PresetInfo{}, false
}

// ParsePreset converts a user-supplied name to a preset.
// The empty string parses to the empty preset (no preset).
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	if _, ok := Lookup(DifficultyPreset(name)); !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, expert): %w", name, ErrInvalid)
	}
	return DifficultyPreset(name), nil
}

// ApplyFloodPreset sets the starting board from a preset.
// Unknown presets leave the config unchanged.
func ApplyFloodPreset(cfg *FloodConfig, preset DifficultyPreset) {
	p, ok := Lookup(preset)
	if !ok {
		return
	}
	cfg.Board.Size = p.Size
	cfg.Board.Colors = p.Colors
}
