package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/games/flood/core"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets accepted by --difficulty and the menu.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := config.Presets()

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "NAME" header
	for _, p := range presets {
		if len(p.Preset) > maxNameLen {
			maxNameLen = len(p.Preset)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %-5s  %s\n", maxNameLen, "NAME", "BOARD", "COLORS", "MOVES", "DESCRIPTION")
	fmt.Printf("  %-*s  %-7s  %-6s  %-5s  %s\n", maxNameLen, "----", "-----", "------", "-----", "-----------")
	for _, p := range presets {
		board := fmt.Sprintf("%dx%d", p.Size, p.Size)
		fmt.Printf("  %-*s  %-7s  %-6d  %-5d  %s\n",
			maxNameLen, p.Preset, board, p.Colors, core.MoveBudget(p.Size, p.Colors), p.Description)
	}

	fmt.Println()
	fmt.Println("Play with: floodit play --difficulty <name>")
}
