package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/games/flood"
	"github.com/vovakirdan/floodit/internal/platform/tui"
	"github.com/vovakirdan/floodit/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagColors     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flood-It",
	Long: `Start a game of Flood-It.

Controls:
  Mouse click     - Flood with the clicked cell's color
  Arrows/hjkl     - Move the cursor
  Enter/Space     - Flood with the cursor cell's color
  1-6             - Flood with the n-th palette color
  N               - New board, next size
  C               - New board, next color count
  R               - New board, same size and colors
  P               - Pause
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - 8x8, 3 colors
  normal - 12x12, 4 colors
  hard   - 20x20, 5 colors
  expert - 24x24, 6 colors

--size and --colors override the preset and the config file.

Examples:
  floodit play
  floodit play --difficulty expert
  floodit play --size 15 --colors 5
  floodit play --config ./my-flood.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
}

// addBoardFlags registers --size and --colors on a command.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSize, "size", 0, "Board size (cells per side)")
	cmd.Flags().IntVar(&flagColors, "colors", 0, fmt.Sprintf("Number of colors (1-%d)", config.MaxColors))
}

// configureFlood passes the play flags to the game package.
func configureFlood() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagColors > config.MaxColors || flagColors < 0 || flagSize < 0 {
		return fmt.Errorf("invalid board %dx%d with %d colors", flagSize, flagSize, flagColors)
	}

	flood.SetConfigPath(flagConfig)
	flood.SetDifficultyPreset(flagDifficulty)
	flood.SetOverrides(flagSize, flagColors)

	// Surface a broken config file here instead of silently using defaults.
	if flagConfig != "" {
		if _, err := config.LoadFlood(flagConfig); err != nil {
			return err
		}
	}
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := configureFlood(); err != nil {
		return err
	}

	game, err := registry.Create(flood.ID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
