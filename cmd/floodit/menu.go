package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/games/flood"
	"github.com/vovakirdan/floodit/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start Flood-It in interactive menu mode.

Use arrow keys or j/k to choose a board, Enter to play it.
After a game, quit it to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected board
  Tab          - Show the scoreboard
  Q            - Quit

Examples:
  floodit menu
  floodit menu --config ./my-flood.yaml
  floodit menu --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := configureFlood(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game := flood.New()
		game.SetPreset(menuResult.Preset)

		if err := tui.Run(game, store, cfg); err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
	}
}
