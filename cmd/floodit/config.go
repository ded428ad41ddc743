package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/games/flood"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the game config",
	Long: `Inspect or create the Flood-It config file.

The config is searched in this order:
  1. --config path
  2. ~/.floodit/configs/flood.yaml
  3. ./configs/flood.yaml
  4. built-in defaults`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.floodit/configs/flood.yaml",
	Long: `Write the default config to ~/.floodit/configs/flood.yaml.
An existing file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.WriteDefault()
		if err != nil {
			return err
		}
		fmt.Printf("Config: %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Long: `Print the config a game would start with, after the search order.

Examples:
  floodit config show
  floodit config show --config ./my-flood.yaml
  floodit config show --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configShowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configShowCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(flood.ID))
		return err
	}

	cfg, err := config.LoadFlood(flagConfig)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
