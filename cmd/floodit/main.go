// floodit is the Flood-It puzzle for the terminal: flood the board from the
// top-left corner with as few color changes as possible.
//
// Usage:
//
//	floodit play             - Play a game
//	floodit menu             - Pick a difficulty interactively
//	floodit serve            - Start SSH server for remote play
//	floodit scores           - Show best wins and statistics
//	floodit presets          - List difficulty presets
//	floodit render           - Print a generated board
//	floodit config           - Inspect or create the config file
//
// Global flags:
//
//	--fps <rate>       - Set input tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.floodit/results.db)
//	--log-file <path>  - Write a debug log of the session
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/platform/tui"
	"github.com/vovakirdan/floodit/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodit",
	Short: "Flood-It - flood the board in as few moves as possible",
	Long: `Flood-It is a terminal puzzle. The flooded region grows from the
top-left corner: each move recolors it, absorbing the neighbouring cells of
the new color. Flood the whole board before the moves run out.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View best wins and statistics
  presets  - List difficulty presets
  render   - Print a generated board
  config   - Inspect or create the config file

Examples:
  floodit play
  floodit play --difficulty hard
  floodit menu
  floodit serve --ssh :2222
  floodit scores --size 12 --colors 4`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Input tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodit/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points the UI logger at --log-file. Without it the UI stays quiet,
// since the alternate screen owns the terminal.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	tui.SetLogger(log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "floodit",
	}))
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}
