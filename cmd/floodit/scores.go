package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/games/flood"
	"github.com/vovakirdan/floodit/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best wins and statistics",
	Long: `Display the best wins and overall statistics, per board.

Without --size/--colors every board that has results is shown.
--recent lists the latest games instead, won or lost.

Examples:
  floodit scores
  floodit scores --size 12 --colors 4
  floodit scores --limit 3
  floodit scores --recent
  floodit scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	addBoardFlags(scoresCmd)
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of wins to show per board")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent games")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(flood.ID); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	}

	if flagRecent {
		return printRecent(store)
	}

	boards := []storage.Board{{Size: flagSize, Colors: flagColors}}
	if flagSize == 0 && flagColors == 0 {
		boards, err = store.Boards(flood.ID)
		if err != nil {
			return fmt.Errorf("cannot list boards: %w", err)
		}
	}

	if len(boards) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'floodit play' to set the first high score!")
		return nil
	}

	for i, b := range boards {
		if i > 0 {
			fmt.Println()
		}
		if err := printBoardScores(store, b); err != nil {
			return err
		}
	}
	return nil
}

// printBoardScores prints the best wins and statistics for one board.
// Zero fields of b match any board.
func printBoardScores(store *storage.Store, b storage.Board) error {
	q := storage.Query{GameID: flood.ID, Board: b, Limit: flagLimit}

	results, err := store.TopResults(q)
	if err != nil {
		return fmt.Errorf("cannot retrieve results: %w", err)
	}
	stats, err := store.GetGameStats(q)
	if err != nil {
		return fmt.Errorf("cannot retrieve statistics: %w", err)
	}

	title := b.String()
	if b.Size == 0 || b.Colors == 0 {
		title = "matching boards"
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("  No wins yet.")
	} else {
		fmt.Printf("  %-4s  %-7s  %-7s  %-10s  %s\n", "Rank", "Score", "Moves", "Player", "Date")
		fmt.Printf("  %-4s  %-7s  %-7s  %-10s  %s\n", "----", "-----", "-----", "------", "----")
		for i, r := range results {
			player := r.Player
			if player == "" {
				player = "local"
			}
			moves := fmt.Sprintf("%d/%d", r.MovesUsed, r.MovesAllowed)
			fmt.Printf("  %-4d  %-7d  %-7s  %-10s  %s\n", i+1, r.Score, moves, player, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
		stats.Played, stats.Wins, stats.Losses(), stats.WinRate()*100)
	if stats.Wins > 0 {
		fmt.Printf("Best: %d  Average: %.1f  Fewest moves: %d\n", stats.HighScore, stats.AvgScore, stats.FewestMoves)
	}
	return nil
}

// printRecent lists the latest games on the selected board, won or lost.
func printRecent(store *storage.Store) error {
	results, err := store.RecentResults(storage.Query{
		GameID: flood.ID,
		Board:  storage.Board{Size: flagSize, Colors: flagColors},
		Limit:  flagLimit,
	})
	if err != nil {
		return fmt.Errorf("cannot retrieve results: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	fmt.Println("Recent Games")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-6s  %-7s  %-7s  %s\n", "Date", "Board", "Result", "Score", "Moves", "Player")
	fmt.Printf("  %-16s  %-8s  %-6s  %-7s  %-7s  %s\n", "----", "-----", "------", "-----", "-----", "------")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		player := r.Player
		if player == "" {
			player = "local"
		}
		board := storage.Board{Size: r.BoardSize, Colors: r.NumColors}
		moves := fmt.Sprintf("%d/%d", r.MovesUsed, r.MovesAllowed)
		fmt.Printf("  %-16s  %-8s  %-6s  %-7d  %-7s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), board, outcome, r.Score, moves, player)
	}
	return nil
}
