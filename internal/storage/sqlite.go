// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID           int64
	GameID       string
	Player       string // SSH user, empty for local play
	Won          bool
	Score        int
	MovesUsed    int
	MovesAllowed int
	BoardSize    int
	NumColors    int
	Seed         int64
	CreatedAt    time.Time
}

// Board identifies a board configuration results are grouped by.
type Board struct {
	Size   int
	Colors int
}

// String returns the board as "SIZExSIZE/COLORS".
func (b Board) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Size, b.Size, b.Colors)
}

// Query filters result lookups. Zero fields match everything.
type Query struct {
	GameID string
	Board  Board
	Limit  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			won INTEGER NOT NULL,
			score INTEGER NOT NULL,
			moves_used INTEGER NOT NULL,
			moves_allowed INTEGER NOT NULL,
			board_size INTEGER NOT NULL,
			num_colors INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(game_id, board_size, num_colors);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, won, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: result has no game ID")
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, player, won, score, moves_used, moves_allowed, board_size, num_colors, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Won, r.Score, r.MovesUsed, r.MovesAllowed, r.BoardSize, r.NumColors, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// where builds the WHERE clause shared by the filtered queries.
func (q Query) where() (string, []any) {
	var conds []string
	var args []any
	if q.GameID != "" {
		conds = append(conds, "game_id = ?")
		args = append(args, q.GameID)
	}
	if q.Board.Size > 0 {
		conds = append(conds, "board_size = ?")
		args = append(args, q.Board.Size)
	}
	if q.Board.Colors > 0 {
		conds = append(conds, "num_colors = ?")
		args = append(args, q.Board.Colors)
	}
	if len(conds) == 0 {
		return "1 = 1", args
	}
	return strings.Join(conds, " AND "), args
}

func (q Query) limit(fallback int) int {
	if q.Limit <= 0 {
		return fallback
	}
	return q.Limit
}

const resultColumns = `id, game_id, player, won, score, moves_used, moves_allowed, board_size, num_colors, seed, created_at`

// TopResults retrieves the best wins matching q.
// Results are ordered by score descending, then fewest moves, then oldest first.
func (s *Store) TopResults(q Query) ([]Result, error) {
	where, args := q.where()
	args = append(args, q.limit(10))

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE won = 1 AND `+where+`
		 ORDER BY score DESC, moves_used ASC, id ASC
		 LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the most recent games matching q, won or lost.
func (s *Store) RecentResults(q Query) ([]Result, error) {
	where, args := q.where()
	args = append(args, q.limit(20))

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE `+where+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Player, &r.Won, &r.Score,
			&r.MovesUsed, &r.MovesAllowed, &r.BoardSize, &r.NumColors, &r.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best winning score matching q.
// Returns 0 if there are no wins.
func (s *Store) HighScore(q Query) (int, error) {
	where, args := q.where()

	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM results WHERE won = 1 AND `+where,
		args...,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Boards lists the board configurations that have results for a game,
// largest and most colorful first.
func (s *Store) Boards(gameID string) ([]Board, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT board_size, num_colors
		 FROM results
		 WHERE game_id = ?
		 ORDER BY board_size DESC, num_colors DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var boards []Board
	for rows.Next() {
		var b Board
		if err := rows.Scan(&b.Size, &b.Colors); err != nil {
			return nil, fmt.Errorf("storage: cannot scan board: %w", err)
		}
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return boards, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for the results matching a query.
type GameStats struct {
	Played      int
	Wins        int
	HighScore   int
	AvgScore    float64 // Over wins
	FewestMoves int     // Over wins, 0 if none
	LastPlayed  time.Time
}

// Losses returns the number of lost games.
func (g GameStats) Losses() int {
	return g.Played - g.Wins
}

// WinRate returns the fraction of games won, 0 if none were played.
func (g GameStats) WinRate() float64 {
	if g.Played == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Played)
}

// GetGameStats retrieves aggregated statistics for the results matching q.
func (s *Store) GetGameStats(q Query) (*GameStats, error) {
	where, args := q.where()
	stats := &GameStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MAX(CASE WHEN won = 1 THEN score END), 0),
		        COALESCE(AVG(CASE WHEN won = 1 THEN score END), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN moves_used END), 0)
		 FROM results WHERE `+where,
		args...,
	).Scan(&stats.Played, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.FewestMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE `+where+` ORDER BY created_at DESC, id DESC LIMIT 1`,
		args...,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
