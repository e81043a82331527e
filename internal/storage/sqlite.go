// Package storage provides SQLite-based persistence for finished match
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// MatchResult is one finished duel's outcome.
type MatchResult struct {
	ID          int64
	Difficulty  string
	PlayerScore int
	AIScore     int
	PlayerLives int
	AILives     int
	Winner      string // "human", "ai" or "tie"
	Duration    int    // Played seconds
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
		CREATE TABLE IF NOT EXISTS match_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			player_score INTEGER NOT NULL DEFAULT 0,
			ai_score INTEGER NOT NULL DEFAULT 0,
			player_lives INTEGER NOT NULL DEFAULT 0,
			ai_lives INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON match_results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_top ON match_results(difficulty, player_score DESC);
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

// SaveResult records a finished match. Returns the inserted row ID.
func (s *Store) SaveResult(r MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO match_results
		 (difficulty, player_score, ai_score, player_lives, ai_lives, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Difficulty, r.PlayerScore, r.AIScore, r.PlayerLives, r.AILives, r.Winner, r.Duration,
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

// TopResults retrieves the best results for a difficulty, ordered by
// player score descending. An empty difficulty matches every tier.
func (s *Store) TopResults(difficulty string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, difficulty, player_score, ai_score, player_lives, ai_lives, winner, duration_secs, created_at
		 FROM match_results`
	args := []any{}
	if difficulty != "" {
		query += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	query += ` ORDER BY player_score DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults retrieves the most recently played matches.
func (s *Store) RecentResults(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, player_score, ai_score, player_lives, ai_lives, winner, duration_secs, created_at
		 FROM match_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]MatchResult, error) {
	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Difficulty, &r.PlayerScore, &r.AIScore,
			&r.PlayerLives, &r.AILives, &r.Winner, &r.Duration, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTimestamp handles both time.Time and string column values the
// driver may hand back.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats contains aggregated results for one difficulty tier.
type Stats struct {
	Difficulty string
	Played     int
	Won        int
	Lost       int
	Tied       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics for a difficulty tier.
func (s *Store) GetStats(difficulty string) (*Stats, error) {
	stats := &Stats{Difficulty: difficulty}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'human' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'ai' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'tie' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(player_score), 0),
		        COALESCE(AVG(player_score), 0)
		 FROM match_results WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Played, &stats.Won, &stats.Lost, &stats.Tied, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM match_results WHERE difficulty = ? ORDER BY created_at DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
