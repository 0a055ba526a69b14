// internal/bench/store.go
//
// SQLite-backed history store for offline benchmark runs: a
// busy-timeout/WAL pragma dance on open, idempotent table creation, and
// ORDER-BY/LIMIT queries for run listing and per-run leaderboards.

package bench

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one invocation of the offline benchmark runner.
type Run struct {
	ID        string
	StartedAt time.Time
	Opener    string
	NumGames  int
}

// Game is one answer played within a Run. Turns is nil when the turn
// cap was hit without solving (a "miss", mirroring Result.Solved ==
// false in the solver driver).
type Game struct {
	RunID     string
	Answer    string
	Turns     *int
	ElapsedMs int64
}

// LBRow is one row of a run's leaderboard: the fastest (fewest-turn)
// solves.
type LBRow struct {
	Answer string
	Turns  int
}

// Store wraps a *sql.DB opened and migrated for benchmark history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if missing) a SQLite database at dsn and applies
// the store's migration. Mirrors the teacher's openDB: ensures the
// parent directory exists, sets a busy timeout, and enables WAL.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bench: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("bench: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("bench: set pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying *sql.DB for collaborators that need to
// share the same connection (benchserver's admin-account table lives
// in this same database).
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS benchmark_runs (
			id         TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			opener     TEXT NOT NULL,
			num_games  INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS benchmark_games (
			run_id     TEXT NOT NULL REFERENCES benchmark_runs(id) ON DELETE CASCADE,
			answer     TEXT NOT NULL,
			turns      INTEGER,
			elapsed_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_benchmark_games_run ON benchmark_games(run_id);
	`)
	if err != nil {
		return fmt.Errorf("bench: migrate: %w", err)
	}
	return nil
}

// SaveRun writes a Run and all of its Games inside a single transaction,
// as specified for the offline runner: one invocation, one atomic write.
func (s *Store) SaveRun(ctx context.Context, run Run, games []Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bench: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO benchmark_runs (id, started_at, opener, num_games) VALUES (?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.Opener, run.NumGames,
	)
	if err != nil {
		return fmt.Errorf("bench: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO benchmark_games (run_id, answer, turns, elapsed_ms) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("bench: prepare game insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range games {
		var turns any
		if g.Turns != nil {
			turns = *g.Turns
		}
		if _, err := stmt.ExecContext(ctx, run.ID, g.Answer, turns, g.ElapsedMs); err != nil {
			return fmt.Errorf("bench: insert game %s: %w", g.Answer, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bench: commit: %w", err)
	}
	return nil
}

// ListRuns returns every run, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, opener, num_games FROM benchmark_runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("bench: list runs: %w", err)
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Opener, &r.NumGames); err != nil {
			return nil, fmt.Errorf("bench: scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns one run and its full per-game breakdown.
func (s *Store) GetRun(ctx context.Context, id string) (Run, []Game, error) {
	var r Run
	var started string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, opener, num_games FROM benchmark_runs WHERE id = ?`, id,
	).Scan(&r.ID, &started, &r.Opener, &r.NumGames)
	if err != nil {
		return Run{}, nil, fmt.Errorf("bench: get run %s: %w", id, err)
	}
	r.StartedAt, _ = time.Parse(time.RFC3339, started)

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, answer, turns, elapsed_ms FROM benchmark_games WHERE run_id = ? ORDER BY answer`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("bench: list games for %s: %w", id, err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var g Game
		var turns sql.NullInt64
		if err := rows.Scan(&g.RunID, &g.Answer, &turns, &g.ElapsedMs); err != nil {
			return Run{}, nil, fmt.Errorf("bench: scan game: %w", err)
		}
		if turns.Valid {
			v := int(turns.Int64)
			g.Turns = &v
		}
		games = append(games, g)
	}
	return r, games, rows.Err()
}

// Leaderboard returns the limit fastest (fewest-turn) solves for a run,
// ordered by turns ascending — the benchmark equivalent of the
// teacher's GetDailyLeaderboard (elapsed ASC there, turns ASC here,
// since the benchmark's interesting metric is guesses, not wall clock).
func (s *Store) Leaderboard(ctx context.Context, runID string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT answer, turns FROM benchmark_games
		WHERE run_id = ? AND turns IS NOT NULL
		ORDER BY turns ASC, answer ASC
		LIMIT ?`, runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("bench: leaderboard for %s: %w", runID, err)
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var row LBRow
		if err := rows.Scan(&row.Answer, &row.Turns); err != nil {
			return nil, fmt.Errorf("bench: scan leaderboard row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DeleteRun removes a run and its games (ON DELETE CASCADE handles the
// games table).
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM benchmark_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("bench: delete run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bench: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bench: run %s not found", id)
	}
	return nil
}
