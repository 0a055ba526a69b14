// internal/bench/runner.go
//
// The offline benchmark runner: plays N games through the real entropy
// solver against known answers, collecting one row per game for the
// history store instead of printing results to stdout.

package bench

import (
	"fmt"
	"time"

	"github.com/robalobadob/ainyt-go/internal/wordle"
)

// GenID produces a run identifier. Time-based IDs are fine here since a
// benchmark run is a one-off CLI invocation, not a high-frequency,
// concurrently-requested allocation that would need collision
// resistance.
func GenID(now time.Time) string {
	return fmt.Sprintf("run-%d", now.UnixNano())
}

// Run plays count games (one per answer, in order) through a fresh
// Solver per game and a KnownAnswerOracle, and returns the resulting
// Run/Game rows ready for Store.SaveRun. count <= 0 means "all answers".
func Run(dict *wordle.Dictionary, opener wordle.Word, answers []wordle.Word, count int, startedAt time.Time) (RunRecord, error) {
	if count > 0 && count < len(answers) {
		answers = answers[:count]
	}

	runID := GenID(startedAt)
	games := make([]Game, 0, len(answers))

	for _, answer := range answers {
		solver, err := wordle.NewSolver(dict, wordle.WithOpener(opener))
		if err != nil {
			return RunRecord{}, fmt.Errorf("bench: new solver for %s: %w", answer, err)
		}

		gameStart := time.Now()
		result, err := wordle.Play(solver, wordle.KnownAnswerOracle(answer), wordle.DefaultTurnCap)
		elapsed := time.Since(gameStart)
		if err != nil {
			return RunRecord{}, fmt.Errorf("bench: playing %s: %w", answer, err)
		}

		var turns *int
		if result.Solved {
			t := result.Turns
			turns = &t
		}
		games = append(games, Game{
			RunID:     runID,
			Answer:    answer.String(),
			Turns:     turns,
			ElapsedMs: elapsed.Milliseconds(),
		})
	}

	run := Run{
		ID:        runID,
		StartedAt: startedAt,
		Opener:    opener.String(),
		NumGames:  len(games),
	}
	return RunRecord{Run: run, Games: games}, nil
}

// RunRecord bundles a completed run with its per-game rows, the unit
// Store.SaveRun persists.
type RunRecord struct {
	Run   Run
	Games []Game
}

// Solved reports how many of the run's games were solved within the
// turn cap, for a quick console summary.
func (r RunRecord) Solved() int {
	n := 0
	for _, g := range r.Games {
		if g.Turns != nil {
			n++
		}
	}
	return n
}
