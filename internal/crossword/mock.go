// internal/crossword/mock.go
//
// A scripted ClueSolver, standing in for the original source's
// ChatGPT/Cohere-backed LLMSolver (see original_source/crossword/src/solver.rs).
// Used by tests and by cmd/crossword's --source=mock mode to exercise
// the backtracking algorithm without a live API key.

package crossword

import (
	"context"
	"fmt"
)

// ClueKey identifies a clue by number and direction, since a single
// number is shared between its across and down entries.
type ClueKey struct {
	Number    int
	Direction Direction
}

// MockClueSolver answers every clue from a fixed table keyed by
// (number, direction), regardless of the partially filled pattern it
// is asked about — good enough for a deterministic backtracking
// exercise, not a pattern-aware fill engine.
type MockClueSolver struct {
	Answers map[ClueKey]string
}

// Solve returns the scripted answer for c, or an error if none was
// scripted.
func (m MockClueSolver) Solve(_ context.Context, c Clue, _ string, _ []Clue) (string, error) {
	answer, ok := m.Answers[ClueKey{Number: c.Number, Direction: c.Direction}]
	if !ok {
		return "", fmt.Errorf("crossword: mock has no answer for clue %d-%s", c.Number, c.Direction)
	}
	return answer, nil
}
