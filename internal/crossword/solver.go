// internal/crossword/solver.go
//
// Backtracking fill solver, grounded on
// original_source/crossword/src/solver.rs's LLMSolver::solve/solve_grid:
// a queue of grid checkpoints, one clue answered at a time by asking a
// collaborator (there, ChatGPT over HTTP; here, the ClueSolver
// interface) for a candidate answer. A candidate that doesn't fit the
// remaining grid forks a checkpoint with the conflicting crosses
// cleared, instead of failing outright, and that checkpoint is tried
// later if the current branch runs out of moves — the crossword
// equivalent of the Wordle solver's candidate pruning, except here the
// "candidate" comes from an external collaborator rather than an
// enumerable dictionary.

package crossword

import (
	"context"
	"fmt"
)

// ClueSolver proposes an answer for a single clue, given its current
// (possibly partially filled) pattern and the puzzle's other clues for
// context. This repository includes no LLM-backed implementation;
// MockClueSolver in this package, a scripted test double, is the only
// one. See internal/crosswordweb for the browser-driven puzzle source.
type ClueSolver interface {
	Solve(ctx context.Context, clue Clue, pattern string, allClues []Clue) (string, error)
}

// checkpoint is a snapshot of every clue's current grid contents,
// the Go analogue of the Rust solver's HashMap<Clue, InMemoryEntry>.
type checkpoint map[int]string // keyed by Clue.Number

// Solver drives the backtracking fill using a ClueSolver collaborator.
type Solver struct {
	clueSolver ClueSolver
	cache      map[string]string
}

// NewSolver constructs a Solver around a collaborator.
func NewSolver(cs ClueSolver) *Solver {
	return &Solver{clueSolver: cs, cache: make(map[string]string)}
}

// Solve attempts to fill every cell of the grid built from puzzle,
// returning true if a fully consistent fill was found. It mutates grid
// in place, leaving it at the first successful fill (or at whatever
// state the last attempted checkpoint left it in, if it gives up).
// maxCheckpoints bounds the backtracking search: a collaborator that
// keeps proposing the same conflicting answer would otherwise fork the
// same checkpoint forever. Unlike the enumerable Wordle dictionary,
// there's no finite candidate set to exhaust here, so the solver gives
// up rather than looping on an uncooperative or oscillating answer.
const maxCheckpoints = 1000

func (s *Solver) Solve(ctx context.Context, grid *Grid, puzzle Puzzle) (bool, error) {
	checkpoints := []checkpoint{{}}
	tried := 0

	for len(checkpoints) > 0 {
		if tried >= maxCheckpoints {
			return false, nil
		}
		tried++

		cp := checkpoints[0]
		checkpoints = checkpoints[1:]

		applyCheckpoint(grid, puzzle.Clues, cp)

		ok, more, err := s.solveFromCheckpoint(ctx, grid, puzzle)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		// Checkpoints discovered later in this attempt are tried first,
		// mirroring the Rust solver's checkpoints.reverse() before they
		// are pushed back onto the front of the queue.
		for i := len(more) - 1; i >= 0; i-- {
			checkpoints = append([]checkpoint{more[i]}, checkpoints...)
		}
	}
	return false, nil
}

func applyCheckpoint(grid *Grid, clues []Clue, cp checkpoint) {
	for _, c := range clues {
		if v, ok := cp[c.Number]; ok {
			_ = grid.EnterAnswer(c, v)
		}
	}
}

// solveFromCheckpoint tries to fill every unfilled clue starting from
// grid's current state, returning any new checkpoints discovered along
// the way (conflicting-answer forks) for the caller to retry if this
// attempt doesn't finish the puzzle.
func (s *Solver) solveFromCheckpoint(ctx context.Context, grid *Grid, puzzle Puzzle) (bool, []checkpoint, error) {
	queue := append([]Clue(nil), puzzle.Clues...)
	var forked []checkpoint

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if isFilled(grid.AnswerFor(c)) {
			continue
		}

		pattern := grid.AnswerFor(c)
		answer, err := s.solveClue(ctx, c, pattern, puzzle.Clues)
		if err != nil {
			return false, nil, fmt.Errorf("crossword: solving clue %d-%s: %w", c.Number, c.Direction, err)
		}
		if answer == "" {
			continue
		}

		if fits(grid, c, answer) {
			_ = grid.EnterAnswer(c, answer)
			queue = append(grid.Crosses(c, puzzle.Clues), queue...)
			continue
		}

		// The answer doesn't fit cleanly: fork a checkpoint with the
		// conflicting crosses cleared and this answer written in, to try
		// later, and leave the live grid untouched for this attempt.
		state := snapshot(grid, puzzle.Clues)
		for _, cross := range conflicting(grid, c, answer, puzzle.Clues) {
			delete(state, cross.Number)
		}
		state[c.Number] = answer
		forked = append(forked, state)
	}

	return grid.Filled(), forked, nil
}

func (s *Solver) solveClue(ctx context.Context, c Clue, pattern string, allClues []Clue) (string, error) {
	key := fmt.Sprintf("%d-%s-%s", c.Number, c.Direction, pattern)
	if cached, ok := s.cache[key]; ok {
		return cached, nil
	}
	answer, err := s.clueSolver.Solve(ctx, c, pattern, allClues)
	if err != nil {
		return "", err
	}
	if len(answer) != len(pattern) {
		s.cache[key] = ""
		return "", nil
	}
	s.cache[key] = answer
	return answer, nil
}

func isFilled(pattern string) bool {
	for _, r := range pattern {
		if r == '_' {
			return false
		}
	}
	return true
}

func fits(grid *Grid, c Clue, answer string) bool {
	current := grid.AnswerFor(c)
	if len(current) != len(answer) {
		return false
	}
	for i := range current {
		if current[i] != '_' && current[i] != upper(answer[i]) {
			return false
		}
	}
	return true
}

// conflicting returns the crossing clues whose current entry would
// disagree with writing answer into c.
func conflicting(grid *Grid, c Clue, answer string, allClues []Clue) []Clue {
	var out []Clue
	for _, cross := range grid.Crosses(c, allClues) {
		crossPositions := grid.cellsForClue(cross)
		myPositions := grid.cellsForClue(c)
		myIndex := map[Position]byte{}
		for i, pos := range myPositions {
			myIndex[pos] = upper(answer[i])
		}
		for i, pos := range crossPositions {
			if want, ok := myIndex[pos]; ok {
				current := grid.AnswerFor(cross)
				if current[i] != '_' && current[i] != want {
					out = append(out, cross)
					break
				}
			}
		}
	}
	return out
}

func snapshot(grid *Grid, clues []Clue) checkpoint {
	cp := make(checkpoint, len(clues))
	for _, c := range clues {
		cp[c.Number] = grid.AnswerFor(c)
	}
	return cp
}
