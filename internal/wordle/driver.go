// internal/wordle/driver.go
//
// The game driver: thin orchestration that alternates between asking the
// solver for a guess and asking an oracle for the resulting pattern,
// until the guess matches the answer or a turn cap is reached. This is
// the component specified only at its interface — the interesting
// engineering is entirely in Solver.Guess and Feedback.

package wordle

import "fmt"

// DefaultTurnCap is the maximum number of turns the original source
// allows when measuring the performance tail, rather than Wordle's
// user-facing 6-guess rule. Callers that want the real Wordle rule pass
// 6 to Play explicitly.
const DefaultTurnCap = 32

// Guesser is anything that can produce a next guess from history so far.
// *Solver is the only production implementation; the interface exists so
// that driver-level tests (S1-S4) can exercise Play against a scripted
// guesser without depending on the entropy algorithm.
type Guesser interface {
	Guess(history History) (Word, error)
}

// Result is what one played game produced.
type Result struct {
	// Turns is the number of guesses taken to find the answer. Zero
	// means the turn cap was hit without success — check Solved.
	Turns int
	// Solved reports whether the answer was found within the turn cap.
	Solved bool
	// History is the full observation sequence accumulated during play.
	History History
}

// Play drives solver against oracle for up to turnCap turns, feeding
// each guess to the oracle and each (guess, pattern) pair back to the
// solver as an Observation. It stops as soon as the oracle reports an
// all-Correct pattern for the current guess, or once turnCap guesses
// have been made without success.
//
// Returns an error only if the solver or oracle itself errors (a fatal
// condition); hitting the turn cap without solving is not an error, it
// is reported via Result.Solved == false.
func Play(solver Guesser, oracle Oracle, turnCap int) (Result, error) {
	var history History

	for turn := 1; turn <= turnCap; turn++ {
		guess, err := solver.Guess(history)
		if err != nil {
			return Result{History: history}, err
		}

		pattern, err := oracle(guess)
		if err != nil {
			return Result{History: history}, fmt.Errorf("wordle: oracle failed on turn %d: %w", turn, err)
		}

		history = append(history, Observation{Guess: guess, Pattern: pattern})

		if pattern.AllCorrect() {
			return Result{Turns: turn, Solved: true, History: history}, nil
		}
	}

	return Result{History: history}, nil
}
