// internal/wordle/errors.go
//
// Typed fatal errors the solver core can return. These are all
// programming-bug-or-worse conditions per the package's error handling
// design: the solver does not attempt to recover from any of them, it
// reports them to its caller and stops. Driver-level errors (oracle
// unavailability, bad CLI input, HTTP auth failures) are not declared
// here — they belong to the packages that own that I/O.

package wordle

import "fmt"

// MalformedDictionaryError is returned when a dictionary source line does
// not match "<5-letter word> <non-negative integer>", or when a
// configured opening word is absent from the loaded dictionary.
type MalformedDictionaryError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedDictionaryError) Error() string {
	return fmt.Sprintf("wordle: malformed dictionary at line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *MalformedDictionaryError) Unwrap() error { return e.Err }

// InvalidGuessError describes an observation whose guess is not present
// in the dictionary the solver was built from. Nothing in this package
// returns it: neither Solver.Guess nor Play checks observed guesses
// against the dictionary.
type InvalidGuessError struct {
	Guess Word
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("wordle: guess %q is not in the dictionary", e.Guess)
}

// EmptyCandidateSetError is returned when pruning has eliminated every
// remaining candidate. This is unreachable when the oracle is truthful
// and the answer is present in the dictionary; seeing it means the
// oracle lied, the answer isn't in the dictionary, or there's a solver
// bug — in any case the solver fails loudly rather than guessing blind.
type EmptyCandidateSetError struct {
	History History
}

func (e *EmptyCandidateSetError) Error() string {
	return fmt.Sprintf("wordle: candidate set exhausted after %d observations", len(e.History))
}
