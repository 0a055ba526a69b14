// internal/wordle/oracle.go
//
// The Oracle contract the solver core depends on, plus the two
// in-process implementations that don't need an external collaborator
// (manual stdin entry and benchmarking against a known answer). The
// browser-driven oracle lives in internal/wordleweb, since it pulls in
// go-rod and the core must not depend on it.

package wordle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Oracle produces the Pattern for a guess. A truthful oracle satisfies
// oracle(g) == Feedback(answer, g) for the hidden answer, for every g.
// This is a function type, not an interface: the driver is naturally a
// capability here, and a single function value suffices — see
// (*wordleweb.Browser).Oracle in internal/wordleweb, and ManualOracle
// and KnownAnswerOracle below, for the functions that produce one.
type Oracle func(Word) (Pattern, error)

// KnownAnswerOracle returns an Oracle that computes feedback directly
// against a known answer, for benchmarking and for games where the
// answer is already known (as opposed to typed by a human or scraped
// from a browser).
func KnownAnswerOracle(answer Word) Oracle {
	return func(guess Word) (Pattern, error) {
		return Feedback(answer, guess), nil
	}
}

// ManualOracle returns an Oracle that prompts a human to type a
// five-character colour code after each guess: 'g'/'G' for Correct,
// 'y'/'Y' for Misplaced, anything else for Wrong. Used when playing a
// real Wordle by hand and transcribing its feedback.
func ManualOracle(r io.Reader, w io.Writer) Oracle {
	sc := bufio.NewScanner(r)
	return func(guess Word) (Pattern, error) {
		fmt.Fprintf(w, "guessed %s — enter result (g=correct, y=misplaced, .=wrong), e.g. \"g.y..\": ", guess)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return Pattern{}, fmt.Errorf("wordle: reading manual feedback: %w", err)
			}
			return Pattern{}, fmt.Errorf("wordle: no more manual feedback input")
		}
		return parseColorCode(strings.TrimSpace(sc.Text()))
	}
}

func parseColorCode(s string) (Pattern, error) {
	if len(s) != wordLen {
		return Pattern{}, fmt.Errorf("wordle: expected %d-character result code, got %q", wordLen, s)
	}
	var p Pattern
	for i := 0; i < wordLen; i++ {
		switch s[i] {
		case 'g', 'G':
			p[i] = Correct
		case 'y', 'Y':
			p[i] = Misplaced
		default:
			p[i] = Wrong
		}
	}
	return p, nil
}
