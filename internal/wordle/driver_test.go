package wordle

import (
	"errors"
	"testing"
)

// scriptedGuesser plays back a fixed sequence of guesses, ignoring
// history. It exists so Play can be exercised against known scenarios
// (S1-S4) without depending on the entropy algorithm, mirroring the
// scripted Guesser trait implementations used for the equivalent
// scenarios in the original source's test suite.
type scriptedGuesser struct {
	guesses []Word
	i       int
}

func (g *scriptedGuesser) Guess(History) (Word, error) {
	if g.i >= len(g.guesses) {
		return Word{}, errors.New("scriptedGuesser: exhausted its script")
	}
	w := g.guesses[g.i]
	g.i++
	return w, nil
}

func words(t *testing.T, ss ...string) []Word {
	t.Helper()
	out := make([]Word, len(ss))
	for i, s := range ss {
		out[i] = mustWordT(t, s)
	}
	return out
}

// S1: one-shot solve on the very first guess.
func TestPlayOneShot(t *testing.T) {
	g := &scriptedGuesser{guesses: words(t, "moved")}
	result, err := Play(g, KnownAnswerOracle(mustWordT(t, "moved")), DefaultTurnCap)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !result.Solved || result.Turns != 1 {
		t.Fatalf("result = %+v, want Solved=true Turns=1", result)
	}
}

// S2: second guess solves it, after a first guess that misses.
func TestPlaySecondGuess(t *testing.T) {
	g := &scriptedGuesser{guesses: words(t, "wrong", "right")}
	result, err := Play(g, KnownAnswerOracle(mustWordT(t, "right")), DefaultTurnCap)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !result.Solved || result.Turns != 2 {
		t.Fatalf("result = %+v, want Solved=true Turns=2", result)
	}
	if len(result.History) != 2 {
		t.Fatalf("History has %d entries, want 2", len(result.History))
	}
}

// S3: it takes exactly six guesses to land on the answer.
func TestPlaySixGuesses(t *testing.T) {
	g := &scriptedGuesser{guesses: words(t, "crate", "slate", "stare", "spate", "state", "plate")}
	result, err := Play(g, KnownAnswerOracle(mustWordT(t, "plate")), DefaultTurnCap)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !result.Solved || result.Turns != 6 {
		t.Fatalf("result = %+v, want Solved=true Turns=6", result)
	}
}

// S4: the guesser never lands on the answer within the turn cap — a
// miss is reported via Solved=false, Turns=0, not an error.
func TestPlayMiss(t *testing.T) {
	guesses := make([]Word, 32)
	for i := range guesses {
		guesses[i] = mustWordT(t, "wrong")
	}
	g := &scriptedGuesser{guesses: guesses}
	result, err := Play(g, KnownAnswerOracle(mustWordT(t, "right")), 32)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Solved {
		t.Fatalf("result.Solved = true, want false")
	}
	if result.Turns != 0 {
		t.Fatalf("result.Turns = %d, want 0", result.Turns)
	}
	if len(result.History) != 32 {
		t.Fatalf("History has %d entries, want 32", len(result.History))
	}
}

func TestPlayPropagatesGuesserError(t *testing.T) {
	g := &scriptedGuesser{guesses: nil}
	_, err := Play(g, KnownAnswerOracle(mustWordT(t, "right")), DefaultTurnCap)
	if err == nil {
		t.Fatalf("Play succeeded despite an exhausted guesser")
	}
}

func TestPlayWrapsOracleError(t *testing.T) {
	g := &scriptedGuesser{guesses: words(t, "tares")}
	boom := errors.New("boom")
	failingOracle := func(Word) (Pattern, error) { return Pattern{}, boom }

	_, err := Play(g, failingOracle, DefaultTurnCap)
	if err == nil {
		t.Fatalf("Play succeeded despite a failing oracle")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("Play error %v does not wrap the oracle's error", err)
	}
}

// S5: the real solver, run against a sizeable slice of real answers
// through a truthful oracle, solves every one of them within the turn
// cap. This is the benchmark-style integration scenario from the
// original source's complete_solves test.
func TestPlaySolvesEveryAnswer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-corpus solve in short mode")
	}

	dict, err := LoadDefaultDictionary()
	if err != nil {
		t.Fatalf("LoadDefaultDictionary: %v", err)
	}
	answers, err := LoadDefaultAnswers()
	if err != nil {
		t.Fatalf("LoadDefaultAnswers: %v", err)
	}
	if len(answers) < 250 {
		t.Fatalf("only %d answers available, want at least 250", len(answers))
	}
	answers = answers[:250]

	for _, answer := range answers {
		s, err := NewSolver(dict)
		if err != nil {
			t.Fatalf("NewSolver: %v", err)
		}
		result, err := Play(s, KnownAnswerOracle(answer), DefaultTurnCap)
		if err != nil {
			t.Fatalf("Play(%s): %v", answer, err)
		}
		if !result.Solved {
			t.Errorf("did not solve %s within %d turns", answer, DefaultTurnCap)
		}
	}
}
