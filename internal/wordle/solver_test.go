package wordle

import (
	"errors"
	"strings"
	"testing"
)

func smallDictionary(t *testing.T) *Dictionary {
	t.Helper()
	src := strings.Join([]string{
		"tares 100",
		"crate 90",
		"slate 80",
		"irate 70",
		"arose 60",
		"stare 50",
		"adieu 40",
		"pizza 30",
	}, "\n")
	d, err := LoadDictionary(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	return d
}

// Property 6: opening determinism — the first guess with no history is
// always the configured opener, independent of the dictionary contents
// (so long as the opener is present).
func TestSolverOpeningDeterminism(t *testing.T) {
	d := smallDictionary(t)
	for i := 0; i < 5; i++ {
		s, err := NewSolver(d)
		if err != nil {
			t.Fatalf("NewSolver: %v", err)
		}
		got, err := s.Guess(nil)
		if err != nil {
			t.Fatalf("Guess: %v", err)
		}
		if got != defaultOpener {
			t.Fatalf("opening guess = %s, want %s", got, defaultOpener)
		}
	}
}

func TestSolverWithOpenerOverride(t *testing.T) {
	d := smallDictionary(t)
	want := mustWordT(t, "adieu")
	s, err := NewSolver(d, WithOpener(want))
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	got, err := s.Guess(nil)
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if got != want {
		t.Fatalf("opening guess = %s, want %s", got, want)
	}
}

func TestNewSolverRejectsOpenerNotInDictionary(t *testing.T) {
	d := smallDictionary(t)
	_, err := NewSolver(d, WithOpener(mustWordT(t, "zzzzz")))
	if err == nil {
		t.Fatalf("NewSolver succeeded with an opener absent from the dictionary")
	}
	var target *MalformedDictionaryError
	if !errors.As(err, &target) {
		t.Fatalf("NewSolver returned %v, want *MalformedDictionaryError", err)
	}
}

// Property 5: monotone pruning — the candidate set never grows across
// turns, and the true answer is never pruned out by a truthful oracle.
func TestSolverMonotonePruning(t *testing.T) {
	d := smallDictionary(t)
	answer := mustWordT(t, "crate")
	s, err := NewSolver(d)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}

	oracle := KnownAnswerOracle(answer)
	var history History
	prevRemaining := s.Remaining()

	for turn := 0; turn < DefaultTurnCap; turn++ {
		guess, err := s.Guess(history)
		if err != nil {
			t.Fatalf("Guess on turn %d: %v", turn, err)
		}
		if s.Remaining() > prevRemaining {
			t.Fatalf("turn %d: remaining grew from %d to %d", turn, prevRemaining, s.Remaining())
		}
		prevRemaining = s.Remaining()

		pattern, err := oracle(guess)
		if err != nil {
			t.Fatalf("oracle: %v", err)
		}
		history = append(history, Observation{Guess: guess, Pattern: pattern})
		if pattern.AllCorrect() {
			return
		}
	}
	t.Fatalf("did not solve %s within %d turns", answer, DefaultTurnCap)
}

// Property 7: termination — playing against a truthful oracle over a
// dictionary containing the answer converges within the turn cap.
func TestSolverTerminatesForEveryCandidate(t *testing.T) {
	d := smallDictionary(t)
	for _, c := range d.Candidates() {
		answer := c.Word
		s, err := NewSolver(d)
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

func TestSolverSingletonShortcut(t *testing.T) {
	d := smallDictionary(t)
	s, err := NewSolver(d)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}

	// Force the candidate set down to exactly one word without scoring.
	s.remaining = []Candidate{{Word: mustWordT(t, "pizza"), Count: 30}}
	// The observation must admit pizza, since Guess prunes before it
	// checks for a singleton: Feedback(pizza, tares) == W M W W W.
	obs := Observation{Guess: mustWordT(t, "tares"), Pattern: Pattern{Wrong, Misplaced, Wrong, Wrong, Wrong}}
	got, err := s.Guess(History{obs})
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if got != mustWordT(t, "pizza") {
		t.Fatalf("Guess() = %s, want pizza (the only remaining candidate)", got)
	}
}

func TestSolverEmptyCandidateSetError(t *testing.T) {
	d := smallDictionary(t)
	s, err := NewSolver(d)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	s.remaining = nil

	_, err = s.Guess(History{{Guess: mustWordT(t, "tares")}})
	if err == nil {
		t.Fatalf("Guess succeeded with an empty candidate set")
	}
	var target *EmptyCandidateSetError
	if !errors.As(err, &target) {
		t.Fatalf("Guess returned %v, want *EmptyCandidateSetError", err)
	}
}
