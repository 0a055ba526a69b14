// internal/wordle/solver.go
//
// The entropy-scoring solver loop: the one genuinely hard piece of this
// repository. Maintains the surviving candidate set, computes a goodness
// score for every candidate-as-next-guess by summing Shannon entropy
// over the 243-pattern universe, and returns the best word.
//
// The candidate set is a contiguous slice of (word, count) pairs pruned
// in place with an index-compacting retain, not a map, so pruning never
// allocates on the hot path.

package wordle

import "math"

// defaultOpener is the opening guess used when no prior observations
// exist. "crate" scores almost as well by the same entropy measure but
// "tares" is marginally better against the full answer list. Override
// with WithOpener for tuning experiments.
var defaultOpener = mustWord("tares")

func mustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Solver holds one game's mutable candidate set and scores hypothetical
// next guesses by expected information gain. A Solver is single-use: one
// instance plays exactly one game and is discarded. It is not safe for
// concurrent use — each game is owned by one caller for its lifetime.
type Solver struct {
	remaining []Candidate
	opener    Word
}

// Option configures a Solver at construction.
type Option func(*Solver)

// WithOpener overrides the opening guess used for an empty history.
// Passing a word absent from the dictionary is caught by NewSolver,
// which validates the opener against the dictionary before returning.
func WithOpener(w Word) Option {
	return func(s *Solver) { s.opener = w }
}

// NewSolver constructs a fresh Solver over dict's full candidate
// population. Returns MalformedDictionaryError if the configured opener
// (default or overridden) is not present in dict — an opener absent from
// its own dictionary is a build/config bug, not a runtime condition a
// driver can recover from.
func NewSolver(dict *Dictionary, opts ...Option) (*Solver, error) {
	s := &Solver{
		remaining: dict.Candidates(),
		opener:    defaultOpener,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !dict.IsGuessable(s.opener) {
		return nil, &MalformedDictionaryError{
			Text: s.opener.String(),
			Err:  errOpenerNotInDictionary,
		}
	}
	return s, nil
}

var errOpenerNotInDictionary = errNotInDictionary{}

type errNotInDictionary struct{}

func (errNotInDictionary) Error() string { return "opening word is not present in the dictionary" }

// Guess returns the next guess given the game's history so far, pruning
// the solver's internal candidate set by the most recent observation
// before scoring. It is the only observable solving method: callers
// drive a game by repeatedly appending the oracle's response to history
// and calling Guess again.
func (s *Solver) Guess(history History) (Word, error) {
	last, ok := history.Last()
	if !ok {
		return s.opener, nil
	}

	s.prune(last)

	if len(s.remaining) == 0 {
		return Word{}, &EmptyCandidateSetError{History: history}
	}
	if len(s.remaining) == 1 {
		return s.remaining[0].Word, nil
	}

	return s.bestGuess(), nil
}

// prune retains only candidates consistent with the most recent
// observation. A single-observation filter suffices because earlier
// observations were already applied on prior turns — the invariant is
// that remaining is always consistent with the full history.
//
// Filtering is done in place over a contiguous slice (index-compacting
// retain) rather than rebuilding into a new map, for the same cache
// locality reason algorithm.rs's Vec-based solver improved on naive.rs's
// HashMap-based one.
func (s *Solver) prune(last Observation) {
	kept := s.remaining[:0]
	for _, c := range s.remaining {
		if last.Admits(c.Word) {
			kept = append(kept, c)
		}
	}
	s.remaining = kept
}

// bestGuess scores every surviving candidate as a hypothetical next
// guess and returns the one with the highest goodness, breaking ties by
// first-encountered order in s.remaining.
//
// goodness(w) is pure Shannon entropy: for each of the 243 patterns p,
// S(w, p) is the total frequency of remaining candidates that would
// produce p if w were guessed; P(w, p) = S(w, p) / N where N is the
// total remaining frequency; goodness(w) = -sum(P(w,p) * log2(P(w,p)))
// over patterns with S(w, p) > 0.
//
// This is the pure-entropy variant (no count(w)/N weighting). The
// weighted variant — multiplying by the probability that w is itself
// the answer — is an equally reasonable alternative; see
// goodnessWeighted below for the documented, not-wired-in alternative
// scorer.
func (s *Solver) bestGuess() Word {
	total := s.totalCount()
	patterns := Patterns()

	var best Word
	bestGoodness := math.Inf(-1)
	haveBest := false

	for _, candidateGuess := range s.remaining {
		g := s.goodness(candidateGuess.Word, patterns, total)
		if !haveBest || g > bestGoodness {
			best = candidateGuess.Word
			bestGoodness = g
			haveBest = true
		}
	}

	return best
}

// goodness computes the Shannon entropy contribution of guessing w,
// iterating the full 243-pattern universe. Patterns with zero matching
// weight are skipped within the sum (they contribute 0 * log2(0), which
// is defined as 0 by convention); this is a per-word optimization only —
// the iteration source is still the full universe, so it cannot change
// which word is chosen.
func (s *Solver) goodness(w Word, patterns []Pattern, total uint64) float64 {
	var entropy float64
	for _, p := range patterns {
		var inPattern uint64
		for _, c := range s.remaining {
			if Feedback(c.Word, w) == p {
				inPattern += c.Count
			}
		}
		if inPattern == 0 {
			continue
		}
		probability := float64(inPattern) / float64(total)
		entropy += -probability * math.Log2(probability)
	}
	return entropy
}

// goodnessWeighted is the documented alternative scorer: entropy
// weighted by the probability that w is itself the answer,
// goodness(w) = (count(w)/N) * H(w). This implementation defaults to
// the unweighted goodness above (see DESIGN.md for the rationale) and
// keeps this function only as a documented tuning alternative, not
// called from bestGuess.
func (s *Solver) goodnessWeighted(w Word, count uint64, patterns []Pattern, total uint64) float64 {
	h := s.goodness(w, patterns, total)
	return (float64(count) / float64(total)) * h
}

func (s *Solver) totalCount() uint64 {
	var total uint64
	for _, c := range s.remaining {
		total += c.Count
	}
	return total
}

// Remaining returns the number of candidates still consistent with the
// game's history so far. Exposed for driver-level logging/metrics; the
// solver's only mutating, game-advancing method remains Guess.
func (s *Solver) Remaining() int { return len(s.remaining) }
