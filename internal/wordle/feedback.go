// internal/wordle/feedback.go
//
// The feedback model: Wordle's exact duplicate-letter scoring rule, plus
// the materialised universe of all 243 possible patterns.
//
// Implements the classic two-pass algorithm:
//   Pass 1: mark exact matches (greens) and consume those answer letters.
//   Pass 2: for remaining guess letters, mark present (yellow) against the
//           first unconsumed matching answer letter, left to right.
// The "first unconsumed" rule in pass 2 is load-bearing for duplicate
// letters — it is what makes e.g. answer="baccc", guess="aaddd" score
// W C W W W instead of crediting the first 'a' as misplaced.

package wordle

// Feedback computes the Pattern produced by guessing guess against answer.
func Feedback(answer, guess Word) Pattern {
	var pattern Pattern
	var consumed [wordLen]bool

	// Pass 1: greens.
	for i := 0; i < wordLen; i++ {
		if guess[i] == answer[i] {
			pattern[i] = Correct
			consumed[i] = true
		}
	}

	// Pass 2: yellows, scanning left to right for the first unconsumed
	// matching answer position.
	for i := 0; i < wordLen; i++ {
		if pattern[i] == Correct {
			continue
		}
		for j := 0; j < wordLen; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				pattern[i] = Misplaced
				consumed[j] = true
				break
			}
		}
		// Otherwise pattern[i] keeps its zero value, Wrong.
	}

	return pattern
}

// numPatterns is the size of the pattern universe: 3 verdicts ^ 5 positions.
const numPatterns = 243

// patternUniverse is the set of all possible Patterns, computed once per
// process. Order is a fixed odometer over {Wrong, Misplaced, Correct}^5,
// incrementing position 0 fastest — deterministic but otherwise
// arbitrary; callers must treat the enumeration as a set, not a
// meaningful sequence.
var patternUniverse = allPatterns()

func allPatterns() [numPatterns]Pattern {
	var all [numPatterns]Pattern
	var cur Pattern
	for i := 0; i < numPatterns; i++ {
		all[i] = cur
		for pos := 0; pos < wordLen; pos++ {
			if cur[pos] != Correct {
				cur[pos]++
				break
			}
			cur[pos] = Wrong
		}
	}
	return all
}

// Patterns returns the full 243-element pattern universe. The returned
// slice is a fresh copy on each call so callers cannot mutate the shared
// package-level array.
func Patterns() []Pattern {
	out := make([]Pattern, numPatterns)
	copy(out, patternUniverse[:])
	return out
}
