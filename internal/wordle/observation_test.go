package wordle

import "testing"

// Property 4: predicate round-trip — for every (a, g), a is admitted by
// the observation (g, Feedback(a, g)).
func TestObservationAdmitsRoundTrip(t *testing.T) {
	words := []string{"tares", "crate", "slate", "abcde", "aabbb", "azzaz", "baccc"}
	for _, a := range words {
		answer := mustWordT(t, a)
		for _, g := range words {
			guess := mustWordT(t, g)
			obs := Observation{Guess: guess, Pattern: Feedback(answer, guess)}
			if !obs.Admits(answer) {
				t.Errorf("Observation{%s, %s}.Admits(%s) = false, want true", guess, obs.Pattern, answer)
			}
		}
	}
}

func TestHistoryLast(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Fatalf("Last() on empty history reported ok=true")
	}

	obs := Observation{Guess: mustWordT(t, "tares")}
	h = append(h, obs)
	got, ok := h.Last()
	if !ok || got != obs {
		t.Fatalf("Last() = %v, %v, want %v, true", got, ok, obs)
	}
}
