package wordle

import "testing"

func mustWordT(t *testing.T, s string) Word {
	t.Helper()
	w, err := ParseWord(s)
	if err != nil {
		t.Fatalf("ParseWord(%q): %v", s, err)
	}
	return w
}

func patternFromString(t *testing.T, s string) Pattern {
	t.Helper()
	// s is a 5-character string over {C,M,W}.
	if len(s) != wordLen {
		t.Fatalf("pattern string %q is not %d characters", s, wordLen)
	}
	var p Pattern
	for i := 0; i < wordLen; i++ {
		switch s[i] {
		case 'C':
			p[i] = Correct
		case 'M':
			p[i] = Misplaced
		case 'W':
			p[i] = Wrong
		default:
			t.Fatalf("unknown verdict byte %q in %q", s[i], s)
		}
	}
	return p
}

func TestFeedbackWorkedCases(t *testing.T) {
	cases := []struct {
		answer, guess, want string
	}{
		{"abcde", "abcde", "CCCCC"},
		{"abcde", "fghij", "WWWWW"},
		{"abcde", "eabcd", "MMMMM"},
		{"aabbb", "aaccc", "CCWWW"},
		{"aabbb", "ccaac", "WWMMW"},
		{"aabbb", "caacc", "WCMWW"},
		{"azzaz", "aaabb", "CMWWW"},
		{"baccc", "aaddd", "WCWWW"},
		{"abcde", "aacde", "CWCCC"},
	}
	for _, c := range cases {
		t.Run(c.answer+"/"+c.guess, func(t *testing.T) {
			answer := mustWordT(t, c.answer)
			guess := mustWordT(t, c.guess)
			want := patternFromString(t, c.want)
			got := Feedback(answer, guess)
			if got != want {
				t.Fatalf("Feedback(%s, %s) = %s, want %s", answer, guess, got, want)
			}
		})
	}
}

func TestFeedbackDuplicateLetterParity(t *testing.T) {
	got := Feedback(mustWordT(t, "aabbb"), mustWordT(t, "ccaac"))
	want := Pattern{Wrong, Wrong, Misplaced, Misplaced, Wrong}
	if got != want {
		t.Fatalf("Feedback(aabbb, ccaac) = %v, want %v", got, want)
	}
}

func TestFeedbackSelfConsistency(t *testing.T) {
	words := []string{"tares", "crate", "slate", "abcde", "zzzzz", "aabbb"}
	allCorrect := Pattern{Correct, Correct, Correct, Correct, Correct}
	for _, s := range words {
		w := mustWordT(t, s)
		if got := Feedback(w, w); got != allCorrect {
			t.Errorf("Feedback(%s, %s) = %v, want all-correct", w, w, got)
		}
	}
}

func TestFeedbackDeterministic(t *testing.T) {
	answer := mustWordT(t, "abcde")
	guess := mustWordT(t, "eabcd")
	first := Feedback(answer, guess)
	for i := 0; i < 10; i++ {
		if got := Feedback(answer, guess); got != first {
			t.Fatalf("Feedback is not deterministic: got %v, want %v", got, first)
		}
	}
}

func TestPatternsCompleteAndDistinct(t *testing.T) {
	all := Patterns()
	if len(all) != numPatterns {
		t.Fatalf("Patterns() returned %d patterns, want %d", len(all), numPatterns)
	}
	seen := make(map[Pattern]bool, numPatterns)
	for _, p := range all {
		if seen[p] {
			t.Fatalf("duplicate pattern %v in Patterns()", p)
		}
		seen[p] = true
	}
	if len(seen) != numPatterns {
		t.Fatalf("only %d distinct patterns, want %d", len(seen), numPatterns)
	}
}

func TestPatternsReturnsFreshCopy(t *testing.T) {
	a := Patterns()
	a[0][0] = Correct + 100 // mutate the caller's copy
	b := Patterns()
	if b[0][0] == a[0][0] {
		t.Fatalf("Patterns() shares backing storage across calls")
	}
}
