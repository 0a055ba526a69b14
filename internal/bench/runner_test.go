package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/ainyt-go/internal/wordle"
)

func testDictAndAnswers(t *testing.T) (*wordle.Dictionary, []wordle.Word) {
	t.Helper()
	src := strings.Join([]string{
		"tares 100",
		"crate 90",
		"slate 80",
		"irate 70",
	}, "\n")
	dict, err := wordle.LoadDictionary(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	answers := dict.Candidates()
	words := make([]wordle.Word, len(answers))
	for i, c := range answers {
		words[i] = c.Word
	}
	return dict, words
}

func TestRunPlaysEveryRequestedAnswer(t *testing.T) {
	dict, answers := testDictAndAnswers(t)
	opener, err := wordle.ParseWord("tares")
	if err != nil {
		t.Fatalf("ParseWord: %v", err)
	}

	record, err := Run(dict, opener, answers, 0, time.Now())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(record.Games) != len(answers) {
		t.Fatalf("Run produced %d games, want %d", len(record.Games), len(answers))
	}
	if record.Solved() != len(answers) {
		t.Fatalf("Run solved %d/%d, want all solved", record.Solved(), len(answers))
	}
	if record.Run.Opener != "tares" {
		t.Fatalf("Run.Opener = %q, want tares", record.Run.Opener)
	}
}

func TestRunRespectsCount(t *testing.T) {
	dict, answers := testDictAndAnswers(t)
	opener, _ := wordle.ParseWord("tares")

	record, err := Run(dict, opener, answers, 2, time.Now())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(record.Games) != 2 {
		t.Fatalf("Run with count=2 produced %d games, want 2", len(record.Games))
	}
}
