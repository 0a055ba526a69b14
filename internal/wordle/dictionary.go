// internal/wordle/dictionary.go
//
// The dictionary loader: parses "<word> <count>" lines into the
// candidate population the solver starts each game from, and exposes a
// guessable-word set the driver uses to validate guesses before handing
// them to an oracle.

package wordle

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robalobadob/ainyt-go/assets"
)

// Candidate is one dictionary entry: a word and its observed frequency.
// Frequency's absolute magnitude is irrelevant; only its ratio to the
// total across the candidate set matters to the solver.
type Candidate struct {
	Word  Word
	Count uint64
}

// Dictionary is the immutable, shared word corpus loaded once at process
// start. Solver instances borrow Candidates from it but never mutate it.
type Dictionary struct {
	// all is every candidate in file order. File order is preserved
	// because it gives the solver's goodness tie-break its
	// "first-encountered" meaning.
	all []Candidate
	// guessable is the set of words a driver may legally submit as a
	// guess. Equal to the dictionary's word set; kept as a map for O(1)
	// membership checks.
	guessable map[Word]struct{}
}

// LoadDictionary parses r as a sequence of "<5-letter word> <count>"
// lines and returns the resulting Dictionary. Blank lines are skipped;
// any other malformed line is fatal.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{guessable: make(map[Word]struct{})}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		word, count, err := parseDictionaryLine(line)
		if err != nil {
			return nil, &MalformedDictionaryError{Line: lineNo, Text: line, Err: err}
		}
		if _, dup := d.guessable[word]; dup {
			continue
		}
		d.all = append(d.all, Candidate{Word: word, Count: count})
		d.guessable[word] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordle: reading dictionary: %w", err)
	}
	if len(d.all) == 0 {
		return nil, &MalformedDictionaryError{Line: 0, Text: "", Err: fmt.Errorf("dictionary is empty")}
	}
	return d, nil
}

func parseDictionaryLine(line string) (Word, uint64, error) {
	wordPart, countPart, ok := strings.Cut(line, " ")
	if !ok {
		return Word{}, 0, fmt.Errorf("expected \"<word> <count>\", got %q", line)
	}
	countPart = strings.TrimSpace(countPart)
	word, err := ParseWord(strings.ToLower(strings.TrimSpace(wordPart)))
	if err != nil {
		return Word{}, 0, err
	}
	count, err := strconv.ParseUint(countPart, 10, 64)
	if err != nil {
		return Word{}, 0, fmt.Errorf("invalid frequency %q: %w", countPart, err)
	}
	return word, count, nil
}

// LoadDefaultDictionary loads the embedded dictionary.txt bundled with
// the program.
func LoadDefaultDictionary() (*Dictionary, error) {
	raw, err := assets.DictionaryBytes()
	if err != nil {
		return nil, fmt.Errorf("wordle: reading embedded dictionary: %w", err)
	}
	return LoadDictionary(bytes.NewReader(raw))
}

// Candidates returns a fresh copy of every dictionary entry, in file
// order. The solver uses this to seed a new game's candidate set.
func (d *Dictionary) Candidates() []Candidate {
	out := make([]Candidate, len(d.all))
	copy(out, d.all)
	return out
}

// IsGuessable reports whether w is present in the dictionary and so may
// legally be submitted as a guess.
func (d *Dictionary) IsGuessable(w Word) bool {
	_, ok := d.guessable[w]
	return ok
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int { return len(d.all) }

// LoadAnswers parses r as whitespace-separated five-letter words, used by
// the offline benchmark runner. Unlike the dictionary, answers carry no
// frequency and malformed tokens are skipped rather than fatal — the
// answers file is a benchmark fixture, not a correctness-critical input.
func LoadAnswers(r io.Reader) ([]Word, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wordle: reading answers: %w", err)
	}
	fields := bytes.Fields(raw)
	out := make([]Word, 0, len(fields))
	for _, f := range fields {
		w, err := ParseWord(strings.ToLower(string(f)))
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

// LoadDefaultAnswers loads the embedded answers.txt bundled with the
// program.
func LoadDefaultAnswers() ([]Word, error) {
	raw, err := assets.AnswersBytes()
	if err != nil {
		return nil, fmt.Errorf("wordle: reading embedded answers: %w", err)
	}
	return LoadAnswers(bytes.NewReader(raw))
}
