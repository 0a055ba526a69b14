// assets/embed.go
//
// Provides access to the embedded Wordle corpora bundled with the
// program.
//   - dictionary.txt: every guessable word with its frequency count,
//     "<word> <count>" per line — the candidate population.
//   - answers.txt: whitespace-separated five-letter words used by the
//     offline benchmark runner to play many games in sequence.
//
// Files are embedded at compile time using Go's embed.FS, so no
// external file access is required at runtime.

package assets

import "embed"

// FS holds the embedded file system containing the word corpora.
//
//go:embed dictionary.txt answers.txt
var FS embed.FS

// DictionaryBytes returns the raw contents of dictionary.txt.
func DictionaryBytes() ([]byte, error) {
	return FS.ReadFile("dictionary.txt")
}

// AnswersBytes returns the raw contents of answers.txt.
func AnswersBytes() ([]byte, error) {
	return FS.ReadFile("answers.txt")
}
