// internal/crossword/grid.go
//
// The crossword grid model, grounded on original_source/crossword/src/lib.rs's
// Grid/Cell/Clue/Position types: a fixed-size grid of shaded and
// fillable cells, with clues identifying a starting position, a
// direction, and the span of cells that direction covers. Built only
// as far as the believable-sibling bar requires (see SPEC_FULL.md
// §4.8) — there is no puzzle-file format parser here, callers build a
// Puzzle directly or via the crosswordweb scraper.

package crossword

import "fmt"

// Direction is the orientation a clue's answer is entered in.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "Down"
	}
	return "Across"
}

// Position is a zero-indexed grid coordinate.
type Position struct {
	Row, Column int
}

// Clue identifies one entry in the puzzle: a number, a direction, the
// cell it starts at, and its clue text. Answer is the known correct
// answer when building a test fixture or verifying a solve; solving
// code itself never reads it.
type Clue struct {
	Number    int
	Direction Direction
	Text      string
	Position  Position
	Answer    string
}

// Puzzle is the static description of a crossword: its dimensions,
// its clues, and which cells are shaded (unusable).
type Puzzle struct {
	Width, Height int
	Clues         []Clue
	Shaded        []Position
}

// Grid is the live, mutable solving surface built from a Puzzle: a
// width x height matrix of cells, each either permanently shaded or
// holding an optional entered letter.
type Grid struct {
	Width, Height int
	cells         [][]cell
}

type cell struct {
	shaded bool
	value  byte // 0 means empty
}

// NewGrid builds an empty (all cells cleared) Grid from a Puzzle.
func NewGrid(p Puzzle) *Grid {
	shaded := make(map[Position]bool, len(p.Shaded))
	for _, s := range p.Shaded {
		shaded[s] = true
	}
	cells := make([][]cell, p.Height)
	for r := range cells {
		cells[r] = make([]cell, p.Width)
		for c := range cells[r] {
			cells[r][c] = cell{shaded: shaded[Position{Row: r, Column: c}]}
		}
	}
	return &Grid{Width: p.Width, Height: p.Height, cells: cells}
}

// cellsForClue returns the sequence of grid positions a clue's answer
// occupies, stopping at the grid edge or the first shaded cell —
// the direct analogue of Grid::cells_for_clue.
func (g *Grid) cellsForClue(c Clue) []Position {
	var out []Position
	pos := c.Position
	for pos.Row < g.Height && pos.Column < g.Width {
		if g.cells[pos.Row][pos.Column].shaded {
			break
		}
		out = append(out, pos)
		if c.Direction == Across {
			pos.Column++
		} else {
			pos.Row++
		}
	}
	return out
}

// EnterAnswer writes answer into the cells spanned by clue. Returns an
// error if answer's length doesn't match the clue's span, rather than
// asserting as the original source does — a mismatched-length answer
// from an LLM collaborator is an expected, recoverable event here, not
// a programming bug.
func (g *Grid) EnterAnswer(c Clue, answer string) error {
	positions := g.cellsForClue(c)
	if len(answer) != len(positions) {
		return fmt.Errorf("crossword: answer %q has length %d, clue %d-%s wants %d",
			answer, len(answer), c.Number, c.Direction, len(positions))
	}
	for i, pos := range positions {
		g.cells[pos.Row][pos.Column].value = upper(answer[i])
	}
	return nil
}

// ClearAnswer blanks every cell a clue occupies.
func (g *Grid) ClearAnswer(c Clue) {
	for _, pos := range g.cellsForClue(c) {
		g.cells[pos.Row][pos.Column].value = 0
	}
}

// AnswerFor returns the current contents of clue's span, with unfilled
// cells rendered as '_'.
func (g *Grid) AnswerFor(c Clue) string {
	positions := g.cellsForClue(c)
	buf := make([]byte, len(positions))
	for i, pos := range positions {
		if v := g.cells[pos.Row][pos.Column].value; v != 0 {
			buf[i] = v
		} else {
			buf[i] = '_'
		}
	}
	return string(buf)
}

// Filled reports whether every fillable cell in the grid has a value.
func (g *Grid) Filled() bool {
	for _, row := range g.cells {
		for _, c := range row {
			if !c.shaded && c.value == 0 {
				return false
			}
		}
	}
	return true
}

// Crosses returns every clue in clues whose span shares a cell with c,
// excluding c itself and any clue running in the same direction.
func (g *Grid) Crosses(c Clue, clues []Clue) []Clue {
	mine := make(map[Position]bool)
	for _, pos := range g.cellsForClue(c) {
		mine[pos] = true
	}
	var out []Clue
	for _, other := range clues {
		if other.Direction == c.Direction {
			continue
		}
		for _, pos := range g.cellsForClue(other) {
			if mine[pos] {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
