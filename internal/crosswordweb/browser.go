// internal/crosswordweb/browser.go
//
// A go-rod driven scraper/writer for the NYT Mini Crossword, grounded
// on original_source/crossword/src/web.rs's MiniCrosswordWebDriver: it
// reads the fixed 5x5 grid's cell ids and shaded-square classes to
// build a crossword.Puzzle, reads the across/down clue lists for clue
// text, and later types solved answers back into the grid cell by
// cell. As with internal/wordleweb, this is the one piece of the
// crossword sibling that actually touches a browser — the solving
// algorithm itself lives in internal/crossword and knows nothing
// about the DOM.

package crosswordweb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/robalobadob/ainyt-go/internal/crossword"
)

const miniURL = "https://www.nytimes.com/crosswords/game/mini"

const shadedSquareClass = "xwd__cell--block xwd__cell--nested"

var cellIDPattern = regexp.MustCompile(`cell-id-(\d+)`)

var dismissalSelectors = []string{
	".purr-blocker-card__button",
	".xwd__modal--subtle-button",
}

// Browser wraps a connected rod browser on the Mini Crossword page.
type Browser struct {
	browser *rod.Browser
	page    *rod.Page
}

// Open launches (or attaches to, if wsURL is non-empty) a browser,
// navigates to the Mini Crossword, and dismisses onboarding modals.
func Open(wsURL string) (*Browser, error) {
	b := rod.New()
	if wsURL != "" {
		b = b.ControlURL(wsURL)
	}
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("crosswordweb: connect: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: miniURL})
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("crosswordweb: open page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("crosswordweb: wait load: %w", err)
	}

	cb := &Browser{browser: b, page: page}
	cb.dismissOnboarding()
	return cb, nil
}

func (cb *Browser) dismissOnboarding() {
	for _, sel := range dismissalSelectors {
		el, err := cb.page.Timeout(500 * time.Millisecond).Element(sel)
		if err != nil {
			continue
		}
		_ = el.Click("left", 1)
		time.Sleep(250 * time.Millisecond)
	}
}

// Close releases the underlying browser.
func (cb *Browser) Close() error {
	if cb.browser == nil {
		return nil
	}
	return cb.browser.Close()
}

// ReadPuzzle scrapes the current page into a crossword.Puzzle: the Mini
// is always a fixed 5x5 grid, so width/height are constants rather
// than something derived from the DOM.
func (cb *Browser) ReadPuzzle() (crossword.Puzzle, error) {
	const size = 5

	cells, err := cb.page.Elements(".xwd__cell")
	if err != nil {
		return crossword.Puzzle{}, fmt.Errorf("crosswordweb: find cells: %w", err)
	}

	var shaded []crossword.Position
	cluePositions := make(map[int]crossword.Position)

	for _, cell := range cells {
		rect, err := cell.Element("rect[role=\"cell\"]")
		if err != nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: cell rect: %w", err)
		}
		idAttr, err := rect.Attribute("id")
		if err != nil || idAttr == nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: cell missing id")
		}
		m := cellIDPattern.FindStringSubmatch(*idAttr)
		if m == nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: cell id %q does not match cell-id-N", *idAttr)
		}
		cellID, err := strconv.Atoi(m[1])
		if err != nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: cell id %q is not numeric: %w", *idAttr, err)
		}
		pos := crossword.Position{Row: cellID / size, Column: cellID % size}

		class, err := rect.Attribute("class")
		if err == nil && class != nil && *class == shadedSquareClass {
			shaded = append(shaded, pos)
			continue
		}

		text, err := cell.Text()
		if err == nil && strings.TrimSpace(text) != "" {
			if num, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
				cluePositions[num] = pos
			}
		}
	}

	clueLists, err := cb.page.Elements(".xwd__clue-list--wrapper")
	if err != nil {
		return crossword.Puzzle{}, fmt.Errorf("crosswordweb: find clue lists: %w", err)
	}

	var clues []crossword.Clue
	for _, list := range clueLists {
		header, err := list.Element("h3")
		if err != nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue list header: %w", err)
		}
		headerText, err := header.Text()
		if err != nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue list header text: %w", err)
		}
		var direction crossword.Direction
		switch strings.TrimSpace(headerText) {
		case "ACROSS":
			direction = crossword.Across
		case "DOWN":
			direction = crossword.Down
		default:
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: unexpected clue list header %q", headerText)
		}

		items, err := list.Elements("li")
		if err != nil {
			return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue list items: %w", err)
		}
		for _, item := range items {
			labelEl, err := item.Element(".xwd__clue--label")
			if err != nil {
				return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue label: %w", err)
			}
			label, err := labelEl.Text()
			if err != nil {
				return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue label text: %w", err)
			}
			number, err := strconv.Atoi(strings.TrimSpace(label))
			if err != nil {
				return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue label %q is not numeric: %w", label, err)
			}

			textEl, err := item.Element(".xwd__clue--text")
			if err != nil {
				return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue text: %w", err)
			}
			text, err := textEl.Text()
			if err != nil {
				return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue text value: %w", err)
			}

			pos, ok := cluePositions[number]
			if !ok {
				return crossword.Puzzle{}, fmt.Errorf("crosswordweb: clue %d has no matching grid position", number)
			}
			clues = append(clues, crossword.Clue{
				Number:    number,
				Direction: direction,
				Text:      text,
				Position:  pos,
			})
		}
	}

	return crossword.Puzzle{Width: size, Height: size, Shaded: shaded, Clues: clues}, nil
}

// EnterAnswer types answer into the grid starting at clue's position,
// advancing one cell per character in clue's direction, mirroring
// MiniCrosswordWebDriver::enter_answer's click-then-type-then-advance
// loop.
func (cb *Browser) EnterAnswer(clue crossword.Clue, answer string) error {
	const size = 5
	pos := clue.Position
	for _, ch := range answer {
		cellID := pos.Row*size + pos.Column
		cell, err := cb.page.Element(fmt.Sprintf("#cell-id-%d", cellID))
		if err != nil {
			return fmt.Errorf("crosswordweb: cell %d not found: %w", cellID, err)
		}
		if err := cell.Click("left", 1); err != nil {
			return fmt.Errorf("crosswordweb: click cell %d: %w", cellID, err)
		}
		if err := cell.Input(strings.ToUpper(string(ch))); err != nil {
			return fmt.Errorf("crosswordweb: type %q into cell %d: %w", ch, cellID, err)
		}

		if clue.Direction == crossword.Across {
			pos.Column++
		} else {
			pos.Row++
		}
		time.Sleep(250 * time.Millisecond)
	}
	return nil
}
