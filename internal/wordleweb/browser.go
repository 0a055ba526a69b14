// internal/wordleweb/browser.go
//
// A browser-driven Oracle for the solver core, grounded on
// original_source/wordle/src/web.rs's WordleWebDriver: it clicks the
// on-screen keyboard and reads each tile's data-state attribute, the
// same DOM contract the original thirtyfour-based driver scrapes. Go's
// WebDriver ecosystem equivalent here is go-rod, driving a real Chrome
// instance rather than a Selenium-style remote server.

package wordleweb

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/robalobadob/ainyt-go/internal/wordle"
)

const wordleURL = "https://www.nytimes.com/games/wordle/index.html"

// dismissalSelectors are clicked in order right after the page loads,
// mirroring the cookie-banner/welcome-modal/help-modal dismissal loop
// in WordleWebDriver::create. Any selector that isn't present within
// its own short timeout is skipped rather than treated as fatal — the
// page doesn't always show all three.
var dismissalSelectors = []string{
	"button[data-testid=\"icon-close\"]",
	".purr-blocker-card__button",
	"button[aria-label=\"Close\"]",
}

// Browser wraps a connected rod browser and the Wordle page, one game
// per Browser instance (matching one WordleWebDriver per game in the
// original source).
type Browser struct {
	browser *rod.Browser
	page    *rod.Page
	row     int
}

// Open launches (or attaches to, if wsURL is non-empty) a browser,
// navigates to the Wordle page, and dismisses the onboarding modals.
func Open(wsURL string) (*Browser, error) {
	b := rod.New()
	if wsURL != "" {
		b = b.ControlURL(wsURL)
	}
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("wordleweb: connect: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: wordleURL})
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("wordleweb: open page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("wordleweb: wait load: %w", err)
	}

	wb := &Browser{browser: b, page: page}
	wb.dismissOnboarding()
	return wb, nil
}

func (wb *Browser) dismissOnboarding() {
	for _, sel := range dismissalSelectors {
		el, err := wb.page.Timeout(500 * time.Millisecond).Element(sel)
		if err != nil {
			continue
		}
		_ = el.Click("left", 1)
		time.Sleep(250 * time.Millisecond)
	}
}

// Close releases the underlying browser.
func (wb *Browser) Close() error {
	if wb.browser == nil {
		return nil
	}
	return wb.browser.Close()
}

// Oracle returns a wordle.Oracle backed by this browser session: each
// call types the guess into the on-screen keyboard, submits it, and
// scrapes the resulting row's tile states.
func (wb *Browser) Oracle() wordle.Oracle {
	return func(guess wordle.Word) (wordle.Pattern, error) {
		wb.row++
		if err := wb.enterGuess(guess); err != nil {
			return wordle.Pattern{}, err
		}
		time.Sleep(2 * time.Second)
		return wb.readRow(wb.row)
	}
}

func (wb *Browser) enterGuess(guess wordle.Word) error {
	for _, ch := range strings.ToLower(guess.String()) {
		key, err := wb.page.Element(fmt.Sprintf("button[data-key=%q]", string(ch)))
		if err != nil {
			return fmt.Errorf("wordleweb: key %q not found: %w", ch, err)
		}
		if err := key.Click("left", 1); err != nil {
			return fmt.Errorf("wordleweb: click key %q: %w", ch, err)
		}
	}
	time.Sleep(300 * time.Millisecond)

	enter, err := wb.page.Element("button[data-key=\"↵\"]")
	if err != nil {
		return fmt.Errorf("wordleweb: enter key not found: %w", err)
	}
	if err := enter.Click("left", 1); err != nil {
		return fmt.Errorf("wordleweb: click enter: %w", err)
	}
	return nil
}

func (wb *Browser) readRow(row int) (wordle.Pattern, error) {
	rowEl, err := wb.page.Element(fmt.Sprintf("div[aria-label=%q]", fmt.Sprintf("Row %d", row)))
	if err != nil {
		return wordle.Pattern{}, fmt.Errorf("wordleweb: row %d not found: %w", row, err)
	}
	tiles, err := rowEl.Elements("div[aria-roledescription=\"tile\"]")
	if err != nil {
		return wordle.Pattern{}, fmt.Errorf("wordleweb: tiles in row %d: %w", row, err)
	}

	var pattern wordle.Pattern
	for i, tile := range tiles {
		if i >= len(pattern) {
			break
		}
		state, err := tile.Attribute("data-state")
		if err != nil || state == nil {
			return wordle.Pattern{}, fmt.Errorf("wordleweb: tile %d in row %d has no data-state", i, row)
		}
		switch *state {
		case "absent":
			pattern[i] = wordle.Wrong
		case "present":
			pattern[i] = wordle.Misplaced
		case "correct":
			pattern[i] = wordle.Correct
		default:
			return wordle.Pattern{}, fmt.Errorf("wordleweb: unrecognized tile state %q", *state)
		}
	}
	return pattern, nil
}
