package lanes

import (
	"sync/atomic"

	"github.com/raminaphoto/website/pkg/models"
)

/*
CurrentContent holds the content set of the most recent live load cycle.
The gallery modal navigates this portfolio. Fallback cycles never replace
live content, so a visitor whose load failed cannot take away the cards
another visitor is already looking at.
*/
type CurrentContent struct {
	value atomic.Pointer[snapshot]
}

type snapshot struct {
	content models.ContentSet
	live    bool
}

/*
Record keeps the content of a finished load cycle. A fallback result is
only kept while no live content has been seen.
*/
func (c *CurrentContent) Record(result LoadResult) {
	next := &snapshot{content: result.Content, live: result.Live}

	for {
		current := c.value.Load()

		if current != nil && current.live && !next.live {
			return
		}

		if c.value.CompareAndSwap(current, next) {
			return
		}
	}
}

// Portfolio returns the portfolio of the latest kept cycle, or nil before the first one.
func (c *CurrentContent) Portfolio() []models.PortfolioItem {
	current := c.value.Load()

	if current == nil {
		return nil
	}

	return current.content.Portfolio
}
