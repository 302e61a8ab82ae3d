package watchfolio

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrMultiplePortfolios is returned when more than one watchlist is flagged as the portfolio.
var ErrMultiplePortfolios = errors.New("more than one watchlist is the portfolio")

// ErrDuplicateWatchlist is returned when two watchlists share a name.
var ErrDuplicateWatchlist = errors.New("duplicate watchlist name")

// validateWatchlists checks field constraints declared in the struct tags,
// then the rules spanning several watchlists.
func validateWatchlists(doc *ywatchlists) error {
	if err := validator.New().Struct(doc); err != nil {
		return fmt.Errorf("invalid watchlists: %w", err)
	}

	names := make(map[string]bool)
	var portfolio string
	for _, w := range doc.Watchlists {
		if names[w.Name] {
			return fmt.Errorf("%w %q", ErrDuplicateWatchlist, w.Name)
		}
		names[w.Name] = true

		for _, h := range w.Holdings {
			for i, p := range h.Purchases {
				if p.Date.IsZero() {
					return fmt.Errorf("invalid watchlists: %s purchase #%d of %s has no date", w.Name, i+1, h.Ticker)
				}
			}
		}

		if !w.Portfolio {
			continue
		}
		if portfolio != "" {
			return fmt.Errorf("%w: %q and %q", ErrMultiplePortfolios, portfolio, w.Name)
		}
		portfolio = w.Name
	}
	return nil
}
