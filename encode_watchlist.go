package watchfolio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/watchfolio/date"
	"gopkg.in/yaml.v3"
)

// This file reads the watchlists file: a human-edited YAML document listing
// watchlists, their tickers and the lots bought. It is the purchase source
// merged into freshly fetched holdings with AttachPurchases.

// to parse the yaml, we use dedicated local structs with tag annotations.

type ywatchlists struct {
	Watchlists []ywatchlist `yaml:"watchlists" validate:"dive"`
}

type ywatchlist struct {
	Name      string     `yaml:"name" validate:"required"`
	Owned     bool       `yaml:"owned"`
	Portfolio bool       `yaml:"portfolio"`
	Holdings  []yholding `yaml:"holdings" validate:"dive"`
}

type yholding struct {
	Ticker    string      `yaml:"ticker" validate:"required"`
	Currency  string      `yaml:"currency" validate:"omitempty,len=3,alpha"`
	Purchases []ypurchase `yaml:"purchases" validate:"dive"`
}

type ypurchase struct {
	Price  float64   `yaml:"price" validate:"gt=0"`
	Shares float64   `yaml:"shares" validate:"gt=0"`
	Date   date.Date `yaml:"date"`
}

// DecodeWatchlists reads watchlists from a YAML document.
//
// Tickers are upper-cased. The document is rejected if it fails validation,
// if two watchlists share a name, or if more than one watchlist is the
// portfolio.
func DecodeWatchlists(r io.Reader) ([]Watchlist, error) {
	var doc ywatchlists
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("format error in watchlists: %w", err)
	}
	if err := validateWatchlists(&doc); err != nil {
		return nil, err
	}

	watchlists := make([]Watchlist, 0, len(doc.Watchlists))
	for _, yw := range doc.Watchlists {
		w := Watchlist{Name: yw.Name, Owned: yw.Owned, Portfolio: yw.Portfolio}
		for _, yh := range yw.Holdings {
			h := Holding{
				Ticker:   strings.ToUpper(yh.Ticker),
				Currency: strings.ToUpper(yh.Currency),
			}
			for _, yp := range yh.Purchases {
				h.Purchases = append(h.Purchases, NewPurchase(yp.Price, yp.Shares, yp.Date))
			}
			w.Holdings = append(w.Holdings, h)
		}
		watchlists = append(watchlists, w)
	}
	return watchlists, nil
}

// DecodeWatchlistsFile reads watchlists from the named YAML file.
func DecodeWatchlistsFile(filename string) ([]Watchlist, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ws, err := DecodeWatchlists(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ws, nil
}
