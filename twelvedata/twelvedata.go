// Package twelvedata fetches prices from the Twelve Data API
// (https://twelvedata.com) and turns them into watchfolio holdings.
package twelvedata

// TimeSeries is the response of the time_series endpoint for one symbol.
//
// Values are most recent first.
type TimeSeries struct {
	Meta    Meta    `json:"meta"`
	Values  []Value `json:"values"`
	Status  string  `json:"status"`
	Code    int     `json:"code,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Meta describes the symbol of a TimeSeries.
type Meta struct {
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
	Currency string `json:"currency"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}

// Value is a single point of a TimeSeries. Prices are decimal strings.
type Value struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high,omitempty"`
	Low      string `json:"low,omitempty"`
	Close    string `json:"close"`
	Volume   string `json:"volume,omitempty"`
}

// SearchResponse is the response of the symbol_search endpoint.
type SearchResponse struct {
	Data   []SearchResult `json:"data"`
	Status string         `json:"status"`
}

// SearchResult matches a single item of the symbol_search response.
type SearchResult struct {
	Symbol         string `json:"symbol"`
	InstrumentName string `json:"instrument_name"`
	Exchange       string `json:"exchange"`
	MICCode        string `json:"mic_code,omitempty"`
	Country        string `json:"country,omitempty"`
	Currency       string `json:"currency"`
	InstrumentType string `json:"instrument_type"`
}

// DigitalCurrency is the instrument type of crypto currencies.
const DigitalCurrency = "Digital Currency"

// DefaultExchanges are the exchanges supported when none are configured.
var DefaultExchanges = []string{"NASDAQ", "NYSE", "NYSE ARCA", "AMEX"}
