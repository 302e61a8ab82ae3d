package twelvedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/config"
	"github.com/etnz/watchfolio/logctx"
	"github.com/go-resty/resty/v2"
)

// maxSymbolsPerRequest is the batch limit of the time_series endpoint.
const maxSymbolsPerRequest = 120

// APIError is an error reported by the API in the response body.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twelvedata: %s (code %d)", e.Message, e.Code)
}

// Client queries the Twelve Data API.
type Client struct {
	client     *resty.Client
	cache      *diskCache // nil if disabled
	apiKey     string
	interval   string
	outputSize int
}

// New returns a client configured by cfg.
func New(cfg *config.Config) *Client {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.URL)
	c := &Client{
		client:     client,
		apiKey:     cfg.API.Key,
		interval:   cfg.API.Interval,
		outputSize: cfg.API.OutputSize,
	}
	if !cfg.Cache.Disabled {
		c.cache = newDiskCache(http.DefaultTransport, cfg.Cache.Dir)
		client.SetTransport(c.cache)
	}
	return c
}

// get performs a GET on path and returns the decoded JSON body, after
// checking for API errors.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	rqID := logctx.RequestID(ctx)
	slog.Debug("start twelvedata request", slog.String("path", path), slog.String("rqID", rqID))

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		SetQueryParam("apikey", c.apiKey).
		Get(path)
	if err != nil {
		slog.Error("error while dialing twelvedata", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, fmt.Errorf("cannot http GET %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cannot http GET %s: %s", path, resp.Status())
	}

	body := resp.Body()
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		slog.Error("can't unmarshall twelvedata response", slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, fmt.Errorf("invalid response from %s: %w", path, err)
	}
	if err := apiError(jobj); err != nil {
		// Error payloads come with a 200 status, they must not stay in cache.
		if c.cache != nil {
			c.cache.forget(resp.Request.RawRequest)
		}
		slog.Warn("twelvedata error", slog.String("path", path), slog.String("err", err.Error()), slog.String("rqID", rqID))
		return nil, err
	}

	slog.Debug("twelvedata request complete", slog.String("path", path), slog.String("rqID", rqID))
	return body, nil
}

// apiError returns the error described by a JSON object with an error status, or nil.
func apiError(jobj any) error {
	status, err := jsonpath.Get("$.status", jobj)
	if err != nil || status != "error" {
		return nil
	}
	e := &APIError{}
	if msg, err := jsonpath.Get("$.message", jobj); err == nil {
		e.Message, _ = msg.(string)
	}
	if code, err := jsonpath.Get("$.code", jobj); err == nil {
		if f, ok := code.(float64); ok {
			e.Code = int(f)
		}
	}
	return e
}

// TimeSeries returns the price history of each symbol, keyed by symbol.
//
// A symbol the API reports an error for is omitted from the result.
func (c *Client) TimeSeries(ctx context.Context, symbols ...string) (map[string]TimeSeries, error) {
	series := make(map[string]TimeSeries, len(symbols))
	for batch := range slices.Chunk(symbols, maxSymbolsPerRequest) {
		if err := c.timeSeries(ctx, batch, series); err != nil {
			return nil, err
		}
	}
	return series, nil
}

func (c *Client) timeSeries(ctx context.Context, symbols []string, series map[string]TimeSeries) error {
	params := map[string]string{
		"symbol":     strings.Join(symbols, ","),
		"interval":   c.interval,
		"outputsize": strconv.Itoa(c.outputSize),
	}
	body, err := c.get(ctx, "/time_series", params)
	var apiErr *APIError
	if len(symbols) == 1 && errors.As(err, &apiErr) && (apiErr.Code == http.StatusBadRequest || apiErr.Code == http.StatusNotFound) {
		// An unknown symbol has no time series, like in a batch.
		slog.Warn("no time series", slog.String("symbol", symbols[0]), slog.String("err", apiErr.Message), logctx.Attr(ctx))
		return nil
	}
	if err != nil {
		return err
	}

	// A single symbol gets the time series itself, several get a map of them.
	if len(symbols) == 1 {
		var ts TimeSeries
		if err := json.Unmarshal(body, &ts); err != nil {
			return fmt.Errorf("invalid time series for %s: %w", symbols[0], err)
		}
		series[symbols[0]] = ts
		return nil
	}

	var batch map[string]TimeSeries
	if err := json.Unmarshal(body, &batch); err != nil {
		return fmt.Errorf("invalid time series for %v: %w", symbols, err)
	}
	for symbol, ts := range batch {
		if ts.Status == "error" {
			slog.Warn("no time series", slog.String("symbol", symbol), slog.String("err", ts.Message), logctx.Attr(ctx))
			continue
		}
		series[symbol] = ts
	}
	return nil
}

// Holdings returns a growth-only holding for each symbol that has prices.
func (c *Client) Holdings(ctx context.Context, symbols ...string) ([]watchfolio.Holding, error) {
	series, err := c.TimeSeries(ctx, symbols...)
	if err != nil {
		return nil, err
	}
	return NewHoldings(series, c.outputSize), nil
}

// Search searches for securities by symbol or name.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	body, err := c.get(ctx, "/symbol_search", map[string]string{"symbol": query})
	if err != nil {
		return nil, err
	}
	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("invalid search response: %w", err)
	}
	return resp.Data, nil
}
