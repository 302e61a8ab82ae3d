package twelvedata

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/watchfolio/date"
)

// diskCache implements a simple disk cache for HTTP responses.
//
// Entries expire daily: the key of a request includes the current day.
type diskCache struct {
	base  http.RoundTripper
	dir   string
	today func() date.Date
}

func newDiskCache(base http.RoundTripper, dir string) *diskCache {
	return &diskCache{base: base, dir: dir, today: date.Today}
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If a fresh cached response is not found, it proceeds
// with the actual HTTP request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	file := c.path(req)

	cachedResp, err := c.get(file, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	slog.Debug("http", slog.String("method", req.Method), slog.String("host", req.URL.Host), slog.String("path", req.URL.Path), slog.String("status", resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(file, resp); err != nil {
		slog.Warn("cache write error (ignored)", slog.String("err", err.Error()))
	}
	return resp, nil
}

// path returns the cache file of req, the key includes the day.
func (c *diskCache) path(req *http.Request) string {
	key := fmt.Sprintf("%s %s %s", c.today(), req.Method, req.URL.String())
	return filepath.Join(c.dir, fmt.Sprintf("%x", sha1.Sum([]byte(key))))
}

// get retrieves a cached response from disk
func (c *diskCache) get(file string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(file string, resp *http.Response) (err error) {
	// DumpResponse reads the body and replaces it with an in memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, content, 0o644)
}

// forget removes the cached response of req, if any.
func (c *diskCache) forget(req *http.Request) {
	if req == nil {
		return
	}
	if err := os.Remove(c.path(req)); err != nil && !os.IsNotExist(err) {
		slog.Warn("cache delete error (ignored)", slog.String("err", err.Error()))
	}
}
