package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"villasunset/internal/domain/calendar"
)

var (
	// ErrYearNotSupported means no sheet tab is mapped for the requested year.
	ErrYearNotSupported = errors.New("sheets: year not supported")
	// ErrFetch is a network failure or non-2xx from the sheet export.
	ErrFetch = errors.New("sheets: upstream fetch failed")
	// ErrFormat means the export returned an HTML page instead of CSV, which
	// happens when the sheet is not public or the export URL moved.
	ErrFormat = errors.New("sheets: upstream returned non-CSV payload")
)

// Options configures a Client. Zero values get production defaults.
type Options struct {
	BaseURL  string            // export URL prefix, GID appended
	GIDs     map[string]string // year -> sheet tab GID
	Timeout  time.Duration     // per-attempt HTTP timeout
	Retries  uint64            // extra attempts on transient failures
	Interval time.Duration     // initial backoff interval
	CacheTTL time.Duration     // how long parsed rows are reused
	Logger   *slog.Logger
}

// Client fetches the booking calendar's CSV export. Fetches are rate limited
// and retried with exponential backoff on transient failures, and parsed rows
// are cached per year for a short TTL so bursts of availability requests do
// not hammer the export endpoint.
type Client struct {
	http     *http.Client
	baseURL  string
	gids     map[string]string
	retries  uint64
	interval time.Duration
	cacheTTL time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	sheet     *calendar.Sheet
	fetchedAt time.Time
}

// NewClient builds a Client from options.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Interval <= 0 {
		opts.Interval = 500 * time.Millisecond
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		http:     &http.Client{Timeout: opts.Timeout, Transport: transport},
		baseURL:  opts.BaseURL,
		gids:     opts.GIDs,
		retries:  opts.Retries,
		interval: opts.Interval,
		cacheTTL: opts.CacheTTL,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 2),
		logger:   opts.Logger,
		cache:    map[string]cacheEntry{},
	}
}

// Rows returns the parsed booking sheet for a year, fetching the CSV export
// unless a fresh cached copy exists.
func (c *Client) Rows(ctx context.Context, year string) (*calendar.Sheet, error) {
	gid, ok := c.gids[year]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrYearNotSupported, year)
	}

	c.mu.Lock()
	entry, cached := c.cache[year]
	c.mu.Unlock()
	if cached && time.Since(entry.fetchedAt) < c.cacheTTL {
		return entry.sheet, nil
	}

	body, err := c.fetch(ctx, c.baseURL+gid)
	if err != nil {
		return nil, err
	}
	sheet := calendar.ParseCSV(body)

	c.mu.Lock()
	c.cache[year] = cacheEntry{sheet: sheet, fetchedAt: time.Now()}
	c.mu.Unlock()
	c.logger.Debug("booking sheet fetched", "year", year, "rows", len(sheet.Rows))
	return sheet, nil
}

// fetch performs the rate-limited, retried HTTP GET. Transport errors and 5xx
// responses are retried; other failures are permanent.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}

	attempt := func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", backoff.Permanent(fmt.Errorf("%w: %v", ErrFetch, err))
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
		req.Header.Set("Accept", "text/csv, text/plain, */*")

		resp, err := c.http.Do(req)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrFetch, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return "", fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", backoff.Permanent(fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode))
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrFetch, err)
		}
		body := string(data)
		if looksLikeHTML(body) {
			return "", backoff.Permanent(ErrFormat)
		}
		return body, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.interval
	return backoff.RetryWithData(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, c.retries), ctx))
}

func looksLikeHTML(body string) bool {
	return strings.Contains(body, "<html") || strings.Contains(body, "<HTML")
}
