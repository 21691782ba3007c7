package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	CalendarURL = "https://students.algomau.ca/academic/calendarView2"
	UserAgent   = "au-courses/1.0 (github.com/pfrederiksen/au-courses)"
	Timeout     = 30 * time.Second
)

var (
	// ErrUnreachable means the calendar server could not be reached or dropped the connection
	ErrUnreachable = errors.New("calendar unreachable")
	// ErrBadStatus means the server answered with a non-success status code
	ErrBadStatus = errors.New("unexpected status code")
	// ErrPageShape means the page no longer has the markup the scraper relies on
	ErrPageShape = errors.New("unexpected page shape")
)

// Options configures a Scraper
type Options struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
	// CacheDir enables the on-disk response cache when non-empty
	CacheDir string
	// AcceptErrorPages passes non-2xx bodies to the parser instead of failing
	AcceptErrorPages bool
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		URL:       CalendarURL,
		UserAgent: UserAgent,
		Timeout:   Timeout,
	}
}

// Scraper handles fetching and parsing calendar pages
type Scraper struct {
	collector *colly.Collector
	url       string
}

// New creates a new Scraper with the default options
func New() *Scraper {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Scraper from explicit options. Zero values fall back
// to the defaults.
func NewWithOptions(opts Options) *Scraper {
	def := DefaultOptions()
	if opts.URL == "" {
		opts.URL = def.URL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}

	c := colly.NewCollector(
		colly.UserAgent(opts.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(opts.Timeout)
	// colly truncates bodies at 10 MiB by default; term pages must arrive whole
	c.MaxBodySize = 0
	c.CacheDir = opts.CacheDir
	c.ParseHTTPErrorResponse = opts.AcceptErrorPages

	return &Scraper{
		collector: c,
		url:       opts.URL,
	}
}

// URL returns the calendar endpoint the scraper talks to
func (s *Scraper) URL() string {
	return s.url
}

// BuildCalendarURL appends the campus and optional term to the calendar endpoint.
// The term parameter comes first and is omitted when term is empty.
func BuildCalendarURL(base, campus, term string) string {
	params := "?"
	if term != "" {
		params += "term=" + url.QueryEscape(term) + "&"
	}
	params += "campus=" + url.QueryEscape(campus)
	return base + params
}

// FetchCalendar fetches the raw calendar page for a campus and optional term
func (s *Scraper) FetchCalendar(ctx context.Context, campus, term string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", campus, err)
	}

	target := BuildCalendarURL(s.url, campus, term)

	var (
		body     []byte
		status   int
		received bool
	)

	// Clone keeps the shared transport and cache but starts without callbacks
	c := s.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		status = r.StatusCode
		received = true
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	// colly has no context support, so the visit runs aside and is abandoned on cancel
	done := make(chan error, 1)
	go func() {
		done <- c.Visit(target)
	}()

	var err error
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetching %s: %w", target, ctx.Err())
	case err = <-done:
	}

	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("fetching %s: %w: %d", target, ErrBadStatus, status)
		}
		return nil, fmt.Errorf("fetching %s: %w: %v", target, ErrUnreachable, err)
	}

	if !received {
		return nil, fmt.Errorf("fetching %s: %w: empty response", target, ErrUnreachable)
	}

	return body, nil
}
