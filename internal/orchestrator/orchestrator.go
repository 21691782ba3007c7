// Package orchestrator runs a full scrape: it lists the terms of every campus, then
// fetches and extracts the courses of every term, and assembles the result document.
//
// The run has two concurrent phases. Term listing for all campuses completes before
// any course page is fetched. Courses are then fetched campus by campus, with all
// terms of one campus in flight together. Every task writes into its own slot of the
// result, so no locking is needed around the assembled data.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pfrederiksen/au-courses/internal/course"
	"github.com/pfrederiksen/au-courses/internal/logger"
	"github.com/pfrederiksen/au-courses/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// DefaultCampuses are the campus codes scraped when none are configured:
// Sault Ste. Marie, Brampton, Timmins and the online designation
var DefaultCampuses = []string{"SSM", "BRA", "TIM", "ONL"}

const (
	DefaultConcurrency    = 8
	DefaultRequestTimeout = 60 * time.Second
)

// ErrPartial is returned with a result that is missing some campuses or terms
var ErrPartial = errors.New("scrape completed with failures")

// Policy decides what happens when a single campus or term fails
type Policy int

const (
	// FailFast aborts the whole run on the first failure
	FailFast Policy = iota
	// Partial records failures in the result and keeps going
	Partial
)

func (p Policy) String() string {
	if p == Partial {
		return "partial"
	}
	return "fail-fast"
}

// Source lists terms and extracts courses for a campus
type Source interface {
	ListTerms(ctx context.Context, campus string) ([]course.Term, error)
	FetchCourses(ctx context.Context, campus, term string) ([]*course.Course, error)
}

// Options configures an Orchestrator
type Options struct {
	Campuses       []string
	Concurrency    int
	RequestTimeout time.Duration
	Policy         Policy
	// Now stamps the result; defaults to time.Now
	Now func() time.Time
}

// Orchestrator drives a scrape over a Source
type Orchestrator struct {
	source  Source
	opts    Options
	metrics *metrics.Metrics
}

// New creates an Orchestrator. Zero-valued options fall back to the defaults.
func New(source Source, opts Options, m *metrics.Metrics) *Orchestrator {
	if len(opts.Campuses) == 0 {
		opts.Campuses = DefaultCampuses
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if m == nil {
		m = metrics.New()
	}

	return &Orchestrator{
		source:  source,
		opts:    opts,
		metrics: m,
	}
}

// campusTerms is the phase one slot of a single campus
type campusTerms struct {
	terms []course.Term
	err   error
}

// Run performs the scrape. With FailFast any error aborts the run and no result is
// returned. With Partial the result is always returned, together with ErrPartial
// when something failed.
func (o *Orchestrator) Run(ctx context.Context) (*course.ScrapeResult, error) {
	start := time.Now()
	logger.Info("Starting scrape", logger.Fields{
		"campuses":    o.opts.Campuses,
		"concurrency": o.opts.Concurrency,
		"policy":      o.opts.Policy.String(),
	})

	listed, err := o.listTerms(ctx)
	if err != nil {
		return nil, err
	}

	result := course.NewScrapeResult(o.opts.Now())

	for i, campus := range o.opts.Campuses {
		if listed[i].err != nil {
			result.Campuses[campus] = &course.Campus{Terms: []course.TermCourses{}}
			result.Failures = append(result.Failures, course.Failure{
				Campus: campus,
				Error:  listed[i].err.Error(),
			})
			continue
		}

		terms, failures, err := o.fetchCampus(ctx, campus, listed[i].terms)
		if err != nil {
			return nil, err
		}
		result.Campuses[campus] = &course.Campus{Terms: terms}
		result.Failures = append(result.Failures, failures...)
	}

	o.metrics.RecordTiming("scrape", time.Since(start))
	o.metrics.SetGauge("courses", float64(result.CourseCount()))

	logger.Info("Scrape finished", logger.Fields{
		"campuses": len(result.Campuses),
		"courses":  result.CourseCount(),
		"failures": len(result.Failures),
		"duration": time.Since(start).String(),
	})

	if len(result.Failures) > 0 {
		return result, fmt.Errorf("%w: %d failed", ErrPartial, len(result.Failures))
	}
	return result, nil
}

// listTerms is phase one: the terms of every campus, concurrently
func (o *Orchestrator) listTerms(ctx context.Context) ([]campusTerms, error) {
	listed := make([]campusTerms, len(o.opts.Campuses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Concurrency)

	for i, campus := range o.opts.Campuses {
		g.Go(func() error {
			terms, err := o.listCampus(gctx, campus)
			if err != nil {
				if o.opts.Policy == FailFast {
					return err
				}
				listed[i].err = err
				return nil
			}
			listed[i].terms = terms
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listed, nil
}

func (o *Orchestrator) listCampus(ctx context.Context, campus string) ([]course.Term, error) {
	ctx, cancel := context.WithTimeout(ctx, o.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	terms, err := o.source.ListTerms(ctx, campus)
	o.metrics.RecordTiming("list_terms", time.Since(start))
	if err != nil {
		o.metrics.IncrCounter("list_terms.failed")
		logger.Error("Listing terms failed", logger.Fields{"campus": campus}, err)
		return nil, fmt.Errorf("campus %s: %w", campus, err)
	}

	o.metrics.IncrCounter("list_terms.ok")
	logger.Debug("Listed terms", logger.Fields{"campus": campus, "terms": len(terms)})
	return terms, nil
}

// fetchCampus is phase two for one campus: the courses of every term, concurrently
func (o *Orchestrator) fetchCampus(ctx context.Context, campus string, terms []course.Term) ([]course.TermCourses, []course.Failure, error) {
	out := make([]course.TermCourses, len(terms))
	errs := make([]error, len(terms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Concurrency)

	for i, term := range terms {
		out[i] = course.TermCourses{Code: term.Code, Name: term.Name, Courses: []*course.Course{}}

		g.Go(func() error {
			courses, err := o.fetchTerm(gctx, campus, term)
			if err != nil {
				if o.opts.Policy == FailFast {
					return err
				}
				errs[i] = err
				return nil
			}
			out[i].Courses = courses
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var failures []course.Failure
	for i, err := range errs {
		if err != nil {
			failures = append(failures, course.Failure{
				Campus: campus,
				Term:   terms[i].Code,
				Error:  err.Error(),
			})
		}
	}

	return out, failures, nil
}

func (o *Orchestrator) fetchTerm(ctx context.Context, campus string, term course.Term) ([]*course.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, o.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	courses, err := o.source.FetchCourses(ctx, campus, term.Code)
	o.metrics.RecordTiming("fetch_courses", time.Since(start))
	if err != nil {
		o.metrics.IncrCounter("fetch_courses.failed")
		logger.Error("Fetching courses failed", logger.Fields{"campus": campus, "term": term.Code}, err)
		return nil, fmt.Errorf("campus %s term %s: %w", campus, term.Code, err)
	}

	if courses == nil {
		courses = []*course.Course{}
	}

	o.metrics.IncrCounter("fetch_courses.ok")
	o.metrics.AddCounter("courses_extracted", float64(len(courses)))
	logger.Debug("Extracted courses", logger.Fields{
		"campus":  campus,
		"term":    term.Code,
		"courses": len(courses),
	})
	return courses, nil
}
