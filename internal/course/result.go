package course

import (
	"time"
)

// ScrapeResult is the document produced by one run
type ScrapeResult struct {
	ScrapeDate int64              `json:"scrape_date"` // unix milliseconds
	Campuses   map[string]*Campus `json:"campuses"`
	Failures   []Failure          `json:"failures,omitempty"`
}

// Campus holds every term scraped for one campus code
type Campus struct {
	Terms []TermCourses `json:"terms"`
}

// TermCourses is a term together with its courses in page order
type TermCourses struct {
	Code    string    `json:"code"`
	Name    string    `json:"name"`
	Courses []*Course `json:"courses"`
}

// Failure records a campus or term that could not be scraped in partial mode
type Failure struct {
	Campus string `json:"campus"`
	Term   string `json:"term,omitempty"`
	Error  string `json:"error"`
}

// NewScrapeResult creates an empty result stamped with the given time
func NewScrapeResult(at time.Time) *ScrapeResult {
	return &ScrapeResult{
		ScrapeDate: at.UnixMilli(),
		Campuses:   make(map[string]*Campus),
	}
}

// CourseCount returns the total number of courses across all campuses and terms
func (r *ScrapeResult) CourseCount() int {
	n := 0
	for _, c := range r.Campuses {
		for _, t := range c.Terms {
			n += len(t.Courses)
		}
	}
	return n
}
