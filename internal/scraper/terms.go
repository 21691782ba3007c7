package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/au-courses/internal/course"
)

// termSelector locates the term dropdown on the calendar page
const termSelector = `[name="term"]`

// ListTerms fetches the calendar page of a campus without a term and returns the
// terms offered by its term selector, in page order
func (s *Scraper) ListTerms(ctx context.Context, campus string) ([]course.Term, error) {
	body, err := s.FetchCalendar(ctx, campus, "")
	if err != nil {
		return nil, err
	}

	terms, err := parseTerms(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("listing terms for %s: %w", campus, err)
	}

	return terms, nil
}

// parseTerms extracts the term options from a calendar page
func parseTerms(r io.Reader) ([]course.Term, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	selector := doc.Find(termSelector).First()
	if selector.Length() == 0 {
		return nil, fmt.Errorf("%w: no term selector", ErrPageShape)
	}

	terms := make([]course.Term, 0)
	selector.Children().Each(func(_ int, opt *goquery.Selection) {
		name := strings.TrimSpace(opt.Text())
		code, ok := opt.Attr("value")
		if !ok {
			code = name
		}
		terms = append(terms, course.Term{Code: code, Name: name})
	})

	return terms, nil
}
