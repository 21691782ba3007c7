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

// The course listing has no id or class of its own. It is the first child of the
// fourth ".row" element in document order.
const (
	CourseRowIndex       = 3
	CourseListChildIndex = 0
)

// Selectors inside a single course panel
const (
	panelTitleSelector = ".panel-title"
	panelBodySelector  = ".panel-body"
	pullLeftSelector   = ".pull-left"
	pullRightSelector  = ".pull-right"
)

// FetchCourses fetches the calendar page of a campus and term and extracts its courses
func (s *Scraper) FetchCourses(ctx context.Context, campus, term string) ([]*course.Course, error) {
	body, err := s.FetchCalendar(ctx, campus, term)
	if err != nil {
		return nil, err
	}

	courses, err := parseCourses(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("extracting courses for %s/%s: %w", campus, term, err)
	}

	return courses, nil
}

// parseCourses extracts every course panel from a term page, in page order
func parseCourses(r io.Reader) ([]*course.Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	row := doc.Find(".row").Eq(CourseRowIndex)
	if row.Length() == 0 {
		return nil, fmt.Errorf("%w: course row %d not found", ErrPageShape, CourseRowIndex)
	}

	list := row.Children().Eq(CourseListChildIndex)
	if list.Length() == 0 {
		return nil, fmt.Errorf("%w: course list not found", ErrPageShape)
	}

	panels := list.Children()
	courses := make([]*course.Course, 0, panels.Length())
	for i := range panels.Nodes {
		p, err := extractPanel(panels.Eq(i))
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		courses = append(courses, course.NewCourse(p))
	}

	return courses, nil
}

// extractPanel pulls the raw texts out of one course panel
func extractPanel(panel *goquery.Selection) (course.Panel, error) {
	var p course.Panel

	title := panel.Find(panelTitleSelector).First()
	if title.Length() == 0 {
		return p, missing(panelTitleSelector)
	}

	body := panel.Find(panelBodySelector).First()
	if body.Length() == 0 {
		return p, missing(panelBodySelector)
	}

	// The first .pull-right of the panel sits in the heading, before the body
	registration := panel.Find(pullRightSelector).First()
	if registration.Length() == 0 {
		return p, missing(pullRightSelector)
	}

	schedule := body.Find(pullLeftSelector).First().Children().First()
	if schedule.Length() == 0 {
		return p, missing(panelBodySelector + " " + pullLeftSelector + " > *")
	}

	staff := body.Find(pullRightSelector).First()
	if staff.Length() == 0 {
		return p, missing(panelBodySelector + " " + pullRightSelector)
	}

	description := body.Children().Last()
	if description.Length() == 0 {
		return p, missing(panelBodySelector + " > *")
	}

	p.Title = strings.TrimSpace(title.Text())
	p.Registration = strings.TrimSpace(registration.Text())
	p.ScheduleLines = splitLines(schedule)
	staff.Children().Each(func(_ int, frag *goquery.Selection) {
		p.Staff = append(p.Staff, strings.TrimSpace(frag.Text()))
	})
	p.Description = description.Text()

	return p, nil
}

// splitLines splits the content of an element on <br> tags. A block ending in <br>
// yields a trailing blank line.
func splitLines(sel *goquery.Selection) []string {
	lines := []string{""}
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "br" {
			lines = append(lines, "")
			return
		}
		lines[len(lines)-1] += node.Text()
	})

	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func missing(selector string) error {
	return fmt.Errorf("%w: missing %s", ErrPageShape, selector)
}
