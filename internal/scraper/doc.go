// Package scraper provides HTTP fetching and HTML parsing for the course calendar.
//
// The scraper package fetches calendarView2 pages per campus and term, lists the terms
// offered by a campus from the term selector, and walks the course panels of a term page
// into course.Panel values. Fetching goes through a colly collector that carries the
// identifying user agent, the request timeout and an optional on-disk response cache.
// Markup that no longer matches the expected structure is reported as ErrPageShape.
package scraper
