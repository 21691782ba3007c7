// Package storage writes scrape results to disk.
//
// The result document is written once per run as JSON, compact by default to match the
// format consumers already read, or indented on request. A flat CSV export with one row
// per course is available for spreadsheet use. Write failures wrap ErrWrite so callers
// can tell them apart from scrape failures.
package storage
