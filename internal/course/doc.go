// Package course provides the data model for scraped course-calendar records.
//
// The course package turns the raw texts of one calendar panel (title, registration
// banner, schedule lines, staff fragments and description) into a typed Course. It owns
// every field-classification rule: course-code splitting, registration status matching,
// schedule line classification and instructor/delivery parsing. It also defines the
// ScrapeResult document that is written at the end of a run.
package course
