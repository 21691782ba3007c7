package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/au-courses/internal/course"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// TermListing holds the terms offered by one campus
type TermListing struct {
	Campus string        `json:"campus"`
	Terms  []course.Term `json:"terms"`
}

// WriteTerms writes term listings in the specified format
func WriteTerms(w io.Writer, listings []TermListing, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, listings)
	case FormatText:
		return writeText(w, listings)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs listings as JSON
func writeJSON(w io.Writer, listings []TermListing) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(listings)
}

// writeText outputs listings as human-readable text
func writeText(w io.Writer, listings []TermListing) error {
	for i, listing := range listings {
		if i > 0 {
			fmt.Fprintln(w)
		}

		if len(listing.Terms) == 0 {
			fmt.Fprintf(w, "%s: no terms\n", listing.Campus)
			continue
		}

		fmt.Fprintf(w, "%s (%d terms)\n", listing.Campus, len(listing.Terms))
		for _, term := range listing.Terms {
			fmt.Fprintf(w, "  %s  %s\n", term.Code, term.Name)
		}
	}
	return nil
}
