// Package cli implements the command-line interface for au-courses.
//
// The root command scrapes every configured campus and term and writes the result as
// JSON (and optionally CSV) to the output path. The terms subcommand only lists the
// terms each campus offers, as text or JSON. It coordinates the config, scraper,
// orchestrator, storage and metrics packages.
package cli
