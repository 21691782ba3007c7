package cli

import (
	"fmt"

	"github.com/pfrederiksen/au-courses/internal/logger"
	"github.com/pfrederiksen/au-courses/internal/scraper"
	"github.com/spf13/cobra"
)

func newTermsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "List the terms offered by each campus",
		Long: `Fetch the calendar landing page of each configured campus and print the
terms it offers without extracting any courses.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTerms,
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")

	return cmd
}

func runTerms(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outputFormat := OutputFormat(format)
	if outputFormat != FormatText && outputFormat != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sc := scraper.NewWithOptions(cfg.ScraperOptions())

	listings := make([]TermListing, 0, len(cfg.Campuses))
	for _, campus := range cfg.Campuses {
		terms, err := sc.ListTerms(cmd.Context(), campus)
		if err != nil {
			logger.Error("Listing terms failed", logger.Fields{"campus": campus, "kind": errorKind(err)}, err)
			return fmt.Errorf("listing terms for %s: %w", campus, err)
		}
		logger.Debug("Listed terms", logger.Fields{"campus": campus, "count": len(terms)})
		listings = append(listings, TermListing{Campus: campus, Terms: terms})
	}

	return WriteTerms(cmd.OutOrStdout(), listings, outputFormat)
}
