package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brandkit/internal/brand"
	"brandkit/internal/colour"
	"brandkit/internal/scraper"
)

var (
	// Scrape command flags
	scrapePalette bool
	scrapeFormat  string
	scrapeOutput  string
	scrapeColours int
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a website for brand information",
	Long: `Scrape a website and report its brand-relevant content: page
title, description, candidate brand images and inline CSS colors.

With --palette, a brand palette is also derived from the first usable
image on the page (usually the logo).

Examples:
  # Scrape a site
  brandkit scrape https://example.com

  # Scrape and derive a palette from the site's logo
  brandkit scrape --palette https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

// scrapeReport is the JSON document emitted by the scrape command.
type scrapeReport struct {
	*scraper.Result
	Palette *colour.ColorPalette `json:"palette,omitempty"`
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapePalette, "palette", false, "derive a palette from the first usable page image")
	scrapeCmd.Flags().IntVarP(&scrapeColours, "colours", "c", 6, "number of colours to extract (1-64)")
	scrapeCmd.Flags().StringVarP(&scrapeFormat, "format", "f", "json", "output format (json, text)")
	scrapeCmd.Flags().StringVarP(&scrapeOutput, "output", "o", "", "output file (default: stdout)")
}

// runScrape executes the scrape command.
func runScrape(cmd *cobra.Command, args []string) error {
	websiteURL := args[0]

	config := colour.ExtractorConfig{
		Algorithm:  colour.AlgorithmKMeans,
		ColorCount: scrapeColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd)
	analyzer := brand.NewAnalyzer(logger, colour.NewKMeansExtractor(), config.ColorCount)

	report := scrapeReport{}
	if scrapePalette {
		result, palette, err := analyzer.ScrapeWebsite(cmd.Context(), websiteURL)
		if err != nil {
			return err
		}
		report.Result = result
		report.Palette = palette
	} else {
		result, err := scraper.New(logger).Scrape(cmd.Context(), websiteURL)
		if err != nil {
			return err
		}
		report.Result = result
	}

	output, err := renderScrapeReport(report, scrapeFormat)
	if err != nil {
		return err
	}

	return writeOutput(output, scrapeOutput)
}

// renderScrapeReport renders the scrape result as JSON or plain text.
func renderScrapeReport(report scrapeReport, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render scrape report: %w", err)
		}
		return string(data) + "\n", nil
	case "text":
		var b strings.Builder
		fmt.Fprintf(&b, "url:         %s\n", report.URL)
		if report.Title != "" {
			fmt.Fprintf(&b, "title:       %s\n", report.Title)
		}
		if report.Description != "" {
			fmt.Fprintf(&b, "description: %s\n", report.Description)
		}
		for _, img := range report.Images {
			fmt.Fprintf(&b, "image:       %s\n", img)
		}
		if len(report.CSSColors) > 0 {
			fmt.Fprintf(&b, "css colors:  %s\n", strings.Join(report.CSSColors, " "))
		}
		if report.Palette != nil {
			b.WriteString("\n")
			b.WriteString(report.Palette.String())
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: json, text)", format)
	}
}
