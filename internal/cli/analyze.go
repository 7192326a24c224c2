package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"brandkit/internal/brand"
	"brandkit/internal/colour"
)

var (
	// Analyze command flags
	analyzeLogo    string
	analyzeWebsite string
	analyzeColours int
	analyzeFormat  string
	analyzeOutput  string
	analyzeCache   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derive a brand palette from a logo and/or website",
	Long: `Analyze one or both brand sources and produce a single brand
palette.

When both a logo and a website are given, each yields its own palette
and the two are merged: the logo keeps the primary and accent slots,
while the website's dominant color becomes the merged secondary. A
source that fails to yield colors is skipped; if nothing yields colors
at all, a default black/white palette with a blue accent is returned.

Examples:
  # Logo only
  brandkit analyze --logo logo.png

  # Website only
  brandkit analyze --website https://example.com

  # Both, with website images cached locally
  brandkit analyze --logo logo.png --website https://example.com --cache`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLogo, "logo", "", "logo image (file path or URL)")
	analyzeCmd.Flags().StringVar(&analyzeWebsite, "website", "", "website URL")
	analyzeCmd.Flags().IntVarP(&analyzeColours, "colours", "c", 6, "number of colours to extract per image (1-64)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatAuto, "output format (auto, json, hex, preview)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeCache, "cache", false, "cache website images locally")
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeLogo == "" && analyzeWebsite == "" {
		return fmt.Errorf("provide --logo and/or --website")
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.AlgorithmKMeans,
		ColorCount: analyzeColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd)
	analyzer := brand.NewAnalyzer(logger, colour.NewKMeansExtractor(), config.ColorCount)
	analyzer.CacheWebsiteImages = analyzeCache

	analysis, err := analyzer.Analyze(cmd.Context(), analyzeLogo, analyzeWebsite)
	if err != nil {
		return err
	}

	output, err := renderAnalysis(analysis, resolveFormat(analyzeFormat, analyzeOutput))
	if err != nil {
		return err
	}

	return writeOutput(output, analyzeOutput)
}

// renderAnalysis renders the full analysis as JSON, or just the final
// palette for the terminal-oriented formats.
func renderAnalysis(analysis *brand.Analysis, format string) (string, error) {
	if format == formatJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render analysis: %w", err)
		}
		return string(data) + "\n", nil
	}
	return renderPalette(analysis.Palette, format)
}
