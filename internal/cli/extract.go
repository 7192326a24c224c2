package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"brandkit/internal/brand"
	"brandkit/internal/colour"
	"brandkit/internal/image"
)

var (
	// Extract command flags
	extractColours   int
	extractAlgorithm string
	extractFormat    string
	extractOutput    string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a brand palette from a logo or screenshot",
	Long: `Extract a classified brand color palette from an image.

The image is quantized into its dominant colors, which are then
classified into primary, secondary and accent roles plus neutral tones.

Supported image formats: JPEG, PNG, GIF, WebP
The image may be a local file path or an HTTP(S) URL.

Examples:
  # Extract a palette from a logo
  brandkit extract logo.png

  # Extract from a remote image with more colors
  brandkit extract --colours 12 https://example.com/logo.png

  # Emit JSON and save to a file
  brandkit extract --format json --output palette.json logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 6, "number of colours to extract (1-64)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", formatAuto, "output format (auto, json, hex, preview)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	if err := image.ValidateSource(source); err != nil {
		return fmt.Errorf("invalid image source: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		ColorCount: extractColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	logger := newLogger(cmd)
	analyzer := brand.NewAnalyzer(logger, extractor, config.ColorCount)

	palette, err := analyzer.ExtractFromSource(cmd.Context(), source)
	if err != nil {
		return err
	}

	output, err := renderPalette(palette, resolveFormat(extractFormat, extractOutput))
	if err != nil {
		return err
	}

	return writeOutput(output, extractOutput)
}
