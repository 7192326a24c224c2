// Package cli provides the command-line interface for brandkit.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"brandkit/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Brand color palette extraction",
	Long: `Brandkit derives structured brand color palettes from brand assets.

Feed it a logo image or a website and it produces a classified palette:
a primary, secondary and accent color, a short list of neutral tones,
and the full extracted color set. Logo-derived and website-derived
palettes can be combined, with the logo taking precedence.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// newLogger builds the application logger from global flags. Verbose
// runs log at debug level; everything else stays at warnings.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "brandkit",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
