// Brandkit - brand color palette extraction
//
// Brandkit derives structured brand color palettes from logos and
// websites: a primary, secondary and accent color, neutral tones, and
// the full extracted color set.
package main

import (
	"brandkit/internal/cli"
)

func main() {
	cli.Execute()
}
