package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"brandkit/internal/colour"
)

// Output formats for palette rendering.
const (
	formatAuto    = "auto"
	formatJSON    = "json"
	formatHex     = "hex"
	formatPreview = "preview"
)

// resolveFormat maps the "auto" format to a concrete one: swatch
// previews on a terminal, JSON when output is piped or written to a
// file.
func resolveFormat(format, outputPath string) string {
	if format != formatAuto {
		return format
	}
	if outputPath == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return formatPreview
	}
	return formatJSON
}

// renderPalette renders a palette in the requested format.
func renderPalette(p colour.ColorPalette, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to render palette: %w", err)
		}
		return string(data) + "\n", nil
	case formatHex:
		return p.String(), nil
	case formatPreview:
		return renderPalettePreview(p), nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: auto, json, hex, preview)", format)
	}
}

// renderPalettePreview renders the palette as labelled terminal
// swatches.
func renderPalettePreview(p colour.ColorPalette) string {
	var b strings.Builder

	writeRole := func(label, hex string) {
		block := swatch(hex)
		if rgb, err := colour.ParseHex(hex); err == nil {
			block = colour.PreviewWithText(rgb, hex, 11)
		}
		fmt.Fprintf(&b, "%-10s %s\n", label, block)
	}

	writeRole("primary", p.Primary)
	writeRole("secondary", p.Secondary)
	writeRole("accent", p.Accent)

	if len(p.Neutrals) > 0 {
		fmt.Fprintf(&b, "%-10s", "neutrals")
		for _, hex := range p.Neutrals {
			fmt.Fprintf(&b, " %s", swatch(hex))
		}
		fmt.Fprintf(&b, " %s\n", strings.Join(p.Neutrals, " "))
	}

	if len(p.AllColors) > 0 {
		fmt.Fprintf(&b, "%-10s", "all")
		for _, hex := range p.AllColors {
			fmt.Fprintf(&b, " %s", swatch(hex))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// swatch renders a single hex color as an ANSI block. Unparseable
// values (which should not occur for classified palettes) render as-is.
func swatch(hex string) string {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return hex
	}
	return colour.Preview(rgb, 4)
}

// writeOutput writes rendered output to a file, or stdout when path is
// empty.
func writeOutput(content, path string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 - Palette output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
