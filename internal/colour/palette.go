// Package colour provides brand palette classification and merging.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents a color sample in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as an uppercase hex string (e.g., "#1A2B3C").
// The result is always 7 characters: "#" plus two zero-padded digits per
// channel.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// MalformedColorError reports a hex color string that does not have
// exactly six hex digits after an optional leading "#".
type MalformedColorError struct {
	Input string
}

func (e *MalformedColorError) Error() string {
	return fmt.Sprintf("malformed hex color: %q", e.Input)
}

// ParseHex parses a hex color string into an RGB value. A single leading
// "#" is stripped if present. Returns a MalformedColorError unless the
// remaining string is exactly six hex digits.
//
// ParseHex is the inverse of RGB.Hex: ParseHex(c.Hex()) == c for every
// RGB value.
func ParseHex(s string) (RGB, error) {
	stripped := strings.TrimPrefix(s, "#")
	if len(stripped) != 6 {
		return RGB{}, &MalformedColorError{Input: s}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(stripped[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &MalformedColorError{Input: s}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// FromColor converts a color.Color to RGB.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Color converts an RGB value to a color.Color (RGBA) with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ColorPalette is a classified brand palette. Primary, secondary and
// accent are each drawn from AllColors whenever AllColors is non-empty;
// Neutrals is a subset of AllColors. A ColorPalette is constructed once
// by Classify or Merge and never mutated afterwards.
type ColorPalette struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary"`
	Accent    string   `json:"accent"`
	Neutrals  []string `json:"neutrals"`
	AllColors []string `json:"all_colors"`
}

// ToJSON renders the palette as indented JSON.
func (p ColorPalette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p ColorPalette) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "primary:   %s\n", p.Primary)
	fmt.Fprintf(&b, "secondary: %s\n", p.Secondary)
	fmt.Fprintf(&b, "accent:    %s\n", p.Accent)
	fmt.Fprintf(&b, "neutrals:  %s\n", strings.Join(p.Neutrals, " "))
	fmt.Fprintf(&b, "all:       %s\n", strings.Join(p.AllColors, " "))
	return b.String()
}
