package colour

import (
	"cmp"
	"slices"
)

// maxNeutrals is the number of neutral tones a classified palette keeps.
const maxNeutrals = 3

// Classify converts an ordered sequence of raw color samples into a
// ColorPalette with semantic roles. Samples are expected most-dominant
// first, as returned by an Extractor; duplicates are allowed and
// retained in AllColors since they reflect upstream sampling frequency.
//
// Classification is deterministic: the same input sequence always yields
// an identical palette. Samples are split into vibrant and neutral
// partitions, vibrant colors are ranked by saturation proxy (most vivid
// first) and neutrals by luminance (darkest first), both with stable
// sorts so ties keep their upstream dominance order.
func Classify(samples []RGB) ColorPalette {
	if len(samples) == 0 {
		return fallbackPalette()
	}

	var vibrant, neutral []RGB
	for _, s := range samples {
		if IsNeutral(s) {
			neutral = append(neutral, s)
		} else {
			vibrant = append(vibrant, s)
		}
	}

	slices.SortStableFunc(vibrant, func(a, b RGB) int {
		return SaturationProxy(b) - SaturationProxy(a)
	})
	slices.SortStableFunc(neutral, func(a, b RGB) int {
		return cmp.Compare(Luminance(a), Luminance(b))
	})

	primary := samples[0]
	if len(vibrant) > 0 {
		primary = vibrant[0]
	}

	var secondary RGB
	switch {
	case len(vibrant) > 1:
		secondary = vibrant[1]
	case len(neutral) > 0:
		secondary = neutral[0]
	case len(samples) > 1:
		secondary = samples[1]
	default:
		secondary = primary
	}

	var accent RGB
	switch {
	case len(vibrant) > 2:
		accent = vibrant[2]
	case len(vibrant) > 1:
		accent = vibrant[1]
	default:
		accent = primary
	}

	neutrals := make([]string, 0, maxNeutrals)
	for _, n := range neutral[:min(len(neutral), maxNeutrals)] {
		neutrals = append(neutrals, n.Hex())
	}

	all := make([]string, len(samples))
	for i, s := range samples {
		all[i] = s.Hex()
	}

	return ColorPalette{
		Primary:   primary.Hex(),
		Secondary: secondary.Hex(),
		Accent:    accent.Hex(),
		Neutrals:  neutrals,
		AllColors: all,
	}
}

// fallbackPalette is the fixed palette returned for an empty sample
// sequence. Its exact values are part of the contract.
func fallbackPalette() ColorPalette {
	return ColorPalette{
		Primary:   "#000000",
		Secondary: "#FFFFFF",
		Accent:    "#CCCCCC",
		Neutrals:  []string{"#F5F5F5", "#333333"},
		AllColors: []string{"#000000", "#FFFFFF", "#CCCCCC", "#F5F5F5", "#333333"},
	}
}

// DefaultBrandPalette returns the palette used when neither a logo nor a
// website yields any colors at all. It differs from the empty-input
// fallback by carrying a usable blue accent.
func DefaultBrandPalette() ColorPalette {
	return ColorPalette{
		Primary:   "#000000",
		Secondary: "#FFFFFF",
		Accent:    "#4A90E2",
		Neutrals:  []string{"#F5F5F5", "#333333"},
		AllColors: []string{"#000000", "#FFFFFF", "#4A90E2", "#F5F5F5", "#333333"},
	}
}
