package colour

// Caps applied when two palettes are combined.
const (
	mergedNeutralsCap  = 4
	mergedAllColorsCap = 12
)

// Merge combines two classified palettes into one, treating a as the
// higher-precedence source (typically logo-derived) and b as the
// lower-precedence one (typically website-derived).
//
// The merged primary and accent come from a unchanged. The merged
// secondary is b's PRIMARY, not b's secondary: the second source's
// dominant color is deliberately surfaced in a prominent slot. Neutrals
// and AllColors are the deduplicated unions of both inputs, scanning a
// before b with first occurrence winning, capped at 4 and 12 entries
// respectively.
//
// Merge never fails: it accepts any two valid palettes, including
// fallback palettes, and given identical inputs always produces an
// identical result.
func Merge(a, b ColorPalette) ColorPalette {
	return ColorPalette{
		Primary:   a.Primary,
		Secondary: b.Primary,
		Accent:    a.Accent,
		Neutrals:  dedupCapped(a.Neutrals, b.Neutrals, mergedNeutralsCap),
		AllColors: dedupCapped(a.AllColors, b.AllColors, mergedAllColorsCap),
	}
}

// dedupCapped unions two hex color lists, keeping the first occurrence
// of each value and at most limit entries.
func dedupCapped(first, second []string, limit int) []string {
	seen := make(map[string]struct{}, len(first)+len(second))
	out := make([]string, 0, limit)

	for _, list := range [][]string{first, second} {
		for _, c := range list {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
			if len(out) == limit {
				return out
			}
		}
	}

	return out
}
