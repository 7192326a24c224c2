package colour

// NeutralThreshold is the channel spread below which a color counts as
// neutral (grayscale/black/white). This value is part of the palette
// contract and must not be tuned.
const NeutralThreshold = 30

// Luminance calculates the relative luminance of a color as a plain
// weighted sum of the normalized channels. Returns a value between
// 0 (darkest) and 1 (lightest).
//
// Unlike the WCAG definition, no gamma correction is applied: the
// classifier only needs a monotonic brightness ranking, not a
// perceptually accurate one.
func Luminance(rgb RGB) float64 {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsNeutral reports whether a color approximates a grayscale, black or
// white tone: the spread between its largest and smallest channel is
// below NeutralThreshold.
func IsNeutral(rgb RGB) bool {
	return SaturationProxy(rgb) < NeutralThreshold
}

// SaturationProxy returns the spread between the largest and smallest
// channel of a color. It ranks vividness cheaply and is not true HSV
// saturation; callers must not assume gamma-correct saturation.
func SaturationProxy(rgb RGB) int {
	maxVal := max(rgb.R, rgb.G, rgb.B)
	minVal := min(rgb.R, rgb.G, rgb.B)
	return int(maxVal) - int(minVal)
}
