package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: 0.0,
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: 1.0,
		},
		{
			name: "pure red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: 0.2126,
		},
		{
			name: "pure green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: 0.7152,
		},
		{
			name: "pure blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: 0.0722,
		},
	}

	const epsilon = 1e-9

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Luminance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestLuminanceMonotonicForGreys(t *testing.T) {
	prev := -1.0
	for v := 0; v <= 255; v += 5 {
		grey := RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
		lum := Luminance(grey)
		if lum <= prev {
			t.Fatalf("Luminance(%+v) = %f, not greater than previous %f", grey, lum, prev)
		}
		if lum < 0 || lum > 1 {
			t.Fatalf("Luminance(%+v) = %f, outside [0, 1]", grey, lum)
		}
		prev = lum
	}
}

func TestIsNeutral(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want bool
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: true,
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: true,
		},
		{
			name: "mid grey",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: true,
		},
		{
			name: "spread 29 is neutral",
			rgb:  RGB{R: 100, G: 100, B: 129},
			want: true,
		},
		{
			name: "spread 30 is not neutral",
			rgb:  RGB{R: 100, G: 100, B: 130},
			want: false,
		},
		{
			name: "spread 31 is not neutral",
			rgb:  RGB{R: 100, G: 100, B: 131},
			want: false,
		},
		{
			name: "pure red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNeutral(tt.rgb); got != tt.want {
				t.Errorf("IsNeutral(%+v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestSaturationProxy(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want int
	}{
		{
			name: "grey has zero spread",
			rgb:  RGB{R: 90, G: 90, B: 90},
			want: 0,
		},
		{
			name: "pure red has full spread",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: 255,
		},
		{
			name: "minimum channel not the blue one",
			rgb:  RGB{R: 30, G: 120, B: 60},
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SaturationProxy(tt.rgb); got != tt.want {
				t.Errorf("SaturationProxy(%+v) = %d, want %d", tt.rgb, got, tt.want)
			}
		})
	}
}
