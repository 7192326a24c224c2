package cli

import (
	"strings"
	"testing"

	"brandkit/internal/colour"
	"brandkit/internal/scraper"
)

func testPalette() colour.ColorPalette {
	return colour.ColorPalette{
		Primary:   "#FF0000",
		Secondary: "#00FF00",
		Accent:    "#0000FF",
		Neutrals:  []string{"#333333"},
		AllColors: []string{"#FF0000", "#00FF00", "#0000FF", "#333333"},
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		outputPath string
		want       string
	}{
		{
			name:   "explicit json stays json",
			format: formatJSON,
			want:   formatJSON,
		},
		{
			name:   "explicit preview stays preview",
			format: formatPreview,
			want:   formatPreview,
		},
		{
			name:       "auto with output file resolves to json",
			format:     formatAuto,
			outputPath: "palette.json",
			want:       formatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFormat(tt.format, tt.outputPath); got != tt.want {
				t.Errorf("resolveFormat(%s, %s) = %s, want %s",
					tt.format, tt.outputPath, got, tt.want)
			}
		})
	}
}

func TestRenderPalette(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantErr  bool
		contains []string
	}{
		{
			name:   "json",
			format: formatJSON,
			contains: []string{
				`"primary": "#FF0000"`,
				`"secondary": "#00FF00"`,
				`"accent": "#0000FF"`,
				`"all_colors"`,
			},
		},
		{
			name:   "hex",
			format: formatHex,
			contains: []string{
				"primary:   #FF0000",
				"secondary: #00FF00",
				"accent:    #0000FF",
			},
		},
		{
			name:   "preview",
			format: formatPreview,
			contains: []string{
				"primary",
				"#FF0000",
				"\033[48;2;255;0;0m",
			},
		},
		{
			name:    "unknown format",
			format:  "yaml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderPalette(testPalette(), tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("renderPalette() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("renderPalette(%s) output missing %q:\n%s", tt.format, want, got)
				}
			}
		})
	}
}

func TestRenderScrapeReport(t *testing.T) {
	palette := testPalette()
	report := scrapeReport{
		Result: &scraper.Result{
			URL:       "https://example.com",
			Title:     "Example",
			Images:    []string{"https://example.com/logo.png"},
			CSSColors: []string{"#FF0000"},
		},
		Palette: &palette,
	}

	t.Run("json", func(t *testing.T) {
		got, err := renderScrapeReport(report, "json")
		if err != nil {
			t.Fatalf("renderScrapeReport() error = %v", err)
		}
		for _, want := range []string{`"url": "https://example.com"`, `"title": "Example"`, `"palette"`} {
			if !strings.Contains(got, want) {
				t.Errorf("json output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("text", func(t *testing.T) {
		got, err := renderScrapeReport(report, "text")
		if err != nil {
			t.Fatalf("renderScrapeReport() error = %v", err)
		}
		for _, want := range []string{"Example", "logo.png", "#FF0000"} {
			if !strings.Contains(got, want) {
				t.Errorf("text output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := renderScrapeReport(report, "yaml"); err == nil {
			t.Error("renderScrapeReport() expected error for unknown format")
		}
	})
}
