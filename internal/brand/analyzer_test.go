package brand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"brandkit/internal/colour"
	img "brandkit/internal/image"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(hclog.NewNullLogger(), colour.NewKMeansExtractor(), 6)
}

// solidPNG encodes a 20x20 image filled with a single color.
func solidPNG(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	canvas := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			canvas.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func writeTempPNG(t *testing.T, c color.RGBA) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, solidPNG(t, c), 0o644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

// brandSite serves a page whose og:image points at a solid-color logo.
func brandSite(t *testing.T, logo color.RGBA) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><meta property="og:image" content="/logo.png"></head><body></body></html>`)
	})
	logoBytes := solidPNG(t, logo)
	mux.HandleFunc("/logo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(logoBytes)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAnalyzeLogoOnly(t *testing.T) {
	logoPath := writeTempPNG(t, color.RGBA{R: 255, A: 255})

	analysis, err := newTestAnalyzer(t).Analyze(context.Background(), logoPath, "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.LogoPalette == nil {
		t.Fatal("LogoPalette is nil")
	}
	if analysis.WebsitePalette != nil {
		t.Errorf("WebsitePalette = %+v, want nil", analysis.WebsitePalette)
	}
	if analysis.Palette.Primary != "#FF0000" {
		t.Errorf("Palette.Primary = %s, want #FF0000", analysis.Palette.Primary)
	}
	// With a single source the palette is that source's palette.
	if analysis.Palette.Primary != analysis.LogoPalette.Primary {
		t.Errorf("Palette.Primary = %s, want logo primary %s",
			analysis.Palette.Primary, analysis.LogoPalette.Primary)
	}
}

func TestAnalyzeWebsiteOnly(t *testing.T) {
	server := brandSite(t, color.RGBA{B: 255, A: 255})

	analysis, err := newTestAnalyzer(t).Analyze(context.Background(), "", server.URL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.WebsitePalette == nil {
		t.Fatal("WebsitePalette is nil")
	}
	if analysis.Scrape == nil {
		t.Fatal("Scrape is nil")
	}
	if analysis.Palette.Primary != "#0000FF" {
		t.Errorf("Palette.Primary = %s, want #0000FF", analysis.Palette.Primary)
	}
}

func TestAnalyzeMergesLogoAndWebsite(t *testing.T) {
	logoPath := writeTempPNG(t, color.RGBA{R: 255, A: 255})
	server := brandSite(t, color.RGBA{B: 255, A: 255})

	analysis, err := newTestAnalyzer(t).Analyze(context.Background(), logoPath, server.URL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.LogoPalette == nil || analysis.WebsitePalette == nil {
		t.Fatalf("expected both palettes, got logo=%v website=%v",
			analysis.LogoPalette, analysis.WebsitePalette)
	}

	// Logo takes precedence; the website's primary lands in the
	// merged secondary slot.
	if analysis.Palette.Primary != "#FF0000" {
		t.Errorf("Palette.Primary = %s, want logo primary #FF0000", analysis.Palette.Primary)
	}
	if analysis.Palette.Secondary != "#0000FF" {
		t.Errorf("Palette.Secondary = %s, want website primary #0000FF", analysis.Palette.Secondary)
	}
}

func TestAnalyzeWebsiteCSSColorFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div style="color: #FF0000"></div><div style="background: #00FF00"></div></body></html>`)
	}))
	defer server.Close()

	analysis, err := newTestAnalyzer(t).Analyze(context.Background(), "", server.URL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.WebsitePalette == nil {
		t.Fatal("WebsitePalette is nil, want palette from inline CSS colors")
	}
	if analysis.Palette.Primary != "#FF0000" {
		t.Errorf("Palette.Primary = %s, want #FF0000", analysis.Palette.Primary)
	}
	if analysis.Palette.Secondary != "#00FF00" {
		t.Errorf("Palette.Secondary = %s, want #00FF00", analysis.Palette.Secondary)
	}
}

func TestAnalyzeFallsBackToDefaultPalette(t *testing.T) {
	// A dead website and a missing logo file contribute nothing.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	analysis, err := newTestAnalyzer(t).Analyze(context.Background(),
		filepath.Join(t.TempDir(), "missing.png"), server.URL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := colour.DefaultBrandPalette()
	if analysis.Palette.Primary != want.Primary || analysis.Palette.Accent != want.Accent {
		t.Errorf("Palette = %+v, want default brand palette %+v", analysis.Palette, want)
	}
}

func TestAnalyzeRequiresASource(t *testing.T) {
	_, err := newTestAnalyzer(t).Analyze(context.Background(), "", "")
	if err == nil {
		t.Fatal("Analyze(\"\", \"\") expected error, got nil")
	}
}

func TestExtractFromBytesInvalidImage(t *testing.T) {
	_, err := newTestAnalyzer(t).ExtractFromBytes([]byte("not an image"))
	if err == nil {
		t.Fatal("ExtractFromBytes() expected error, got nil")
	}
	if !errors.Is(err, img.ErrInvalidImage) {
		t.Errorf("error = %v, want ErrInvalidImage", err)
	}
}

func TestExtractFromSourcePropagatesInvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := newTestAnalyzer(t).ExtractFromSource(context.Background(), path)
	if err == nil {
		t.Fatal("ExtractFromSource() expected error, got nil")
	}
	if !errors.Is(err, img.ErrInvalidImage) {
		t.Errorf("error = %v, want ErrInvalidImage", err)
	}
}
