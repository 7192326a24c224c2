// Package brand orchestrates palette extraction from brand assets:
// logos, websites, or both combined.
package brand

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"brandkit/internal/colour"
	img "brandkit/internal/image"
	"brandkit/internal/scraper"
	"brandkit/internal/util/imagecache"
)

// Analyzer derives brand color palettes from logos and websites. It is
// stateless between calls; concurrent invocations are independent.
type Analyzer struct {
	logger    hclog.Logger
	loader    *img.SmartLoader
	scraper   *scraper.Scraper
	extractor colour.Extractor
	colors    int

	// CacheWebsiteImages downloads website-discovered images through the
	// local image cache so repeat runs against the same site do not
	// refetch.
	CacheWebsiteImages bool
}

// NewAnalyzer creates an Analyzer. The logger must not be nil; pass
// hclog.NewNullLogger() to discard output. colorCount is the number of
// dominant colors requested per image.
func NewAnalyzer(logger hclog.Logger, extractor colour.Extractor, colorCount int) *Analyzer {
	return &Analyzer{
		logger:    logger,
		loader:    img.NewSmartLoader(logger),
		scraper:   scraper.New(logger),
		extractor: extractor,
		colors:    colorCount,
	}
}

// Analysis is the combined result of analyzing one or both brand sources.
type Analysis struct {
	// Palette is the final brand palette: the merge of logo and website
	// palettes when both are available, the single available palette
	// otherwise, or the default brand palette when neither source
	// yields colors.
	Palette colour.ColorPalette `json:"palette"`

	LogoPalette    *colour.ColorPalette `json:"logo_palette,omitempty"`
	WebsitePalette *colour.ColorPalette `json:"website_palette,omitempty"`
	Scrape         *scraper.Result      `json:"scrape,omitempty"`
}

// ExtractFromSource extracts a classified palette from an image file
// path or HTTP(S) URL.
func (a *Analyzer) ExtractFromSource(ctx context.Context, source string) (colour.ColorPalette, error) {
	decoded, err := a.loader.Load(ctx, source)
	if err != nil {
		return colour.ColorPalette{}, err
	}

	samples, err := a.extractor.Extract(decoded, a.colors)
	if err != nil {
		return colour.ColorPalette{}, fmt.Errorf("failed to extract colors: %w", err)
	}

	return colour.Classify(samples), nil
}

// ExtractFromBytes extracts a classified palette from raw image bytes,
// such as an uploaded logo.
func (a *Analyzer) ExtractFromBytes(data []byte) (colour.ColorPalette, error) {
	decoded, err := img.Decode(data)
	if err != nil {
		return colour.ColorPalette{}, err
	}

	samples, err := a.extractor.Extract(decoded, a.colors)
	if err != nil {
		return colour.ColorPalette{}, fmt.Errorf("failed to extract colors: %w", err)
	}

	return colour.Classify(samples), nil
}

// ScrapeWebsite scrapes a page and, when it references any images,
// attempts to derive a palette from the first usable one.
func (a *Analyzer) ScrapeWebsite(ctx context.Context, websiteURL string) (*scraper.Result, *colour.ColorPalette, error) {
	result, err := a.scraper.Scrape(ctx, websiteURL)
	if err != nil {
		return nil, nil, err
	}

	palette := a.paletteFromScrape(ctx, result)
	return result, palette, nil
}

// Analyze derives the full brand palette from a logo source and/or a
// website URL. At least one must be provided. Per-source failures are
// tolerated and logged: a failing source simply contributes nothing,
// and when nothing contributes the default brand palette is returned.
func (a *Analyzer) Analyze(ctx context.Context, logoSource, websiteURL string) (*Analysis, error) {
	if logoSource == "" && websiteURL == "" {
		return nil, fmt.Errorf("provide a logo source or a website URL")
	}

	analysis := &Analysis{}

	if logoSource != "" {
		palette, err := a.ExtractFromSource(ctx, logoSource)
		if err != nil {
			a.logger.Warn("logo palette extraction failed", "source", logoSource, "error", err)
		} else {
			analysis.LogoPalette = &palette
		}
	}

	if websiteURL != "" {
		result, err := a.scraper.Scrape(ctx, websiteURL)
		if err != nil {
			a.logger.Warn("website scrape failed", "url", websiteURL, "error", err)
		} else {
			analysis.Scrape = result
			analysis.WebsitePalette = a.paletteFromScrape(ctx, result)
		}
	}

	// Logo colors take precedence over website colors when merging.
	switch {
	case analysis.LogoPalette != nil && analysis.WebsitePalette != nil:
		analysis.Palette = colour.Merge(*analysis.LogoPalette, *analysis.WebsitePalette)
	case analysis.LogoPalette != nil:
		analysis.Palette = *analysis.LogoPalette
	case analysis.WebsitePalette != nil:
		analysis.Palette = *analysis.WebsitePalette
	default:
		a.logger.Warn("no source yielded colors, using default brand palette")
		analysis.Palette = colour.DefaultBrandPalette()
	}

	return analysis, nil
}

// paletteFromScrape derives a palette from scraped page data: the first
// image that loads and quantizes wins; when none does, inline CSS colors
// are classified instead. Returns nil when the page offers no usable
// color signal.
func (a *Analyzer) paletteFromScrape(ctx context.Context, result *scraper.Result) *colour.ColorPalette {
	for _, imageURL := range result.Images {
		palette, err := a.extractFromWebsiteImage(ctx, imageURL)
		if err != nil {
			a.logger.Debug("website image unusable", "url", imageURL, "error", err)
			continue
		}
		return palette
	}

	if len(result.CSSColors) > 0 {
		samples := make([]colour.RGB, 0, len(result.CSSColors))
		for _, hex := range result.CSSColors {
			rgb, err := colour.ParseHex(hex)
			if err != nil {
				continue
			}
			samples = append(samples, rgb)
		}
		if len(samples) > 0 {
			palette := colour.Classify(samples)
			return &palette
		}
	}

	return nil
}

// extractFromWebsiteImage loads a website-discovered image, optionally
// through the local cache, and classifies its dominant colors.
func (a *Analyzer) extractFromWebsiteImage(ctx context.Context, imageURL string) (*colour.ColorPalette, error) {
	source := imageURL
	if a.CacheWebsiteImages {
		cached, err := imagecache.DownloadAndCache(ctx, imageURL, imagecache.CacheOptions{})
		if err != nil {
			return nil, err
		}
		source = cached
	}

	palette, err := a.ExtractFromSource(ctx, source)
	if err != nil {
		return nil, err
	}
	return &palette, nil
}
