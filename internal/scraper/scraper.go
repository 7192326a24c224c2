// Package scraper extracts brand-relevant information from websites:
// page title, description, candidate brand images and inline CSS colors.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html"

	httputil "brandkit/internal/util/http"
)

const (
	// maxImages caps the number of candidate image URLs returned.
	maxImages = 10

	// maxCSSColors caps the number of inline-style colors returned.
	maxCSSColors = 10

	// maxDescriptionLen truncates descriptions sourced from body text.
	maxDescriptionLen = 300
)

// hexColorPattern matches six-digit hex colors in inline styles.
var hexColorPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// Result holds the brand-relevant data scraped from a single page.
type Result struct {
	URL         string            `json:"url"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Images      []string          `json:"images,omitempty"`
	CSSColors   []string          `json:"css_colors,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// Scraper fetches and parses websites for brand analysis.
type Scraper struct {
	logger  hclog.Logger
	timeout time.Duration
}

// New creates a Scraper. The logger must not be nil; pass
// hclog.NewNullLogger() to discard output.
func New(logger hclog.Logger) *Scraper {
	return &Scraper{
		logger:  logger,
		timeout: httputil.DefaultTimeout,
	}
}

// Scrape fetches a page and extracts its title, description, candidate
// brand images (most likely logo first), inline CSS colors and meta
// tags. Network failures are wrapped and surfaced; there are no retries.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*Result, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}

	s.logger.Debug("fetching page", "url", pageURL)

	data, err := httputil.Fetch(ctx, pageURL, httputil.FetchOptions{Timeout: s.timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", pageURL, err)
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	result := &Result{
		URL:         pageURL,
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Images:      extractImages(doc, base),
		CSSColors:   extractCSSColors(doc),
		Meta:        extractMeta(doc),
	}

	s.logger.Debug("scraped page",
		"url", pageURL,
		"title", result.Title,
		"images", len(result.Images),
		"css_colors", len(result.CSSColors))

	return result, nil
}

// extractTitle returns the page title: the title tag, falling back to
// og:title, then the first h1.
func extractTitle(doc *html.Node) string {
	if title := findElement(doc, "title"); title != nil {
		if text := nodeText(title); text != "" {
			return text
		}
	}

	if content := findMetaProperty(doc, "og:title"); content != "" {
		return content
	}

	if h1 := findElement(doc, "h1"); h1 != nil {
		return nodeText(h1)
	}

	return ""
}

// extractDescription returns the page description: the meta description,
// falling back to og:description, then the first paragraph truncated to
// maxDescriptionLen.
func extractDescription(doc *html.Node) string {
	if content := findMetaName(doc, "description"); content != "" {
		return content
	}

	if content := findMetaProperty(doc, "og:description"); content != "" {
		return content
	}

	if p := findElement(doc, "p"); p != nil {
		text := nodeText(p)
		if len(text) > maxDescriptionLen {
			return text[:maxDescriptionLen]
		}
		return text
	}

	return ""
}

// extractImages collects candidate brand image URLs, prioritising
// sources that usually carry the logo: og:image, icon links, images
// whose class mentions "logo", then the first images on the page.
// Relative URLs are resolved against the page URL.
func extractImages(doc *html.Node, base *url.URL) []string {
	var images []string
	seen := make(map[string]struct{})

	add := func(ref string) {
		if ref == "" || len(images) >= maxImages {
			return
		}
		resolved := resolveURL(base, ref)
		if resolved == "" {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		images = append(images, resolved)
	}

	// Logo candidates first.
	add(findMetaProperty(doc, "og:image"))
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "link" {
			return
		}
		rel := strings.ToLower(attr(n, "rel"))
		if strings.Contains(rel, "icon") {
			add(attr(n, "href"))
		}
	})
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		if strings.Contains(strings.ToLower(attr(n, "class")), "logo") {
			add(attr(n, "src"))
		}
	})

	// Then the first few remaining images.
	count := 0
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" || count >= 5 {
			return
		}
		count++
		add(attr(n, "src"))
	})

	return images
}

// extractCSSColors collects six-digit hex colors found in inline style
// attributes, deduplicated in first-seen order. This is a coarse signal
// and does not replace image-based extraction.
func extractCSSColors(doc *html.Node) []string {
	var colors []string
	seen := make(map[string]struct{})

	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || len(colors) >= maxCSSColors {
			return
		}
		style := attr(n, "style")
		if style == "" {
			return
		}
		for _, match := range hexColorPattern.FindAllString(style, -1) {
			if len(colors) >= maxCSSColors {
				return
			}
			normalized := strings.ToUpper(match)
			if _, ok := seen[normalized]; ok {
				continue
			}
			seen[normalized] = struct{}{}
			colors = append(colors, normalized)
		}
	})

	return colors
}

// extractMeta collects useful meta tags: keywords, author, and og:*
// properties (stored with an "og_" prefix).
func extractMeta(doc *html.Node) map[string]string {
	meta := make(map[string]string)

	if keywords := findMetaName(doc, "keywords"); keywords != "" {
		meta["keywords"] = keywords
	}
	if author := findMetaName(doc, "author"); author != "" {
		meta["author"] = author
	}

	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "meta" {
			return
		}
		property := attr(n, "property")
		if !strings.HasPrefix(property, "og:") {
			return
		}
		content := attr(n, "content")
		if content == "" {
			return
		}
		meta["og_"+strings.TrimPrefix(property, "og:")] = content
	})

	return meta
}

// resolveURL resolves a possibly-relative reference against the page URL.
func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}

// walk applies fn to every node in the tree, depth first.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// findElement returns the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findMetaName returns the content of the first meta tag with the given
// name attribute.
func findMetaName(doc *html.Node, name string) string {
	return findMetaContent(doc, "name", name)
}

// findMetaProperty returns the content of the first meta tag with the
// given property attribute.
func findMetaProperty(doc *html.Node, property string) string {
	return findMetaContent(doc, "property", property)
}

func findMetaContent(doc *html.Node, key, value string) string {
	var content string
	walk(doc, func(n *html.Node) {
		if content != "" || n.Type != html.ElementNode || n.Data != "meta" {
			return
		}
		if strings.EqualFold(attr(n, key), value) {
			content = strings.TrimSpace(attr(n, "content"))
		}
	})
	return content
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// nodeText returns the concatenated, whitespace-normalized text content
// of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteString(" ")
		}
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
