// Package image provides utilities for loading brand images.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	httputil "brandkit/internal/util/http"
)

// ErrInvalidImage indicates a byte stream that could not be decoded as a
// supported image. It is surfaced unchanged to callers; palette
// classification never masks it.
var ErrInvalidImage = errors.New("invalid image")

// Loader handles loading images from a source reference.
type Loader interface {
	// Load loads an image from the given path or URL.
	Load(ctx context.Context, source string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode (format: %s): %v", ErrInvalidImage, format, err)
	}

	return img, nil
}

// Decode decodes raw image bytes, such as an uploaded logo.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode (format: %s): %v", ErrInvalidImage, format, err)
	}
	return img, nil
}

// IsURL reports whether the source is an HTTP(S) URL rather than a
// local file path.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ValidateSource checks that the given source is a plausible image
// reference: either an HTTP(S) URL or an existing local file in a
// supported format. URLs are not fetched here to avoid double-fetching.
func ValidateSource(source string) error {
	if source == "" {
		return fmt.Errorf("image source cannot be empty")
	}

	if IsURL(source) {
		return nil
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", source)
		}
		return fmt.Errorf("failed to access image path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", source)
	}

	file, err := os.Open(source) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("%w: unsupported format: %v", ErrInvalidImage, err)
	}

	return nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	logger     hclog.Logger
}

// NewSmartLoader creates a new SmartLoader instance. The logger must not
// be nil; pass hclog.NewNullLogger() to discard output.
func NewSmartLoader(logger hclog.Logger) *SmartLoader {
	return &SmartLoader{
		fileLoader: NewFileLoader(),
		logger:     logger,
	}
}

// Load loads an image from either a local file path or HTTP(S) URL.
func (l *SmartLoader) Load(ctx context.Context, source string) (image.Image, error) {
	if IsURL(source) {
		return l.loadFromURL(ctx, source)
	}

	l.logger.Debug("loading image from file", "path", source)
	return l.fileLoader.Load(ctx, source)
}

// loadFromURL fetches and decodes an image from an HTTP(S) URL.
func (l *SmartLoader) loadFromURL(ctx context.Context, url string) (image.Image, error) {
	l.logger.Debug("fetching image", "url", url)

	data, err := httputil.Fetch(ctx, url, httputil.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	img, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return img, nil
}
