package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// Filename constants
const (
	// FilenamePrefix leads every host-derived export name
	FilenamePrefix = "qr_"

	// FallbackFilename is used when the URL yields no usable host
	FallbackFilename = "qrcode.png"
)

// ErrNoImage is returned when there is no rendered surface to export
var ErrNoImage = errors.New("no image to export")

// hostSanitizer matches every character that may not appear in the
// filename's host portion
var hostSanitizer = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// Filename derives the suggested export name from the page URL: the host
// component with unsafe characters replaced by underscores, wrapped as
// qr_<host>.png. Unparseable or host-less URLs fall back to qrcode.png.
func Filename(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return FallbackFilename
	}

	host := hostSanitizer.ReplaceAllString(parsed.Host, "_")
	return FilenamePrefix + host + ".png"
}

// PNGBytes encodes the rendered surface as a PNG byte stream
func PNGBytes(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrNoImage
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the rendered surface into dir under filename. The bytes go
// to a uniquely named temp file first and are renamed into place, so a
// half-written export can never shadow an earlier good one. Returns the
// final path.
func Save(img image.Image, dir, filename string) (string, error) {
	data, err := PNGBytes(img)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	tmpPath := filepath.Join(dir, ".tabqr-"+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	finalPath := filepath.Join(dir, filename)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("finalize export file: %w", err)
	}

	return finalPath, nil
}
