package qr

import (
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Error variables for QR encoding
var (
	// ErrEmptyContent is returned when the content string is empty
	ErrEmptyContent = errors.New("content cannot be empty")
)

// Matrix exposes an encoded QR symbol as a square grid of dark/light
// modules. Row and column are zero-indexed and must be < Size().
type Matrix interface {
	Size() int
	Dark(row, col int) bool
}

// bitmapMatrix adapts the encoder's [][]bool output to the Matrix contract
type bitmapMatrix struct {
	cells [][]bool
}

func (m *bitmapMatrix) Size() int {
	return len(m.cells)
}

func (m *bitmapMatrix) Dark(row, col int) bool {
	if row < 0 || row >= len(m.cells) {
		return false
	}
	if col < 0 || col >= len(m.cells[row]) {
		return false
	}
	return m.cells[row][col]
}

// Encode builds a QR matrix for the given content at medium error
// correction with automatic version selection. The library's own quiet
// zone is disabled; the renderer draws the margin itself so that cell
// geometry stays explicit.
func Encode(content string) (Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	code, err := skipqrcode.New(content, skipqrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	code.DisableBorder = true
	return &bitmapMatrix{cells: code.Bitmap()}, nil
}
