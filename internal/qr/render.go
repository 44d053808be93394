package qr

import (
	"image"
	"image/color"
	"image/draw"
)

// Rendering constants
const (
	// QuietZoneCells is the blank border width on each side, in cell widths.
	// Four modules is the minimum the QR standard requires for reliable
	// scanning.
	QuietZoneCells = 4

	// PlaceholderSide is the edge length of the blank error surface
	PlaceholderSide = 180
)

// Render paints the matrix onto a fresh white surface. Each dark module
// becomes a cellSize×cellSize black square offset by the quiet-zone margin.
// The surface side is always m.Size()*cellSize + 2*margin.
func Render(m Matrix, cellSize int) *image.RGBA {
	if cellSize <= 0 {
		cellSize = 1
	}

	margin := QuietZoneCells * cellSize
	side := m.Size()*cellSize + 2*margin

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := image.NewUniform(color.Black)
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.Dark(row, col) {
				continue
			}
			x := col*cellSize + margin
			y := row*cellSize + margin
			cell := image.Rect(x, y, x+cellSize, y+cellSize)
			draw.Draw(img, cell, black, image.Point{}, draw.Src)
		}
	}

	return img
}

// Placeholder returns the fixed blank surface shown when no QR code can be
// rendered. Always the same dimensions regardless of size selection.
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSide, PlaceholderSide))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
