package model

// SizeClass represents the user-selectable QR module size
type SizeClass string

const (
	// SizeSmall renders each QR module as a 4px square
	SizeSmall SizeClass = "small"

	// SizeMedium renders each QR module as a 6px square
	SizeMedium SizeClass = "medium"

	// SizeLarge renders each QR module as an 8px square
	SizeLarge SizeClass = "large"
)

// Cell sizes in pixels per size class
const (
	CellSmall  = 4
	CellMedium = 6
	CellLarge  = 8
)

// String returns the string representation of SizeClass
func (sc SizeClass) String() string {
	return string(sc)
}

// CellSize returns the module edge length in pixels for the size class.
// Unrecognized values fall back to the medium cell size; the selector is
// the only writer of this value, so a bad class is a programmer error and
// must not break rendering.
func (sc SizeClass) CellSize() int {
	switch sc {
	case SizeSmall:
		return CellSmall
	case SizeMedium:
		return CellMedium
	case SizeLarge:
		return CellLarge
	default:
		return CellMedium
	}
}

// SizeClassOptions returns the selectable size classes in display order
func SizeClassOptions() []SizeClass {
	return []SizeClass{SizeSmall, SizeMedium, SizeLarge}
}
