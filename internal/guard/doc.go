package guard

// Package guard classifies URLs as renderable or restricted and formats
// them for display. All functions are pure and total over string input.
