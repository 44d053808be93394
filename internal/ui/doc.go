package ui

// Package ui contains the Fyne-based desktop user interface. It owns the
// window lifecycle: fetch the active tab, gate it through the URL guard,
// render the QR surface, and wire the copy/save/size/refresh controls.
// All UI strings are localized via Localization.
