package export

// Package export turns the rendered QR surface into a PNG file on disk,
// deriving the filename from the page URL's host.
