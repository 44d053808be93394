package qr

// Package qr wraps the QR encoder behind an explicit matrix contract and
// rasterizes matrices onto an RGBA surface with a standard quiet zone.
