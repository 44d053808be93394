package platform

// Package platform holds OS integration helpers: the external clipboard
// fallback command and standard directory resolution.
