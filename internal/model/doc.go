package model

// Package model defines domain data structures used across the app: the
// active tab descriptor, QR size classes, and the window view-state enum.
// Structures are designed for direct use in the UI and explicit state
// transitions.
