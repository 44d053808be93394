package guard

import "strings"

// DefaultMaxDisplayLength is the longest URL shown in the window body
const DefaultMaxDisplayLength = 80

// Ellipsis marks a truncated display URL
const Ellipsis = "..."

// restrictedPrefixes lists URL prefixes that denote internal or privileged
// browser surfaces. Such pages cannot be reached by scanning a QR code, so
// rendering one would only mislead. Matching is ordered, case-sensitive.
var restrictedPrefixes = []string{
	"chrome://",
	"chrome-extension://",
	"chrome-devtools://",
	"devtools://",
	"edge://",
	"brave://",
	"opera://",
	"vivaldi://",
	"moz-extension://",
	"about:",
	"file://",
	"view-source:",
}

// IsRestricted reports whether the URL must not be rendered as a QR code.
// The empty string counts as restricted so callers can treat "no URL yet"
// and "privileged URL" through the same gate.
func IsRestricted(url string) bool {
	if url == "" {
		return true
	}
	for _, prefix := range restrictedPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// RestrictedPrefixes returns a copy of the restricted-prefix set in match order
func RestrictedPrefixes() []string {
	out := make([]string, len(restrictedPrefixes))
	copy(out, restrictedPrefixes)
	return out
}

// FormatForDisplay shortens a URL for the window body. URLs at or under
// maxLength pass through unchanged; longer ones are cut to maxLength
// including the trailing ellipsis. A maxLength below the ellipsis width
// falls back to the default.
func FormatForDisplay(url string, maxLength int) string {
	if maxLength <= len(Ellipsis) {
		maxLength = DefaultMaxDisplayLength
	}

	runes := []rune(url)
	if len(runes) <= maxLength {
		return url
	}

	return string(runes[:maxLength-len(Ellipsis)]) + Ellipsis
}
