package guard

import (
	"strings"
	"testing"
)

func TestIsRestricted(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"", true},
		{"chrome://extensions", true},
		{"chrome://settings/privacy", true},
		{"chrome-extension://abcdef/popup.html", true},
		{"chrome-devtools://devtools/bundled/inspector.html", true},
		{"devtools://devtools/bundled/inspector.html", true},
		{"edge://settings", true},
		{"brave://rewards", true},
		{"opera://about", true},
		{"vivaldi://experiments", true},
		{"moz-extension://abcdef/popup.html", true},
		{"about:blank", true},
		{"file:///home/user/notes.txt", true},
		{"view-source:https://example.com", true},
		{"https://example.com", false},
		{"http://example.com/page", false},
		{"https://chrome.google.com/webstore", false},
		{"ftp://files.example.com/pub", false},
	}

	for _, test := range tests {
		result := IsRestricted(test.url)
		if result != test.expected {
			t.Errorf("IsRestricted(%q) = %v, expected %v", test.url, result, test.expected)
		}
	}
}

func TestIsRestricted_CaseSensitive(t *testing.T) {
	// Prefix matching is case-sensitive; schemes from a real browser are
	// always lowercase, anything else is not a restricted surface.
	if IsRestricted("Chrome://extensions") {
		t.Error("IsRestricted should not match uppercase scheme variants")
	}
	if IsRestricted("FILE:///etc/passwd") {
		t.Error("IsRestricted should not match uppercase scheme variants")
	}
}

func TestIsRestricted_AllPrefixes(t *testing.T) {
	for _, prefix := range RestrictedPrefixes() {
		if !IsRestricted(prefix + "anything") {
			t.Errorf("IsRestricted(%q + suffix) should be true", prefix)
		}
	}
}

func TestFormatForDisplay(t *testing.T) {
	short := "https://example.com/page"
	if got := FormatForDisplay(short, DefaultMaxDisplayLength); got != short {
		t.Errorf("FormatForDisplay(short) = %q, expected unchanged", got)
	}

	exact := strings.Repeat("a", DefaultMaxDisplayLength)
	if got := FormatForDisplay(exact, DefaultMaxDisplayLength); got != exact {
		t.Error("FormatForDisplay should leave a URL of exactly max length unchanged")
	}

	long := "https://example.com/" + strings.Repeat("x", 100)
	got := FormatForDisplay(long, DefaultMaxDisplayLength)
	if len(got) != DefaultMaxDisplayLength {
		t.Errorf("FormatForDisplay(long) length = %d, expected %d", len(got), DefaultMaxDisplayLength)
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("FormatForDisplay(long) = %q, expected trailing %q", got, Ellipsis)
	}
	if got[:DefaultMaxDisplayLength-len(Ellipsis)] != long[:DefaultMaxDisplayLength-len(Ellipsis)] {
		t.Error("FormatForDisplay should preserve the leading characters of the URL")
	}
}

func TestFormatForDisplay_BadMaxLength(t *testing.T) {
	long := strings.Repeat("b", 200)

	// Nonsense max lengths fall back to the default instead of panicking
	for _, max := range []int{0, -5, 2, 3} {
		got := FormatForDisplay(long, max)
		if len(got) != DefaultMaxDisplayLength {
			t.Errorf("FormatForDisplay with max=%d length = %d, expected %d", max, len(got), DefaultMaxDisplayLength)
		}
	}
}
