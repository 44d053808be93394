package model

import "strings"

// Tab describes the active browser tab as reported by the DevTools endpoint.
type Tab struct {
	TargetID string
	URL      string
	Title    string
}

// HasURL returns true if the tab carries a usable, non-blank URL.
func (t *Tab) HasURL() bool {
	return t != nil && strings.TrimSpace(t.URL) != ""
}

// DisplayTitle returns the tab title, or the URL when no title is set.
func (t *Tab) DisplayTitle() string {
	if t == nil {
		return ""
	}
	if strings.TrimSpace(t.Title) != "" {
		return t.Title
	}
	return t.URL
}
