package config

import (
	"fyne.io/fyne/v2"

	"github.com/tabqr/tabqr/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDevToolsURL = "devtools_url"
	KeyExportDir   = "export_directory"
)

// Default values
const (
	DefaultDevToolsURL = "http://127.0.0.1:9222"
	DefaultExportDir   = "/tmp/tabqr"
)

// Settings manages application configuration. Only machine-level wiring is
// stored here; the QR size selection is deliberately not persisted and
// starts at medium on every launch.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDevToolsURL returns the configured DevTools endpoint of the browser
func (s *Settings) GetDevToolsURL() string {
	url := s.app.Preferences().String(KeyDevToolsURL)
	if url == "" {
		s.SetDevToolsURL(DefaultDevToolsURL)
		return DefaultDevToolsURL
	}
	return url
}

// SetDevToolsURL sets the DevTools endpoint
func (s *Settings) SetDevToolsURL(url string) {
	s.app.Preferences().SetString(KeyDevToolsURL, url)
}

// GetExportDirectory returns the directory that exported PNG files go to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use the user's Downloads directory by default
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = DefaultExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}
