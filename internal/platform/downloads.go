package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DownloadsDirName is the conventional per-user downloads folder
const DownloadsDirName = "Downloads"

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}

// CreateDirectoryIfNotExists ensures the directory exists
func CreateDirectoryIfNotExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}
