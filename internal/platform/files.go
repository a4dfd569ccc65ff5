package platform

import (
	"os"
	"path/filepath"
)

// Application directory names
const (
	AppDirName    = "salah-widget"
	CacheFileName = "cache.db"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// ConfigDir returns the per-user configuration directory for the widget,
// creating it if needed
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, AppDirName)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// CacheFilePath returns the path of the offline cache database
func CacheFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CacheFileName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
