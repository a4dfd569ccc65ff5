package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Desktop entry constants
const (
	DesktopEntrySection = "Desktop Entry"
	DesktopFileName     = "salah-widget.desktop"
	AppDisplayName      = "Salah Widget"
	AppComment          = "Prayer times, daily verse and hadith on your desktop"
	AppCategories       = "Utility;"
)

// applicationsDir returns the per-user desktop entry directory
func applicationsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "applications"), nil
}

// autostartDir returns the per-user autostart directory
func autostartDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "autostart"), nil
}

// writeDesktopEntry writes a desktop entry file into dir. Writing over an
// existing entry is the idempotent-reinstall path.
func writeDesktopEntry(dir, execPath string, autostart bool) (string, error) {
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("desktop entry dir: %w", err)
	}

	file := ini.Empty()
	section := file.Section(DesktopEntrySection)
	section.Key("Type").SetValue("Application")
	section.Key("Name").SetValue(AppDisplayName)
	section.Key("Comment").SetValue(AppComment)
	section.Key("Exec").SetValue(execPath)
	section.Key("Terminal").SetValue("false")
	section.Key("Categories").SetValue(AppCategories)

	if autostart {
		section.Key("X-GNOME-Autostart-enabled").SetValue("true")
	}

	path := filepath.Join(dir, DesktopFileName)
	if err := file.SaveTo(path); err != nil {
		return "", fmt.Errorf("write desktop entry: %w", err)
	}
	return path, nil
}

// InstallDesktopEntry registers the widget with the application launcher
func InstallDesktopEntry(execPath string) error {
	dir, err := applicationsDir()
	if err != nil {
		return err
	}
	_, err = writeDesktopEntry(dir, execPath, false)
	return err
}

// InstallAutostartEntry registers the widget to start with the session
func InstallAutostartEntry(execPath string) error {
	dir, err := autostartDir()
	if err != nil {
		return err
	}
	_, err = writeDesktopEntry(dir, execPath, true)
	return err
}

// RemoveAutostartEntry removes the autostart registration. Removing an
// entry that does not exist is not an error.
func RemoveAutostartEntry() error {
	dir, err := autostartDir()
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(dir, DesktopFileName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// AutostartEnabled reports whether an autostart entry is registered
func AutostartEnabled() bool {
	dir, err := autostartDir()
	if err != nil {
		return false
	}

	_, err = os.Stat(filepath.Join(dir, DesktopFileName))
	return err == nil
}
