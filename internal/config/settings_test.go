package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLocation(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if settings.GetCity() != DefaultCity {
		t.Errorf("Expected default city %s, got %s", DefaultCity, settings.GetCity())
	}
	if settings.GetCountry() != DefaultCountry {
		t.Errorf("Expected default country %s, got %s", DefaultCountry, settings.GetCountry())
	}

	// Test setting custom values
	settings.SetCity("Cairo")
	settings.SetCountry("Egypt")

	if settings.GetCity() != "Cairo" {
		t.Errorf("Expected city Cairo, got %s", settings.GetCity())
	}
	if settings.GetCountry() != "Egypt" {
		t.Errorf("Expected country Egypt, got %s", settings.GetCountry())
	}
}

func TestTimezone(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty means system local
	if settings.GetTimezone() != "" {
		t.Errorf("Expected empty default timezone, got %s", settings.GetTimezone())
	}

	settings.SetTimezone("Europe/Istanbul")
	if settings.GetTimezone() != "Europe/Istanbul" {
		t.Errorf("Expected timezone Europe/Istanbul, got %s", settings.GetTimezone())
	}
}

func TestMethod(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMethod() != DefaultMethod {
		t.Errorf("Expected default method %d, got %d", DefaultMethod, settings.GetMethod())
	}

	settings.SetMethod(4)
	if settings.GetMethod() != 4 {
		t.Errorf("Expected method 4, got %d", settings.GetMethod())
	}

	// Invalid method falls back to default
	settings.SetMethod(-1)
	if settings.GetMethod() != DefaultMethod {
		t.Errorf("Expected invalid method to default to %d, got %d", DefaultMethod, settings.GetMethod())
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTheme() != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, settings.GetTheme())
	}

	settings.SetTheme(ThemeDark)
	if settings.GetTheme() != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, settings.GetTheme())
	}

	// Unknown value falls back to default
	settings.SetTheme(Theme("neon"))
	if settings.GetTheme() != DefaultTheme {
		t.Errorf("Expected unknown theme to default to %s, got %s", DefaultTheme, settings.GetTheme())
	}
}

func TestFontSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFontSize() != DefaultFontSize {
		t.Errorf("Expected default font size %d, got %d", DefaultFontSize, settings.GetFontSize())
	}

	settings.SetFontSize(16)
	if settings.GetFontSize() != 16 {
		t.Errorf("Expected font size 16, got %d", settings.GetFontSize())
	}

	// Test boundary values
	settings.SetFontSize(4) // Should be clamped to MinFontSize
	if settings.GetFontSize() != MinFontSize {
		t.Errorf("Font size should be clamped to minimum %d", MinFontSize)
	}

	settings.SetFontSize(99) // Should be clamped to MaxFontSize
	if settings.GetFontSize() != MaxFontSize {
		t.Errorf("Font size should be clamped to maximum %d", MaxFontSize)
	}
}

func TestVisibilityFlags(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetShowArabic() || !settings.GetShowTranslation() || !settings.GetShowHadith() {
		t.Error("Expected all visibility flags to default to true")
	}

	settings.SetShowArabic(false)
	settings.SetShowTranslation(false)
	settings.SetShowHadith(false)

	if settings.GetShowArabic() || settings.GetShowTranslation() || settings.GetShowHadith() {
		t.Error("Expected all visibility flags to be false after clearing")
	}
}

func TestAutostart(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutostart() != DefaultAutostart {
		t.Errorf("Expected default autostart %v, got %v", DefaultAutostart, settings.GetAutostart())
	}

	settings.SetAutostart(true)
	if !settings.GetAutostart() {
		t.Error("Expected autostart to be enabled")
	}
}

func TestGetThemeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeOptions()
	expectedOptions := []Theme{ThemeLight, ThemeDark}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetCity("Istanbul")
	settings.SetCountry("Turkey")
	settings.SetTimezone("Europe/Istanbul")
	settings.SetMethod(13)
	settings.SetTheme(ThemeDark)
	settings.SetFontSize(14)
	settings.SetShowArabic(true)
	settings.SetShowTranslation(false)
	settings.SetShowHadith(true)
	settings.SetAutostart(true)

	// A second manager over the same app sees identical values
	reloaded := NewSettings(app)

	if reloaded.GetCity() != "Istanbul" || reloaded.GetCountry() != "Turkey" {
		t.Error("Location did not round-trip")
	}
	if reloaded.GetTimezone() != "Europe/Istanbul" {
		t.Error("Timezone did not round-trip")
	}
	if reloaded.GetMethod() != 13 {
		t.Error("Method did not round-trip")
	}
	if reloaded.GetTheme() != ThemeDark {
		t.Error("Theme did not round-trip")
	}
	if reloaded.GetFontSize() != 14 {
		t.Error("Font size did not round-trip")
	}
	if !reloaded.GetShowArabic() || reloaded.GetShowTranslation() || !reloaded.GetShowHadith() {
		t.Error("Visibility flags did not round-trip")
	}
	if !reloaded.GetAutostart() {
		t.Error("Autostart did not round-trip")
	}
}
