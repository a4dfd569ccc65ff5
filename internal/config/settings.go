package config

import (
	"fyne.io/fyne/v2"
)

// Theme presets for the widget
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyCity            = "location_city"
	KeyCountry         = "location_country"
	KeyTimezone        = "location_timezone"
	KeyMethod          = "calculation_method"
	KeyTheme           = "appearance_theme"
	KeyFontSize        = "appearance_font_size"
	KeyShowArabic      = "show_arabic"
	KeyShowTranslation = "show_translation"
	KeyShowHadith      = "show_hadith"
	KeyAutostart       = "autostart_enabled"
)

// Default values
const (
	DefaultCity            = "New York"
	DefaultCountry         = "United States"
	DefaultMethod          = 2 // ISNA
	DefaultTheme           = ThemeLight
	DefaultFontSize        = 12
	DefaultShowArabic      = true
	DefaultShowTranslation = true
	DefaultShowHadith      = true
	DefaultAutostart       = false
)

// Font size bounds
const (
	MinFontSize = 8
	MaxFontSize = 24
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCity returns the configured city
func (s *Settings) GetCity() string {
	city := s.app.Preferences().String(KeyCity)
	if city == "" {
		s.SetCity(DefaultCity)
		return DefaultCity
	}
	return city
}

// SetCity sets the city
func (s *Settings) SetCity(city string) {
	s.app.Preferences().SetString(KeyCity, city)
}

// GetCountry returns the configured country
func (s *Settings) GetCountry() string {
	country := s.app.Preferences().String(KeyCountry)
	if country == "" {
		s.SetCountry(DefaultCountry)
		return DefaultCountry
	}
	return country
}

// SetCountry sets the country
func (s *Settings) SetCountry(country string) {
	s.app.Preferences().SetString(KeyCountry, country)
}

// GetTimezone returns the configured IANA timezone name, empty for system local
func (s *Settings) GetTimezone() string {
	return s.app.Preferences().String(KeyTimezone)
}

// SetTimezone sets the timezone name
func (s *Settings) SetTimezone(tz string) {
	s.app.Preferences().SetString(KeyTimezone, tz)
}

// GetMethod returns the prayer calculation method id
func (s *Settings) GetMethod() int {
	method := s.app.Preferences().Int(KeyMethod)
	if method <= 0 {
		s.SetMethod(DefaultMethod)
		return DefaultMethod
	}
	return method
}

// SetMethod sets the prayer calculation method id
func (s *Settings) SetMethod(method int) {
	if method <= 0 {
		method = DefaultMethod
	}
	s.app.Preferences().SetInt(KeyMethod, method)
}

// GetTheme returns the configured theme
func (s *Settings) GetTheme() Theme {
	theme := s.app.Preferences().String(KeyTheme)
	if theme != string(ThemeLight) && theme != string(ThemeDark) {
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
	return Theme(theme)
}

// SetTheme sets the theme
func (s *Settings) SetTheme(theme Theme) {
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// GetThemeOptions returns available theme options
func (s *Settings) GetThemeOptions() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// GetFontSize returns the configured font size
func (s *Settings) GetFontSize() int {
	size := s.app.Preferences().Int(KeyFontSize)
	if size < MinFontSize || size > MaxFontSize {
		s.SetFontSize(DefaultFontSize)
		return DefaultFontSize
	}
	return size
}

// SetFontSize sets the font size, clamped to the allowed range
func (s *Settings) SetFontSize(size int) {
	if size < MinFontSize {
		size = MinFontSize
	}
	if size > MaxFontSize {
		size = MaxFontSize
	}
	s.app.Preferences().SetInt(KeyFontSize, size)
}

// GetShowArabic returns whether the Arabic verse text is shown
func (s *Settings) GetShowArabic() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowArabic, DefaultShowArabic)
}

// SetShowArabic sets whether the Arabic verse text is shown
func (s *Settings) SetShowArabic(show bool) {
	s.app.Preferences().SetBool(KeyShowArabic, show)
}

// GetShowTranslation returns whether the verse translation is shown
func (s *Settings) GetShowTranslation() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowTranslation, DefaultShowTranslation)
}

// SetShowTranslation sets whether the verse translation is shown
func (s *Settings) SetShowTranslation(show bool) {
	s.app.Preferences().SetBool(KeyShowTranslation, show)
}

// GetShowHadith returns whether the hadith panel is shown
func (s *Settings) GetShowHadith() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowHadith, DefaultShowHadith)
}

// SetShowHadith sets whether the hadith panel is shown
func (s *Settings) SetShowHadith(show bool) {
	s.app.Preferences().SetBool(KeyShowHadith, show)
}

// GetAutostart returns whether the widget registers an autostart entry
func (s *Settings) GetAutostart() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutostart, DefaultAutostart)
}

// SetAutostart sets whether the widget registers an autostart entry
func (s *Settings) SetAutostart(enabled bool) {
	s.app.Preferences().SetBool(KeyAutostart, enabled)
}
