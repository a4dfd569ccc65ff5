package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/salahdesk/salah-widget/internal/config"
)

// WidgetTheme renders the widget in the configured light or dark palette
// with a user-selected base font size
type WidgetTheme struct {
	dark     bool
	fontSize float32
}

// NewWidgetTheme creates a theme from the persisted appearance settings
func NewWidgetTheme(preset config.Theme, fontSize int) fyne.Theme {
	return &WidgetTheme{
		dark:     preset == config.ThemeDark,
		fontSize: float32(fontSize),
	}
}

// Color returns theme colors
func (t *WidgetTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.dark {
		variant = theme.VariantDark
	} else {
		variant = theme.VariantLight
	}

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 33, G: 150, B: 243, A: 255} // Blue for the next prayer highlight
	case theme.ColorNameBackground:
		if t.dark {
			return color.RGBA{R: 45, G: 45, B: 48, A: 255}
		}
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case theme.ColorNameForeground:
		if t.dark {
			return color.RGBA{R: 238, G: 238, B: 238, A: 255}
		}
		return color.RGBA{R: 51, G: 51, B: 51, A: 255}
	case theme.ColorNameButton:
		if t.dark {
			return color.RGBA{R: 62, G: 62, B: 66, A: 255}
		}
		return color.RGBA{R: 224, G: 224, B: 224, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *WidgetTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *WidgetTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes scaled from the configured font size
func (t *WidgetTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.fontSize
	case theme.SizeNameHeadingText:
		return t.fontSize + 6
	case theme.SizeNameSubHeadingText:
		return t.fontSize + 2
	case theme.SizeNameCaptionText:
		return t.fontSize - 2
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
