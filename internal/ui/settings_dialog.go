package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/salahdesk/salah-widget/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	cityEntry        *widget.Entry
	countryEntry     *widget.Entry
	timezoneEntry    *widget.Entry
	methodEntry      *widget.Entry
	themeSelect      *widget.Select
	fontSizeEntry    *widget.Entry
	arabicCheck      *widget.Check
	translationCheck *widget.Check
	hadithCheck      *widget.Check
	autostartCheck   *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is
// invoked after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := NewSettingsDialog(settings, window, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Location
	sd.cityEntry = widget.NewEntry()
	sd.cityEntry.SetPlaceHolder("City name")

	sd.countryEntry = widget.NewEntry()
	sd.countryEntry.SetPlaceHolder("Country name")

	sd.timezoneEntry = widget.NewEntry()
	sd.timezoneEntry.SetPlaceHolder("IANA name, empty for system")

	sd.methodEntry = widget.NewEntry()
	sd.methodEntry.SetPlaceHolder("Calculation method id, e.g. 2")

	// Appearance
	themeOptions := []string{}
	for _, preset := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(preset))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.fontSizeEntry = widget.NewEntry()
	sd.fontSizeEntry.SetPlaceHolder("8-24")

	// Visibility
	sd.arabicCheck = widget.NewCheck("Show Arabic text", nil)
	sd.translationCheck = widget.NewCheck("Show translation", nil)
	sd.hadithCheck = widget.NewCheck("Show daily hadith", nil)
	sd.autostartCheck = widget.NewCheck("Start with the system", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Location"),
		widget.NewSeparator(),

		widget.NewLabel("City:"),
		sd.cityEntry,

		widget.NewLabel("Country:"),
		sd.countryEntry,

		widget.NewLabel("Timezone:"),
		sd.timezoneEntry,

		widget.NewLabel("Calculation Method:"),
		sd.methodEntry,

		widget.NewSeparator(),
		widget.NewLabel("Appearance"),
		widget.NewSeparator(),

		widget.NewLabel("Theme:"),
		sd.themeSelect,

		widget.NewLabel("Font Size:"),
		sd.fontSizeEntry,

		widget.NewSeparator(),
		sd.arabicCheck,
		sd.translationCheck,
		sd.hadithCheck,
		sd.autostartCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.cityEntry.SetText(sd.settings.GetCity())
	sd.countryEntry.SetText(sd.settings.GetCountry())
	sd.timezoneEntry.SetText(sd.settings.GetTimezone())
	sd.methodEntry.SetText(strconv.Itoa(sd.settings.GetMethod()))
	sd.themeSelect.SetSelected(string(sd.settings.GetTheme()))
	sd.fontSizeEntry.SetText(strconv.Itoa(sd.settings.GetFontSize()))
	sd.arabicCheck.SetChecked(sd.settings.GetShowArabic())
	sd.translationCheck.SetChecked(sd.settings.GetShowTranslation())
	sd.hadithCheck.SetChecked(sd.settings.GetShowHadith())
	sd.autostartCheck.SetChecked(sd.settings.GetAutostart())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.cityEntry.Text != "" {
		sd.settings.SetCity(sd.cityEntry.Text)
	}
	if sd.countryEntry.Text != "" {
		sd.settings.SetCountry(sd.countryEntry.Text)
	}
	sd.settings.SetTimezone(sd.timezoneEntry.Text)

	if method, err := strconv.Atoi(sd.methodEntry.Text); err == nil {
		sd.settings.SetMethod(method)
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetTheme(config.Theme(sd.themeSelect.Selected))
	}

	if size, err := strconv.Atoi(sd.fontSizeEntry.Text); err == nil {
		sd.settings.SetFontSize(size)
	}

	sd.settings.SetShowArabic(sd.arabicCheck.Checked)
	sd.settings.SetShowTranslation(sd.translationCheck.Checked)
	sd.settings.SetShowHadith(sd.hadithCheck.Checked)
	sd.settings.SetAutostart(sd.autostartCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
