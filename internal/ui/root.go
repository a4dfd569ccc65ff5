package ui

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/salahdesk/salah-widget/internal/config"
	"github.com/salahdesk/salah-widget/internal/model"
	"github.com/salahdesk/salah-widget/internal/platform"
	"github.com/salahdesk/salah-widget/internal/refresh"
	"github.com/salahdesk/salah-widget/internal/schedule"
)

// RootUI represents the main widget structure
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	settings   *config.Settings
	refreshSvc refresh.Refresher
	tracker    *schedule.Tracker

	// Prayer section
	prayerTimeLabels map[model.PrayerName]*widget.Label
	prayerNameLabels map[model.PrayerName]*widget.Label
	nextPrayerLabel  *widget.Label
	countdownLabel   *widget.Label
	highlighted      model.PrayerName

	// Verse section
	verseArabic      *widget.Label
	verseTranslation *widget.Label
	verseReference   *widget.Label

	// Hadith section
	hadithText    *widget.Label
	hadithSource  *widget.Label
	hadithSection *fyne.Container
}

// NewRootUI creates and initializes the main widget UI
func NewRootUI(window fyne.Window, app fyne.App, refreshSvc refresh.Refresher) *RootUI {
	ui := &RootUI{
		window:           window,
		app:              app,
		settings:         config.NewSettings(app),
		refreshSvc:       refreshSvc,
		prayerTimeLabels: make(map[model.PrayerName]*widget.Label),
		prayerNameLabels: make(map[model.PrayerName]*widget.Label),
	}

	ui.setupUI()

	// Data updates arrive from the refresh service; countdown ticks come
	// from the tracker. Both marshal back onto the UI thread here.
	ui.refreshSvc.SetUpdateCallback(ui.onSnapshot)
	ui.tracker = schedule.NewTracker(schedule.DefaultTickInterval, ui.onTick)

	// Seed panels from whatever the service already has (cache)
	ui.renderSnapshot(ui.refreshSvc.Snapshot())

	log.Printf("RootUI initialized")
	return ui
}

// Start begins the countdown ticks and the daily refresh timer
func (ui *RootUI) Start() {
	snap := ui.refreshSvc.Snapshot()
	ui.tracker.SetSchedules(snap.Today, snap.Tomorrow)
	ui.tracker.Start()
	ui.refreshSvc.StartDaily(ui.refreshParams)
	ui.refreshSvc.Refresh(ui.refreshParams())
}

// Stop ends the background timers
func (ui *RootUI) Stop() {
	ui.tracker.Stop()
	ui.refreshSvc.StopDaily()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	header := widget.NewLabelWithStyle("Salah Widget", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	prayerSection := ui.createPrayerSection()
	verseSection := ui.createVerseSection()
	ui.hadithSection = ui.createHadithSection()

	settingsBtn := widget.NewButton(IconSettings+" Settings", ui.onShowSettings)
	refreshBtn := widget.NewButton(IconRefresh+" Refresh", ui.onRefreshClick)
	buttons := container.NewGridWithColumns(2, settingsBtn, refreshBtn)

	content := container.NewVBox(
		header,
		prayerSection,
		widget.NewSeparator(),
		verseSection,
		widget.NewSeparator(),
		ui.hadithSection,
		buttons,
	)

	ui.window.SetContent(container.NewVScroll(content))
	ui.applyVisibility()

	log.Printf("UI setup completed")
}

// createPrayerSection builds the schedule grid and countdown labels
func (ui *RootUI) createPrayerSection() fyne.CanvasObject {
	header := widget.NewLabelWithStyle(HeaderPrayerTimes, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	grid := container.NewGridWithColumns(2)
	for _, name := range model.DisplayOrder {
		nameLabel := widget.NewLabel(name.String() + ":")
		nameLabel.TextStyle = fyne.TextStyle{Bold: true}
		timeLabel := widget.NewLabel(PlaceholderTime)

		ui.prayerNameLabels[name] = nameLabel
		ui.prayerTimeLabels[name] = timeLabel
		grid.Add(nameLabel)
		grid.Add(timeLabel)
	}

	ui.nextPrayerLabel = widget.NewLabel(PlaceholderNext)
	ui.nextPrayerLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.countdownLabel = widget.NewLabel(PlaceholderCountdown)

	return container.NewVBox(header, grid, widget.NewSeparator(), ui.nextPrayerLabel, ui.countdownLabel)
}

// createVerseSection builds the daily verse labels
func (ui *RootUI) createVerseSection() fyne.CanvasObject {
	header := widget.NewLabelWithStyle(HeaderDailyVerse, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.verseArabic = widget.NewLabel(PlaceholderVerse)
	ui.verseArabic.Alignment = fyne.TextAlignTrailing
	ui.verseArabic.TextStyle = fyne.TextStyle{Bold: true}
	ui.verseArabic.Wrapping = fyne.TextWrapWord

	ui.verseTranslation = widget.NewLabel(PlaceholderTranslation)
	ui.verseTranslation.Wrapping = fyne.TextWrapWord

	ui.verseReference = widget.NewLabel(PlaceholderReference)
	ui.verseReference.Alignment = fyne.TextAlignTrailing
	ui.verseReference.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewVBox(header, ui.verseArabic, ui.verseTranslation, ui.verseReference)
}

// createHadithSection builds the daily hadith labels
func (ui *RootUI) createHadithSection() *fyne.Container {
	header := widget.NewLabelWithStyle(HeaderDailyHadith, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.hadithText = widget.NewLabel(PlaceholderHadith)
	ui.hadithText.Wrapping = fyne.TextWrapWord

	ui.hadithSource = widget.NewLabel(PlaceholderSource)
	ui.hadithSource.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewVBox(header, ui.hadithText, ui.hadithSource)
}

// refreshParams builds fetch parameters from the persisted settings
func (ui *RootUI) refreshParams() refresh.Params {
	return refresh.Params{
		City:          ui.settings.GetCity(),
		Country:       ui.settings.GetCountry(),
		Timezone:      ui.settings.GetTimezone(),
		Method:        ui.settings.GetMethod(),
		IncludeHadith: ui.settings.GetShowHadith(),
	}
}

// onRefreshClick handles the refresh button click
func (ui *RootUI) onRefreshClick() {
	log.Printf("Manual refresh requested")
	ui.refreshSvc.Refresh(ui.refreshParams())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.onSettingsSaved)
}

// onSettingsSaved re-applies appearance, autostart, and refreshes data
func (ui *RootUI) onSettingsSaved() {
	log.Printf("Settings saved, re-applying")

	ui.ApplyTheme()
	ui.applyVisibility()
	ui.applyAutostart()
	ui.refreshSvc.Refresh(ui.refreshParams())
}

// ApplyTheme applies the persisted theme and font size to the app
func (ui *RootUI) ApplyTheme() {
	ui.app.Settings().SetTheme(NewWidgetTheme(ui.settings.GetTheme(), ui.settings.GetFontSize()))
}

// applyVisibility shows or hides the optional sections
func (ui *RootUI) applyVisibility() {
	if ui.settings.GetShowArabic() {
		ui.verseArabic.Show()
	} else {
		ui.verseArabic.Hide()
	}

	if ui.settings.GetShowTranslation() {
		ui.verseTranslation.Show()
	} else {
		ui.verseTranslation.Hide()
	}

	if ui.settings.GetShowHadith() {
		ui.hadithSection.Show()
	} else {
		ui.hadithSection.Hide()
	}
}

// applyAutostart registers or removes the autostart desktop entry
func (ui *RootUI) applyAutostart() {
	exec, err := os.Executable()
	if err != nil {
		log.Printf("Cannot resolve executable for autostart: %v", err)
		return
	}

	if ui.settings.GetAutostart() {
		if err := platform.InstallAutostartEntry(exec); err != nil {
			log.Printf("Autostart install failed: %v", err)
		}
	} else {
		if err := platform.RemoveAutostartEntry(); err != nil {
			log.Printf("Autostart removal failed: %v", err)
		}
	}
}

// onSnapshot handles data updates from the refresh service
func (ui *RootUI) onSnapshot(snap refresh.Snapshot) {
	log.Printf("Snapshot received: schedule=%s verse=%s hadith=%s",
		snap.ScheduleStatus, snap.VerseStatus, snap.HadithStatus)

	ui.tracker.SetSchedules(snap.Today, snap.Tomorrow)

	fyne.Do(func() {
		ui.renderSnapshot(snap)
	})
}

// renderSnapshot updates all panels. Must run on the UI thread.
func (ui *RootUI) renderSnapshot(snap refresh.Snapshot) {
	ui.renderSchedule(snap)
	ui.renderVerse(snap)
	ui.renderHadith(snap)
}

func (ui *RootUI) renderSchedule(snap refresh.Snapshot) {
	if !snap.ScheduleStatus.HasData() || snap.Today == nil {
		for _, label := range ui.prayerTimeLabels {
			label.SetText(PlaceholderTime)
		}
		if snap.ScheduleStatus == model.FetchStatusError {
			ui.nextPrayerLabel.SetText(PlaceholderNoSchedule)
			ui.countdownLabel.SetText(PlaceholderCountdown)
		}
		return
	}

	for _, name := range model.DisplayOrder {
		label := ui.prayerTimeLabels[name]
		if at, ok := snap.Today.TimeOf(name); ok {
			label.SetText(at.Format(TimeDisplay))
		} else {
			label.SetText(PlaceholderTime)
		}
	}
}

func (ui *RootUI) renderVerse(snap refresh.Snapshot) {
	if !snap.VerseStatus.HasData() || snap.Verse == nil {
		if snap.VerseStatus == model.FetchStatusError {
			ui.verseArabic.SetText(PlaceholderNoVerse)
			ui.verseTranslation.SetText("Please check your internet connection")
			ui.verseReference.SetText(PlaceholderReference)
		}
		return
	}

	ui.verseArabic.SetText(snap.Verse.Arabic)
	if snap.Verse.Translation != "" {
		ui.verseTranslation.SetText(snap.Verse.Translation)
	} else {
		ui.verseTranslation.SetText("Could not load translation")
	}
	ui.verseReference.SetText(snap.Verse.Reference())
}

func (ui *RootUI) renderHadith(snap refresh.Snapshot) {
	if !snap.HadithStatus.HasData() || snap.Hadith == nil {
		if snap.HadithStatus == model.FetchStatusError {
			ui.hadithText.SetText(PlaceholderNoHadith)
			ui.hadithSource.SetText(PlaceholderSource)
		}
		return
	}

	ui.hadithText.SetText(snap.Hadith.Text)
	ui.hadithSource.SetText("Source: " + snap.Hadith.Reference())
}

// onTick handles countdown updates from the tracker
func (ui *RootUI) onTick(np model.NextPrayer, ok bool) {
	fyne.Do(func() {
		if !ok {
			ui.countdownLabel.SetText(PlaceholderCountdown)
			return
		}

		ui.nextPrayerLabel.SetText(fmt.Sprintf(NextPrayerFormat, np.Name))
		ui.countdownLabel.SetText(fmt.Sprintf(CountdownFormat, np.CountdownString()))
		ui.highlightNext(np.Name)
	})
}

// highlightNext emphasizes the upcoming prayer row
func (ui *RootUI) highlightNext(name model.PrayerName) {
	if ui.highlighted == name {
		return
	}

	if prev, exists := ui.prayerTimeLabels[ui.highlighted]; exists {
		prev.TextStyle = fyne.TextStyle{}
		prev.Refresh()
	}
	if next, exists := ui.prayerTimeLabels[name]; exists {
		next.TextStyle = fyne.TextStyle{Bold: true}
		next.Refresh()
	}

	ui.highlighted = name
}
