package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// SetupTray installs the system tray menu and makes the window close
// button hide to tray instead of quitting
func (ui *RootUI) SetupTray() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		log.Printf("System tray not supported by this driver")
		return
	}

	showItem := fyne.NewMenuItem("Show Widget", func() {
		ui.window.Show()
	})
	refreshItem := fyne.NewMenuItem("Refresh Data", ui.onRefreshClick)
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	quitItem := fyne.NewMenuItem("Quit", func() {
		ui.Stop()
		ui.app.Quit()
	})

	menu := fyne.NewMenu("Salah Widget",
		showItem,
		settingsItem,
		refreshItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
	desk.SetSystemTrayMenu(menu)

	// Closing the window keeps the widget running in the tray
	ui.window.SetCloseIntercept(func() {
		ui.window.Hide()
	})

	log.Printf("System tray menu installed")
}
