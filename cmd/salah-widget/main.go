package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/salahdesk/salah-widget/internal/api"
	"github.com/salahdesk/salah-widget/internal/refresh"
	"github.com/salahdesk/salah-widget/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.salahdesk.salah-widget")
	myWindow := myApp.NewWindow("Salah Widget")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Minimal wiring without the offline cache
	refreshSvc := refresh.NewService(api.NewClient(), nil)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, refreshSvc)
	rootUI.SetupTray()
	rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
