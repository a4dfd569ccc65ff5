package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/salahdesk/salah-widget/internal/api"
	"github.com/salahdesk/salah-widget/internal/cache"
	"github.com/salahdesk/salah-widget/internal/config"
	"github.com/salahdesk/salah-widget/internal/platform"
	"github.com/salahdesk/salah-widget/internal/refresh"
	"github.com/salahdesk/salah-widget/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.salahdesk.salah-widget"
	AppName = "Salah Widget"
)

func main() {
	// Log version information
	fmt.Printf("Salah Widget v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply persisted theme and font size
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewWidgetTheme(settings.GetTheme(), settings.GetFontSize()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services; a broken cache disables offline fallback only
	var store refresh.PayloadStore
	if cachePath, err := platform.CacheFilePath(); err != nil {
		log.Printf("failed to resolve cache path: %v", err)
	} else if boltStore, err := cache.Open(cachePath); err != nil {
		log.Printf("failed to open cache: %v", err)
	} else {
		defer boltStore.Close()
		store = boltStore
	}

	refreshSvc := refresh.NewService(api.NewClient(), store)
	refreshSvc.LoadCached()

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, refreshSvc)
	rootUI.SetupTray()
	rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
