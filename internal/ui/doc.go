package ui

// Package ui contains the Fyne-based desktop user interface for the widget.
// It renders the prayer schedule, countdown, verse, and hadith panels, wires
// user interactions to the refresh service, and manages the tray menu,
// themes, and settings dialog.
