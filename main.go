package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tabqr/tabqr/internal/browser"
	"github.com/tabqr/tabqr/internal/config"
	"github.com/tabqr/tabqr/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tabqr.tabqr"
	AppName = "TabQR"

	WindowWidth  = 360
	WindowHeight = 440
)

func main() {
	// Log version information
	fmt.Printf("TabQR v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	tabSvc := browser.NewClient(settings.GetDevToolsURL())

	// Create and setup UI; kicks off the active-tab query
	ui.NewRootUI(myWindow, myApp, tabSvc)

	// Show and run
	myWindow.ShowAndRun()
}
