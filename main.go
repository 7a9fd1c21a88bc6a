package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/SabeeirSharrma/allthetorr/internal/catalog"
	"github.com/SabeeirSharrma/allthetorr/internal/config"
	"github.com/SabeeirSharrma/allthetorr/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.sabeeirsharrma.allthetorr"
	AppName = "AllTheTorr"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s — GUI Edition", AppName))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	cfgStore := config.NewStore(config.DefaultPath())
	service := catalog.NewService(cfgStore, catalog.NewFetcher(catalog.DefaultFetchTimeout))

	// Create and setup UI; the initial fetch starts in the background
	ui.NewRootUI(myWindow, service)

	// Show and run
	myWindow.ShowAndRun()
}
