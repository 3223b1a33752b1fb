package app

import (
	"fmt"

	"recipe-suggester/internal/config"
	"recipe-suggester/internal/debug"
	"recipe-suggester/internal/gui"
	"recipe-suggester/internal/models"
	"recipe-suggester/internal/suggest"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const (
	AppName      = "Recipe Suggester"
	AppID        = "com.recipesuggester.app"
	AppVersion   = "1.0.0"
	WindowWidth  = 900
	WindowHeight = 700
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	state      *models.DisplayStateRepository
	debugCoord debug.Coordinator
	lifecycle  *Lifecycle
}

// NewFyneApp creates the one fyne app of the process with the recipe theme
func NewFyneApp() fyne.App {
	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(gui.NewTheme())
	return fyneApp
}

// NewApplication builds the main window on fyneApp. On success the
// application's lifecycle owns the shutdown of debugCoord.
func NewApplication(fyneApp fyne.App, cfg *config.Config, catalog models.Catalog, debugCoord debug.Coordinator) (*Application, error) {
	logger := debugCoord.Logger()

	engine, err := suggest.NewEngine(cfg.EngineConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create suggestion engine: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	logger.Info("Application", "starting application", map[string]interface{}{
		"version":      AppVersion,
		"catalog":      cfg.CatalogPath,
		"foods":        catalog.Len(),
		"display_size": cfg.DisplaySize(),
		"truncate":     cfg.Truncate,
	})

	guiManager := gui.NewManager(window, debugCoord, cfg.GridSize)
	state := models.NewDisplayStateRepository()
	lifecycle := NewLifecycle(debugCoord, guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		state:      state,
		debugCoord: debugCoord,
		lifecycle:  lifecycle,
	}

	application.handlers = NewHandlers(engine, state, guiManager, debugCoord, catalog, cfg.DisplaySize())
	application.setupHandlers()

	window.SetContent(guiManager.GetMainContainer())

	logger.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetStartHandler(a.handlers.HandleStart)
	a.guiManager.SetFoodSelectHandler(a.handlers.HandleFoodSelected)
	a.guiManager.SetLearnMoreHandler(a.handlers.HandleLearnMore)
	a.guiManager.SetBackHandler(a.handlers.HandleBack)
	a.guiManager.SetQuitHandler(a.handlers.HandleQuit)

	a.handlers.SetQuitHandler(a.Quit)
}

// Quit shuts the application down and stops the event loop
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

func (a *Application) Run() error {
	logger := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()

	logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// ShowFatalError shows err in a window of its own on fyneApp and returns once
// the user has dismissed it
func ShowFatalError(fyneApp fyne.App, err error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth/2, WindowHeight/3))
	window.CenterOnScreen()

	errDialog := dialog.NewError(err, window)
	errDialog.SetOnClosed(fyneApp.Quit)
	window.SetCloseIntercept(fyneApp.Quit)

	window.Show()
	errDialog.Show()
	fyneApp.Run()
}
