package app

import (
	"runtime"
	"sync/atomic"

	"numeral-converter/internal/converter"
	"numeral-converter/internal/gui"
	"numeral-converter/internal/logger"
	"numeral-converter/internal/shutdown"

	"fyne.io/fyne/v2"
)

const (
	AppName      = "Number System Converter"
	AppID        = "com.numeralconverter.app"
	AppVersion   = "1.0.0"
	WindowWidth  = 480
	WindowHeight = 260
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	shutdown   *shutdown.Manager
	logger     logger.Logger
	stopped    atomic.Bool
}

// NewApplication builds the converter window on fyneApp without showing it.
func NewApplication(fyneApp fyne.App, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
	})

	guiManager := gui.NewManager(window, log,
		converter.BaseNames(), converter.Decimal.String(), converter.Binary.String())

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		handlers:   NewHandlers(guiManager, log),
		shutdown:   shutdown.NewManager(log),
		logger:     log,
	}

	application.setupHandlers()
	application.setupMenus()
	application.registerShutdown()

	window.SetContent(guiManager.GetMainContainer())

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) setupHandlers() {
	a.guiManager.SetConvertHandler(a.handlers.HandleConvert)

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})
}

func (a *Application) Window() fyne.Window {
	return a.window
}

// Run shows the window and blocks until the Fyne app quits.
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.stopped.Store(true)
	a.Shutdown()
	return nil
}
