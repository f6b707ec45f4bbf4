package app

import (
	"numeral-converter/internal/shutdown"

	"fyne.io/fyne/v2"
)

// registerShutdown orders teardown: the GUI manager first, then the Fyne app.
// The quit step is skipped once the Fyne event loop has already returned.
func (a *Application) registerShutdown() {
	a.shutdown.Register(shutdown.Func(func() {
		if a.stopped.Load() {
			return
		}
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register(a.guiManager)
}

// Shutdown tears the application down once. Safe to call from any goroutine.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
