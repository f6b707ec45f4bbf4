package app

import "fyne.io/fyne/v2"

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Convert", a.guiManager.TriggerConvert),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear", a.handlers.HandleClear),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.handlers.HandleAbout),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}
