package gui

import (
	"numeral-converter/internal/gui/components"
	"numeral-converter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	controls  *components.ControlsPanel
	resultBar *components.ResultBar
}

// NewManager builds the converter form. baseNames is the dropdown order;
// defaultFrom and defaultTo must be among them.
func NewManager(window fyne.Window, log logger.Logger, baseNames []string, defaultFrom, defaultTo string) *Manager {
	manager := &Manager{
		window:    window,
		logger:    log,
		controls:  components.NewControlsPanel(baseNames, defaultFrom, defaultTo),
		resultBar: components.NewResultBar(),
	}

	log.Debug("GUIManager", "form initialized", map[string]interface{}{
		"bases":        len(baseNames),
		"default_from": defaultFrom,
		"default_to":   defaultTo,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewVBox(
		m.controls.GetContainer(),
		m.resultBar.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Controls() *components.ControlsPanel {
	return m.controls
}

func (m *Manager) SetConvertHandler(handler func(value, from, to string)) {
	m.controls.SetConvertHandler(func(value, from, to string) {
		m.logger.Debug("GUIManager", "conversion requested", map[string]interface{}{
			"from": from,
			"to":   to,
		})

		handler(value, from, to)
	})
}

// TriggerConvert runs the convert handler as if the button had been pressed.
func (m *Manager) TriggerConvert() {
	m.controls.Submit()
}

func (m *Manager) SetResult(text string) {
	m.resultBar.SetResult(text)
}

func (m *Manager) ClearResult() {
	m.resultBar.Clear()
}

func (m *Manager) ResultText() string {
	return m.resultBar.Text()
}

func (m *Manager) ClearInput() {
	m.controls.ClearValue()
}

func (m *Manager) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowWarning(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
	dialog.ShowCustom(title, "OK", content, m.window)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Debug("GUIManager", "showing error", map[string]interface{}{
		"title": title,
		"error": err.Error(),
	})

	content := container.NewHBox(
		widget.NewIcon(theme.ErrorIcon()),
		widget.NewLabel(err.Error()),
	)
	dialog.ShowCustom(title, "OK", content, m.window)
}

func (m *Manager) IsShutdown() bool {
	return m.isShutdown
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
