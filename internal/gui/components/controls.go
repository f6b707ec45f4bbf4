package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ControlsPanel holds the numeral input, the two base dropdowns and the
// Convert button.
type ControlsPanel struct {
	container     *fyne.Container
	ValueEntry    *widget.Entry
	FromSelect    *widget.Select
	ToSelect      *widget.Select
	ConvertButton *widget.Button

	convertHandler func(value, from, to string)
}

func NewControlsPanel(baseNames []string, defaultFrom, defaultTo string) *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls(baseNames, defaultFrom, defaultTo)
	return panel
}

func (cp *ControlsPanel) setupControls(baseNames []string, defaultFrom, defaultTo string) {
	cp.ValueEntry = widget.NewEntry()
	cp.ValueEntry.TextStyle = fyne.TextStyle{Monospace: true}
	cp.ValueEntry.SetPlaceHolder("e.g. 255")
	cp.ValueEntry.OnSubmitted = func(string) {
		cp.onConvert()
	}

	cp.FromSelect = widget.NewSelect(baseNames, nil)
	cp.FromSelect.SetSelected(defaultFrom)

	cp.ToSelect = widget.NewSelect(baseNames, nil)
	cp.ToSelect.SetSelected(defaultTo)

	cp.ConvertButton = widget.NewButton("Convert", cp.onConvert)
	cp.ConvertButton.Importance = widget.HighImportance

	fields := container.New(layout.NewFormLayout(),
		widget.NewLabel("Enter Number:"), cp.ValueEntry,
		widget.NewLabel("Convert from:"), cp.FromSelect,
		widget.NewLabel("Convert to:"), cp.ToSelect,
	)

	cp.container = container.NewVBox(
		fields,
		container.NewCenter(cp.ConvertButton),
	)
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

// SetConvertHandler receives the raw entry text and the selected base names.
func (cp *ControlsPanel) SetConvertHandler(handler func(value, from, to string)) {
	cp.convertHandler = handler
}

// Submit behaves like a press of the Convert button.
func (cp *ControlsPanel) Submit() {
	cp.onConvert()
}

func (cp *ControlsPanel) ClearValue() {
	cp.ValueEntry.SetText("")
}

func (cp *ControlsPanel) onConvert() {
	if cp.convertHandler != nil {
		cp.convertHandler(cp.ValueEntry.Text, cp.FromSelect.Selected, cp.ToSelect.Selected)
	}
}
