package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultBar shows the outcome of the last successful conversion.
type ResultBar struct {
	container   *fyne.Container
	resultLabel *widget.Label
}

func NewResultBar() *ResultBar {
	resultLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{
		Bold:      true,
		Monospace: true,
	})
	resultLabel.Importance = widget.SuccessImportance
	resultLabel.Wrapping = fyne.TextWrapBreak

	return &ResultBar{
		container:   container.NewPadded(resultLabel),
		resultLabel: resultLabel,
	}
}

func (rb *ResultBar) GetContainer() *fyne.Container {
	return rb.container
}

func (rb *ResultBar) SetResult(text string) {
	rb.resultLabel.SetText(text)
}

func (rb *ResultBar) Clear() {
	rb.resultLabel.SetText("")
}

func (rb *ResultBar) Text() string {
	return rb.resultLabel.Text
}
