package app

import (
	"fmt"
	"strings"

	"numeral-converter/internal/converter"
	"numeral-converter/internal/logger"
)

const (
	EmptyInputTitle    = "Empty Input"
	EmptyInputMessage  = "Please enter a number to convert."
	InvalidNumberTitle = "Invalid Number"
	InvalidBaseTitle   = "Invalid Base"
)

// Presenter is the display surface the handlers report to.
type Presenter interface {
	SetResult(text string)
	ClearResult()
	ClearInput()
	ShowInformation(title, message string)
	ShowWarning(title, message string)
	ShowError(title string, err error)
}

type Handlers struct {
	presenter Presenter
	logger    logger.Logger
}

func NewHandlers(p Presenter, log logger.Logger) *Handlers {
	return &Handlers{
		presenter: p,
		logger:    log,
	}
}

// HandleConvert trims value, converts it between the named bases and shows
// the outcome. Empty input never reaches the converter.
func (h *Handlers) HandleConvert(value, fromName, toName string) {
	value = strings.TrimSpace(value)
	if value == "" {
		h.logger.Debug("Handlers", "empty input ignored", nil)
		h.presenter.ShowWarning(EmptyInputTitle, EmptyInputMessage)
		return
	}

	from, ok := converter.ParseBase(fromName)
	if !ok {
		h.showBaseError(fromName)
		return
	}
	to, ok := converter.ParseBase(toName)
	if !ok {
		h.showBaseError(toName)
		return
	}

	req := converter.Request{Value: value, From: from, To: to}
	result, err := req.Convert()
	if err != nil {
		h.logger.Warning("Handlers", "invalid numeral", map[string]interface{}{
			"from":         from.String(),
			"input_length": len(value),
		})
		h.presenter.ClearResult()
		h.presenter.ShowError(InvalidNumberTitle, err)
		return
	}

	h.logger.Debug("Handlers", "conversion complete", map[string]interface{}{
		"from":          from.String(),
		"to":            to.String(),
		"input_length":  len(value),
		"output_length": len(result),
	})
	h.presenter.SetResult(FormatResult(req, result))
}

func (h *Handlers) HandleClear() {
	h.presenter.ClearInput()
	h.presenter.ClearResult()
}

func (h *Handlers) HandleAbout() {
	h.presenter.ShowInformation("About",
		fmt.Sprintf("%s %s\nConverts integers between binary, octal, decimal and hexadecimal.", AppName, AppVersion))
}

func (h *Handlers) showBaseError(name string) {
	err := fmt.Errorf("unsupported base %q", name)
	h.logger.Error("Handlers", err, nil)
	h.presenter.ClearResult()
	h.presenter.ShowError(InvalidBaseTitle, err)
}

// FormatResult renders a successful conversion for the result label.
func FormatResult(req converter.Request, result string) string {
	return fmt.Sprintf("%s (%s) → %s (%s)", req.Value, req.From, result, req.To)
}
