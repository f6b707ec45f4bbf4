package app

import (
	"errors"
	"testing"

	"numeral-converter/internal/converter"
	"numeral-converter/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) SetResult(text string) {
	m.Called(text)
}

func (m *MockPresenter) ClearResult() {
	m.Called()
}

func (m *MockPresenter) ClearInput() {
	m.Called()
}

func (m *MockPresenter) ShowInformation(title, message string) {
	m.Called(title, message)
}

func (m *MockPresenter) ShowWarning(title, message string) {
	m.Called(title, message)
}

func (m *MockPresenter) ShowError(title string, err error) {
	m.Called(title, err)
}

func newTestHandlers() (*Handlers, *MockPresenter) {
	p := new(MockPresenter)
	return NewHandlers(p, logger.NoOpLogger{}), p
}

func TestHandleConvert_Success(t *testing.T) {
	tests := []struct {
		value, from, to string
		want            string
	}{
		{"255", "Decimal", "Hexadecimal", "255 (Decimal) → FF (Hexadecimal)"},
		{"1010", "Binary", "Decimal", "1010 (Binary) → 10 (Decimal)"},
		{"17", "Octal", "Binary", "17 (Octal) → 1111 (Binary)"},
		{"-ff", "Hexadecimal", "Decimal", "-ff (Hexadecimal) → -255 (Decimal)"},
		{"  0  ", "Decimal", "Binary", "0 (Decimal) → 0 (Binary)"},
		{"\tFF\n", "Hexadecimal", "Octal", "FF (Hexadecimal) → 377 (Octal)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h, p := newTestHandlers()
			p.On("SetResult", tt.want).Once()

			h.HandleConvert(tt.value, tt.from, tt.to)

			p.AssertExpectations(t)
			p.AssertNotCalled(t, "ShowError", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleConvert_EmptyInput(t *testing.T) {
	for _, value := range []string{"", "   ", "\t\n"} {
		h, p := newTestHandlers()
		p.On("ShowWarning", EmptyInputTitle, EmptyInputMessage).Once()

		h.HandleConvert(value, "Decimal", "Binary")

		p.AssertExpectations(t)
		p.AssertNotCalled(t, "SetResult", mock.Anything)
		p.AssertNotCalled(t, "ClearResult")
	}
}

func TestHandleConvert_InvalidNumeral(t *testing.T) {
	h, p := newTestHandlers()
	p.On("ClearResult").Once()
	p.On("ShowError", InvalidNumberTitle, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, converter.ErrInvalidNumeral) &&
			err.Error() == "‘12’ is not a valid Binary number."
	})).Once()

	h.HandleConvert(" 12 ", "Binary", "Decimal")

	p.AssertExpectations(t)
	p.AssertNotCalled(t, "SetResult", mock.Anything)
}

func TestHandleConvert_UnknownBase(t *testing.T) {
	h, p := newTestHandlers()
	p.On("ClearResult").Twice()
	p.On("ShowError", InvalidBaseTitle, mock.Anything).Twice()

	h.HandleConvert("10", "Ternary", "Decimal")
	h.HandleConvert("10", "Decimal", "")

	p.AssertExpectations(t)
	p.AssertNotCalled(t, "SetResult", mock.Anything)
}

func TestHandleClear(t *testing.T) {
	h, p := newTestHandlers()
	p.On("ClearInput").Once()
	p.On("ClearResult").Once()

	h.HandleClear()

	p.AssertExpectations(t)
}

func TestHandleAbout(t *testing.T) {
	h, p := newTestHandlers()
	p.On("ShowInformation", "About", mock.MatchedBy(func(msg string) bool {
		return containsAll(msg, AppName, AppVersion)
	})).Once()

	h.HandleAbout()

	p.AssertExpectations(t)
}

func TestFormatResult(t *testing.T) {
	req := converter.Request{Value: "ff", From: converter.Hexadecimal, To: converter.Decimal}
	assert.Equal(t, "ff (Hexadecimal) → 255 (Decimal)", FormatResult(req, "255"))
}
