package converter

import (
	"errors"
	"fmt"
)

var ErrInvalidNumeral = errors.New("invalid numeral")

// InvalidNumeralError reports a value that cannot be read as a numeral in
// Base, or a Base outside the supported set.
type InvalidNumeralError struct {
	Value string
	Base  Base
}

func (e *InvalidNumeralError) Error() string {
	if !e.Base.Valid() {
		return fmt.Sprintf("Base %d is not supported; ‘%s’ cannot be converted.", int(e.Base), e.Value)
	}
	return fmt.Sprintf("‘%s’ is not a valid %s number.", e.Value, e.Base)
}

func (e *InvalidNumeralError) Is(target error) bool {
	return target == ErrInvalidNumeral
}
