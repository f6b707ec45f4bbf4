// Package converter reads and writes integer numerals in base 2, 8, 10 and 16.
package converter

import (
	"math/big"
	"strings"
)

// Request is a single conversion: Value read in From, rendered in To.
type Request struct {
	Value string
	From  Base
	To    Base
}

func (r Request) Convert() (string, error) {
	return Convert(r.Value, r.From, r.To)
}

// Convert reads value as an integer in base from and renders it in base to.
// Surrounding whitespace is not trimmed and makes the value invalid.
func Convert(value string, from, to Base) (string, error) {
	n, err := Parse(value, from)
	if err != nil {
		return "", err
	}
	if !to.Valid() {
		return "", &InvalidNumeralError{Value: value, Base: to}
	}
	return Format(n, to), nil
}

// Parse reads value as an integer literal in base. An optional leading sign is
// accepted; base prefixes and digit separators are not.
func Parse(value string, base Base) (*big.Int, error) {
	if value == "" || !base.Valid() {
		return nil, &InvalidNumeralError{Value: value, Base: base}
	}

	// SetString only honours prefixes and underscores for base 0.
	n, ok := new(big.Int).SetString(value, int(base))
	if !ok {
		return nil, &InvalidNumeralError{Value: value, Base: base}
	}
	return n, nil
}

// Format renders n in base without prefix or leading zeros. Hex digits are
// uppercase. base must be valid.
func Format(n *big.Int, base Base) string {
	s := n.Text(int(base))
	if base == Hexadecimal {
		s = strings.ToUpper(s)
	}
	return s
}
