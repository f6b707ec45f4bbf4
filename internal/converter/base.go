package converter

import "strings"

// Base is the radix of a numeral. Only the four values below are supported.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases returns the supported bases in dropdown order.
func Bases() []Base {
	return []Base{Binary, Decimal, Octal, Hexadecimal}
}

// BaseNames returns the display names of Bases, in the same order.
func BaseNames() []string {
	bases := Bases()
	names := make([]string, len(bases))
	for i, b := range bases {
		names[i] = b.String()
	}
	return names
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Unknown"
	}
}

func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// ParseBase maps a display name such as "Hexadecimal" to its Base.
func ParseBase(name string) (Base, bool) {
	for _, b := range Bases() {
		if strings.EqualFold(b.String(), strings.TrimSpace(name)) {
			return b, true
		}
	}
	return 0, false
}
