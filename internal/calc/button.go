package calc

import "errors"

// ErrUnknownButton is returned when an activation names a symbol outside the
// calculator's button set.
var ErrUnknownButton = errors.New("unknown button")

// ButtonID identifies a calculator button by its face symbol.
type ButtonID string

// Non-digit button symbols.
const (
	BtnDot      ButtonID = "."
	BtnAdd      ButtonID = "+"
	BtnSubtract ButtonID = "-"
	BtnMultiply ButtonID = "×"
	BtnDivide   ButtonID = "÷"
	BtnEquals   ButtonID = "="
	BtnClear    ButtonID = "C"
	BtnDelete   ButtonID = "del"
	BtnNegate   ButtonID = "±"
	BtnPercent  ButtonID = "%"
)

// IsDigit reports whether the button is one of the digits 0-9.
func (b ButtonID) IsDigit() bool {
	return len(b) == 1 && b[0] >= '0' && b[0] <= '9'
}

// IsOperator reports whether the button is one of the four binary operators.
func (b ButtonID) IsOperator() bool {
	switch b {
	case BtnAdd, BtnSubtract, BtnMultiply, BtnDivide:
		return true
	}
	return false
}

// IsValid reports whether the button belongs to the calculator's symbol set.
func (b ButtonID) IsValid() bool {
	if b.IsDigit() || b.IsOperator() {
		return true
	}
	switch b {
	case BtnDot, BtnEquals, BtnClear, BtnDelete, BtnNegate, BtnPercent:
		return true
	}
	return false
}
