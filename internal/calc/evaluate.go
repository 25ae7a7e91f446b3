package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Evaluation errors. All of them surface to the user as the error marker;
// none escapes the engine.
var (
	// ErrDivideByZero is returned when dividing by exactly zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrBadOperand is returned when an operand does not parse as a number.
	ErrBadOperand = errors.New("operand is not a number")
	// ErrUnknownOperator is returned for an operator outside + - × ÷.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Thresholds for switching the result format to scientific notation.
const (
	sciUpperBound = 1e9
	sciLowerBound = 1e-6
)

// Evaluate computes the binary operation a op b and returns the formatted
// result. Both operands are parsed as decimal numbers; division by exactly
// zero and unparseable operands yield an error instead of a result.
func Evaluate(a string, op ButtonID, b string) (string, error) {
	n1, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return "", ErrBadOperand
	}
	n2, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return "", ErrBadOperand
	}

	var result float64
	switch op {
	case BtnAdd:
		result = n1 + n2
	case BtnSubtract:
		result = n1 - n2
	case BtnMultiply:
		result = n1 * n2
	case BtnDivide:
		if n2 == 0 {
			return "", ErrDivideByZero
		}
		result = n1 / n2
	default:
		return "", ErrUnknownOperator
	}

	return FormatResult(result), nil
}

// FormatResult renders a computed value for the display.
//
// Rules, applied in order:
//  1. Magnitude above 1e9, or below 1e-6 and not exactly zero: normalized
//     scientific notation with 2 fractional digits.
//  2. Mathematically integral: bare integer string.
//  3. Otherwise: 8 fractional digits with trailing zeros and a trailing
//     decimal point stripped.
//
// Re-parsing a formatted result and formatting it again yields the same
// string, so chained operations never accumulate formatting drift.
func FormatResult(result float64) string {
	abs := math.Abs(result)
	if abs > sciUpperBound || (abs < sciLowerBound && result != 0) {
		return strconv.FormatFloat(result, 'e', 2, 64)
	}

	if result == math.Trunc(result) {
		return strconv.FormatFloat(result, 'f', -1, 64)
	}

	s := strconv.FormatFloat(result, 'f', 8, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
