// Package calc implements the calculator state machine driven by debounced
// button activations, along with binary evaluation and the history log.
package calc

import (
	"fmt"
	"strings"
)

// MaxDisplayLength caps digit entry; further digits are silently dropped.
const MaxDisplayLength = 12

// Engine owns the arithmetic state and interprets button activations
// deterministically. Every activation is an atomic transition; malformed or
// premature activations are silent no-ops and arithmetic failures surface as
// the error marker in the display. Nothing panics past this boundary.
//
// Engine is not safe for concurrent use; the frame pipeline owns it and
// applies one activation at a time.
type Engine struct {
	display       Value
	current       string // current operand, empty when none entered yet
	previous      string // first operand of a pending binary operation
	operator      ButtonID
	justEvaluated bool
	history       *History
}

// NewEngine creates an Engine showing "0" with an empty history log.
func NewEngine() *Engine {
	return &Engine{
		display: Number("0"),
		history: NewHistory(DefaultHistoryCapacity),
	}
}

// Apply consumes a single button activation and mutates the engine state.
// It returns true when the activation changed state, false for no-ops.
func (e *Engine) Apply(b ButtonID) bool {
	switch {
	case b.IsDigit():
		return e.applyDigit(b)
	case b == BtnDot:
		return e.applyDot()
	case b.IsOperator():
		return e.applyOperator(b)
	case b == BtnEquals:
		return e.applyEquals()
	case b == BtnClear:
		e.reset()
		return true
	case b == BtnDelete:
		return e.applyDelete()
	case b == BtnNegate:
		return e.applyNegate()
	case b == BtnPercent:
		return e.applyPercent()
	}
	return false
}

// applyDigit appends a digit to the display, or starts a fresh number right
// after an evaluation. A lone "0" and the error marker are replaced.
func (e *Engine) applyDigit(b ButtonID) bool {
	digit := string(b)

	if e.justEvaluated {
		e.display = Number(digit)
		e.current = digit
		e.justEvaluated = false
		return true
	}

	// An empty current operand means entry is starting over, either at
	// startup or right after an operator press; the display still shows
	// the previous number then and must not be appended to.
	if e.current == "" || e.display.isZero() || e.display.IsError() {
		e.display = Number(digit)
	} else if len(e.display.String()) < MaxDisplayLength {
		e.display = Number(e.display.String() + digit)
	} else {
		return false
	}
	e.current = e.display.String()
	return true
}

// applyDot appends a decimal point. Ignored when the display already has
// one, right after an evaluation, or while the display shows the error
// marker.
func (e *Engine) applyDot() bool {
	if e.justEvaluated || e.display.IsError() {
		return false
	}
	if e.current != "" && strings.Contains(e.display.String(), ".") {
		return false
	}

	if e.current == "" || e.display.isZero() {
		e.display = Number("0.")
	} else {
		e.display = Number(e.display.String() + ".")
	}
	e.current = e.display.String()
	return true
}

// applyOperator records a pending binary operator. When an operation is
// already pending it is evaluated first (chaining); if that evaluation
// fails the error is displayed and the new operator is not consumed.
func (e *Engine) applyOperator(b ButtonID) bool {
	if e.current == "" {
		return false
	}

	if e.operator != "" && e.previous != "" {
		result, err := Evaluate(e.previous, e.operator, e.current)
		if err != nil {
			e.display = ErrorValue()
			return true
		}
		e.previous = result
		e.display = Number(result)
	} else {
		e.previous = e.current
	}

	e.operator = b
	e.current = ""
	e.justEvaluated = false
	return true
}

// applyEquals evaluates the pending binary operation and records it in the
// history log. A no-op unless both operands and the operator are present.
// Failed evaluations display the error marker and leave the history alone.
func (e *Engine) applyEquals() bool {
	if e.current == "" || e.operator == "" || e.previous == "" {
		return false
	}

	result, err := Evaluate(e.previous, e.operator, e.current)
	if err != nil {
		e.display = ErrorValue()
		e.current = ""
	} else {
		e.history.Append(fmt.Sprintf("%s %s %s = %s", e.previous, e.operator, e.current, result))
		e.display = Number(result)
		e.current = result
	}

	e.previous = ""
	e.operator = ""
	e.justEvaluated = true
	return true
}

// reset clears all operands and the pending operator. The history log is
// untouched.
func (e *Engine) reset() {
	e.current = ""
	e.previous = ""
	e.operator = ""
	e.display = Number("0")
	e.justEvaluated = false
}

// applyDelete drops the last display character; a single remaining
// character resets the display to "0". Errors clear back to "0" as well.
func (e *Engine) applyDelete() bool {
	if e.display.IsError() {
		e.display = Number("0")
		e.current = ""
		return true
	}

	text := e.display.String()
	if !e.justEvaluated && len(text) > 1 {
		e.display = Number(text[:len(text)-1])
		e.current = e.display.String()
		return true
	}
	if len(text) == 1 {
		e.display = Number("0")
		e.current = ""
		return true
	}
	return false
}

// applyNegate toggles the sign of the current operand. A no-op when there
// is no current operand or it is exactly "0".
func (e *Engine) applyNegate() bool {
	if e.current == "" || e.current == "0" {
		return false
	}

	if strings.HasPrefix(e.current, "-") {
		e.current = e.current[1:]
	} else {
		e.current = "-" + e.current
	}
	e.display = Number(e.current)
	return true
}

// applyPercent divides the current operand by 100, formatted by the same
// rule as binary results.
func (e *Engine) applyPercent() bool {
	if e.current == "" {
		return false
	}

	result, err := Evaluate(e.current, BtnDivide, "100")
	if err != nil {
		e.display = ErrorValue()
		return true
	}
	e.display = Number(result)
	e.current = result
	return true
}

// Display returns the current display text.
func (e *Engine) Display() string {
	return e.display.String()
}

// DisplayValue returns the current display as a tagged value.
func (e *Engine) DisplayValue() Value {
	return e.display
}

// PendingOperator returns the operator awaiting its second operand, or ""
// when none is pending.
func (e *Engine) PendingOperator() ButtonID {
	return e.operator
}

// CurrentOperand returns the operand currently being entered, or "".
func (e *Engine) CurrentOperand() string {
	return e.current
}

// PreviousOperand returns the first operand of the pending operation, or "".
func (e *Engine) PreviousOperand() string {
	return e.previous
}

// JustEvaluated reports whether the last activation was a completed "=".
func (e *Engine) JustEvaluated() bool {
	return e.justEvaluated
}

// History returns the log of completed calculations.
func (e *Engine) History() *History {
	return e.history
}
