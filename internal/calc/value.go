package calc

// ErrorText is the display text shown when a calculation fails.
const ErrorText = "Error"

// Value is what the display holds: either a decimal numeral (possibly in
// scientific notation after evaluation) or the error marker. Modeling the
// two cases explicitly avoids substring checks against the error literal.
type Value struct {
	text  string
	isErr bool
}

// Number returns a numeric display value with the given text.
func Number(text string) Value {
	return Value{text: text}
}

// ErrorValue returns the error display value.
func ErrorValue() Value {
	return Value{isErr: true}
}

// String returns the display text for the value.
func (v Value) String() string {
	if v.isErr {
		return ErrorText
	}
	return v.text
}

// IsError reports whether the value is the error marker.
func (v Value) IsError() bool {
	return v.isErr
}

// isZero reports whether the value is the lone "0" the display starts with.
func (v Value) isZero() bool {
	return !v.isErr && v.text == "0"
}
