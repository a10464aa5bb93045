package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Number is a validated numeric argument. Integers and floats are both
// accepted and carried as float64.
type Number float64

// ErrOverflow is returned when finite operands produce a non-finite result
var ErrOverflow = errors.New("result overflows float64")

// String renders plain decimals for everyday magnitudes and switches to
// exponent form below 1e-4 or from 1e16 upwards.
func (n Number) String() string {
	f := float64(n)
	if abs := math.Abs(f); f != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// checkFinite reports ErrOverflow for an infinite result
func checkFinite(n Number) error {
	if math.IsInf(float64(n), 0) || math.IsNaN(float64(n)) {
		return ErrOverflow
	}
	return nil
}

// ArgumentError reports an argument that failed boundary validation
type ArgumentError struct {
	Name string
	Want string
	Got  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s must be %s, got %s", e.Name, e.Want, e.Got)
}

// ParseNumber accepts a value only if it already is numeric. Strings, nulls,
// booleans and composite values are rejected without coercion.
func ParseNumber(name string, v any) (Number, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, &ArgumentError{Name: name, Want: "a number", Got: fmt.Sprintf("malformed number %q", n.String())}
		}
		f = parsed
	default:
		return 0, &ArgumentError{Name: name, Want: "a number", Got: describeType(v)}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ArgumentError{Name: name, Want: "a finite number", Got: strconv.FormatFloat(f, 'f', -1, 64)}
	}

	return Number(f), nil
}

// describeType names a decoded JSON value in JSON terms
func describeType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
