// FILE: lixenwraith/confparse/value.go
package confparse

import (
	"errors"
	"strconv"
)

// Value is a single scalar token from a key line.
// Typed accessors re-parse the stored string on every call.
type Value struct {
	raw string
}

// NewValue wraps a string token.
func NewValue(s string) Value {
	return Value{raw: s}
}

// String returns the raw token.
func (v Value) String() string {
	return v.raw
}

// Int parses the token as a base-10 integer in the 32-bit range.
func (v Value) Int() (int, error) {
	i, err := strconv.ParseInt(v.raw, 10, 32)
	if err != nil {
		return 0, v.formatErr("int", err)
	}
	return int(i), nil
}

// Int64 parses the token as a base-10 64-bit integer.
func (v Value) Int64() (int64, error) {
	i, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return 0, v.formatErr("int64", err)
	}
	return i, nil
}

// Float64 parses the token as a double-precision float.
func (v Value) Float64() (float64, error) {
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, v.formatErr("float64", err)
	}
	return f, nil
}

// Float32 parses the token as a single-precision float.
func (v Value) Float32() (float32, error) {
	f, err := strconv.ParseFloat(v.raw, 32)
	if err != nil {
		return 0, v.formatErr("float32", err)
	}
	return float32(f), nil
}

// Bool parses the token with strconv.ParseBool rules (1, t, true, 0, f, false, ...).
func (v Value) Bool() (bool, error) {
	b, err := strconv.ParseBool(v.raw)
	if err != nil {
		return false, v.formatErr("bool", err)
	}
	return b, nil
}

func (v Value) formatErr(typ string, err error) error {
	// strconv errors repeat the token; keep only the reason
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &FormatError{Token: v.raw, Type: typ, Err: err}
}
