// FILE: lixenwraith/confparse/key.go
package confparse

import "fmt"

// Key is a named, ordered list of values.
//
// Next rotates through the values round-robin using a single cursor owned by
// the key. The cursor is not synchronized: callers sharing a Key across
// goroutines must serialize their Next calls.
type Key struct {
	name   string
	values []Value
	cursor int
}

// NewKey creates a key with the given name and initial values.
func NewKey(name string, values ...Value) *Key {
	k := &Key{name: name, cursor: -1}
	k.values = append(k.values, values...)
	return k
}

// Name returns the key name.
func (k *Key) Name() string {
	return k.name
}

// AddValue appends a value. Duplicates are kept.
func (k *Key) AddValue(v Value) {
	k.values = append(k.values, v)
}

// HasValues reports whether the key holds at least one value.
func (k *Key) HasValues() bool {
	return len(k.values) > 0
}

// Len returns the number of values.
func (k *Key) Len() int {
	return len(k.values)
}

// Value returns the value at index i.
func (k *Key) Value(i int) (Value, bool) {
	if i < 0 || i >= len(k.values) {
		return Value{}, false
	}
	return k.values[i], true
}

// Values returns a copy of the values in declaration order.
func (k *Key) Values() []Value {
	out := make([]Value, len(k.values))
	copy(out, k.values)
	return out
}

// Strings returns the raw tokens in declaration order.
func (k *Key) Strings() []string {
	out := make([]string, len(k.values))
	for i, v := range k.values {
		out[i] = v.String()
	}
	return out
}

// Next advances the cursor and returns the value under it, starting over at
// the first value once the last one has been returned.
func (k *Key) Next() (Value, error) {
	if len(k.values) == 0 {
		return Value{}, fmt.Errorf("%w: key '%s' has no values", ErrInvalidState, k.name)
	}
	k.cursor++
	if k.cursor >= len(k.values) {
		k.cursor = 0
	}
	return k.values[k.cursor], nil
}

// NextString returns the next value as a string.
func (k *Key) NextString() (string, error) {
	v, err := k.Next()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// NextInt returns the next value as an int.
func (k *Key) NextInt() (int, error) {
	v, err := k.Next()
	if err != nil {
		return 0, err
	}
	return v.Int()
}

// NextInt64 returns the next value as an int64.
func (k *Key) NextInt64() (int64, error) {
	v, err := k.Next()
	if err != nil {
		return 0, err
	}
	return v.Int64()
}

// NextFloat64 returns the next value as a float64.
func (k *Key) NextFloat64() (float64, error) {
	v, err := k.Next()
	if err != nil {
		return 0, err
	}
	return v.Float64()
}

// NextFloat32 returns the next value as a float32.
func (k *Key) NextFloat32() (float32, error) {
	v, err := k.Next()
	if err != nil {
		return 0, err
	}
	return v.Float32()
}

// NextBool returns the next value as a bool.
func (k *Key) NextBool() (bool, error) {
	v, err := k.Next()
	if err != nil {
		return false, err
	}
	return v.Bool()
}

// clone copies the key with a fresh cursor.
func (k *Key) clone() *Key {
	return NewKey(k.name, k.values...)
}
