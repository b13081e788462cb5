// FILE: lixenwraith/confparse/value_test.go
package confparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValueConversion tests the typed accessors of Value
func TestValueConversion(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		v := NewValue("127.0.0.1")
		assert.Equal(t, "127.0.0.1", v.String())
	})

	t.Run("Int", func(t *testing.T) {
		i, err := NewValue("8080").Int()
		require.NoError(t, err)
		assert.Equal(t, 8080, i)

		i, err = NewValue("-42").Int()
		require.NoError(t, err)
		assert.Equal(t, -42, i)
	})

	t.Run("IntOutOfRange", func(t *testing.T) {
		_, err := NewValue("3000000000").Int()
		assert.ErrorIs(t, err, ErrFormat)

		i, err := NewValue("3000000000").Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(3000000000), i)
	})

	t.Run("Floats", func(t *testing.T) {
		f, err := NewValue("3.14").Float64()
		require.NoError(t, err)
		assert.Equal(t, 3.14, f)

		f32, err := NewValue("1.5").Float32()
		require.NoError(t, err)
		assert.Equal(t, float32(1.5), f32)
	})

	t.Run("Bool", func(t *testing.T) {
		tests := []struct {
			in   string
			want bool
		}{
			{"true", true},
			{"TRUE", true},
			{"1", true},
			{"false", false},
			{"0", false},
		}
		for _, tt := range tests {
			b, err := NewValue(tt.in).Bool()
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, b, tt.in)
		}
	})

	t.Run("FormatErrors", func(t *testing.T) {
		v := NewValue("abc")

		_, err := v.Int()
		assert.ErrorIs(t, err, ErrFormat)

		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "abc", fe.Token)
		assert.Equal(t, "int", fe.Type)
		assert.Contains(t, err.Error(), `"abc"`)

		_, err = v.Int64()
		assert.ErrorIs(t, err, ErrFormat)
		_, err = v.Float64()
		assert.ErrorIs(t, err, ErrFormat)
		_, err = v.Float32()
		assert.ErrorIs(t, err, ErrFormat)
		_, err = NewValue("yes").Bool()
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("NoTrimming", func(t *testing.T) {
		_, err := NewValue(" 1").Int()
		assert.ErrorIs(t, err, ErrFormat)
	})
}
