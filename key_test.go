// FILE: lixenwraith/confparse/key_test.go
package confparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(tokens ...string) []Value {
	out := make([]Value, len(tokens))
	for i, s := range tokens {
		out[i] = NewValue(s)
	}
	return out
}

// TestKeyNext tests the rotating cursor
func TestKeyNext(t *testing.T) {
	t.Run("RoundRobin", func(t *testing.T) {
		k := NewKey("port", values("8080", "9090")...)

		var got []string
		for i := 0; i < 3; i++ {
			s, err := k.NextString()
			require.NoError(t, err)
			got = append(got, s)
		}
		assert.Equal(t, []string{"8080", "9090", "8080"}, got)
	})

	t.Run("WrapsAfterN", func(t *testing.T) {
		for n := 1; n <= 5; n++ {
			tokens := make([]string, n)
			for i := range tokens {
				tokens[i] = fmt.Sprintf("v%d", i)
			}
			k := NewKey("k", values(tokens...)...)

			for i := 0; i < n; i++ {
				v, err := k.Next()
				require.NoError(t, err)
				assert.Equal(t, tokens[i], v.String())
			}
			v, err := k.Next()
			require.NoError(t, err)
			assert.Equal(t, "v0", v.String(), "call %d of key with %d values", n+1, n)
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		k := NewKey("empty")
		assert.False(t, k.HasValues())

		_, err := k.Next()
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Contains(t, err.Error(), "empty")

		_, err = k.NextInt()
		assert.ErrorIs(t, err, ErrInvalidState)
		_, err = k.NextBool()
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("AppendWhileIterating", func(t *testing.T) {
		k := NewKey("k", values("a", "b")...)
		v, _ := k.Next()
		assert.Equal(t, "a", v.String())

		k.AddValue(NewValue("c"))

		var got []string
		for i := 0; i < 3; i++ {
			s, err := k.NextString()
			require.NoError(t, err)
			got = append(got, s)
		}
		assert.Equal(t, []string{"b", "c", "a"}, got)
	})

	t.Run("TypedNext", func(t *testing.T) {
		k := NewKey("mixed", values("1", "2.5", "true", "abc")...)

		i, err := k.NextInt()
		require.NoError(t, err)
		assert.Equal(t, 1, i)

		f, err := k.NextFloat64()
		require.NoError(t, err)
		assert.Equal(t, 2.5, f)

		b, err := k.NextBool()
		require.NoError(t, err)
		assert.True(t, b)

		_, err = k.NextInt64()
		assert.ErrorIs(t, err, ErrFormat)

		// Cursor advanced past the bad value
		f32, err := k.NextFloat32()
		require.NoError(t, err)
		assert.Equal(t, float32(1), f32)
	})
}

// TestKeyValues tests ordered access to values
func TestKeyValues(t *testing.T) {
	k := NewKey("hosts", values("a", "b", "a")...)

	assert.Equal(t, "hosts", k.Name())
	assert.Equal(t, 3, k.Len())
	assert.Equal(t, []string{"a", "b", "a"}, k.Strings())

	t.Run("ValuesIsCopy", func(t *testing.T) {
		vs := k.Values()
		vs[0] = NewValue("changed")
		assert.Equal(t, "a", k.Strings()[0])
	})

	t.Run("ValueByIndex", func(t *testing.T) {
		v, ok := k.Value(1)
		assert.True(t, ok)
		assert.Equal(t, "b", v.String())

		_, ok = k.Value(3)
		assert.False(t, ok)
		_, ok = k.Value(-1)
		assert.False(t, ok)
	})

	t.Run("CloneResetsCursor", func(t *testing.T) {
		k.Next()
		c := k.clone()
		v, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, "a", v.String())

		c.AddValue(NewValue("z"))
		assert.Equal(t, 3, k.Len())
	})
}
