// FILE: lixenwraith/confparse/merge_test.go
package confparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Config {
	t.Helper()
	cfg, err := ParseString(text)
	require.NoError(t, err)
	return cfg
}

// TestDefaultsRegister tests accumulation into a template
func TestDefaultsRegister(t *testing.T) {
	d := NewDefaults().
		Register("server", "port", "8080").
		Register("server", "port", "9090").
		Register("server", "tls").
		Register("cache", "ttl", "60")

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, map[string]map[string][]string{
		"server": {"port": {"8080", "9090"}, "tls": {}},
		"cache":  {"ttl": {"60"}},
	}, snapshot(d.tree))

	names := make([]string, 0, d.Len())
	for _, h := range d.Headers() {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"server", "cache"}, names)

	h, ok := d.Header("server")
	require.True(t, ok)
	assert.Equal(t, 2, h.Len())

	t.Run("Extend", func(t *testing.T) {
		other := NewDefaults().
			Register("server", "port", "7070").
			Register("log", "level", "info")
		other.header("bare")

		base := NewDefaults().Register("server", "port", "8080")
		base.Extend(other).Extend(nil)

		assert.Equal(t, map[string]map[string][]string{
			"server": {"port": {"8080", "7070"}},
			"log":    {"level": {"info"}},
			"bare":   {},
		}, snapshot(base.tree))
	})
}

// TestMergeInto tests that explicit data wins and gaps are filled
func TestMergeInto(t *testing.T) {
	d := NewDefaults().
		Register("server", "host", "localhost").
		Register("server", "port", "8080").
		Register("server", "retries", "3").
		Register("metrics", "enabled", "true")

	t.Run("Precedence", func(t *testing.T) {
		cfg := mustParse(t, "server:\nhost 0.0.0.0\nretries\nextra x\n")
		d.MergeInto(cfg)

		assert.Equal(t, map[string]map[string][]string{
			"server": {
				"host":    {"0.0.0.0"},
				"retries": {"3"},
				"extra":   {"x"},
				"port":    {"8080"},
			},
			"metrics": {"enabled": {"true"}},
		}, snapshot(cfg))

		// Keys from defaults go after the parsed keys
		h, _ := cfg.Header("server")
		var order []string
		for _, k := range h.Keys() {
			order = append(order, k.Name())
		}
		assert.Equal(t, []string{"host", "retries", "extra", "port"}, order)
		assert.Equal(t, []string{"server", "metrics"}, headerNames(cfg))
	})

	t.Run("Idempotent", func(t *testing.T) {
		cfg := mustParse(t, "server:\nretries\n")
		d.MergeInto(cfg)
		first := snapshot(cfg)

		d.MergeInto(cfg)
		assert.Equal(t, first, snapshot(cfg))
	})

	t.Run("TemplateNotAliased", func(t *testing.T) {
		cfg := mustParse(t, "other:\nk v\n")
		d.MergeInto(cfg)

		k, ok := cfg.Key("metrics", "enabled")
		require.True(t, ok)
		k.AddValue(NewValue("false"))
		k.Next()

		dh, _ := d.Header("metrics")
		dk, _ := dh.Key("enabled")
		assert.Equal(t, []string{"true"}, dk.Strings())

		// A second config gets an untouched copy with a fresh cursor
		cfg2 := mustParse(t, "other:\nk v\n")
		d.MergeInto(cfg2)
		k2, _ := cfg2.Key("metrics", "enabled")
		assert.Equal(t, []string{"true"}, k2.Strings())
		v, err := k2.Next()
		require.NoError(t, err)
		assert.Equal(t, "true", v.String())
	})

	t.Run("HeaderOrderIrrelevant", func(t *testing.T) {
		forward := NewDefaults().
			Register("server", "port", "8080").
			Register("log", "level", "info").
			Register("cache", "ttl", "60")
		reverse := NewDefaults().
			Register("cache", "ttl", "60").
			Register("log", "level", "info").
			Register("server", "port", "8080")

		text := "server:\nhost x\nport\nlog:\nlevel debug\n"
		a := mustParse(t, text)
		b := mustParse(t, text)
		forward.MergeInto(a)
		reverse.MergeInto(b)

		assert.Equal(t, snapshot(a), snapshot(b))
		assert.Equal(t, []string{"8080"}, snapshot(a)["server"]["port"])
		assert.Equal(t, []string{"debug"}, snapshot(a)["log"]["level"])
	})

	t.Run("EmptyDefaultKeepsEmptyKey", func(t *testing.T) {
		cfg := mustParse(t, "a:\nflag\n")
		NewDefaults().Register("a", "flag").MergeInto(cfg)

		k, _ := cfg.Key("a", "flag")
		assert.False(t, k.HasValues())
	})
}
