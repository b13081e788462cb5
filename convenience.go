// File: lixenwraith/confparse/convenience.go
package confparse

import (
	"fmt"
	"strings"
)

// Load builds a Config from src without defaults
func Load(src Source) (*Config, error) {
	return NewBuilder(src).Build()
}

// LoadFile builds a Config from a local file path
func LoadFile(path string) (*Config, error) {
	return Load(File(path))
}

// LoadString builds a Config from in-memory text
func LoadString(text string) (*Config, error) {
	return Load(Text(text))
}

// MustLoad is like Load but panics on error
func MustLoad(src Source) *Config {
	cfg, err := Load(src)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Debug returns a human-readable listing of headers, keys and values
func (c *Config) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	if c.source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", c.source))
	}
	b.WriteString(fmt.Sprintf("Headers: %d\n", c.Len()))

	for _, h := range c.Headers() {
		b.WriteString(fmt.Sprintf("  [%s]\n", h.Name()))
		for _, k := range h.Keys() {
			b.WriteString(fmt.Sprintf("    %s = %q\n", k.Name(), k.Strings()))
		}
	}

	return b.String()
}

// Clone creates a deep copy of the configuration. Key cursors start fresh.
func (c *Config) Clone() *Config {
	clone := New()
	clone.source = c.source
	for _, h := range c.Headers() {
		clone.setHeader(h.clone())
	}
	return clone
}
