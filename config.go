// FILE: lixenwraith/confparse/config.go
package confparse

// Config is the root of a parsed configuration: headers unique by name.
//
// A Config is built once by Parse or a Builder and is meant to be read
// afterwards. Lookups are safe for concurrent use; Key.Next is not.
type Config struct {
	headers map[string]*Header
	order   []string
	source  string
}

// New creates an empty Config.
func New() *Config {
	return &Config{
		headers: make(map[string]*Header),
	}
}

// Source describes where the config was loaded from, empty if parsed directly.
func (c *Config) Source() string {
	return c.source
}

// HasHeader reports whether a header with the given name exists.
func (c *Config) HasHeader(name string) bool {
	_, exists := c.headers[name]
	return exists
}

// HasHeaderAndKey reports whether the header exists and contains the key.
func (c *Config) HasHeaderAndKey(header, key string) bool {
	h, exists := c.headers[header]
	return exists && h.HasKey(key)
}

// Header returns the header with the given name.
func (c *Config) Header(name string) (*Header, bool) {
	h, exists := c.headers[name]
	return h, exists
}

// Key returns header.key in one step.
func (c *Config) Key(header, key string) (*Key, bool) {
	h, exists := c.headers[header]
	if !exists {
		return nil, false
	}
	return h.Key(key)
}

// Headers returns all headers in the order they were first committed.
func (c *Config) Headers() []*Header {
	out := make([]*Header, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.headers[name])
	}
	return out
}

// Len returns the number of headers.
func (c *Config) Len() int {
	return len(c.order)
}

// setHeader stores h, replacing any header with the same name.
func (c *Config) setHeader(h *Header) {
	if _, exists := c.headers[h.Name()]; !exists {
		c.order = append(c.order, h.Name())
	}
	c.headers[h.Name()] = h
}
