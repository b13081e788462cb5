// FILE: lixenwraith/confparse/header.go
package confparse

// Header is a named section holding keys unique by name.
// Keys iterate in the order they were first added.
type Header struct {
	name  string
	keys  map[string]*Key
	order []string
}

// NewHeader creates an empty header.
func NewHeader(name string) *Header {
	return &Header{
		name: name,
		keys: make(map[string]*Key),
	}
}

// Name returns the header name.
func (h *Header) Name() string {
	return h.name
}

// AddKey inserts k, replacing any key with the same name in place.
func (h *Header) AddKey(k *Key) {
	if _, exists := h.keys[k.Name()]; !exists {
		h.order = append(h.order, k.Name())
	}
	h.keys[k.Name()] = k
}

// HasKey reports whether a key with the given name exists.
func (h *Header) HasKey(name string) bool {
	_, exists := h.keys[name]
	return exists
}

// Key returns the key with the given name.
func (h *Header) Key(name string) (*Key, bool) {
	k, exists := h.keys[name]
	return k, exists
}

// Keys returns the keys in insertion order.
func (h *Header) Keys() []*Key {
	out := make([]*Key, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, h.keys[name])
	}
	return out
}

// Len returns the number of keys.
func (h *Header) Len() int {
	return len(h.order)
}

func (h *Header) clone() *Header {
	c := NewHeader(h.name)
	for _, k := range h.Keys() {
		c.AddKey(k.clone())
	}
	return c
}
