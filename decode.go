// FILE: lixenwraith/confparse/decode.go
package confparse

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes one header into target, a non-nil pointer to a struct or map.
// Fields map to keys through `conf:"..."` tags. A key with one value decodes
// as a scalar, a key with several values as a slice; keys without values are
// skipped. Strings are weakly converted to numbers and booleans. Scan does not
// move any key cursor.
func (c *Config) Scan(header string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	h, exists := c.Header(header)
	if !exists {
		return fmt.Errorf("%w: %s", ErrHeaderNotFound, header)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(headerMap(h)); err != nil {
		return fmt.Errorf("decode failed for header %q: %w", header, err)
	}

	return nil
}
