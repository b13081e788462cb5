// FILE: lixenwraith/confparse/register.go
package confparse

import (
	"fmt"
	"reflect"
	"strings"
)

// tagName is the struct tag read by RegisterStruct and Scan.
const tagName = "conf"

// Defaults is a template of headers, keys and values applied to a parsed
// Config wherever the config leaves a gap. It is a plain accumulator; it is
// never aliased into a Config, so one template can serve many loads.
type Defaults struct {
	tree *Config
}

// NewDefaults creates an empty template.
func NewDefaults() *Defaults {
	return &Defaults{tree: New()}
}

// Register adds default values for header.key.
// A new header or key is created as needed; values for an already registered
// key are appended after the existing ones.
func (d *Defaults) Register(header, key string, values ...string) *Defaults {
	h := d.header(header)

	k, exists := h.Key(key)
	if !exists {
		k = NewKey(key)
		h.AddKey(k)
	}

	for _, v := range values {
		k.AddValue(NewValue(v))
	}
	return d
}

// header returns the named template header, creating it if needed.
func (d *Defaults) header(name string) *Header {
	h, exists := d.tree.Header(name)
	if !exists {
		h = NewHeader(name)
		d.tree.setHeader(h)
	}
	return h
}

// Extend registers every header, key and value of other into d.
func (d *Defaults) Extend(other *Defaults) *Defaults {
	if other == nil {
		return d
	}
	for _, h := range other.tree.Headers() {
		d.header(h.Name())
		for _, k := range h.Keys() {
			d.Register(h.Name(), k.Name(), k.Strings()...)
		}
	}
	return d
}

// Header returns the registered default header.
func (d *Defaults) Header(name string) (*Header, bool) {
	return d.tree.Header(name)
}

// Headers returns the registered default headers in registration order.
func (d *Defaults) Headers() []*Header {
	return d.tree.Headers()
}

// Len returns the number of registered headers.
func (d *Defaults) Len() int {
	return d.tree.Len()
}

// RegisterStruct registers defaults derived from a struct.
// Field names come from `conf:"..."` tags, falling back to the field name;
// `conf:"-"` skips a field. Slices and arrays register one value per element.
//
// With a non-empty header, every field becomes a key of that header.
// With an empty header, each struct-typed field becomes a header and its
// fields become keys.
func (d *Defaults) RegisterStruct(header string, structWithDefaults any) error {
	v := reflect.ValueOf(structWithDefaults)

	// Handle pointer or direct struct value
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("RegisterStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("RegisterStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	var errors []string

	if header != "" {
		d.registerFields(v, header, &errors)
	} else {
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			name, skip := fieldName(field)
			if skip {
				continue
			}

			fv := indirect(v.Field(i))
			if !fv.IsValid() {
				continue // nil pointer
			}
			if fv.Kind() != reflect.Struct {
				errors = append(errors, fmt.Sprintf("field %s: top-level fields must be structs, got %s", field.Name, fv.Kind()))
				continue
			}
			d.registerFields(fv, name, &errors)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to register %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}

	return nil
}

// registerFields registers each exported field of v as a key of header.
func (d *Defaults) registerFields(v reflect.Value, header string, errors *[]string) {
	d.header(header)
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		name, skip := fieldName(field)
		if skip {
			continue
		}

		fv := indirect(v.Field(i))
		if !fv.IsValid() {
			continue // nil pointers carry no default
		}
		if fv.Kind() == reflect.Struct && !isTextual(fv) {
			*errors = append(*errors, fmt.Sprintf("field %s.%s: nested headers are not supported", header, field.Name))
			continue
		}

		values, err := valueStrings(fv)
		if err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s.%s: %v", header, field.Name, err))
			continue
		}
		d.Register(header, name, values...)
	}
}

// fieldName resolves the config name of a struct field.
func fieldName(field reflect.StructField) (name string, skip bool) {
	if !field.IsExported() {
		return "", true
	}

	tag := field.Tag.Get(tagName)
	if tag == "-" {
		return "", true
	}

	name = field.Name
	if tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
	}
	return name, false
}
