// File: lixenwraith/confparse/helper.go
package confparse

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/sirupsen/logrus"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// indirect dereferences pointers and interfaces. Returns the zero Value for nil.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// isTextual reports whether v formats itself via encoding.TextMarshaler.
func isTextual(v reflect.Value) bool {
	return v.Type().Implements(textMarshalerType) ||
		(v.CanAddr() && v.Addr().Type().Implements(textMarshalerType))
}

// valueStrings renders a scalar as one token, or a slice/array as one token per element.
func valueStrings(v reflect.Value) ([]string, error) {
	v = indirect(v)
	if !v.IsValid() {
		return nil, nil
	}

	if s, ok, err := scalarString(v); ok || err != nil {
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}

	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		out := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := indirect(v.Index(i))
			if !elem.IsValid() {
				continue
			}
			s, ok, err := scalarString(elem)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("unsupported element type %s", elem.Type())
			}
			out = append(out, s)
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported type %s", v.Type())
}

// scalarString formats basic kinds and TextMarshalers. ok is false for
// anything else.
func scalarString(v reflect.Value) (s string, ok bool, err error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true, nil
	}

	if isTextual(v) {
		var m encoding.TextMarshaler
		if v.Type().Implements(textMarshalerType) {
			m = v.Interface().(encoding.TextMarshaler)
		} else {
			m = v.Addr().Interface().(encoding.TextMarshaler)
		}
		text, err := m.MarshalText()
		if err != nil {
			return "", false, err
		}
		return string(text), true, nil
	}

	return "", false, nil
}

// headerMap flattens a header for decoding: one value maps to a string,
// several to a []string. Keys without values are left out.
func headerMap(h *Header) map[string]any {
	m := make(map[string]any, h.Len())
	for _, k := range h.Keys() {
		switch k.Len() {
		case 0:
			continue
		case 1:
			m[k.Name()] = k.values[0].String()
		default:
			m[k.Name()] = k.Strings()
		}
	}
	return m
}

// discardLogger is used when no logger is configured.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
