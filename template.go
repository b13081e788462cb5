// FILE: lixenwraith/confparse/template.go
package confparse

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported defaults template formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// LoadDefaults reads a defaults template from a TOML or YAML file.
// The format is chosen by file extension.
func LoadDefaults(path string) (*Defaults, error) {
	format := detectFileFormat(path)
	if format == "" {
		return nil, fmt.Errorf("%w: cannot determine format of '%s'", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file '%s': %w", path, err)
	}

	d, err := ParseDefaults(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse defaults file '%s': %w", path, err)
	}
	return d, nil
}

// ParseDefaults builds a defaults template from a TOML or YAML document.
// Top-level tables are headers and their entries are keys. A scalar entry is
// one value, an array is one value per element. Nested tables are rejected.
func ParseDefaults(data []byte, format string) (*Defaults, error) {
	switch strings.ToLower(format) {
	case FormatTOML:
		return parseTOMLDefaults(data)
	case FormatYAML, "yml":
		return parseYAMLDefaults(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

func parseTOMLDefaults(data []byte) (*Defaults, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	d := NewDefaults()

	// MetaData.Keys preserves document order
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			if _, ok := raw[key[0]].(map[string]any); !ok {
				return nil, fmt.Errorf("top-level key %q must be a table", key[0])
			}
			d.header(key[0])

		case 2:
			table := raw[key[0]].(map[string]any)
			value := table[key[1]]
			if isTable(value) {
				return nil, fmt.Errorf("key %q: nested headers are not supported", key.String())
			}
			values, err := valueStrings(reflect.ValueOf(tomlLocalTokens(value)))
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key.String(), err)
			}
			d.Register(key[0], key[1], values...)
		}
	}

	return d, nil
}

// Local dates and times decode as time.Time in a fixed zone named after the
// TOML type.
var tomlLocalLayouts = map[string]string{
	"date-local":     "2006-01-02",
	"time-local":     "15:04:05.999999999",
	"datetime-local": "2006-01-02T15:04:05.999999999",
}

// tomlLocalTokens renders local dates and times in their TOML layout instead
// of RFC 3339, descending into arrays.
func tomlLocalTokens(v any) any {
	switch v := v.(type) {
	case time.Time:
		if layout, ok := tomlLocalLayouts[v.Location().String()]; ok {
			return v.Format(layout)
		}
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = tomlLocalTokens(elem)
		}
		return out
	}
	return v
}

func isTable(v any) bool {
	switch v.(type) {
	case map[string]any, []map[string]any:
		return true
	}
	return false
}

func parseYAMLDefaults(data []byte) (*Defaults, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	d := NewDefaults()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return d, nil // empty document
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document root must be a mapping of headers", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		body := resolveAlias(root.Content[i+1])
		d.header(name)

		switch {
		case body.Kind == yaml.MappingNode:
		case isYAMLNull(body):
			continue // header without keys
		default:
			return nil, fmt.Errorf("line %d: header %q must be a mapping", body.Line, name)
		}

		for j := 0; j+1 < len(body.Content); j += 2 {
			key := body.Content[j].Value
			values, err := yamlValues(resolveAlias(body.Content[j+1]))
			if err != nil {
				return nil, fmt.Errorf("key %q in header %q: %w", key, name, err)
			}
			d.Register(name, key, values...)
		}
	}

	return d, nil
}

func yamlValues(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if isYAMLNull(node) {
			return nil, nil
		}
		return []string{node.Value}, nil

	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, elem := range node.Content {
			elem = resolveAlias(elem)
			if elem.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: sequence elements must be scalars", elem.Line)
			}
			values = append(values, elem.Value)
		}
		return values, nil

	case yaml.MappingNode:
		return nil, fmt.Errorf("line %d: nested headers are not supported", node.Line)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
