// FILE: lixenwraith/confparse/parse.go
package confparse

import "strings"

const (
	headerSuffix   = ":"
	tokenSeparator = " "
)

// Line is a trimmed, non-blank, non-comment source line.
type Line struct {
	Number int // 1-based line number in the source text
	Text   string
}

// ParseOptions tunes tokenization of key lines.
type ParseOptions struct {
	// CollapseSpaces splits key lines on runs of whitespace.
	// When false, lines are split on every single space and consecutive
	// spaces produce empty values.
	CollapseSpaces bool
}

// Parse builds a Config from pre-filtered lines using default options.
func Parse(lines []Line) (*Config, error) {
	return ParseWithOptions(lines, ParseOptions{})
}

// ParseWithOptions builds a Config from pre-filtered lines.
//
// A line ending in ':' opens a header. Any other line is a key followed by
// its values and belongs to the most recently opened header. A header seen
// twice keeps only its last occurrence.
func ParseWithOptions(lines []Line, opts ParseOptions) (*Config, error) {
	if len(lines) == 0 {
		return nil, &EmptyConfigError{}
	}

	cfg := New()
	var current *Header

	for _, line := range lines {
		if strings.HasSuffix(line.Text, headerSuffix) {
			if current != nil {
				cfg.setHeader(current)
			}
			current = NewHeader(strings.TrimSuffix(line.Text, headerSuffix))
			continue
		}

		if current == nil {
			return nil, &InvalidConfigError{
				Line:   line.Number,
				Text:   line.Text,
				Reason: "a header must precede any key",
			}
		}

		tokens := splitTokens(line.Text, opts.CollapseSpaces)
		key := NewKey(tokens[0])
		for _, token := range tokens[1:] {
			key.AddValue(NewValue(token))
		}
		current.AddKey(key)
	}

	if current != nil {
		cfg.setHeader(current)
	}

	return cfg, nil
}

// ParseString reads, filters and parses in-memory text.
func ParseString(text string) (*Config, error) {
	lines, err := ReadLines(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// splitTokens always returns at least one token.
func splitTokens(text string, collapse bool) []string {
	if collapse {
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields
		}
		return []string{""}
	}
	return strings.Split(text, tokenSeparator)
}
