// File: lixenwraith/confparse/io.go
package confparse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// DefaultEncoding is used when no encoding is configured
	DefaultEncoding = "utf-8"
	// MaxLineSize bounds a single source line
	MaxLineSize = 1 << 20
	// DefaultMaxSize bounds the raw bytes read from a source
	DefaultMaxSize = 10 << 20

	commentPrefix = "#"
)

// ReadLines scans r line by line, trims surrounding whitespace and drops
// blank lines and comment lines (first character '#').
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var lines []Line
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		lines = append(lines, Line{Number: number, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config lines: %w", err)
	}

	return lines, nil
}

// resolveEncoding looks up a charset by its WHATWG/HTML name.
func resolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// decodingReader converts r to UTF-8. A byte-order mark takes precedence
// over enc and is stripped.
func decodingReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
}

// limitedReader fails with ErrSourceTooLarge instead of truncating.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < int64(len(p)) {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	if int64(n) > l.remaining {
		return 0, ErrSourceTooLarge
	}
	l.remaining -= int64(n)
	return n, err
}
