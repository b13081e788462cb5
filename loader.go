// FILE: lixenwraith/confparse/loader.go
package confparse

import (
	"context"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// LoadOptions configures acquisition and parsing of a source
type LoadOptions struct {
	// Encoding names the source charset (WHATWG names, e.g. "utf-8", "windows-1252").
	// A byte-order mark overrides it. Default: DefaultEncoding
	Encoding string

	// MaxSize bounds the raw bytes read from the source (0 = unlimited)
	MaxSize int64

	// Parse controls key line tokenization
	Parse ParseOptions

	// HTTPClient is used for http and https URLs.
	// If nil, a client with DefaultFetchTimeout is used
	HTTPClient *http.Client
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Encoding: DefaultEncoding,
		MaxSize:  DefaultMaxSize,
	}
}

func (o LoadOptions) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return &http.Client{Timeout: DefaultFetchTimeout}
}

// loadConfig acquires, filters and parses a source.
func loadConfig(ctx context.Context, src Source, opts LoadOptions, log logrus.FieldLogger) (*Config, error) {
	log = log.WithFields(logrus.Fields{"source": src.String(), "kind": src.Kind.String()})

	enc, err := resolveEncoding(opts.Encoding)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}

	rc, err := src.open(ctx, opts.httpClient())
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	defer rc.Close()

	var r io.Reader = rc
	if opts.MaxSize > 0 {
		r = &limitedReader{r: rc, remaining: opts.MaxSize}
	}

	lines, err := ReadLines(decodingReader(r, enc))
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	if len(lines) == 0 {
		return nil, &EmptyConfigError{Source: src.String()}
	}
	log.WithField("lines", len(lines)).Debug("Read config lines")

	cfg, err := ParseWithOptions(lines, opts.Parse)
	if err != nil {
		return nil, err
	}
	cfg.source = src.String()

	log.WithField("headers", cfg.Len()).Debug("Parsed config")
	return cfg, nil
}
