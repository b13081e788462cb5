// FILE: lixenwraith/confparse/source.go
package confparse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// UserAgent is sent with every HTTP(S) fetch.
const UserAgent = "confparse/1.0 (+https://github.com/lixenwraith/confparse)"

// SourceKind identifies where config text is acquired from.
type SourceKind int

const (
	// SourceFile is a local file path
	SourceFile SourceKind = iota
	// SourceURI is a file:// URI
	SourceURI
	// SourceURL is an http, https or file URL
	SourceURL
	// SourceText is raw in-memory text
	SourceText
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceURI:
		return "uri"
	case SourceURL:
		return "url"
	case SourceText:
		return "text"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// Source is a tagged location of config text.
type Source struct {
	Kind     SourceKind
	Location string // path, URI, URL or the text itself
}

// File returns a source reading a local file.
func File(path string) Source {
	return Source{Kind: SourceFile, Location: path}
}

// URI returns a source reading a file:// URI.
func URI(uri string) Source {
	return Source{Kind: SourceURI, Location: uri}
}

// URL returns a source fetching an http, https or file URL.
func URL(rawURL string) Source {
	return Source{Kind: SourceURL, Location: rawURL}
}

// Text returns a source over in-memory text.
func Text(text string) Source {
	return Source{Kind: SourceText, Location: text}
}

// String identifies the source in errors and logs. Text sources are not echoed.
func (s Source) String() string {
	if s.Kind == SourceText {
		return "inline text"
	}
	return s.Location
}

// open returns a reader over the raw bytes of the source.
func (s Source) open(ctx context.Context, client *http.Client) (io.ReadCloser, error) {
	switch s.Kind {
	case SourceFile:
		return openFile(s.Location)

	case SourceURI:
		path, err := fileURIPath(s.Location)
		if err != nil {
			return nil, err
		}
		return openFile(path)

	case SourceURL:
		u, err := url.Parse(s.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return fetch(ctx, client, u.String())
		case "file":
			path, err := fileURIPath(s.Location)
			if err != nil {
				return nil, err
			}
			return openFile(path)
		default:
			return nil, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
		}

	case SourceText:
		return io.NopCloser(strings.NewReader(s.Location)), nil

	default:
		return nil, fmt.Errorf("unknown source kind %v", s.Kind)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		return nil, err
	}
	return file, nil
}

// fileURIPath converts a file:// URI to a local path.
func fileURIPath(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %w", err)
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", fmt.Errorf("URI scheme must be file, got %q", u.Scheme)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("file URI with remote host %q is not supported", u.Host)
	}
	if u.Path == "" {
		return "", fmt.Errorf("file URI %q has no path", raw)
	}
	return filepath.FromSlash(u.Path), nil
}

func fetch(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected HTTP status %s", resp.Status)
	}
	return resp.Body, nil
}
