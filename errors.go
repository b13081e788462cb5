// FILE: lixenwraith/confparse/errors.go
package confparse

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match these through errors.Is.
var (
	ErrLoad              = errors.New("failed to load config")
	ErrEmptyConfig       = errors.New("config is empty")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrFormat            = errors.New("invalid value format")
	ErrInvalidState      = errors.New("invalid key state")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrHeaderNotFound    = errors.New("header not found")
	ErrSourceTooLarge    = errors.New("config source exceeds maximum size")
	ErrUnsupportedFormat = errors.New("unsupported defaults format")
)

// LoadError reports a failure to acquire the raw config text.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load config from '%s': %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// EmptyConfigError reports a source with no usable lines after comments and
// blank lines are dropped.
type EmptyConfigError struct {
	Source string
}

func (e *EmptyConfigError) Error() string {
	if e.Source == "" {
		return ErrEmptyConfig.Error()
	}
	return fmt.Sprintf("config '%s' is empty", e.Source)
}

func (e *EmptyConfigError) Is(target error) bool { return target == ErrEmptyConfig }

// InvalidConfigError reports a structural grammar violation.
type InvalidConfigError struct {
	Line   int    // 1-based source line number, 0 if unknown
	Text   string // offending line
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid config at line %d (%q): %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("invalid config (%q): %s", e.Text, e.Reason)
}

func (e *InvalidConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// FormatError reports a value that could not be converted to the requested type.
type FormatError struct {
	Token string
	Type  string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Token, e.Type, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
