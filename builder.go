// File: lixenwraith/confparse/builder.go
package confparse

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ValidatorFunc defines the signature for a function that can validate a Config instance.
// It receives the fully loaded and merged *Config and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for loading a config with defaults
type Builder struct {
	source     Source
	defaults   *Defaults
	opts       LoadOptions
	logger     logrus.FieldLogger
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a builder for the given source
func NewBuilder(src Source) *Builder {
	return &Builder{
		source:     src,
		defaults:   NewDefaults(),
		opts:       DefaultLoadOptions(),
		logger:     logrus.StandardLogger(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDefault registers default values for header.key
func (b *Builder) WithDefault(header, key string, values ...string) *Builder {
	b.defaults.Register(header, key, values...)
	return b
}

// WithDefaults registers every entry of a prepared template
func (b *Builder) WithDefaults(d *Defaults) *Builder {
	b.defaults.Extend(d)
	return b
}

// WithDefaultsStruct registers defaults derived from a tagged struct
func (b *Builder) WithDefaultsStruct(header string, v any) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.defaults.RegisterStruct(header, v); err != nil {
		b.err = fmt.Errorf("failed to register defaults: %w", err)
	}
	return b
}

// WithDefaultsFile registers defaults from a TOML or YAML template file
func (b *Builder) WithDefaultsFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	d, err := LoadDefaults(path)
	if err != nil {
		b.err = err
		return b
	}
	b.defaults.Extend(d)
	return b
}

// WithEncoding sets the source charset
func (b *Builder) WithEncoding(name string) *Builder {
	b.opts.Encoding = name
	return b
}

// WithCollapseSpaces splits key lines on whitespace runs instead of single spaces
func (b *Builder) WithCollapseSpaces(collapse bool) *Builder {
	b.opts.Parse.CollapseSpaces = collapse
	return b
}

// WithMaxSize bounds the bytes read from the source (0 = unlimited)
func (b *Builder) WithMaxSize(n int64) *Builder {
	b.opts.MaxSize = n
	return b
}

// WithHTTPClient sets the client used for http and https URLs
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.opts.HTTPClient = client
	return b
}

// WithLoadOptions replaces all load options at once
func (b *Builder) WithLoadOptions(opts LoadOptions) *Builder {
	b.opts = opts
	return b
}

// WithLogger sets the logger for load diagnostics
func (b *Builder) WithLogger(logger logrus.FieldLogger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithFileDiscovery replaces the source with the first config file found by opts
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if b.err != nil {
		return b
	}
	path, found := DiscoverFile(opts)
	if !found {
		b.err = &LoadError{
			Source: opts.Name,
			Err:    fmt.Errorf("%w: no %s file in search paths", ErrConfigNotFound, opts.Name),
		}
		return b
	}
	b.source = File(path)
	return b
}

// Build loads, parses and merges the config
func (b *Builder) Build() (*Config, error) {
	return b.BuildContext(context.Background())
}

// BuildContext is like Build; ctx bounds network fetches
func (b *Builder) BuildContext(ctx context.Context) (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg, err := loadConfig(ctx, b.source, b.opts, b.logger)
	if err != nil {
		return nil, err
	}

	if b.defaults.Len() > 0 {
		b.defaults.merge(cfg, b.logger.WithField("source", b.source.String()))
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// Defaults returns the template accumulated so far
func (b *Builder) Defaults() *Defaults {
	return b.defaults
}
