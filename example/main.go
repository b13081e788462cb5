// FILE: lixenwraith/confparse/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/confparse"
)

const sampleConfig = `# upstream pool
upstream:
backends 10.0.0.1:8080 10.0.0.2:8080 10.0.0.3:8080
retries

# listener
server:
host 0.0.0.0
`

// ServerConfig is decoded from the server header.
type ServerConfig struct {
	Host    string `conf:"host"`
	Port    int    `conf:"port"`
	Verbose bool   `conf:"verbose"`
}

func main() {
	// =========================================================================
	// PART 1: Write a config file to a temp directory.
	// =========================================================================
	dir, err := os.MkdirTemp("", "confparse-example")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "app.conf")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		log.Fatalf("Failed to write config: %v", err)
	}

	// =========================================================================
	// PART 2: Build with defaults. File values win; defaults fill gaps.
	// =========================================================================
	cfg, err := confparse.NewBuilder(confparse.File(path)).
		WithDefault("server", "port", "8080").
		WithDefault("server", "verbose", "false").
		WithDefault("upstream", "retries", "3").
		WithDefault("metrics", "enabled", "true").
		WithValidator(func(c *confparse.Config) error {
			if !c.HasHeaderAndKey("upstream", "backends") {
				return fmt.Errorf("upstream.backends is required")
			}
			return nil
		}).
		Build()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Print(cfg.Debug())

	// =========================================================================
	// PART 3: Round-robin over the backend list.
	// =========================================================================
	backends, _ := cfg.Key("upstream", "backends")
	for i := 0; i < 5; i++ {
		addr, err := backends.NextString()
		if err != nil {
			log.Fatalf("No backend: %v", err)
		}
		fmt.Printf("request %d -> %s\n", i+1, addr)
	}

	retries, _ := cfg.Key("upstream", "retries")
	n, err := retries.NextInt()
	if err != nil {
		log.Fatalf("Invalid retries: %v", err)
	}
	fmt.Printf("retries: %d\n", n)

	// =========================================================================
	// PART 4: Decode a header into a struct.
	// =========================================================================
	var server ServerConfig
	if err := cfg.Scan("server", &server); err != nil {
		log.Fatalf("Failed to scan server: %v", err)
	}
	fmt.Printf("server: %s:%d verbose=%v\n", server.Host, server.Port, server.Verbose)
}
