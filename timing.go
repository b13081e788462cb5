// FILE: lixenwraith/confparse/timing.go
package confparse

import "time"

// Core timing constants for remote sources.
const (
	DefaultFetchTimeout = 30 * time.Second // Whole-request deadline for HTTP(S) sources
)
