package engine

import "time"

// Options configures engine behavior
type Options struct {
	// Timeout bounds a single match attempt (0 = no timeout).
	// Only engines that backtrack honour it; RE2 runs in linear time.
	Timeout time.Duration
}

// DefaultOptions returns the default engine options
func DefaultOptions() Options {
	return Options{
		Timeout: 5 * time.Second,
	}
}
