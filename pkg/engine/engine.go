// Package engine abstracts the regular-expression engines a pattern can be
// evaluated with. Engines compile a pattern once and scan text for
// non-overlapping, leftmost-first matches, reporting each one as a
// types.MatchRecord so callers never depend on an engine's native match type.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/praetorian-inc/rxlab/pkg/types"
)

// Engine compiles patterns.
type Engine interface {
	// Name identifies the engine, e.g. "regexp2".
	Name() string

	// Compile parses pattern. Failures are reported as *PatternError.
	Compile(pattern string) (Compiled, error)
}

// Compiled is a pattern ready to scan text.
type Compiled interface {
	// GroupNames maps declared group names to indices.
	GroupNames() types.GroupNames

	// Scan walks text left to right, calling fn for each non-overlapping
	// match in order. Zero-width matches are reported and the scan always
	// advances past them. A non-nil error from fn stops the scan and is returned.
	Scan(text string, fn func(*types.MatchRecord) error) error
}

// Engine names.
const (
	Regexp2 = "regexp2"
	RE2     = "re2"
)

// Default is the engine used when none is configured.
const Default = Regexp2

var constructors = map[string]func(Options) Engine{
	Regexp2: func(opts Options) Engine { return NewRegexp2(opts) },
	RE2:     func(opts Options) Engine { return NewRE2(opts) },
}

// Names returns the available engine names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the engine registered under name.
func New(name string, opts Options) (Engine, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(opts), nil
}

// ScanAll collects every record of a scan, or none if the scan fails.
func ScanAll(c Compiled, text string) ([]*types.MatchRecord, error) {
	var records []*types.MatchRecord
	err := c.Scan(text, func(rec *types.MatchRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
