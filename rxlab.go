// Package rxlab highlights regular-expression matches in text and reports
// their capture groups.
//
// # Basic Usage
//
//	tester, err := rxlab.NewTester()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := tester.Highlight("ab12cd34", `[0-9]+`)
//	if err != nil {
//	    log.Fatal(err) // *rxlab.PatternError for a bad pattern
//	}
//	fmt.Println(res.Rendered, res.MatchCount)
//
// # Capture Groups
//
//	res, _ := tester.Highlight("2024-01-15", `(?P<year>\d{4})-(?P<month>\d{2})`)
//	fmt.Print(tester.Groups(res.Records, `(?P<year>\d{4})-(?P<month>\d{2})`))
package rxlab

import (
	"fmt"
	"time"

	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/highlight"
	"github.com/praetorian-inc/rxlab/pkg/inspect"
	"github.com/praetorian-inc/rxlab/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// MatchRecord is a single match occurrence.
	MatchRecord = types.MatchRecord

	// GroupValue is one capturing group of a match.
	GroupValue = types.GroupValue

	// Result is the outcome of a highlight pass.
	Result = highlight.Result

	// ColorTag selects the highlight color.
	ColorTag = highlight.ColorTag

	// PatternError reports a pattern the engine rejected.
	PatternError = engine.PatternError
)

// Tester highlights patterns and inspects their groups.
type Tester struct {
	highlighter *highlight.Highlighter
	inspector   *inspect.Inspector
	markers     highlight.Markers
}

// testerConfig holds tester configuration.
type testerConfig struct {
	engine  string
	timeout time.Duration
	color   highlight.ColorTag
	plain   bool
}

// Option configures a Tester.
type Option func(*testerConfig)

// WithEngine selects the regex engine ("regexp2" or "re2").
func WithEngine(name string) Option {
	return func(c *testerConfig) {
		c.engine = name
	}
}

// WithTimeout sets the per-match timeout of the regexp2 engine.
func WithTimeout(d time.Duration) Option {
	return func(c *testerConfig) {
		c.timeout = d
	}
}

// WithColor sets the highlight color. Default is red.
func WithColor(c ColorTag) Option {
	return func(cfg *testerConfig) {
		cfg.color = c
	}
}

// WithPlainMarkers wraps matches in [ and ] instead of color codes.
func WithPlainMarkers() Option {
	return func(c *testerConfig) {
		c.plain = true
	}
}

// NewTester creates a Tester with the given options.
func NewTester(opts ...Option) (*Tester, error) {
	config := &testerConfig{
		engine:  engine.Default,
		timeout: engine.DefaultOptions().Timeout,
		color:   highlight.DefaultColor,
	}
	for _, opt := range opts {
		opt(config)
	}

	e, err := engine.New(config.engine, engine.Options{Timeout: config.timeout})
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	return &Tester{
		highlighter: highlight.New(e),
		inspector:   inspect.New(e, inspect.NewStyles(false)),
		markers:     highlight.Resolve(config.color, !config.plain),
	}, nil
}

// Highlight renders every match of pattern in text.
func (t *Tester) Highlight(text, pattern string) (*Result, error) {
	return t.highlighter.Highlight(text, pattern, t.markers)
}

// Groups returns the plain-text group report for records of pattern.
func (t *Tester) Groups(records []*MatchRecord, pattern string) string {
	return t.inspector.Render(records, pattern)
}
