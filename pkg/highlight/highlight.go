// Package highlight renders a text buffer with every regex match wrapped in
// markers.
package highlight

import (
	"strings"

	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/types"
)

// Result is the outcome of one highlight pass.
type Result struct {
	Rendered   string
	MatchCount int
	Records    []*types.MatchRecord // scan order, increasing start
}

// Highlighter compiles patterns with an engine and renders their matches.
type Highlighter struct {
	engine engine.Engine
}

// New creates a Highlighter backed by e.
func New(e engine.Engine) *Highlighter {
	return &Highlighter{engine: e}
}

// Highlight compiles pattern and renders its matches in text.
// A pattern that fails to compile returns *engine.PatternError and no output.
func (h *Highlighter) Highlight(text, pattern string, m Markers) (*Result, error) {
	compiled, err := h.engine.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return Render(text, compiled, m)
}

// Render scans text with an already compiled pattern. Removing the markers
// from Result.Rendered yields text unchanged.
func Render(text string, c engine.Compiled, m Markers) (*Result, error) {
	records, err := engine.ScanAll(c, text)
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	open, closing := m.Open(), m.Close()

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, rec := range records {
		span := rec.Span()
		b.WriteString(string(runes[last:span.Start]))
		b.WriteString(open)
		b.WriteString(rec.FullText)
		b.WriteString(closing)
		last = span.End
	}
	b.WriteString(string(runes[last:]))

	return &Result{
		Rendered:   b.String(),
		MatchCount: len(records),
		Records:    records,
	}, nil
}
