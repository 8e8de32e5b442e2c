// Package inspect reports the capturing groups of the matches produced by
// the most recent successful highlight.
package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/types"
)

const (
	noMatches = "No matches found."
	noGroups  = "No capturing groups in this match."
	noValue   = "<no value>"
)

// Inspector renders group reports.
type Inspector struct {
	engine engine.Engine
	styles *Styles
}

// New creates an Inspector. Group names are resolved by recompiling the
// pattern with e.
func New(e engine.Engine, styles *Styles) *Inspector {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &Inspector{engine: e, styles: styles}
}

// Render returns the report for records, which must be the matches of pattern.
func (i *Inspector) Render(records []*types.MatchRecord, pattern string) string {
	var b strings.Builder
	_ = i.Report(&b, records, pattern)
	return b.String()
}

// Report writes, for every record in order, its span, its matched text and
// each group's value prefixed with the group's declared names.
func (i *Inspector) Report(w io.Writer, records []*types.MatchRecord, pattern string) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, noMatches)
		return err
	}

	names := i.resolveNames(pattern)
	for n, rec := range records {
		if n > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := i.reportMatch(w, n+1, len(records), rec, names); err != nil {
			return err
		}
	}
	return nil
}

// resolveNames recompiles pattern for its group names. A pattern that no
// longer compiles yields no names rather than failing the report.
func (i *Inspector) resolveNames(pattern string) types.GroupNames {
	compiled, err := i.engine.Compile(pattern)
	if err != nil {
		return types.GroupNames{}
	}
	return compiled.GroupNames()
}

func (i *Inspector) reportMatch(w io.Writer, n, total int, rec *types.MatchRecord, names types.GroupNames) error {
	s := i.styles
	loc := rec.Location
	_, err := fmt.Fprintf(w, "%s %s (line %d, column %d): %s\n",
		s.heading.Sprintf("Match %d/%d", n, total),
		s.span.Sprintf("[%d, %d)", loc.Offset.Start, loc.Offset.End),
		loc.Source.Start.Line, loc.Source.Start.Column,
		s.value.Sprint(strconv.Quote(rec.FullText)))
	if err != nil {
		return err
	}

	if rec.NumGroups() == 0 {
		_, err := fmt.Fprintf(w, "  %s\n", s.missing.Sprint(noGroups))
		return err
	}

	labels := make([]string, len(rec.Groups))
	width := 0
	for k, g := range rec.Groups {
		labels[k] = groupLabel(g.Index, names.Aliases(g.Index))
		if lw := runewidth.StringWidth(labels[k]); lw > width {
			width = lw
		}
	}

	for k, g := range rec.Groups {
		value := s.missing.Sprint(noValue)
		if g.Present {
			value = s.value.Sprint(strconv.Quote(g.Value))
		}
		label := runewidth.FillRight(labels[k], width)
		if _, err := fmt.Fprintf(w, "  %s %s\n", s.label.Sprint(label), value); err != nil {
			return err
		}
	}
	return nil
}

// groupLabel formats "Group 1 (year):".
func groupLabel(index int, aliases []string) string {
	if len(aliases) == 0 {
		return fmt.Sprintf("Group %d:", index)
	}
	return fmt.Sprintf("Group %d (%s):", index, strings.Join(aliases, ", "))
}
