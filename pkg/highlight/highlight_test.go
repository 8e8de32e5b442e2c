package highlight

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHighlighter(t *testing.T, name string) *Highlighter {
	t.Helper()
	e, err := engine.New(name, engine.DefaultOptions())
	require.NoError(t, err)
	return New(e)
}

func strip(rendered string, m Markers) string {
	return strings.ReplaceAll(strings.ReplaceAll(rendered, m.Open(), ""), m.Close(), "")
}

func TestHighlight_Digits(t *testing.T) {
	h := newHighlighter(t, engine.Regexp2)

	res, err := h.Highlight("ab12cd34", `[0-9]+`, Red)

	require.NoError(t, err)
	assert.Equal(t, 2, res.MatchCount)
	assert.Equal(t, "ab\x1b[91m12\x1b[0mcd\x1b[91m34\x1b[0m", res.Rendered)
	require.Len(t, res.Records, 2)
	assert.Equal(t, types.OffsetSpan{Start: 2, End: 4}, res.Records[0].Span())
	assert.Equal(t, types.OffsetSpan{Start: 6, End: 8}, res.Records[1].Span())
}

func TestHighlight_NoMatches(t *testing.T) {
	h := newHighlighter(t, engine.Regexp2)

	res, err := h.Highlight("hello", `z+`, Red)

	require.NoError(t, err)
	assert.Equal(t, 0, res.MatchCount)
	assert.Empty(t, res.Records)
	assert.Equal(t, "hello", res.Rendered)
}

func TestHighlight_InvalidPattern(t *testing.T) {
	h := newHighlighter(t, engine.RE2)

	res, err := h.Highlight("text", `(`, Red)

	require.Error(t, err)
	assert.Nil(t, res, "no partial output")
	var pe *engine.PatternError
	assert.True(t, errors.As(err, &pe))
}

func TestHighlight_EmptyTextZeroWidth(t *testing.T) {
	h := newHighlighter(t, engine.Regexp2)

	res, err := h.Highlight("", `a*`, Green)

	require.NoError(t, err)
	assert.Equal(t, 1, res.MatchCount)
	assert.Equal(t, Green.Open()+Green.Close(), res.Rendered)
	assert.Equal(t, types.OffsetSpan{Start: 0, End: 0}, res.Records[0].Span())
}

func TestHighlight_Brackets(t *testing.T) {
	h := newHighlighter(t, engine.RE2)

	res, err := h.Highlight("a1b22", `\d+`, Brackets)

	require.NoError(t, err)
	assert.Equal(t, "a[1]b[22]", res.Rendered)
}

func TestHighlight_Properties(t *testing.T) {
	cases := []struct {
		text    string
		pattern string
	}{
		{"ab12cd34", `[0-9]+`},
		{"hello", `z+`},
		{"", `a*`},
		{"baaa", `a*`},
		{"héllo wörld ünïcode", `\w+`},
		{"line one\nline two\n", `(?m)^line`},
		{"2024-01-15 and 1999-12-31", `(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})`},
		{"mississippi", `ss|s|`},
		{"aaaa", `a|aa`},
	}

	for _, name := range engine.Names() {
		h := newHighlighter(t, name)
		for _, tc := range cases {
			t.Run(name+"/"+tc.pattern, func(t *testing.T) {
				res, err := h.Highlight(tc.text, tc.pattern, Magenta)
				require.NoError(t, err)

				// round trip
				assert.Equal(t, tc.text, strip(res.Rendered, Magenta))
				// count consistency
				assert.Equal(t, len(res.Records), res.MatchCount)
				// non-overlap and order
				for i := 1; i < len(res.Records); i++ {
					prev, cur := res.Records[i-1].Span(), res.Records[i].Span()
					assert.LessOrEqual(t, prev.End, cur.Start)
					assert.Less(t, prev.Start, cur.Start)
				}
				// every span lies in the text and carries its substring
				runes := []rune(tc.text)
				for _, rec := range res.Records {
					span := rec.Span()
					require.True(t, 0 <= span.Start && span.Start <= span.End && span.End <= len(runes))
					assert.Equal(t, string(runes[span.Start:span.End]), rec.FullText)
				}
			})
		}
	}
}

func TestHighlight_ScanErrorDiscardsOutput(t *testing.T) {
	e := engine.NewRegexp2(engine.Options{Timeout: 10 * time.Millisecond})
	c, err := e.Compile(`(a+)+b`)
	require.NoError(t, err)

	res, err := Render("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaac", c, Red)

	assert.Nil(t, res)
	var pe *engine.PatternError
	assert.ErrorAs(t, err, &pe)
}
