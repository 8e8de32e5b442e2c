package inspect

import (
	"testing"

	"github.com/praetorian-inc/rxlab/pkg/engine"
	"github.com/praetorian-inc/rxlab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datePattern = `(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})`

func records(t *testing.T, e engine.Engine, pattern, text string) []*types.MatchRecord {
	t.Helper()
	c, err := e.Compile(pattern)
	require.NoError(t, err)
	recs, err := engine.ScanAll(c, text)
	require.NoError(t, err)
	return recs
}

func TestRender_NamedGroups(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := engine.New(name, engine.DefaultOptions())
			require.NoError(t, err)
			insp := New(e, NewStyles(false))

			out := insp.Render(records(t, e, datePattern, "2024-01-15"), datePattern)

			assert.Equal(t, `Match 1/1 [0, 10) (line 1, column 1): "2024-01-15"
  Group 1 (year):  "2024"
  Group 2 (month): "01"
  Group 3 (day):   "15"
`, out)
		})
	}
}

func TestRender_MixedGroupsInPatternOrder(t *testing.T) {
	pattern := `(\w+)@(?P<host>\w+)\.(\w+)`
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := engine.New(name, engine.DefaultOptions())
			require.NoError(t, err)
			insp := New(e, NewStyles(false))

			out := insp.Render(records(t, e, pattern, "bob@example.com"), pattern)

			assert.Equal(t, `Match 1/1 [0, 15) (line 1, column 1): "bob@example.com"
  Group 1:        "bob"
  Group 2 (host): "example"
  Group 3:        "com"
`, out)
		})
	}
}

func TestRender_NoMatches(t *testing.T) {
	e := engine.NewRegexp2(engine.DefaultOptions())
	insp := New(e, nil)

	assert.Equal(t, "No matches found.\n", insp.Render(nil, `z+`))
	assert.Equal(t, "No matches found.\n", insp.Render(records(t, e, `z+`, "hello"), `z+`))
}

func TestRender_NoGroups(t *testing.T) {
	e := engine.NewRE2(engine.DefaultOptions())
	insp := New(e, NewStyles(false))

	out := insp.Render(records(t, e, `[0-9]+`, "ab12cd34"), `[0-9]+`)

	assert.Equal(t, `Match 1/2 [2, 4) (line 1, column 3): "12"
  No capturing groups in this match.

Match 2/2 [6, 8) (line 1, column 7): "34"
  No capturing groups in this match.
`, out)
}

func TestRender_AbsentAndEmptyGroups(t *testing.T) {
	e := engine.NewRegexp2(engine.DefaultOptions())
	insp := New(e, NewStyles(false))
	pattern := `(x)?(y*)z`

	out := insp.Render(records(t, e, pattern, "z"), pattern)

	assert.Equal(t, `Match 1/1 [0, 1) (line 1, column 1): "z"
  Group 1: <no value>
  Group 2: ""
`, out)
}

func TestRender_UnresolvableNames(t *testing.T) {
	e := engine.NewRegexp2(engine.DefaultOptions())
	insp := New(e, NewStyles(false))
	recs := records(t, e, datePattern, "2024-01-15")

	// A pattern that does not compile keeps the report going without names
	out := insp.Render(recs, "(")

	assert.Contains(t, out, `Group 1: "2024"`)
	assert.NotContains(t, out, "year")
}

func TestRender_MultiLinePositions(t *testing.T) {
	e := engine.NewRE2(engine.DefaultOptions())
	insp := New(e, NewStyles(false))

	out := insp.Render(records(t, e, `b(\w)`, "ab\nxbc"), `b(\w)`)

	assert.Equal(t, `Match 1/1 [4, 6) (line 2, column 2): "bc"
  Group 1: "c"
`, out)
}

func TestRender_Idempotent(t *testing.T) {
	e := engine.NewRegexp2(engine.DefaultOptions())
	insp := New(e, NewStyles(true))
	recs := records(t, e, datePattern, "2024-01-15 1999-12-31")

	first := insp.Render(recs, datePattern)
	second := insp.Render(recs, datePattern)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "\x1b[")
}

func TestGroupLabel(t *testing.T) {
	assert.Equal(t, "Group 2:", groupLabel(2, nil))
	assert.Equal(t, "Group 1 (year):", groupLabel(1, []string{"year"}))
	assert.Equal(t, "Group 1 (a, b):", groupLabel(1, []string{"a", "b"}))
}
