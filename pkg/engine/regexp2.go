package engine

import (
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/rxlab/pkg/types"
)

// Regexp2Engine evaluates patterns with regexp2, a backtracking engine
// supporting lookaround and backreferences.
//
// Offsets reported by regexp2 are already character offsets. Group indices
// are reported in pattern order, the way the re2 engine numbers them.
type Regexp2Engine struct {
	opts Options
}

// NewRegexp2 creates a regexp2-backed engine.
func NewRegexp2(opts Options) *Regexp2Engine {
	return &Regexp2Engine{opts: opts}
}

// Name implements Engine.
func (e *Regexp2Engine) Name() string {
	return Regexp2
}

// Compile implements Engine.
func (e *Regexp2Engine) Compile(pattern string) (Compiled, error) {
	// Default mode keeps Unicode \d \w and lets $ match before a final
	// newline. Only RE2 mode accepts (?P<name>...), at the cost of ASCII
	// classes.
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		var re2Err error
		re, re2Err = regexp2.Compile(pattern, regexp2.RE2)
		if re2Err != nil {
			if strings.Contains(pattern, "(?P<") {
				err = re2Err
			}
			return nil, &PatternError{Pattern: pattern, Engine: Regexp2, Err: err}
		}
	}
	if e.opts.Timeout > 0 {
		re.MatchTimeout = e.opts.Timeout
	}

	slots := orderGroups(pattern, re)
	return &regexp2Compiled{
		pattern: pattern,
		re:      re,
		slots:   slots,
		names:   extractGroupNames(re, slots),
	}, nil
}

// groupSlot ties a regexp2 group number to the group's position in the pattern.
type groupSlot struct {
	index  int
	number int
}

type regexp2Compiled struct {
	pattern string
	re      *regexp2.Regexp
	slots   []groupSlot // in pattern order
	names   types.GroupNames
}

func (c *regexp2Compiled) GroupNames() types.GroupNames { return c.names }

// Scan implements Compiled.
func (c *regexp2Compiled) Scan(text string, fn func(*types.MatchRecord) error) error {
	b := newRecordBuilder(text, c.names)

	match, err := c.re.FindStringMatch(text)
	for err == nil && match != nil {
		if err := fn(b.build(match.Index, match.Index+match.Length, c.extractGroups(b, match))); err != nil {
			return err
		}
		// regexp2 bumps past zero-width matches itself
		match, err = c.re.FindNextMatch(match)
	}
	if err != nil {
		return &PatternError{Pattern: c.pattern, Engine: Regexp2, Err: err}
	}
	return nil
}

// extractGroups extracts positional capture groups from a regexp2 match.
func (c *regexp2Compiled) extractGroups(b *recordBuilder, match *regexp2.Match) []types.GroupValue {
	groups := make([]types.GroupValue, 0, len(c.slots))
	for _, s := range c.slots {
		g := match.GroupByNumber(s.number)
		if g == nil || len(g.Captures) == 0 {
			groups = append(groups, types.GroupValue{Index: s.index})
			continue
		}
		// the group's own capture is its last one, as in other backtracking engines
		groups = append(groups, b.group(s.index, g.Index, g.Index+g.Length))
	}
	return groups
}

// orderGroups maps regexp2's group numbers, which put every named group
// after the unnamed ones, back to pattern order. When the pattern cannot be
// read back unambiguously the regexp2 numbering is kept as is.
func orderGroups(pattern string, re *regexp2.Regexp) []groupSlot {
	var numbers []int
	for _, n := range re.GetGroupNumbers() {
		if n != 0 {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	asIs := make([]groupSlot, len(numbers))
	for i, n := range numbers {
		asIs[i] = groupSlot{index: n, number: n}
	}

	named := make(map[int]bool)
	for _, name := range re.GetGroupNames() {
		if !isNumericName(name) {
			named[re.GroupNumberFromName(name)] = true
		}
	}
	var unnamed []int
	for _, n := range numbers {
		if !named[n] {
			unnamed = append(unnamed, n)
		}
	}

	slots := make([]groupSlot, 0, len(numbers))
	seen := make(map[int]bool)
	next := 0
	for _, name := range captureNames(pattern) {
		var n int
		switch {
		case name == "":
			if next >= len(unnamed) {
				return asIs
			}
			n = unnamed[next]
			next++
		case isNumericName(name):
			// explicitly numbered groups keep regexp2's numbering
			return asIs
		default:
			if n = re.GroupNumberFromName(name); n < 0 {
				return asIs
			}
		}
		// a repeated name is one group, placed where it first appears
		if seen[n] {
			continue
		}
		seen[n] = true
		slots = append(slots, groupSlot{index: len(slots) + 1, number: n})
	}
	if len(slots) != len(numbers) {
		return asIs
	}
	return slots
}

// extractGroupNames collects the declared group names of a regexp2 pattern,
// indexed by their position in the pattern.
func extractGroupNames(re *regexp2.Regexp, slots []groupSlot) types.GroupNames {
	index := make(map[int]int, len(slots))
	for _, s := range slots {
		index[s.number] = s.index
	}

	names := make(types.GroupNames)
	for _, name := range re.GetGroupNames() {
		// Skip numbered groups (they show up as "0", "1", etc.)
		if isNumericName(name) {
			continue
		}
		if i, ok := index[re.GroupNumberFromName(name)]; ok {
			names[name] = i
		}
	}
	return names
}

func isNumericName(name string) bool {
	return name == "" || (name[0] >= '0' && name[0] <= '9')
}

// captureNames lists the capturing groups of pattern in the order their
// opening parentheses appear. Unnamed groups are listed as "".
func captureNames(pattern string) []string {
	var names []string
	rs := []rune(pattern)
	inClass := false
	for i := 0; i < len(rs); i++ {
		switch c := rs[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a leading ] is a literal member of the class
			if i+1 < len(rs) && rs[i+1] == '^' {
				i++
			}
			if i+1 < len(rs) && rs[i+1] == ']' {
				i++
			}
		case c == '(':
			if i+1 >= len(rs) || rs[i+1] != '?' {
				names = append(names, "")
				continue
			}
			rest := rs[i+2:]
			if len(rest) > 0 && rest[0] == '#' {
				// inline comment
				for i < len(rs) && rs[i] != ')' {
					i++
				}
				continue
			}
			if name, ok := groupName(rest); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

// groupName reads the name of a (?P<name>, (?<name> or (?'name' group from
// the text following "(?". Other (? constructs do not capture.
func groupName(rest []rune) (string, bool) {
	if len(rest) > 0 && rest[0] == 'P' {
		rest = rest[1:]
		if len(rest) == 0 || rest[0] != '<' {
			return "", false
		}
	}
	if len(rest) < 2 {
		return "", false
	}

	var end rune
	switch rest[0] {
	case '<':
		if rest[1] == '=' || rest[1] == '!' {
			return "", false
		}
		end = '>'
	case '\'':
		end = '\''
	default:
		return "", false
	}

	name := []rune{}
	for _, r := range rest[1:] {
		if r == end {
			break
		}
		name = append(name, r)
	}
	// balancing groups (?<name-other>...) capture under name
	s, _, _ := strings.Cut(string(name), "-")
	if s == "" {
		return "", false
	}
	return s, true
}
