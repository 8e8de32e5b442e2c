package engine

import (
	"regexp"
	"unicode/utf8"

	"github.com/praetorian-inc/rxlab/pkg/types"
)

// RE2Engine evaluates patterns with Go's regexp package: linear time, no
// backreferences or lookaround.
//
// Go reports byte offsets; they are converted to character offsets so
// records look the same whichever engine produced them. Go also skips an
// empty match that directly follows a previous match.
type RE2Engine struct {
	opts Options
}

// NewRE2 creates a regexp-backed engine. Options.Timeout is not used.
func NewRE2(opts Options) *RE2Engine {
	return &RE2Engine{opts: opts}
}

// Name implements Engine.
func (e *RE2Engine) Name() string {
	return RE2
}

// Compile implements Engine.
func (e *RE2Engine) Compile(pattern string) (Compiled, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Engine: RE2, Err: err}
	}
	return &re2Compiled{re: re, names: buildGroupNames(re)}, nil
}

type re2Compiled struct {
	re    *regexp.Regexp
	names types.GroupNames
}

func (c *re2Compiled) GroupNames() types.GroupNames { return c.names }

// Scan implements Compiled.
func (c *re2Compiled) Scan(text string, fn func(*types.MatchRecord) error) error {
	b := newRecordBuilder(text, c.names)
	offsets := runeOffsets(text)

	for _, loc := range c.re.FindAllStringSubmatchIndex(text, -1) {
		groups := make([]types.GroupValue, 0, c.re.NumSubexp())
		for i := 1; i <= c.re.NumSubexp(); i++ {
			start, end := loc[2*i], loc[2*i+1]
			if start < 0 || end < 0 {
				groups = append(groups, types.GroupValue{Index: i})
				continue
			}
			groups = append(groups, b.group(i, offsets[start], offsets[end]))
		}
		if err := fn(b.build(offsets[loc[0]], offsets[loc[1]], groups)); err != nil {
			return err
		}
	}
	return nil
}

// buildGroupNames maps named groups to their indices. A name declared twice
// resolves to its leftmost group, like Regexp.SubexpIndex.
func buildGroupNames(re *regexp.Regexp) types.GroupNames {
	names := make(types.GroupNames)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue // skip full match and unnamed groups
		}
		if _, seen := names[name]; !seen {
			names[name] = i
		}
	}
	return names
}

// runeOffsets maps every byte offset of s (including len(s)) to the number
// of characters before it.
func runeOffsets(s string) []int {
	offsets := make([]int, len(s)+1)
	n := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = n
		}
		i += size
		n++
	}
	offsets[len(s)] = n
	return offsets
}
