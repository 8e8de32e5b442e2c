package types

import "sort"

// GroupValue is the capture of one group in one match.
// A group that did not participate in the match has Present == false,
// which is distinct from a group that matched the empty string.
type GroupValue struct {
	Index   int
	Value   string
	Present bool
	Span    OffsetSpan // meaningful only when Present
}

// GroupNames maps a declared group name to its group index.
// It belongs to a compiled pattern and is shared by every record it produces.
type GroupNames map[string]int

// Aliases returns the names declared for index, sorted.
func (n GroupNames) Aliases(index int) []string {
	var names []string
	for name, i := range n {
		if i == index {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// MatchRecord is a single match occurrence.
type MatchRecord struct {
	Location Location
	FullText string       // text[Start:End]
	Groups   []GroupValue // capturing groups in ascending index order, group 0 excluded
	Names    GroupNames   // shared with the other records of the same pattern
}

// Span returns the match's offset span.
func (m *MatchRecord) Span() OffsetSpan {
	return m.Location.Offset
}

// NumGroups returns the number of capturing groups of the pattern.
func (m *MatchRecord) NumGroups() int {
	return len(m.Groups)
}
