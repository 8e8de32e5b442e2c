package engine

import "github.com/praetorian-inc/rxlab/pkg/types"

// recordBuilder turns engine offsets into MatchRecords for one scan.
type recordBuilder struct {
	runes []rune
	lines *types.LineIndex
	names types.GroupNames
}

func newRecordBuilder(text string, names types.GroupNames) *recordBuilder {
	runes := []rune(text)
	return &recordBuilder{
		runes: runes,
		lines: types.NewLineIndex(runes),
		names: names,
	}
}

// build constructs a record from character offsets. groups must already be
// in ascending index order.
func (b *recordBuilder) build(start, end int, groups []types.GroupValue) *types.MatchRecord {
	span := types.OffsetSpan{Start: start, End: end}
	return &types.MatchRecord{
		Location: b.lines.Locate(span),
		FullText: string(b.runes[start:end]),
		Groups:   groups,
		Names:    b.names,
	}
}

// group builds a participating group value.
func (b *recordBuilder) group(index, start, end int) types.GroupValue {
	return types.GroupValue{
		Index:   index,
		Value:   string(b.runes[start:end]),
		Present: true,
		Span:    types.OffsetSpan{Start: start, End: end},
	}
}
