package types

import "sort"

// LineIndex answers offset -> line:column queries without rescanning the text.
type LineIndex struct {
	starts []int // offset of the first character of each line
	length int
}

// NewLineIndex records the line starts of text.
func NewLineIndex(text []rune) *LineIndex {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, length: len(text)}
}

// Position returns the 1-based line and column of offset.
// Offsets outside the text are clamped to it.
func (x *LineIndex) Position(offset int) SourcePoint {
	if offset > x.length {
		offset = x.length
	}
	if offset < 0 {
		offset = 0
	}
	// last line start <= offset
	i := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset }) - 1
	return SourcePoint{Line: i + 1, Column: offset - x.starts[i] + 1}
}

// Locate resolves a span into a full Location.
func (x *LineIndex) Locate(span OffsetSpan) Location {
	return Location{
		Offset: span,
		Source: SourceSpan{
			Start: x.Position(span.Start),
			End:   x.Position(span.End),
		},
	}
}
