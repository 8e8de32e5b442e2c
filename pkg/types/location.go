package types

// OffsetSpan is character range [Start, End) - half-open interval.
// Offsets count runes, not bytes, so they are the same for every engine.
type OffsetSpan struct {
	Start int
	End   int
}

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int
	Column int
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint
	End   SourcePoint
}

// Location combines character offsets and source positions.
type Location struct {
	Offset OffsetSpan
	Source SourceSpan
}
