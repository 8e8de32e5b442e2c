package engine

// PatternError is returned when a pattern cannot be evaluated: it failed to
// compile, or the engine gave up while scanning (e.g. a match timeout).
// Error returns the engine's diagnostic verbatim.
type PatternError struct {
	Pattern string
	Engine  string
	Err     error
}

func (e *PatternError) Error() string {
	return e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
