// Package session holds the per-run state of the interactive tool and the
// prompt loop that drives highlighting and group inspection.
package session

import "github.com/praetorian-inc/rxlab/pkg/types"

// State is the session state of one interactive run.
//
// The last pattern and its records only change together through Commit, so
// they always describe the same scan of Text.
type State struct {
	text        string
	lastPattern string
	hasPattern  bool
	lastRecords []*types.MatchRecord
}

// NewState creates a session over text. The text never changes afterwards.
func NewState(text string) *State {
	return &State{text: text}
}

// Text returns the session's text buffer.
func (s *State) Text() string {
	return s.text
}

// LastPattern returns the most recent pattern that evaluated successfully.
func (s *State) LastPattern() (string, bool) {
	return s.lastPattern, s.hasPattern
}

// LastRecords returns the matches of LastPattern, in scan order.
func (s *State) LastRecords() []*types.MatchRecord {
	return s.lastRecords
}

// Commit replaces the retained pattern and records.
func (s *State) Commit(pattern string, records []*types.MatchRecord) {
	s.lastPattern = pattern
	s.hasPattern = true
	s.lastRecords = append([]*types.MatchRecord(nil), records...)
}
