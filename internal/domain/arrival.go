package domain

import (
	"path/filepath"
	"time"
)

// Arrival is a file detected in the incoming directory. It lives for one
// match-and-dispatch step and is never persisted.
type Arrival struct {
	DetectedAt time.Time
	Path       string
}

// Filename returns the base name used for matching
func (a Arrival) Filename() string {
	return filepath.Base(a.Path)
}

// Outcome is the result category of dispatching one arrival
type Outcome string

const (
	OutcomeFailed  Outcome = "failed"
	OutcomeMatched Outcome = "matched"
	OutcomeNoMatch Outcome = "no_match"
)

// DispatchResult describes what the match engine did with an arrival
type DispatchResult struct {
	Arrival    Arrival
	Err        error
	Outcome    Outcome
	OutputPath string
	TestCase   *TestCase
}
