package domain

import "time"

const (
	RunStatusSuccess = "success"
	RunStatusPartial = "partial"
)

// Failure records one target that could not be fully processed. Target is
// empty for whole-platform failures.
type Failure struct {
	Target string `json:"target,omitempty"`
	Reason string `json:"reason"`
}

// PlatformResult aggregates one processor's pass over its target list.
type PlatformResult struct {
	Platform  string
	Targets   int
	NewVideos int
	Failures  []Failure
}

// RunResult is the immutable summary of one orchestrator invocation,
// persisted as a parse_runs row.
type RunResult struct {
	StartedAt     time.Time
	FinishedAt    time.Time
	Status        string
	TotalAccounts int
	NewVideos     int
	Errors        int
	TargetFilter  []string
	Failed        map[string][]Failure
}
