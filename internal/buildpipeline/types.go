package buildpipeline

import "time"

// Stage describes a high-level phase of the generation run.
type Stage string

const (
	// StageSources is the staging of guarded platform sources.
	StageSources Stage = "sources"
	// StageConfigure is the external configure invocation.
	StageConfigure Stage = "configure"
	// StageHeaders is the staging of configure-generated headers.
	StageHeaders Stage = "headers"
	// StageUnify is the umbrella-header synthesis.
	StageUnify Stage = "unify"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the target is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the target is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the target is done.
	StatusDone Status = "done"
	// StatusError indicates the target encountered an error.
	StatusError Status = "error"
)

// Event reports progress for a target (or for the whole run when Target is
// empty, as during umbrella synthesis).
type Event struct {
	Target  string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations summed across targets.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Add accumulates a duration for the given stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] += dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	if t.stages == nil {
		return false
	}
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}
