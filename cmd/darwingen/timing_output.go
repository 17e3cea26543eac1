package main

import (
	"fmt"

	"darwingen/internal/buildpipeline"
	"darwingen/internal/observ"
)

// observeRunTimings records the run's phases on the timer. Stage lines are
// gated on whether the stage actually ran; per-target durations already
// include the configure and header stages, so those stage totals are not
// listed separately to keep the total meaningful.
func observeRunTimings(timer *observ.Timer, result buildpipeline.Result) {
	if timer == nil {
		return
	}
	if result.Timings.Has(buildpipeline.StageSources) {
		timer.Observe("stage sources", result.Timings.Duration(buildpipeline.StageSources), "")
	}
	for _, tr := range result.Targets {
		timer.Observe("build "+tr.SDK+"-"+tr.Arch, tr.Duration, fmt.Sprintf("%d headers", tr.Headers))
	}
	if result.Timings.Has(buildpipeline.StageUnify) {
		timer.Observe("unify headers", result.Timings.Duration(buildpipeline.StageUnify), "")
	}
}
