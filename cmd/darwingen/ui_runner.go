package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"darwingen/internal/buildpipeline"
	"darwingen/internal/ui"
)

type generateOutcome struct {
	result buildpipeline.Result
	err    error
}

// runGenerateWithUI drives the pipeline in a goroutine while Bubble Tea
// renders the event stream in the foreground.
func runGenerateWithUI(ctx context.Context, title string, req *buildpipeline.Request) (buildpipeline.Result, error) {
	if req == nil {
		return buildpipeline.Result{}, fmt.Errorf("missing generate request")
	}
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan generateOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := buildpipeline.Generate(ctx, &reqCopy)
		outcomeCh <- generateOutcome{result: res, err: err}
		close(events)
	}()

	tags := make([]string, 0, len(req.EnabledTargets()))
	for _, desc := range req.EnabledTargets() {
		tags = append(tags, desc.Tag())
	}
	model := ui.NewGenerateModel(title, tags, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
