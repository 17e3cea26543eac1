// Package buildpipeline orchestrates the generation run: staging the common
// and per-platform files, running configure per target, and synthesizing
// the umbrella headers.
package buildpipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"darwingen/internal/headers"
	"darwingen/internal/platform"
	"darwingen/internal/staging"
)

// Request configures one generation run.
type Request struct {
	// Root is the library source tree holding src/, include/ and the
	// configure script.
	Root string
	// OutputRoot receives the generated trees; defaults to Root.
	OutputRoot string
	// ConfigurePath overrides the configure script location; defaults to
	// Root/configure.
	ConfigurePath string

	// Family toggles. Disabled families stage nothing, build nothing, and
	// contribute no guards to any umbrella header.
	OSX  bool
	IOS  bool
	TVOS bool

	ExtraCFlags   []string
	PrintCommands bool
	Progress      ProgressSink
}

// Result captures what one run produced.
type Result struct {
	Targets   []TargetResult
	Umbrellas []string
	Timings   Timings
}

// EnabledTargets returns the descriptors the request enables, in build order.
func (req *Request) EnabledTargets() []platform.Descriptor {
	var out []platform.Descriptor
	if req.IOS {
		out = append(out, platform.Active(platform.GroupIOS)...)
	}
	if req.TVOS {
		out = append(out, platform.Active(platform.GroupTVOS)...)
	}
	if req.OSX {
		out = append(out, platform.Active(platform.GroupOSX)...)
	}
	return out
}

// Generate runs the whole pipeline: common staging, per-target source
// staging, sequential configure builds, umbrella synthesis. The first
// failure aborts the remaining sequence; nothing is cleaned up.
func Generate(ctx context.Context, req *Request) (Result, error) {
	var result Result
	if req == nil {
		return result, fmt.Errorf("missing generate request")
	}
	reqCopy := *req
	req = &reqCopy
	if req.Root == "" {
		req.Root = "."
	}
	if req.OutputRoot == "" {
		req.OutputRoot = req.Root
	}
	if req.ConfigurePath == "" {
		req.ConfigurePath = filepath.Join(req.Root, "configure")
	}
	// configure runs with the working directory switched into the build
	// directory, so its path has to survive the chdir.
	configurePath, err := filepath.Abs(req.ConfigurePath)
	if err != nil {
		return result, fmt.Errorf("failed to resolve configure path: %w", err)
	}

	targets := req.EnabledTargets()
	for _, desc := range targets {
		emit(req.Progress, Event{Target: desc.Tag(), Stage: StageSources, Status: StatusQueued})
	}

	start := time.Now()
	if err := stageCommonFiles(ctx, req); err != nil {
		return result, err
	}

	for _, desc := range targets {
		if err := stageTargetSources(req, desc); err != nil {
			emit(req.Progress, Event{Target: desc.Tag(), Stage: StageSources, Status: StatusError, Err: err})
			return result, err
		}
	}
	result.Timings.Add(StageSources, time.Since(start))

	// Builds are strictly sequential: each one temporarily owns the
	// process working directory.
	registry := headers.NewRegistry()
	for _, desc := range targets {
		targetResult, err := buildTarget(ctx, req, desc, configurePath, registry, &result.Timings)
		result.Targets = append(result.Targets, targetResult)
		if err != nil {
			return result, err
		}
	}

	unifyStart := time.Now()
	emit(req.Progress, Event{Stage: StageUnify, Status: StatusWorking})
	umbrellaDir := filepath.Join(req.OutputRoot, "darwin_common", "include")
	if err := headers.WriteUmbrellas(umbrellaDir, registry); err != nil {
		emit(req.Progress, Event{Stage: StageUnify, Status: StatusError, Err: err})
		return result, err
	}
	result.Umbrellas = registry.Names()
	result.Timings.Add(StageUnify, time.Since(unifyStart))
	emit(req.Progress, Event{Stage: StageUnify, Status: StatusDone, Elapsed: time.Since(unifyStart)})
	return result, nil
}

// stageCommonFiles populates darwin_common with the OS-family-agnostic
// sources and headers. The two sets live in disjoint directories and touch
// no process-global state, so they stage concurrently.
func stageCommonFiles(ctx context.Context, req *Request) error {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return staging.Copy(
			filepath.Join(req.Root, "src"),
			filepath.Join(req.OutputRoot, "darwin_common", "src"),
			staging.Options{Pattern: "*.c"},
		)
	})
	g.Go(func() error {
		return staging.Copy(
			filepath.Join(req.Root, "include"),
			filepath.Join(req.OutputRoot, "darwin_common", "include"),
			staging.Options{Pattern: "*.h"},
		)
	})
	return g.Wait()
}

// stageTargetSources copies one descriptor's architecture-specific sources
// and headers into its platform tree. Sources get the architecture suffix;
// the listed headers keep their names and rely on the guard alone.
func stageTargetSources(req *Request, desc platform.Descriptor) error {
	emit(req.Progress, Event{Target: desc.Tag(), Stage: StageSources, Status: StatusWorking})
	srcDir := filepath.Join(req.Root, "src", desc.SrcDir)
	dstDir := filepath.Join(req.OutputRoot, desc.Directory, "src", desc.SrcDir)

	err := staging.Copy(srcDir, dstDir, staging.Options{
		Files:      desc.SrcFiles,
		ArchSuffix: desc.Arch,
		Prefix:     desc.GuardPrefix,
		Suffix:     desc.GuardSuffix,
	})
	if err != nil {
		return err
	}
	return staging.Copy(srcDir, dstDir, staging.Options{
		Files:  desc.HdrFiles,
		Prefix: desc.GuardPrefix,
		Suffix: desc.GuardSuffix,
	})
}
