package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"fortio.org/safecast"

	"darwingen/internal/headers"
	"darwingen/internal/platform"
	"darwingen/internal/staging"
)

// TargetResult summarizes one target's configure run and header staging.
type TargetResult struct {
	Family   string
	SDK      string
	Arch     string
	Triple   string
	Headers  uint32
	Duration time.Duration
	OK       bool
}

// xcrunCommand wraps a toolchain binary so it targets the descriptor's SDK
// and architecture.
func xcrunCommand(tool string, desc platform.Descriptor) string {
	return fmt.Sprintf("xcrun -sdk %s %s -arch %s", desc.SDK, tool, desc.Arch)
}

func crossEnv(desc platform.Descriptor, extraCFlags []string) []string {
	cflags := append([]string{desc.VersionMin, "-fembed-bitcode"}, extraCFlags...)
	return append(os.Environ(),
		"CC="+xcrunCommand("clang", desc),
		"LD="+xcrunCommand("ld", desc),
		"CFLAGS="+strings.Join(cflags, " "),
	)
}

// buildTarget runs configure for one descriptor inside its build directory,
// stages the generated headers into the platform include tree, and records
// each staged header in the registry. Any failure aborts the run.
func buildTarget(ctx context.Context, req *Request, desc platform.Descriptor, configurePath string, reg headers.Registry, timings *Timings) (TargetResult, error) {
	result := TargetResult{
		Family: desc.Family.String(),
		SDK:    desc.SDK,
		Arch:   desc.Arch,
		Triple: desc.Triple,
	}
	start := time.Now()
	tag := desc.Tag()

	buildDir := filepath.Join(req.OutputRoot, desc.BuildDir())
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create build dir %s: %w", buildDir, err)
	}

	emit(req.Progress, Event{Target: tag, Stage: StageConfigure, Status: StatusWorking})
	err := runInDir(buildDir, func() error {
		return runConfigure(ctx, req, desc, configurePath)
	})
	timings.Add(StageConfigure, time.Since(start))
	if err != nil {
		emit(req.Progress, Event{Target: tag, Stage: StageConfigure, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		result.Duration = time.Since(start)
		return result, err
	}

	emit(req.Progress, Event{Target: tag, Stage: StageHeaders, Status: StatusWorking})
	headersStart := time.Now()
	staged, err := stageBuildHeaders(req, desc, buildDir, reg)
	timings.Add(StageHeaders, time.Since(headersStart))
	if err != nil {
		emit(req.Progress, Event{Target: tag, Stage: StageHeaders, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		result.Duration = time.Since(start)
		return result, err
	}

	count, err := safecast.Conv[uint32](staged)
	if err != nil {
		return result, fmt.Errorf("staged header count overflow: %w", err)
	}
	result.Headers = count
	result.Duration = time.Since(start)
	result.OK = true
	emit(req.Progress, Event{Target: tag, Stage: StageHeaders, Status: StatusDone, Elapsed: result.Duration})
	return result, nil
}

// runConfigure is called with the working directory already inside the
// build directory, so configurePath must be absolute.
func runConfigure(ctx context.Context, req *Request, desc platform.Descriptor, configurePath string) error {
	args := []string{"-host", desc.Triple}
	if req.PrintCommands {
		if _, printErr := fmt.Fprintf(os.Stdout, "%s %s\n", configurePath, strings.Join(args, " ")); printErr != nil {
			return fmt.Errorf("failed to print command: %w", printErr)
		}
	}
	cmd := exec.CommandContext(ctx, configurePath, args...)
	cmd.Env = crossEnv(desc, req.ExtraCFlags)
	cmd.Stdout = os.Stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("configure failed for %s: %w", desc.Triple, err)
		}
		return fmt.Errorf("configure failed for %s: %s", desc.Triple, msg)
	}
	return nil
}

// stageBuildHeaders copies every header configure produced, from the build
// directory itself and its include/ subdirectory, into the platform's
// shared include tree, and records the guard triple for each filename.
func stageBuildHeaders(req *Request, desc platform.Descriptor, buildDir string, reg headers.Registry) (int, error) {
	includeDir := filepath.Join(req.OutputRoot, desc.Directory, "include")
	opts := staging.Options{
		Pattern:    "*.h",
		ArchSuffix: desc.Arch,
		Prefix:     desc.GuardPrefix,
		Suffix:     desc.GuardSuffix,
	}

	staged := 0
	for _, srcDir := range []string{buildDir, filepath.Join(buildDir, "include")} {
		if err := staging.Copy(srcDir, includeDir, opts); err != nil {
			return staged, err
		}
		names, err := staging.List(srcDir, opts)
		if err != nil {
			return staged, err
		}
		for _, name := range names {
			reg.Record(name, headers.Guard{
				Prefix: desc.GuardPrefix,
				Arch:   desc.Arch,
				Suffix: desc.GuardSuffix,
			})
			staged++
		}
	}
	return staged, nil
}
