package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"darwingen/internal/buildpipeline"
	"darwingen/internal/observ"
	"darwingen/internal/report"
	"darwingen/internal/version"
)

func init() {
	generateCmd.Flags().Bool("disable-ios", false, "skip the iOS family")
	generateCmd.Flags().Bool("disable-tvos", false, "skip the tvOS family")
	generateCmd.Flags().Bool("disable-osx", false, "skip the macOS family")
	generateCmd.Flags().Bool("enable-tvos", false, "generate the tvOS family (off by default)")
	generateCmd.Flags().String("configure", "", "path to the configure script (default <root>/configure)")
	generateCmd.Flags().String("out", "", "output root (default the source root)")
	generateCmd.Flags().Bool("print-commands", false, "print external commands before running them")
	generateCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	generateCmd.Flags().String("report", "", "write a msgpack run report to this path")
}

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [path]",
	Short: "Generate per-platform sources and fat headers",
	Long:  "Generate guarded per-architecture source trees, run configure per target, and synthesize umbrella headers. The optional path is the library source root; darwingen.toml is honored when present.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  generateExecution,
}

func generateExecution(cmd *cobra.Command, args []string) error {
	disableIOS, err := cmd.Flags().GetBool("disable-ios")
	if err != nil {
		return err
	}
	disableTVOS, err := cmd.Flags().GetBool("disable-tvos")
	if err != nil {
		return err
	}
	disableOSX, err := cmd.Flags().GetBool("disable-osx")
	if err != nil {
		return err
	}
	enableTVOS, err := cmd.Flags().GetBool("enable-tvos")
	if err != nil {
		return err
	}
	configureFlag, err := cmd.Flags().GetString("configure")
	if err != nil {
		return err
	}
	outFlag, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	printCommands, err := cmd.Flags().GetBool("print-commands")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	reportPath, err := cmd.Flags().GetString("report")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	manifest, manifestFound, err := loadProjectManifest(startDir)
	if err != nil {
		return err
	}

	req := &buildpipeline.Request{
		Root:          startDir,
		OutputRoot:    outFlag,
		ConfigurePath: configureFlag,
		PrintCommands: printCommands,
	}

	var families familiesConfig
	if manifestFound {
		if manifest.Config.Paths.Source != "" && len(args) == 0 {
			req.Root = resolveManifestPath(manifest, manifest.Config.Paths.Source)
		} else if len(args) == 0 {
			req.Root = manifest.Root
		}
		if req.OutputRoot == "" {
			req.OutputRoot = resolveManifestPath(manifest, manifest.Config.Paths.Output)
		}
		if req.ConfigurePath == "" {
			req.ConfigurePath = resolveManifestPath(manifest, manifest.Config.Paths.Configure)
		}
		req.ExtraCFlags = manifest.Config.Build.CFlags
		families = manifest.Config.Families
	}
	req.OSX, req.IOS, req.TVOS = resolveFamilies(familyToggles{
		disableIOS:  disableIOS,
		disableTVOS: disableTVOS,
		disableOSX:  disableOSX,
		enableTVOS:  enableTVOS,
	}, families)

	targets := req.EnabledTargets()
	if len(targets) == 0 {
		return fmt.Errorf("all platform families are disabled; nothing to generate")
	}

	startedAt := time.Now()
	var result buildpipeline.Result
	var genErr error
	if shouldUseTUI(uiModeValue) {
		result, genErr = runGenerateWithUI(cmd.Context(), "generating darwin sources", req)
	} else {
		req.Progress = plainSink(cmd.OutOrStdout())
		result, genErr = buildpipeline.Generate(cmd.Context(), req)
	}

	timer := observ.NewTimer()
	observeRunTimings(timer, result)
	if reportPath != "" {
		reportPhase := timer.Begin("write report")
		reportErr := writeRunReport(reportPath, startedAt, result)
		timer.End(reportPhase, reportPath)
		if reportErr != nil {
			if genErr == nil {
				genErr = reportErr
			} else {
				fmt.Fprintf(os.Stderr, "warning: %v\n", reportErr)
			}
		}
	}
	if genErr != nil {
		return genErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d targets, %d umbrella headers\n", len(result.Targets), len(result.Umbrellas))
	if showTimings {
		fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
	}
	return nil
}

// plainSink prints one line per meaningful event when the TUI is off.
func plainSink(out io.Writer) buildpipeline.ProgressSink {
	return buildpipeline.SinkFunc(func(evt buildpipeline.Event) {
		switch evt.Status {
		case buildpipeline.StatusWorking:
			if evt.Target != "" && evt.Stage == buildpipeline.StageConfigure {
				fmt.Fprintf(out, "%s: configuring\n", evt.Target)
			}
		case buildpipeline.StatusDone:
			if evt.Target != "" {
				fmt.Fprintf(out, "%s: done (%.1fs)\n", evt.Target, evt.Elapsed.Seconds())
			}
		case buildpipeline.StatusError:
			target := evt.Target
			if target == "" {
				target = "run"
			}
			fmt.Fprintf(out, "%s: failed: %v\n", target, evt.Err)
		}
	})
}

func writeRunReport(path string, startedAt time.Time, result buildpipeline.Result) error {
	run := report.Report{
		Tool:      "darwingen",
		Version:   version.Version,
		StartedAt: startedAt,
		Umbrellas: result.Umbrellas,
	}
	for _, tr := range result.Targets {
		run.Targets = append(run.Targets, report.Target{
			Family:     tr.Family,
			SDK:        tr.SDK,
			Arch:       tr.Arch,
			Triple:     tr.Triple,
			Headers:    tr.Headers,
			DurationMS: report.MillisOf(tr.Duration),
			OK:         tr.OK,
		})
	}
	return run.Write(path)
}
