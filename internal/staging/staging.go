// Package staging copies source and header files into the generated
// per-platform trees, optionally renaming them with an architecture suffix
// and wrapping their contents in preprocessor guards.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
)

// sharedHeaders are never architecture-suffixed: they are guarded by content
// rather than by filename and must land at a fixed path so other staged
// files can #include them unconditionally. Every architecture writes the
// same path; last writer wins.
var sharedHeaders = map[string]bool{
	"internal.h":   true,
	"internal64.h": true,
	"asmnames.h":   true,
}

// Options selects which files to stage and how to transform them. Exactly
// one of Pattern and Files should be set.
type Options struct {
	// Pattern is a glob matched inside the source directory. A pattern
	// matching nothing stages nothing; that is not an error.
	Pattern string
	// Files is an explicit ordered list of names relative to the source
	// directory. A missing listed file is fatal.
	Files []string

	// ArchSuffix, when non-empty, renames staged files from stem.ext to
	// stem_<arch>.ext, except for the shared-header allow-list.
	ArchSuffix string

	// Prefix and Suffix are written verbatim around the original contents.
	Prefix string
	Suffix string
}

// List resolves the option set to base filenames in srcDir, preserving the
// order of an explicit file list.
func List(srcDir string, opts Options) ([]string, error) {
	if opts.Pattern != "" {
		matches, err := filepath.Glob(filepath.Join(srcDir, opts.Pattern))
		if err != nil {
			return nil, fmt.Errorf("bad staging pattern %q: %w", opts.Pattern, err)
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, filepath.Base(m))
		}
		return names, nil
	}
	return opts.Files, nil
}

// OutputName returns the staged filename for name: unchanged when
// archSuffix is empty or name is a shared header, stem_<arch>.ext otherwise.
func OutputName(name, archSuffix string) string {
	if archSuffix == "" || sharedHeaders[name] {
		return name
	}
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)] + "_" + archSuffix + ext
}

// Copy stages every selected file from srcDir into dstDir, creating dstDir
// if needed. The staged contents are exactly Prefix + original + Suffix.
// Files already present in dstDir but not staged here are left alone.
func Copy(srcDir, dstDir string, opts Options) error {
	names, err := List(srcDir, opts)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := stageFile(srcDir, dstDir, name, opts); err != nil {
			return err
		}
	}
	return nil
}

func stageFile(srcDir, dstDir, name string, opts Options) error {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging dir %s: %w", dstDir, err)
	}
	data, err := os.ReadFile(filepath.Join(srcDir, name))
	if err != nil {
		return fmt.Errorf("failed to read staged source %s: %w", filepath.Join(srcDir, name), err)
	}
	out := make([]byte, 0, len(opts.Prefix)+len(data)+len(opts.Suffix))
	out = append(out, opts.Prefix...)
	out = append(out, data...)
	out = append(out, opts.Suffix...)
	dst := filepath.Join(dstDir, OutputName(name, opts.ArchSuffix))
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return fmt.Errorf("failed to write staged file %s: %w", dst, err)
	}
	return nil
}
