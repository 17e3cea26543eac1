package version

import (
	"strings"
	"testing"
)

func TestDefaultVersionSet(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// The colored segments still spell out the semantic version.
	if !strings.Contains(Version, "-dev") {
		t.Errorf("default Version %q should carry the -dev marker", Version)
	}
}

func TestLdflagsOverride(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-08-28T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2026-08-28T10:30:00Z" {
		t.Errorf("override failed: %q %q %q", Version, GitCommit, BuildDate)
	}
}
