// Package report writes the machine-readable summary of one generation run.
// The artifact is write-only: later runs never consult it, so it carries a
// schema version purely so downstream readers can reject stale formats.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// SchemaVersion - increment when the Report format changes.
const SchemaVersion uint16 = 1

// Target is the per-target slice of the report.
type Target struct {
	Family     string
	SDK        string
	Arch       string
	Triple     string
	Headers    uint32
	DurationMS float64
	OK         bool
}

// Report summarizes one generation run.
type Report struct {
	Schema    uint16
	Tool      string
	Version   string
	StartedAt time.Time
	Targets   []Target
	Umbrellas []string
}

// Write msgpack-encodes the report at path, creating parent directories as
// needed. The schema version is stamped on the way out.
func (r Report) Write(path string) error {
	r.Schema = SchemaVersion
	data, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// Load decodes a report, rejecting unknown schema versions.
func Load(path string) (Report, error) {
	var r Report
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	if r.Schema != SchemaVersion {
		return r, fmt.Errorf("report %s has schema %d, want %d", path, r.Schema, SchemaVersion)
	}
	return r, nil
}

// MillisOf converts a duration into the report's millisecond unit.
func MillisOf(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
