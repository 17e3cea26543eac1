package observ_test

import (
	"strings"
	"testing"
	"time"

	"darwingen/internal/observ"
)

func TestBeginEndRecordsPhase(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("write report")
	timer.End(idx, "run.report")

	summary := timer.Summary()
	if !strings.Contains(summary, "write report") {
		t.Fatalf("summary missing phase name:\n%s", summary)
	}
	if !strings.Contains(summary, "// run.report") {
		t.Fatalf("summary missing phase note:\n%s", summary)
	}
	if !strings.Contains(summary, "total") {
		t.Fatalf("summary missing total line:\n%s", summary)
	}
}

func TestEndOutOfRangeIsIgnored(t *testing.T) {
	timer := observ.NewTimer()
	timer.End(-1, "no phase")
	timer.End(3, "no phase")
	if strings.Contains(timer.Summary(), "no phase") {
		t.Fatal("out-of-range End recorded a phase")
	}
}

func TestObserveRecordsPremeasuredDurations(t *testing.T) {
	timer := observ.NewTimer()
	timer.Observe("build macosx-arm64", 1500*time.Millisecond, "3 headers")
	timer.Observe("unify headers", 2*time.Millisecond, "")

	summary := timer.Summary()
	for _, want := range []string{"build macosx-arm64", "1500.0 ms", "// 3 headers", "unify headers", "2.0 ms"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimerSummaryHasOnlyTotal(t *testing.T) {
	summary := observ.NewTimer().Summary()
	lines := strings.Split(strings.TrimSpace(summary), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and total only, got:\n%s", summary)
	}
	if !strings.Contains(lines[1], "total") {
		t.Fatalf("last line is not the total:\n%s", summary)
	}
}
