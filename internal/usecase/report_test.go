package usecase

import (
	"os"
	"testing"

	"github.com/bytedance/sonic"
)

func TestReportWriter_WritesRunReport(t *testing.T) {
	dir := t.TempDir()

	report := NewRunReport("run")
	if report.RunID == "" {
		t.Fatalf("run id not assigned")
	}
	report.Phases = []PhaseReport{
		{Phase: "fk_resolution", Status: phaseStatusCompleted, Counters: Counters{"fight_fighters_matched": 2}},
	}
	report.Validation = &ValidationReport{Passed: true, Checks: []Check{
		{Name: "row_count:ufc_events", Passed: true, Detail: "2 rows, minimum 1"},
	}}

	path, err := NewReportWriter(dir).Write(report)
	if err != nil {
		t.Fatalf("write report failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report failed: %v", err)
	}

	var decoded RunReport
	if err := sonic.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report failed: %v", err)
	}
	if decoded.RunID != report.RunID {
		t.Fatalf("run id mismatch: %s != %s", decoded.RunID, report.RunID)
	}
	if len(decoded.Phases) != 1 || decoded.Phases[0].Counters["fight_fighters_matched"] != 2 {
		t.Fatalf("phase counters lost: %+v", decoded.Phases)
	}
	if decoded.Validation == nil || !decoded.Validation.Passed {
		t.Fatalf("validation section lost")
	}
}
