package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// RunReport is the JSON artifact written after each pipeline invocation.
type RunReport struct {
	RunID      string            `json:"run_id"`
	Mode       string            `json:"mode"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Phases     []PhaseReport     `json:"phases,omitempty"`
	Preview    *PreviewReport    `json:"preview,omitempty"`
	Validation *ValidationReport `json:"validation,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// NewRunReport stamps a fresh report with a unique run id.
func NewRunReport(mode string) RunReport {
	return RunReport{
		RunID:     uuid.NewString(),
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the end time and records the failure, if any.
func (r *RunReport) Finish(err error) {
	r.FinishedAt = time.Now().UTC()
	if err != nil {
		r.Error = err.Error()
	}
}

// ReportWriter persists run reports as timestamped JSON files.
type ReportWriter struct {
	dir string
}

func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

// Write marshals the report and writes it under the reports directory,
// returning the file path.
func (w *ReportWriter) Write(report RunReport) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	name := fmt.Sprintf("run_%s_%s.json", report.StartedAt.Format("20060102_150405"), report.RunID[:8])
	path := filepath.Join(w.dir, name)

	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write run report: %w", err)
	}
	return path, nil
}
