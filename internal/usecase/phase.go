package usecase

import (
	"context"

	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
)

// Phase is one normalization stage. Phases are re-runnable: every write
// they issue is guarded against overwriting populated columns, so running
// a phase twice changes nothing the second time.
type Phase interface {
	Name() string
	Run(ctx context.Context, repos storage.Repos) (Counters, error)
}

// Counters collects named row counts produced by a phase run.
type Counters map[string]int64

func (c Counters) add(name string, n int64) {
	if n != 0 {
		c[name] += n
	}
}

// PhaseReport summarizes one phase execution inside a run.
type PhaseReport struct {
	Phase      string   `json:"phase"`
	Status     string   `json:"status"`
	DurationMs int64    `json:"duration_ms"`
	Counters   Counters `json:"counters,omitempty"`
	Error      string   `json:"error,omitempty"`
}

const (
	phaseStatusCompleted = "completed"
	phaseStatusFailed    = "failed"
	phaseStatusSkipped   = "skipped"
)
