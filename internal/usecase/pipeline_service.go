package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fightlab/fightdata-pipeline/internal/domain/storage"
	"github.com/fightlab/fightdata-pipeline/internal/platform/logging"
)

// PipelineState tracks where a run is in its lifecycle.
type PipelineState int

const (
	StateIdle PipelineState = iota
	StateRunning
	StateCompleted
	StateAborted
)

func (s PipelineState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return "idle"
	}
}

// PipelineService runs the normalization phases in order, each inside its
// own transaction. A phase failure rolls back that phase only and aborts
// the run; completed phases stay committed, and a later re-run picks up
// where the data was left because every write is guarded.
type PipelineService struct {
	store  storage.Store
	phases []Phase
	logger *logging.Logger

	mu           sync.Mutex
	state        PipelineState
	currentPhase string
}

func NewPipelineService(store storage.Store, logger *logging.Logger, phases ...Phase) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PipelineService{
		store:  store,
		phases: phases,
		logger: logger,
	}
}

// PhaseNames returns the configured phases in execution order.
func (s *PipelineService) PhaseNames() []string {
	names := make([]string, 0, len(s.phases))
	for _, p := range s.phases {
		names = append(names, p.Name())
	}
	return names
}

// State reports the pipeline lifecycle state and, while running, the
// active phase.
func (s *PipelineService) State() (PipelineState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.currentPhase
}

// RunAll executes every phase in order. The returned reports cover all
// configured phases; phases after a failure are reported as skipped.
func (s *PipelineService) RunAll(ctx context.Context) ([]PhaseReport, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	reports := make([]PhaseReport, 0, len(s.phases))
	for i, phase := range s.phases {
		s.setCurrent(phase.Name())
		report, err := s.runPhase(ctx, phase)
		reports = append(reports, report)
		if err != nil {
			for _, skipped := range s.phases[i+1:] {
				reports = append(reports, PhaseReport{Phase: skipped.Name(), Status: phaseStatusSkipped})
			}
			s.finish(StateAborted)
			return reports, fmt.Errorf("phase %s: %w", phase.Name(), err)
		}
	}

	s.finish(StateCompleted)
	return reports, nil
}

// RunPhase executes a single phase, addressed by name or 1-based index.
func (s *PipelineService) RunPhase(ctx context.Context, selector string) (PhaseReport, error) {
	phase, err := s.findPhase(selector)
	if err != nil {
		return PhaseReport{}, err
	}

	if err := s.begin(); err != nil {
		return PhaseReport{}, err
	}
	s.setCurrent(phase.Name())

	report, err := s.runPhase(ctx, phase)
	if err != nil {
		s.finish(StateAborted)
		return report, fmt.Errorf("phase %s: %w", phase.Name(), err)
	}

	s.finish(StateCompleted)
	return report, nil
}

func (s *PipelineService) runPhase(ctx context.Context, phase Phase) (PhaseReport, error) {
	start := time.Now()
	s.logger.Info("phase started", "phase", phase.Name())

	var counters Counters
	err := s.store.WithinTx(ctx, func(repos storage.Repos) error {
		var phaseErr error
		counters, phaseErr = phase.Run(ctx, repos)
		return phaseErr
	})

	report := PhaseReport{
		Phase:      phase.Name(),
		DurationMs: time.Since(start).Milliseconds(),
		Counters:   counters,
	}
	if err != nil {
		report.Status = phaseStatusFailed
		report.Error = err.Error()
		s.logger.Error("phase failed", "phase", phase.Name(), "error", err)
		return report, err
	}

	report.Status = phaseStatusCompleted
	s.logger.Info("phase completed", "phase", phase.Name(), "duration_ms", report.DurationMs, "counters", counters)
	return report, nil
}

func (s *PipelineService) findPhase(selector string) (Phase, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, fmt.Errorf("%w: phase selector is required", ErrInvalidInput)
	}

	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 1 || idx > len(s.phases) {
			return nil, fmt.Errorf("%w: index %d out of range 1..%d", ErrUnknownPhase, idx, len(s.phases))
		}
		return s.phases[idx-1], nil
	}

	for _, p := range s.phases {
		if p.Name() == selector {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPhase, selector)
}

func (s *PipelineService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		return ErrPipelineBusy
	}
	s.state = StateRunning
	s.currentPhase = ""
	return nil
}

func (s *PipelineService) setCurrent(phase string) {
	s.mu.Lock()
	s.currentPhase = phase
	s.mu.Unlock()
}

func (s *PipelineService) finish(state PipelineState) {
	s.mu.Lock()
	s.state = state
	s.currentPhase = ""
	s.mu.Unlock()
}

// PreviewReport counts the work each phase would touch, without writing.
type PreviewReport struct {
	UnresolvedFights       int64 `json:"unresolved_fights"`
	UnassignedResults      int64 `json:"unassigned_results"`
	UnresolvedStatFighters int64 `json:"unresolved_stat_fighters"`
	FighterSentinels       int64 `json:"fighter_sentinels"`
	StatSentinels          int64 `json:"stat_sentinels"`
	UntrimmedMethods       int64 `json:"untrimmed_methods"`
	UndatedEvents          int64 `json:"undated_events"`
	UnparsedProfiles       int64 `json:"unparsed_profiles"`
	UntypedResults         int64 `json:"untyped_results"`
	UntypedStats           int64 `json:"untyped_stats"`
	UnderivedResults       int64 `json:"underived_results"`
}

// Preview reads pending-work counts against the plain connection.
func (s *PipelineService) Preview(ctx context.Context) (PreviewReport, error) {
	repos := s.store.View()
	var report PreviewReport

	counts := []struct {
		dst  *int64
		load func(context.Context) (int64, error)
	}{
		{&report.UnresolvedFights, repos.Fights.CountUnresolved},
		{&report.UnassignedResults, repos.Results.CountUnassigned},
		{&report.UnresolvedStatFighters, repos.Stats.CountUnresolvedFighters},
		{&report.FighterSentinels, repos.Fighters.CountProfileSentinels},
		{&report.StatSentinels, repos.Stats.CountSentinels},
		{&report.UntrimmedMethods, repos.Results.CountUntrimmedMethods},
		{&report.UndatedEvents, repos.Events.CountUndated},
		{&report.UnparsedProfiles, repos.Fighters.CountUnparsedProfiles},
		{&report.UntypedResults, repos.Results.CountUntyped},
		{&report.UntypedStats, repos.Stats.CountUntyped},
		{&report.UnderivedResults, repos.Results.CountUnderived},
	}
	for _, c := range counts {
		n, err := c.load(ctx)
		if err != nil {
			return report, err
		}
		*c.dst = n
	}
	return report, nil
}
