package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vsinha/reflow/pkg/application/dto"
	"github.com/vsinha/reflow/pkg/domain/entities"
	"github.com/vsinha/reflow/pkg/domain/repositories"
	"github.com/vsinha/reflow/pkg/domain/services"
	"github.com/vsinha/reflow/pkg/infrastructure/events"
)

// ReflowOrchestrator coordinates limits matching, profile synthesis, and
// verification for one board. The Planner and Verifier stay pure; all
// logging and event recording happens here.
type ReflowOrchestrator struct {
	planner      *services.Planner
	verifier     *services.Verifier
	limitRepo    repositories.LimitRepository
	materialRepo repositories.MaterialRepository
	runLog       *events.InMemoryRunLog
	logger       *zap.Logger
}

// NewReflowOrchestrator creates a new pipeline orchestrator
func NewReflowOrchestrator(
	planner *services.Planner,
	verifier *services.Verifier,
	limitRepo repositories.LimitRepository,
	materialRepo repositories.MaterialRepository,
	runLog *events.InMemoryRunLog,
	logger *zap.Logger,
) *ReflowOrchestrator {
	return &ReflowOrchestrator{
		planner:      planner,
		verifier:     verifier,
		limitRepo:    limitRepo,
		materialRepo: materialRepo,
		runLog:       runLog,
		logger:       logger,
	}
}

// Run executes limits matching, synthesis, and verification for the given
// BOM against the named material. A failed verification is a result, not an
// error; the only errors are malformed input (unknown material) and
// cancellation.
func (o *ReflowOrchestrator) Run(
	ctx context.Context,
	components []*entities.Component,
	skippedRows []string,
	materialName string,
) (*dto.RunResult, error) {
	start := time.Now()
	runID := uuid.NewString()

	o.runLog.Append(runID, events.NewEvent(events.BOMParsedEvent, runID, events.BOMParsed{
		Components: len(components),
		Skipped:    len(skippedRows),
	}))

	material, err := o.materialRepo.GetMaterial(materialName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve material %q: %w", materialName, err)
	}

	limits, matched, err := o.limitRepo.MatchComponents(components)
	if err != nil {
		return nil, fmt.Errorf("failed to match component limits: %w", err)
	}

	coverage := 0.0
	if len(components) > 0 {
		coverage = float64(matched) / float64(len(components))
	}
	o.logger.Info("matched component limits",
		zap.Int("matched", matched),
		zap.Int("components", len(components)),
		zap.Float64("coverage", coverage),
	)
	o.runLog.Append(runID, events.NewEvent(events.LimitsMatchedEvent, runID, events.LimitsMatched{
		Matched:  matched,
		Total:    len(components),
		Coverage: coverage,
	}))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, err := o.planner.Synthesize(material, limits)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize profile: %w", err)
	}
	o.logger.Info("peak temperature chosen",
		zap.String("profile", profile.ID),
		zap.Float64("peak_c", float64(profile.PeakTemp)),
		zap.Int("total_duration_s", profile.TotalDuration),
	)
	o.runLog.Append(runID, events.NewEvent(events.ProfileSynthesizedEvent, runID, events.ProfileSynthesized{
		ProfileID:     profile.ID,
		PeakTemp:      profile.PeakTemp,
		TotalDuration: profile.TotalDuration,
	}))

	validation := o.verifier.Verify(profile, limits, material)
	o.logger.Info("verification complete",
		zap.Bool("passed", validation.Passed),
		zap.Int("violations", len(validation.Violations)),
		zap.Int("warnings", len(validation.Warnings)),
	)
	o.runLog.Append(runID, events.NewEvent(events.ValidationCompletedEvent, runID, events.ValidationCompleted{
		Passed:     validation.Passed,
		Violations: len(validation.Violations),
		Warnings:   len(validation.Warnings),
	}))

	return &dto.RunResult{
		RunID:       runID,
		Components:  components,
		SkippedRows: skippedRows,
		Limits:      limits,
		Coverage:    coverage,
		Material:    material,
		Profile:     profile,
		Validation:  validation,
		Elapsed:     time.Since(start),
	}, nil
}
